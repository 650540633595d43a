package site

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	handlePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

// ParseError reports a metadata file that could not be decoded.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("site: parse %s (line %d): %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("site: parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads and decodes the metadata file at path.
func Load(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, &ParseError{Path: path, Err: err}
	}
	m, err := Parse(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return Metadata{}, err
	}
	return m, nil
}

// Parse decodes YAML metadata. Missing values are left empty; call Validate
// to reject them.
func Parse(data []byte) (Metadata, error) {
	var m Metadata
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Metadata{}, &ParseError{Path: "<input>", Line: extractLine(err), Err: err}
	}
	m.PathPrefix = strings.TrimRight(strings.TrimSpace(m.PathPrefix), "/")
	if m.PathPrefix != "" && !strings.HasPrefix(m.PathPrefix, "/") {
		m.PathPrefix = "/" + m.PathPrefix
	}
	for i := range m.Pages {
		if strings.TrimSpace(m.Pages[i].Path) != "" {
			m.Pages[i].Path = CleanPath(m.Pages[i].Path)
		}
	}
	return m, nil
}

// Validate checks that every field the layout concatenates into a link is
// present and well formed.
func Validate(m Metadata) error {
	if err := validatorInstance().Struct(m); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("site: invalid metadata: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("site: invalid metadata: %w", err)
	}
	return nil
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("handle", func(fl validator.FieldLevel) bool {
			return handlePattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
