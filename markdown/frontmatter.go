package markdown

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the YAML header a page may open with.
type FrontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
}

// Split separates a leading "---" delimited front matter block from the
// markdown body. Sources without one are returned unchanged.
func Split(src string) (FrontMatter, string, error) {
	var fm FrontMatter
	src = strings.TrimPrefix(src, "\ufeff")
	if !strings.HasPrefix(src, "---\n") && !strings.HasPrefix(src, "---\r\n") {
		return fm, src, nil
	}

	rest := src[strings.IndexByte(src, '\n')+1:]
	end := -1
	for off := 0; off <= len(rest); {
		nl := strings.IndexByte(rest[off:], '\n')
		line := rest[off:]
		if nl >= 0 {
			line = rest[off : off+nl]
		}
		if strings.TrimRight(line, "\r") == "---" {
			end = off
			break
		}
		if nl < 0 {
			break
		}
		off += nl + 1
	}
	if end < 0 {
		return fm, "", fmt.Errorf("markdown: front matter is not closed")
	}

	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return fm, "", fmt.Errorf("markdown: front matter: %w", err)
	}
	body := rest[end:]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	} else {
		body = ""
	}
	return fm, body, nil
}
