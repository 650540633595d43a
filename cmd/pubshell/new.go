package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/eringen/pubshell/scaffold"
)

// scaffoldData holds the template variables passed to every scaffold template.
type scaffoldData struct {
	ProjectName string
	SiteName    string
	Author      string
	GitHub      string
	LinkedIn    string
	Email       string
}

var newData scaffoldData

var newCmd = &cobra.Command{
	Use:   "new <dir>",
	Short: "Create a new site with metadata, sample pages and a .env example",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNew(cmd, args[0], newData)
	},
}

func init() {
	newCmd.Flags().StringVar(&newData.Author, "author", "", "author name")
	newCmd.Flags().StringVar(&newData.GitHub, "github", "", "GitHub username")
	newCmd.Flags().StringVar(&newData.LinkedIn, "linkedin", "", "LinkedIn profile handle")
	newCmd.Flags().StringVar(&newData.Email, "email", "", "contact email")
}

func runNew(cmd *cobra.Command, name string, data scaffoldData) error {
	dirName := filepath.Base(filepath.Clean(name))

	if _, err := os.Stat(name); err == nil {
		return fmt.Errorf("directory %q already exists", name)
	}

	data.ProjectName = dirName
	data.SiteName = toTitle(dirName)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Creating new pubshell site: %s\n\n", dirName)

	root := "templates"
	err := fs.WalkDir(scaffold.Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		// Output path without the .tmpl suffix; dotenv becomes .env.example.
		outPath := filepath.Join(name, relPath)
		outPath = strings.TrimSuffix(outPath, ".tmpl")
		if filepath.Base(outPath) == "dotenv" {
			outPath = filepath.Join(filepath.Dir(outPath), ".env.example")
		}

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		content, err := scaffold.Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()

		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}

		fmt.Fprintf(out, "  created %s\n", outPath)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Done! Next steps:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  cd %s\n", name)
	fmt.Fprintln(out, "  cp .env.example .env")
	fmt.Fprintln(out, "  pubshell serve")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Edit site.yaml for the author and social handles, and content/*.html for pages.")
	return nil
}

// toTitle converts a hyphenated or lowercase name to a title-case string.
// e.g. "my-blog" -> "My Blog", "myblog" -> "Myblog"
func toTitle(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
