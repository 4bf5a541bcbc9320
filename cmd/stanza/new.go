package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/evanlk/stanza/scaffold"
)

// scaffoldData holds the variables available to *.tmpl scaffold files.
type scaffoldData struct {
	SiteName string
}

var newCmd = &cobra.Command{
	Use:   "new <dir>",
	Short: "Create a new site skeleton",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNew(args[0])
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}

func runNew(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}

	data := scaffoldData{SiteName: toTitle(filepath.Base(dir))}

	const root = "templates"
	err := fs.WalkDir(scaffold.Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		outPath := filepath.Join(dir, rel)

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		content, err := scaffold.Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}

		// Only .tmpl files are executed as templates; layouts and sample
		// content carry template syntax of their own and are copied verbatim.
		if strings.HasSuffix(path, ".tmpl") {
			outPath = strings.TrimSuffix(outPath, ".tmpl")
			tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
			if err != nil {
				return fmt.Errorf("parse template %s: %w", path, err)
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			defer f.Close()
			if err := tmpl.Execute(f, data); err != nil {
				return fmt.Errorf("execute template %s: %w", path, err)
			}
		} else {
			if err := os.WriteFile(outPath, content, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
		}

		fmt.Printf("  created %s\n", outPath)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Done! Next steps:")
	fmt.Println()
	fmt.Printf("  cd %s\n", dir)
	fmt.Println("  stanza dev")
	fmt.Println()
	fmt.Println("Edit config.yaml, then add posts under content/.")
	return nil
}

// toTitle converts a hyphenated or lowercase name to a title-case string,
// e.g. "my-blog" -> "My Blog".
func toTitle(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
