package web

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed static
var content embed.FS

// FormsFS returns the HTML forms (RegisterForm.html, SearchForm.html).
func FormsFS() (fs.FS, error) {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		return nil, fmt.Errorf("web: static sub-filesystem: %w", err)
	}
	return sub, nil
}
