// Package bootstrap sequences project creation: scaffold, install dependencies,
// patch tailwind, and optionally start the dev server.
package bootstrap

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"quick-init/internal/config"
)

// ErrInvalidTemplate is wrapped when the requested template is not a known kind.
var ErrInvalidTemplate = errors.New("invalid template")

// Context is everything a run needs to know about the project being created.
// It is built once by NewContext and only read afterwards.
type Context struct {
	Template      config.TemplateKind
	Name          string
	UseJavaScript bool

	// WorkDir is where the scaffold command runs.
	WorkDir string

	// ProjectDir is WorkDir/Name, or Name itself when it is absolute.
	ProjectDir string
}

// NewContext validates template and resolves the project directory.
func NewContext(template, name string, useJavaScript bool, workDir string) (*Context, error) {
	kind, ok := config.ParseTemplateKind(template)
	if !ok {
		return nil, fmt.Errorf("%w %s. Valid templates are: %s", ErrInvalidTemplate, template, validTemplates())
	}
	if name == "" {
		return nil, errors.New("project name must not be empty")
	}

	projectDir := name
	if !filepath.IsAbs(name) {
		projectDir = filepath.Join(workDir, name)
	}

	return &Context{
		Template:      kind,
		Name:          name,
		UseJavaScript: useJavaScript,
		WorkDir:       workDir,
		ProjectDir:    projectDir,
	}, nil
}

func validTemplates() string {
	kinds := config.TemplateKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
