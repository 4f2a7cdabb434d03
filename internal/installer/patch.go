package installer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"quick-init/internal/config"
	"quick-init/internal/logger"
	"quick-init/internal/output"
	"quick-init/internal/runner"
	"quick-init/internal/scaffold"
)

// ContentMarker is the empty content list written by `tailwindcss init`.
const ContentMarker = "content: []"

// TailwindDirectives replace the whole global stylesheet.
const TailwindDirectives = "@tailwind base;\n@tailwind components;\n@tailwind utilities;"

// tailwindConfigFiles are the names `tailwindcss init` may generate, in search order.
var tailwindConfigFiles = []string{"tailwind.config.js", "tailwind.config.cjs"}

// layout describes where a template keeps its sources and global stylesheet.
type layout struct {
	contentGlobs []string
	stylesheets  []string
}

var layouts = map[config.TemplateKind]layout{
	config.TemplateVite: {
		contentGlobs: []string{"./src/**/*.{js,jsx,ts,tsx}"},
		stylesheets:  []string{"src/index.css", "styles/globals.css"},
	},
	config.TemplateNext: {
		contentGlobs: []string{
			"./pages/**/*.{js,ts,jsx,tsx}",
			"./components/**/*.{js,ts,jsx,tsx}",
			"./app/**/*.{js,ts,jsx,tsx}",
		},
		stylesheets: []string{"src/index.css", "styles/globals.css", "app/globals.css"},
	},
}

// ContentConfig renders the tailwind `content` entry for kind.
func ContentConfig(kind config.TemplateKind) string {
	var b strings.Builder
	b.WriteString("content: [\n")
	for _, glob := range layouts[kind].contentGlobs {
		fmt.Fprintf(&b, "    %q,\n", glob)
	}
	b.WriteString("  ]")
	return b.String()
}

// SubstituteContent replaces the empty content marker in text with content.
// Text without the marker comes back unchanged.
func SubstituteContent(text, content string) string {
	return strings.ReplaceAll(text, ContentMarker, content)
}

// Patcher wires tailwindcss into a scaffolded project.
type Patcher struct {
	Runner   runner.Runner
	Progress output.Reporter
}

// Patch runs `tailwindcss init`, fills the generated config's content list and
// replaces the global stylesheet with the tailwind directives.
// Missing files end the patch early without error. Only a file that exists
// but cannot be read or written is reported as an error.
func (p *Patcher) Patch(ctx context.Context, kind config.TemplateKind, projectDir string) error {
	step := output.Step{
		Title: "Configuring tailwindcss",
		Mark:  output.MarkConfigured,
		Done:  "tailwindcss configured",
	}
	return p.Progress.Run(ctx, step, func() error {
		return p.patch(ctx, kind, projectDir)
	})
}

func (p *Patcher) patch(ctx context.Context, kind config.TemplateKind, projectDir string) error {
	inv := runner.Invocation{Args: scaffold.TailwindInitArgs(), Dir: projectDir}
	if _, err := runner.RunChecked(ctx, p.Runner, inv, false); err != nil {
		logger.Warn("[WARN] Could not run %s: %v\n", inv, err)
	}

	configPath, err := firstExisting(projectDir, tailwindConfigFiles)
	if err != nil {
		return err
	}
	if configPath == "" {
		logger.Debug("[DEBUG] No tailwind config found in %s, skipping patch\n", projectDir)
		return nil
	}

	if err := rewriteFile(configPath, func(text string) string {
		return SubstituteContent(text, ContentConfig(kind))
	}); err != nil {
		return err
	}
	logger.Debug("[DEBUG] Patched content list in %s\n", configPath)

	stylesheet, err := firstExisting(projectDir, layouts[kind].stylesheets)
	if err != nil {
		return err
	}
	if stylesheet == "" {
		logger.Debug("[DEBUG] No global stylesheet found in %s, skipping\n", projectDir)
		return nil
	}

	if err := rewriteFile(stylesheet, func(string) string { return TailwindDirectives }); err != nil {
		return err
	}
	logger.Debug("[DEBUG] Wrote tailwind directives to %s\n", stylesheet)
	return nil
}

// firstExisting returns the first candidate (relative to dir) that exists,
// or "" when none do.
func firstExisting(dir string, candidates []string) (string, error) {
	for _, candidate := range candidates {
		path := filepath.Join(dir, filepath.FromSlash(candidate))
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("checking %s: %w", path, err)
		}
	}
	return "", nil
}

// rewriteFile replaces the contents of path with edit(old contents),
// keeping the file's permissions.
func rewriteFile(path string, edit func(string) string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(edit(string(data))), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
