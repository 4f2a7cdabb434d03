// Package scaffold builds the argument vectors for every external command the
// bootstrap pipeline runs. It never touches the filesystem or spawns processes.
package scaffold

import (
	"fmt"

	"quick-init/internal/config"
	"quick-init/internal/runner"
)

// InitArgs returns the scaffold command for kind.
//
//	vite: npm create vite@latest <name> -- --template react|react-ts && cd <name> && npm install
//	next: npx create-next-app@latest <name> [--typescript] --use-npm
//
// An unknown kind panics: kinds are validated before the pipeline reaches this point.
func InitArgs(kind config.TemplateKind, name string, useJavaScript bool) []string {
	switch kind {
	case config.TemplateVite:
		variant := "react-ts"
		if useJavaScript {
			variant = "react"
		}
		return []string{
			"npm", "create", "vite@latest", name, "--", "--template", variant,
			runner.ChainSeparator, "cd", name,
			runner.ChainSeparator, "npm", "install",
		}
	case config.TemplateNext:
		args := []string{"npx", "create-next-app@latest", name}
		if !useJavaScript {
			args = append(args, "--typescript")
		}
		return append(args, "--use-npm")
	default:
		panic(fmt.Sprintf("scaffold: no init command for template %q", kind))
	}
}

// InstallArgs returns the command adding one package to the project.
func InstallArgs(pkg string, dev bool) []string {
	if dev {
		return []string{"npm", "install", "--save-dev", pkg}
	}
	return []string{"npm", "install", pkg}
}

// TailwindInitArgs generates tailwind.config.js and postcss.config.js.
func TailwindInitArgs() []string {
	return []string{"npx", "tailwindcss", "init", "-p"}
}

// DevServerArgs starts the project's development server.
func DevServerArgs() []string {
	return []string{"npm", "run", "dev"}
}
