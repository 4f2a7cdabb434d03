package installer

import (
	"context"
	"fmt"

	"quick-init/internal/logger"
	"quick-init/internal/output"
	"quick-init/internal/runner"
	"quick-init/internal/scaffold"
)

// Installer adds packages to a freshly scaffolded project, one process per package.
type Installer struct {
	Runner   runner.Runner
	Progress output.Reporter

	// Strict turns a non-zero npm exit into a fatal error.
	Strict bool
}

// InstallAll installs names in their declared order inside projectDir.
// Dev packages are saved as devDependencies.
// The first package that cannot be installed stops the run.
func (in *Installer) InstallAll(ctx context.Context, names []string, projectDir string, dev bool) error {
	label := ""
	if dev {
		label = "dev "
	}
	logger.Debug("[DEBUG] InstallAll: %d %sdependencies in %s\n", len(names), label, projectDir)

	for _, name := range names {
		inv := runner.Invocation{
			Args: scaffold.InstallArgs(name, dev),
			Dir:  projectDir,
		}
		step := output.Step{
			Title: fmt.Sprintf("Installing %sdependency %s", label, name),
			Mark:  output.MarkInstalled,
			Done:  fmt.Sprintf("%s installed", name),
		}

		err := in.Progress.Run(ctx, step, func() error {
			_, err := runner.RunChecked(ctx, in.Runner, inv, in.Strict)
			return err
		})
		if err != nil {
			return fmt.Errorf("installing %s: %w", name, err)
		}
	}
	return nil
}
