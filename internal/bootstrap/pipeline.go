package bootstrap

import (
	"context"
	"fmt"
	"io"

	"quick-init/internal/config"
	"quick-init/internal/installer"
	"quick-init/internal/logger"
	"quick-init/internal/output"
	"quick-init/internal/runner"
	"quick-init/internal/scaffold"
)

// Pipeline runs every bootstrap stage in order. Each stage blocks until its
// external processes exit; there is no timeout, so a hung tool hangs the run.
type Pipeline struct {
	Runner   runner.Runner
	Config   *config.Config
	Progress output.Reporter

	// Prompt supplies the answer to the dev-server question.
	Prompt io.Reader
	// Out receives the completion message and the question.
	Out io.Writer

	// Strict makes a non-zero exit from the scaffold or an install fatal.
	Strict bool
}

// Run creates the project described by bc.
// Any error aborts the remaining stages; nothing already created is removed.
func (p *Pipeline) Run(ctx context.Context, bc *Context) error {
	deps, ok := p.Config.For(bc.Template)
	if !ok {
		return fmt.Errorf("%w %s. Valid templates are: %s", ErrInvalidTemplate, bc.Template, validTemplates())
	}
	logger.Debug("[DEBUG] Bootstrapping %s project %q in %s\n", bc.Template, bc.Name, bc.ProjectDir)

	if err := p.scaffold(ctx, bc); err != nil {
		return fmt.Errorf("creating project: %w", err)
	}

	inst := &installer.Installer{Runner: p.Runner, Progress: p.Progress, Strict: p.Strict}
	if err := inst.InstallAll(ctx, deps.Dev, bc.ProjectDir, true); err != nil {
		return err
	}
	if err := inst.InstallAll(ctx, deps.Project, bc.ProjectDir, false); err != nil {
		return err
	}

	if deps.NeedsTailwind() {
		patcher := &installer.Patcher{Runner: p.Runner, Progress: p.Progress}
		if err := patcher.Patch(ctx, bc.Template, bc.ProjectDir); err != nil {
			return fmt.Errorf("configuring tailwindcss: %w", err)
		}
	}

	fmt.Fprintln(p.Out)
	fmt.Fprintln(p.Out, output.StyleSummary.Render("Quick init complete!"))

	return p.offerDevServer(ctx, bc)
}

func (p *Pipeline) scaffold(ctx context.Context, bc *Context) error {
	inv := runner.Invocation{
		Args: scaffold.InitArgs(bc.Template, bc.Name, bc.UseJavaScript),
		Dir:  bc.WorkDir,
	}
	step := output.Step{
		Title: fmt.Sprintf("Starting new %s project", bc.Template),
		Mark:  output.MarkCreated,
		Done:  "Project created",
	}
	return p.Progress.Run(ctx, step, func() error {
		_, err := runner.RunChecked(ctx, p.Runner, inv, p.Strict)
		return err
	})
}

// offerDevServer asks whether to start the dev server and, on yes, launches it
// attached to the terminal without waiting for it.
func (p *Pipeline) offerDevServer(ctx context.Context, bc *Context) error {
	start, err := Confirm(p.Prompt, p.Out, devServerQuestion)
	if err != nil {
		return err
	}
	if !start {
		return nil
	}

	inv := runner.Invocation{Args: scaffold.DevServerArgs(), Dir: bc.ProjectDir}
	if err := p.Runner.Start(ctx, inv); err != nil {
		return fmt.Errorf("starting development server: %w", err)
	}
	logger.Info("[INFO] Development server starting in %s\n", output.StyleNoun.Render(bc.ProjectDir))
	return nil
}
