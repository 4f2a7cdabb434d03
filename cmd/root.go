package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quick-init/internal/bootstrap"
	"quick-init/internal/config"
	"quick-init/internal/logger"
	"quick-init/internal/output"
	"quick-init/internal/runner"
)

// rootOptions holds the flags of the root command.
type rootOptions struct {
	debug          bool
	template       string
	useJavaScript  bool
	configFile     string
	showConfigPath bool
	strict         bool
}

// configPath returns --config when given, otherwise the default location.
func (o *rootOptions) configPath() (string, error) {
	if o.configFile != "" {
		return o.configFile, nil
	}
	return config.DefaultPath()
}

// NewRootCmd builds the quick-init command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "quick-init <name>",
		Short: "Bootstrap a React project with vite or next",
		Long: `quick-init creates a new React project with vite or next, installs the
dependencies listed in its config file, configures tailwindcss when it is one
of them, and offers to start the development server.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,

		// Logging is set up before any subcommand runs.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(opts.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, args, opts)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "",
		fmt.Sprintf("Path to config file (default: $%s or the user config directory)", config.EnvConfigPath))

	rootCmd.Flags().StringVarP(&opts.template, "template", "t", string(config.TemplateVite), "Project template: vite or next")
	rootCmd.Flags().BoolVarP(&opts.useJavaScript, "javascript", "j", false, "Use JavaScript instead of TypeScript")
	rootCmd.Flags().BoolVar(&opts.showConfigPath, "config-path", false, "Print the config file location and exit")
	rootCmd.Flags().BoolVar(&opts.strict, "strict", false, "Abort when the scaffold or an install exits non-zero")

	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

func runInit(cmd *cobra.Command, args []string, opts *rootOptions) error {
	path, err := opts.configPath()
	if err != nil {
		return err
	}
	if opts.showConfigPath {
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	if len(args) == 0 {
		return &ExitError{Code: ExitGeneralError, Err: errors.New("missing project name")}
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	bc, err := bootstrap.NewContext(opts.template, args[0], opts.useJavaScript, workDir)
	if err != nil {
		return &ExitError{Code: ExitCodeFromError(err), Err: err}
	}

	cfg, err := config.LoadOrInit(path)
	if err != nil {
		return err
	}
	logger.Debug("[DEBUG] Using config %s\n", path)

	p := &bootstrap.Pipeline{
		Runner:   runner.New(),
		Config:   cfg,
		Progress: output.NewTerminal(os.Stdout),
		Prompt:   cmd.InOrStdin(),
		Out:      cmd.OutOrStdout(),
		Strict:   opts.strict,
	}
	return p.Run(cmd.Context(), bc)
}

// Execute runs the root command and returns the process exit code.
// Errors are printed once, in red, on stderr.
func Execute() int {
	err := NewRootCmd().Execute()
	if err != nil {
		logger.Error("Error: %v\n", err)
	}
	return ExitCodeFromError(err)
}
