// Package cli wires the lsbsteg commands together.
package cli

import (
	"context"
	"errors"
	"lsbsteg/internal/logging"
	"lsbsteg/pkg/config"

	"github.com/spf13/cobra"
)

type app struct {
	configPath    string
	logLevel      string
	cpuProfile    string
	memProfileDir string

	config    config.Config
	logger    *logging.Logger
	teardowns []func() error
}

// Execute runs the command line in args. Profilers are stopped even when the command fails
func Execute(ctx context.Context, args []string) error {
	rootCmd, a := newRootCommand()
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	return errors.Join(err, a.teardown())
}

// newRootCommand builds the lsbsteg command tree. Results are printed to the command's output, logs go to stderr
func newRootCommand() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "lsbsteg",
		Short:         "Hide text in the least significant bits of images and measure the quality loss",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level, one of debug, info, warn, error. Overrides log.level from the config file")
	flags.StringVar(&a.cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	flags.StringVar(&a.memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	rootCmd.AddCommand(a.embedCommand(), a.extractCommand(), a.psnrCommand(), a.capacityCommand(), a.serveCommand())
	return rootCmd, a
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	a.config = cfg
	a.logger = logging.BuildLoggerTo(cmd.ErrOrStderr(), level)

	if a.cpuProfile != "" {
		stopCPUProfiler, err := startCPUProfiler(a.cpuProfile)
		if err != nil {
			return err
		}
		a.teardowns = append(a.teardowns, stopCPUProfiler)
	}
	if a.memProfileDir != "" {
		a.teardowns = append(a.teardowns, startMemoryProfiler(a.memProfileDir, a.logger))
	}
	return nil
}

func (a *app) teardown() error {
	var errs []error
	for _, teardown := range a.teardowns {
		errs = append(errs, teardown())
	}
	a.teardowns = nil
	return errors.Join(errs...)
}
