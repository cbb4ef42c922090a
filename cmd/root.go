package main

import (
	"fmt"
	"io"
	"os"

	"github.com/restartfu/hwprofile/internal/adapters/console"
	"github.com/restartfu/hwprofile/internal/adapters/prompt"
	specsadapter "github.com/restartfu/hwprofile/internal/adapters/specs"
	"github.com/restartfu/hwprofile/internal/app"
	"github.com/restartfu/hwprofile/internal/config"
	"github.com/restartfu/hwprofile/internal/observability"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// cliRuntime holds what every command shares once flags are parsed.
type cliRuntime struct {
	cfg           config.Config
	logger        *zap.Logger
	sentryEnabled bool
	flushSentry   func()
}

func (rt *cliRuntime) setup(fs *pflag.FlagSet) error {
	cfg, err := config.Load(fs, os.Getenv)
	if err != nil {
		return err
	}
	logger, err := observability.NewLogger(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return err
	}
	flush, enabled, err := observability.InitSentry(observability.SentryOptions{
		DSN:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		Release:     cfg.Sentry.Release,
	})
	if err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}

	rt.cfg = cfg
	rt.logger = logger
	rt.sentryEnabled = enabled
	rt.flushSentry = flush
	return nil
}

func (rt *cliRuntime) close() {
	if rt.flushSentry != nil {
		rt.flushSentry()
	}
	if rt.logger != nil {
		_ = rt.logger.Sync()
	}
}

func (rt *cliRuntime) service(prompter *prompt.Readline) *app.Service {
	detector := specsadapter.NewReader(rt.logger, rt.cfg.DetectTimeout)
	if prompter == nil {
		return app.NewService(detector, nil, rt.logger)
	}
	return app.NewService(detector, prompter, rt.logger)
}

func newRootCommand(rt *cliRuntime) *cobra.Command {
	root := &cobra.Command{
		Use:   "hwprofile",
		Short: "Collect a hardware profile for EFI generation",
		Long: `hwprofile collects a description of this computer's hardware (CPU, GPU,
memory, storage, OEM model and network chipsets) either by detecting it or by
asking questions, and prints the resulting profile.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.setup(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, rt)
		},
	}
	config.RegisterFlags(root.PersistentFlags())
	root.AddCommand(
		newDetectCommand(rt),
		newServeCommand(rt),
		newVersionCommand(),
	)
	return root
}

func runInteractive(cmd *cobra.Command, rt *cliRuntime) error {
	prompter, err := prompt.New(io.NopCloser(cmd.InOrStdin()), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer prompter.Close()

	profile, err := rt.service(prompter).Run(cmd.Context())
	if err != nil {
		return err
	}
	return console.Write(cmd.OutOrStdout(), profile, rt.cfg.Format)
}
