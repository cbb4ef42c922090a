package main

import (
	"github.com/restartfu/hwprofile/internal/adapters/console"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDetectCommand(rt *cliRuntime) *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Detect the hardware profile without asking questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := rt.service(nil).Detect(cmd.Context())
			if err != nil {
				if ctxErr := cmd.Context().Err(); ctxErr != nil {
					return ctxErr
				}
				rt.logger.Warn("some hardware could not be detected", zap.Error(err))
			}
			return console.Write(cmd.OutOrStdout(), profile, rt.cfg.Format)
		},
	}
}
