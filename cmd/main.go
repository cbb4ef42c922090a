package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/restartfu/hwprofile/internal/app"
	"go.uber.org/zap"
)

var (
	Version = "dev"
	Commit  = ""
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	rt := &cliRuntime{}
	err := newRootCommand(rt).ExecuteContext(ctx)
	stop()

	code := exitCode(err)
	if code == 1 {
		if rt.logger != nil {
			rt.logger.Error("hwprofile failed", zap.Error(err))
		} else {
			fmt.Fprintf(os.Stderr, "hwprofile: %v\n", err)
		}
	}
	rt.close()
	os.Exit(code)
}

func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, app.ErrExit):
		return 0
	case errors.Is(err, app.ErrCancelled), errors.Is(err, context.Canceled):
		return 130
	default:
		return 1
	}
}
