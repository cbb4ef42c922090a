package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	httpadapter "github.com/restartfu/hwprofile/internal/adapters/http"
	"github.com/restartfu/hwprofile/internal/observability"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand(rt *cliRuntime) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the detected profile and the parsers over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), rt)
		},
	}
}

func newEcho(rt *cliRuntime) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator:    uuid.NewString,
		TargetHeader: echo.HeaderXRequestID,
		RequestIDHandler: func(c echo.Context, id string) {
			c.Request().Header.Set(echo.HeaderXRequestID, id)
		},
	}))
	if rt.sentryEnabled {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic:         true,
			WaitForDelivery: false,
		}))
	}
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: `{"time":"${time_rfc3339}","request_id":"${header:X-Request-ID}","remote_ip":"${remote_ip}","method":"${method}","uri":"${uri}","status":${status},"latency":"${latency_human}","error":"${error}"}` + "\n",
	}))
	e.Use(middleware.Recover())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err != nil {
				observability.CaptureError(err, map[string]string{
					"component": "http",
					"route":     c.Path(),
				}, map[string]interface{}{
					"method": c.Request().Method,
					"uri":    c.Request().RequestURI,
				})
			}
			return err
		}
	})
	httpadapter.NewServer(rt.service(nil), rt.logger).Register(e)
	return e
}

func serve(ctx context.Context, rt *cliRuntime) error {
	server := &http.Server{
		Addr:              rt.cfg.Addr,
		Handler:           newEcho(rt),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			rt.logger.Warn("shutdown", zap.Error(err))
		}
	}()

	rt.logger.Info("hwprofile http server listening", zap.String("addr", rt.cfg.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
