package observability

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
)

var sentryEnabled atomic.Bool

type SentryOptions struct {
	DSN         string
	Environment string
	Release     string
}

// InitSentry configures error reporting. An empty DSN leaves it disabled.
// The returned func flushes pending events.
func InitSentry(opts SentryOptions) (func(), bool, error) {
	dsn := strings.TrimSpace(opts.DSN)
	if dsn == "" {
		sentryEnabled.Store(false)
		return func() {}, false, nil
	}

	options := sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      strings.TrimSpace(opts.Environment),
		Release:          strings.TrimSpace(opts.Release),
		AttachStacktrace: true,
	}

	if err := sentry.Init(options); err != nil {
		sentryEnabled.Store(false)
		return func() {}, false, err
	}

	sentryEnabled.Store(true)
	return func() {
		sentry.Flush(2 * time.Second)
	}, true, nil
}

// CaptureError reports err with tags such as "component" for
// grouping and extra for request or probe context such as the raw CPU brand.
// It does nothing while Sentry is disabled.
func CaptureError(err error, tags map[string]string, extra map[string]interface{}) {
	if err == nil || !sentryEnabled.Load() {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		for key, value := range tags {
			scope.SetTag(key, value)
		}
		for key, value := range extra {
			scope.SetExtra(key, value)
		}
		sentry.CaptureException(err)
	})
}

func Enabled() bool {
	return sentryEnabled.Load()
}
