package monitoring

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryConfig holds error reporting settings. An empty DSN disables reporting.
type SentryConfig struct {
	DSN         string
	Environment string
	Release     string
}

// InitSentry initializes the global Sentry hub; it reports whether reporting is enabled
func InitSentry(appName string, cfg SentryConfig) (bool, error) {
	if cfg.DSN == "" {
		return false, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		AttachStacktrace: true,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			if event.Tags == nil {
				event.Tags = make(map[string]string)
			}
			event.Tags["app"] = appName
			return event
		},
	}); err != nil {
		return false, fmt.Errorf("sentry init: %w", err)
	}

	return true, nil
}

func isInitialized() bool {
	hub := sentry.CurrentHub()
	return hub != nil && hub.Client() != nil
}

// CaptureError reports err with extra fields; it is a no-op when Sentry is not configured
func CaptureError(err error, fields map[string]any) {
	if err == nil || !isInitialized() {
		return
	}

	sentry.CurrentHub().WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelError)
		for k, v := range fields {
			scope.SetExtra(k, v)
		}
		sentry.CurrentHub().CaptureException(err)
	})
}

// CapturePanic reports a recovered panic value
func CapturePanic(recovered any, fields map[string]any) {
	if !isInitialized() {
		return
	}

	sentry.CurrentHub().WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelFatal)
		scope.SetTag("panic", "true")
		for k, v := range fields {
			scope.SetExtra(k, v)
		}
		if e, ok := recovered.(error); ok {
			sentry.CurrentHub().CaptureException(e)
		} else {
			sentry.CurrentHub().CaptureMessage(fmt.Sprintf("panic: %v", recovered))
		}
	})
}

// FlushSentry waits for pending events before the process exits
func FlushSentry() {
	if isInitialized() {
		sentry.Flush(2 * time.Second)
	}
}
