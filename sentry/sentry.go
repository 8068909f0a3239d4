package sentry

import (
	"fmt"
	"github.com/getsentry/sentry-go"
	"github.com/soffa-io/salesforce-gateway/counters"
	"github.com/soffa-io/salesforce-gateway/h"
	"github.com/soffa-io/salesforce-gateway/log"
	"time"
)

var sentryEnabled bool
var Exceptions = counters.NewCounter("x_app_exceptions", "Will track all exceptions", true)

func Init(dsn string, application string, version string) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: "prod",
		Release:     fmt.Sprintf("%s@%s", application, version),
		Debug:       false,
	})
	log.FatalIf(err)
	defer sentry.Flush(2 * time.Second)
	sentryEnabled = true
	log.Info("Sentry is enabled.")
}

func CaptureException(err error) {
	if err == nil {
		return
	}
	Exceptions.Inc()
	if sentryEnabled {
		sentry.CaptureException(err)
	}
}

func CaptureMessage(msg string, args ...interface{}) {
	if h.IsStrEmpty(msg) {
		return
	}
	if sentryEnabled {
		sentry.CaptureMessage(fmt.Sprintf(msg, args...))
	}
}

// Capture logs the error under the given operation tag and forwards it to sentry.
func Capture(operation string, err error) error {
	if err == nil {
		return nil
	}
	log.Errorf("%s -- %v", operation, err)
	CaptureException(err)
	return err
}
