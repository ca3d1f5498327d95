package launcher

import (
	"io"
	"time"

	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
)

// newReporter returns the logger fatal launcher errors go through. With a
// DSN the errors are also shipped to Sentry; a DSN Sentry refuses only
// disables shipping.
func newReporter(dsn string, w io.Writer) *logrus.Logger {
	reporter := logrus.New()
	reporter.Out = w
	if dsn == "" {
		return reporter
	}

	hook, err := logrus_sentry.NewSentryHook(dsn, []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	})
	if err != nil {
		reporter.WithError(err).Warn("Sentry reporting disabled")
		return reporter
	}
	hook.Timeout = 5 * time.Second
	hook.StacktraceConfiguration.Enable = true
	reporter.AddHook(hook)
	return reporter
}
