package log

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// RequestLogger is an access log middleware writing one structured line per
// request through Logger.
func RequestLogger() func(http.Handler) http.Handler {
	return middleware.RequestLogger(&requestFormatter{Logger})
}

type requestFormatter struct {
	logger *logrus.Logger
}

func (f *requestFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	fields := Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"remote": r.RemoteAddr,
	}
	if id := middleware.GetReqID(r.Context()); id != "" {
		fields["req_id"] = id
	}
	return &requestEntry{f.logger.WithFields(fields)}
}

type requestEntry struct {
	entry *logrus.Entry
}

func (e *requestEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	entry := e.entry.WithFields(Fields{
		"status":  status,
		"bytes":   bytes,
		"elapsed": elapsed.Round(time.Microsecond).String(),
	})
	switch {
	case status >= 500:
		entry.Warn("request")
	default:
		entry.Info("request")
	}
}

func (e *requestEntry) Panic(v interface{}, stack []byte) {
	e.entry.WithFields(Fields{
		"panic": fmt.Sprintf("%+v", v),
		"stack": string(stack),
	}).Error("request.panic")
}
