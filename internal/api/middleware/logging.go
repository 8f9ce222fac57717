package middleware

import (
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// RequestLogger логирует каждый HTTP запрос с длительностью обработки
func RequestLogger(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			log.Info("%s %s - %d (%s)", r.Method, r.URL.Path, recorder.status, time.Since(start))
		})
	}
}
