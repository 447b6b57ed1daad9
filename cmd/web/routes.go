package main

import (
	"net/http"
)

func (app *application) routes() (*http.ServeMux, error) {
	mux := http.NewServeMux()

	var (
		shared = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(
				commonContext(app.timeout(next)))))
		}
		noSession = func(next http.Handler) http.Handler {
			return app.recoverPanic(shared(next))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(shared(next))))
		}
	)

	mux.Handle("GET /intake/{step}", session(http.HandlerFunc(app.intakeGET)))
	mux.Handle("POST /intake/{step}", session(http.HandlerFunc(app.intakePOST)))

	mux.Handle("GET /plan", session(http.HandlerFunc(app.planGET)))
	mux.Handle("GET /plan/download", session(http.HandlerFunc(app.planDownloadGET)))
	mux.Handle("POST /plan/regenerate", session(http.HandlerFunc(app.planRegeneratePOST)))

	mux.Handle("GET /api/healthy", session(http.HandlerFunc(app.healthy)))
	mux.Handle("GET /api/test/timeout", noSession(http.HandlerFunc(app.testTimeout)))

	// Home route (most specific)
	mux.Handle("GET /{$}", session(http.HandlerFunc(app.home)))

	mux.Handle("/", session(http.HandlerFunc(app.notFound)))

	return mux, nil
}
