package httpapi

import "net/http"

// NewRouter registers HTTP routes and returns the handler with middleware.
func NewRouter(app *App) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ask", app.askHandler)
	mux.HandleFunc("/products", app.productsHandler)
	mux.HandleFunc("/promotion", app.promotionHandler)
	mux.HandleFunc("/voice/toggle", app.toggleVoiceHandler)
	mux.HandleFunc("/healthz", app.healthHandler)
	return WithRequestID(WithLogging(mux))
}
