package server

import (
	"net/http"

	"previewforge/internal/handler"
	"previewforge/internal/middleware"
)

func NewMux(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/convert", h.HandleConvert)
	mux.HandleFunc("/convert/watch", h.HandleWatch)
	mux.HandleFunc("/export/react-native", h.HandleExportReactNative)
	mux.HandleFunc("/conversions", h.HandleConversions)
	mux.HandleFunc("/health", h.HandleHealth)

	return middleware.CORS(mux)
}
