package handler

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"previewforge/internal/archive"
)

// HandleExportReactNative converts the posted model and streams the project
// back as a zip. When an archive store is configured the zip is also uploaded
// and the download link is surfaced via X-Archive-Url.
func (h *Handler) HandleExportReactNative(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(string(body)) == "" {
		http.Error(w, "component model is required", http.StatusBadRequest)
		return
	}

	id := modelHash(body)
	result, ok := h.cache.Get(id)
	if !ok {
		var httpErr *handlerError
		result, httpErr = h.runConversion(body)
		if httpErr != nil {
			http.Error(w, httpErr.message, httpErr.status)
			return
		}
		h.cache.Add(id, result)
	}

	zipped, err := archive.Build(result.Files, "generated-rn-app")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	archiveURL := ""
	if h.archives != nil {
		ctx := r.Context()
		if err := h.archives.Put(ctx, id, zipped); err != nil {
			log.Printf("archive upload failed for %s: %v", id, err)
		} else if u, err := h.archives.GetURL(ctx, id); err == nil {
			archiveURL = u
			w.Header().Set("X-Archive-Url", u)
		}
	}

	h.recordConversion(id, result, archiveURL)

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="generated-rn-app.zip"`)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(zipped)))
	if _, err := w.Write(zipped); err != nil {
		log.Printf("write archive response: %v", err)
	}
}
