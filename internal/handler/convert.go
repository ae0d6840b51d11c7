// Package handler exposes the conversion service over plain HTTP JSON
// endpoints.
package handler

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"previewforge/internal/archive"
	"previewforge/internal/convert"
	"previewforge/internal/model"
	"previewforge/internal/store"
)

// maxBodyBytes caps the accepted component-model payload.
const maxBodyBytes = 4 << 20

type Handler struct {
	records  *store.Store
	archives *archive.S3Store
	cache    *lru.Cache[string, *convert.Result]
}

func New(records *store.Store, archives *archive.S3Store, cacheSize int) (*Handler, error) {
	if cacheSize <= 0 {
		cacheSize = 128
	}
	cache, err := lru.New[string, *convert.Result](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("init result cache: %w", err)
	}
	return &Handler{
		records:  records,
		archives: archives,
		cache:    cache,
	}, nil
}

type convertResponse struct {
	ID             string           `json:"id"`
	Cached         bool             `json:"cached"`
	Files          *convert.FileMap `json:"files"`
	UsedComponents []string         `json:"used_components"`
	UsedIcons      []string         `json:"used_icons"`
	Warnings       []string         `json:"warnings"`
	Errors         []string         `json:"errors"`
	FileCount      int              `json:"file_count"`
	TotalBytes     int              `json:"total_bytes"`
}

// HandleConvert runs one conversion. Identical payloads hit the result cache
// instead of re-running the compiler.
func (h *Handler) HandleConvert(w http.ResponseWriter, r *http.Request) {
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
	if cached, ok := h.cache.Get(id); ok {
		writeConvertResponse(w, id, true, cached)
		return
	}

	result, httpErr := h.runConversion(body)
	if httpErr != nil {
		http.Error(w, httpErr.message, httpErr.status)
		return
	}

	h.cache.Add(id, result)
	h.recordConversion(id, result, "")
	writeConvertResponse(w, id, false, result)
}

// HandleConversions lists recent conversion records, newest first.
func (h *Handler) HandleConversions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	limit := 50
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	records := h.records.List(limit)
	if records == nil {
		records = []store.Record{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"conversions": records,
	})
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
	})
}

type handlerError struct {
	status  int
	message string
}

func (h *Handler) runConversion(body []byte) (*convert.Result, *handlerError) {
	m, err := model.Decode(body)
	if err != nil {
		return nil, &handlerError{http.StatusBadRequest, err.Error()}
	}
	conv, err := convert.New(m)
	if err != nil {
		return nil, &handlerError{http.StatusBadRequest, err.Error()}
	}
	return conv.Convert(), nil
}

func (h *Handler) recordConversion(id string, result *convert.Result, archiveURL string) {
	h.records.Put(store.Record{
		ID:           id,
		CreatedAt:    time.Now().UTC(),
		ScreenCount:  screenCount(result),
		FileCount:    result.FileCount(),
		TotalBytes:   result.TotalBytes(),
		WarningCount: result.WarningCount(),
		ErrorCount:   result.ErrorCount(),
		ArchiveURL:   archiveURL,
	})
}

func screenCount(result *convert.Result) int {
	n := 0
	for _, path := range result.Files.Paths() {
		if strings.HasPrefix(path, "src/screens/") {
			n++
		}
	}
	return n
}

func writeConvertResponse(w http.ResponseWriter, id string, cached bool, result *convert.Result) {
	w.Header().Set("Content-Type", "application/json")
	resp := convertResponse{
		ID:             id,
		Cached:         cached,
		Files:          result.Files,
		UsedComponents: result.UsedComponents,
		UsedIcons:      result.UsedIcons,
		Warnings:       result.Warnings,
		Errors:         result.Errors,
		FileCount:      result.FileCount(),
		TotalBytes:     result.TotalBytes(),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("encode convert response: %v", err)
	}
}

func modelHash(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
