package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"

	"github.com/Vovarama1992/doc_voice_qa/internal/artifacts"
)

type ArtifactHandler struct {
	store ArtifactReader
	log   *logger.ZapLogger
}

func NewArtifactHandler(store ArtifactReader, log *logger.ZapLogger) *ArtifactHandler {
	return &ArtifactHandler{
		store: store,
		log:   log,
	}
}

var contentTypes = map[string]string{
	".pdf": "application/pdf",
	".wav": "audio/wav",
	".mp3": "audio/mpeg",
	".txt": "text/plain; charset=utf-8",
}

func (h *ArtifactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "identifier")

	data, err := h.store.Get(id)
	if errors.Is(err, artifacts.ErrNotFound) {
		http.Error(w, "artifact not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "failed to read artifact", Error: err})
		http.Error(w, "failed to read artifact: "+err.Error(), http.StatusInternalServerError)
		return
	}

	ct := contentTypes[filepath.Ext(id)]
	if ct == "" {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	_, _ = w.Write(data)
}

func (h *ArtifactHandler) List(w http.ResponseWriter, r *http.Request) {
	var kinds []artifacts.Kind
	if k := r.URL.Query().Get("kind"); k != "" {
		kinds = append(kinds, artifacts.Kind(k))
	}

	ids, err := h.store.List(kinds...)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "failed to list artifacts", Error: err})
		http.Error(w, "failed to list artifacts: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	_ = json.NewEncoder(w).Encode(map[string]any{"artifacts": ids})
}
