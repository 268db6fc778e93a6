package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
)

type SentimentHandler struct {
	sentiments SentimentService
	log        *logger.ZapLogger
}

func NewSentimentHandler(sentiments SentimentService, log *logger.ZapLogger) *SentimentHandler {
	return &SentimentHandler{
		sentiments: sentiments,
		log:        log,
	}
}

func (h *SentimentHandler) UploadAudio(w http.ResponseWriter, r *http.Request) {
	audio, err := readUpload(r, "audio_data")
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "missing audio_data", Error: err})
		http.Error(w, "missing audio_data: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(audio) == 0 {
		http.Error(w, "empty audio", http.StatusBadRequest)
		return
	}

	res, err := h.sentiments.Analyze(r.Context(), audio)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "sentiment analysis failed", Error: err})
		http.Error(w, "sentiment analysis failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	_ = json.NewEncoder(w).Encode(res)
}
