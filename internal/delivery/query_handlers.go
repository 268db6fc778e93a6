package delivery

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/doc_voice_qa/internal/query"
	"github.com/Vovarama1992/doc_voice_qa/internal/session"
)

const maxUploadSize = 20 << 20

type QueryHandler struct {
	documents DocumentService
	pipeline  QueryService
	log       *logger.ZapLogger
}

func NewQueryHandler(documents DocumentService, pipeline QueryService, log *logger.ZapLogger) *QueryHandler {
	return &QueryHandler{
		documents: documents,
		pipeline:  pipeline,
		log:       log,
	}
}

// readUpload достаёт файл из multipart-поля, а если формы нет —
// берёт тело запроса как есть (curl --data-binary тоже должен работать).
func readUpload(r *http.Request, field string) ([]byte, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err == nil {
		file, _, err := r.FormFile(field)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return io.ReadAll(file)
	}

	return io.ReadAll(io.LimitReader(r.Body, maxUploadSize))
}

func (h *QueryHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	data, err := readUpload(r, "document")
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "missing document", Error: err})
		http.Error(w, "missing document: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(data) == 0 {
		http.Error(w, "empty document", http.StatusBadRequest)
		return
	}

	id, err := h.documents.SetDocument(data)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "failed to save document", Error: err})
		http.Error(w, "failed to save document: "+err.Error(), http.StatusInternalServerError)
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{"document_id": id})
}

func (h *QueryHandler) UploadQuestion(w http.ResponseWriter, r *http.Request) {
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

	ex, err := h.pipeline.Answer(r.Context(), audio)
	if err != nil {
		status, msg := answerErrStatus(err)
		level := "error"
		if status == http.StatusBadRequest {
			level = "warn"
		}
		h.log.Log(logger.LogEntry{Level: level, Message: "answer failed", Error: err})
		http.Error(w, msg, status)
		return
	}

	_ = json.NewEncoder(w).Encode(ex)
}

// ошибки пайплайна отдаём как есть, без ретраев:
// нет сессии — вина клиента, упавший коллаборатор — bad gateway
func answerErrStatus(err error) (int, string) {
	if errors.Is(err, session.ErrNoActiveSession) {
		return http.StatusBadRequest, "no active document, upload one first"
	}

	var perr *query.PipelineError
	if errors.As(err, &perr) {
		return http.StatusBadGateway, "answer failed at stage " + perr.Stage + ": " + perr.Err.Error()
	}

	return http.StatusInternalServerError, "failed to answer: " + err.Error()
}
