package delivery

import (
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func RegisterRoutes(
	r chi.Router,
	hQuery *QueryHandler,
	hArtifact *ArtifactHandler,
	hSentiment *SentimentHandler,
) {
	// лимит только на дорогие маршруты: каждый тянет внешние сервисы
	pipelineLimit := httprate.LimitByIP(30, time.Minute)

	r.Route("/", func(pr chi.Router) {
		pr.Use(httputil.RecoverMiddleware)

		// --- сессия и вопросы ---
		pr.Post("/document", hQuery.UploadDocument)
		pr.With(pipelineLimit).Post("/question", hQuery.UploadQuestion)

		// --- сентимент (отдельная ветка, сессия не нужна) ---
		pr.With(pipelineLimit).Post("/sentiment", hSentiment.UploadAudio)

		// --- артефакты ---
		pr.Get("/artifacts", hArtifact.List)
		pr.Get("/artifacts/{identifier}", hArtifact.Get)
	})
}
