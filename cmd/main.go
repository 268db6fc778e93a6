package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/doc_voice_qa/internal/ai"
	"github.com/Vovarama1992/doc_voice_qa/internal/artifacts"
	"github.com/Vovarama1992/doc_voice_qa/internal/delivery"
	"github.com/Vovarama1992/doc_voice_qa/internal/doc"
	"github.com/Vovarama1992/doc_voice_qa/internal/mirror"
	"github.com/Vovarama1992/doc_voice_qa/internal/notify"
	"github.com/Vovarama1992/doc_voice_qa/internal/query"
	"github.com/Vovarama1992/doc_voice_qa/internal/sentiment"
	"github.com/Vovarama1992/doc_voice_qa/internal/session"
	"github.com/Vovarama1992/doc_voice_qa/internal/speech"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / STORE INIT
	// =========================================================================

	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dir := os.Getenv("ARTIFACTS_DIR")
	if dir == "" {
		dir = "./uploads"
	}

	store, err := artifacts.NewDirStore(dir)
	if err != nil {
		log.Fatalf("failed to init artifact store: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// INFRASTRUCTURE
	// =========================================================================

	var mir mirror.Mirror
	if os.Getenv("S3_ENDPOINT") != "" {
		mir, err = mirror.NewS3Mirror()
		if err != nil {
			log.Fatalf("failed to init s3 mirror: %v", err)
		}
	}

	notifyService := notify.NewService(notify.NewInfra())
	docConverter := doc.NewHTTPConverter()

	// =========================================================================
	// CLIENTS (AI / STT / TTS)
	// =========================================================================

	openAIClient := ai.NewOpenAIClient()
	sttClient := speech.NewDeepgramClient()
	ttsClient := speech.NewElevenLabsClient()

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	sessionService := session.NewService(store)
	docService := doc.NewService(docConverter)
	aiService := ai.NewService(openAIClient)

	speechService := speech.NewService(
		sttClient, // Deepgram
		ttsClient, // ElevenLabs
	)

	queryService := query.NewService(
		sessionService,
		store,
		docService,
		speechService,
		aiService,
		mir,
		notifyService,
	)

	sentimentService := sentiment.NewService(
		sessionService,
		store,
		speechService,
		aiService,
	)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// HANDLERS
	queryHandler := delivery.NewQueryHandler(sessionService, queryService, zl)
	artifactHandler := delivery.NewArtifactHandler(store, zl)
	sentimentHandler := delivery.NewSentimentHandler(sentimentService, zl)

	// ROUTES
	delivery.RegisterRoutes(r, queryHandler, artifactHandler, sentimentHandler)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "doc_voice_qa",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
