package delivery

import (
	"context"

	"github.com/Vovarama1992/doc_voice_qa/internal/artifacts"
	"github.com/Vovarama1992/doc_voice_qa/internal/query"
	"github.com/Vovarama1992/doc_voice_qa/internal/sentiment"
)

type DocumentService interface {
	SetDocument(data []byte) (string, error)
}

type QueryService interface {
	Answer(ctx context.Context, questionAudio []byte) (query.Exchange, error)
}

type SentimentService interface {
	Analyze(ctx context.Context, audio []byte) (sentiment.Result, error)
}

type ArtifactReader interface {
	Get(id string) ([]byte, error)
	List(kinds ...artifacts.Kind) ([]string, error)
}
