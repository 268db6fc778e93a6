package sentiment

import "context"

// Result — разобранный ответ классификатора. Raw хранится отдельно:
// его в исходном виде читают старые потребители транскриптов.
type Result struct {
	TranscriptID string `json:"transcript_id"`
	SentimentID  string `json:"sentiment_id"`
	Transcript   string `json:"transcript"`
	Sentiment    string `json:"sentiment"`
	Raw          string `json:"-"`
}

type Classifier interface {
	ClassifySentiment(ctx context.Context, transcript string) (string, error)
}

// Gate — сессионная блокировка: добавление артефактов не должно
// пересекаться с подменой документа.
type Gate interface {
	Exclusive(fn func() error) error
}
