package sentiment

import (
	"context"
	"errors"
	"testing"

	"github.com/Vovarama1992/doc_voice_qa/internal/artifacts"
	"github.com/Vovarama1992/doc_voice_qa/internal/session"
	"github.com/Vovarama1992/doc_voice_qa/internal/speech"
)

type stubSTT struct {
	text string
	err  error
}

func (s stubSTT) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return s.text, s.err
}

type stubClassifier struct {
	raw string
	err error
}

func (s stubClassifier) ClassifySentiment(ctx context.Context, transcript string) (string, error) {
	return s.raw, s.err
}

func TestAnalyzeStoresRawAndParsed(t *testing.T) {
	store, err := artifacts.NewDirStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDirStore: %v", err)
	}

	raw := "Text: the service works great\n\nSENTIMENT ANALYSIS: Positive"
	svc := NewService(
		session.NewService(store),
		store,
		speech.NewService(stubSTT{text: "the service works great"}, nil),
		stubClassifier{raw: raw},
	)

	res, err := svc.Analyze(context.Background(), []byte("wav"))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if res.Sentiment != SentimentPositive {
		t.Fatalf("wrong label: %q", res.Sentiment)
	}
	if res.Transcript != "the service works great" {
		t.Fatalf("wrong transcript: %q", res.Transcript)
	}

	// легаси-потребители читают транскрипт дословно, как отдала модель
	stored, err := store.Get(res.TranscriptID)
	if err != nil {
		t.Fatalf("Get transcript: %v", err)
	}
	if string(stored) != raw {
		t.Fatalf("transcript must be stored verbatim, got %q", stored)
	}

	label, err := store.Get(res.SentimentID)
	if err != nil {
		t.Fatalf("Get sentiment: %v", err)
	}
	if string(label) != SentimentPositive {
		t.Fatalf("wrong stored label: %q", label)
	}

	if artifacts.Token(res.TranscriptID) != artifacts.Token(res.SentimentID) {
		t.Fatalf("transcript and sentiment must share a token")
	}
}

func TestAnalyzeClassifierFailure(t *testing.T) {
	store, _ := artifacts.NewDirStore(t.TempDir())

	svc := NewService(
		session.NewService(store),
		store,
		speech.NewService(stubSTT{text: "whatever"}, nil),
		stubClassifier{err: errors.New("model down")},
	)

	if _, err := svc.Analyze(context.Background(), []byte("wav")); err == nil {
		t.Fatal("expected error from classifier")
	}

	// само аудио уже сохранено — это не откатывается
	audio, _ := store.List(artifacts.KindQuestionAudio)
	if len(audio) != 1 {
		t.Fatalf("uploaded audio must survive, got %v", audio)
	}
}
