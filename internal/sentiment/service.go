package sentiment

import (
	"context"
	"log"

	"github.com/Vovarama1992/doc_voice_qa/internal/artifacts"
	"github.com/Vovarama1992/doc_voice_qa/internal/speech"
)

type Service struct {
	gate       Gate
	store      artifacts.Store
	speech     *speech.Service
	classifier Classifier
}

func NewService(gate Gate, store artifacts.Store, speechSvc *speech.Service, classifier Classifier) *Service {
	return &Service{
		gate:       gate,
		store:      store,
		speech:     speechSvc,
		classifier: classifier,
	}
}

// Analyze: аудио → хранилище → STT → классификация → транскрипт и метка
// в хранилище. Сырой блок классификатора сохраняется как транскрипт
// дословно, разобранные поля уходят только в ответ API.
func (s *Service) Analyze(ctx context.Context, audio []byte) (Result, error) {
	var res Result

	err := s.gate.Exclusive(func() error {
		audioID, err := s.store.Put(artifacts.KindQuestionAudio, audio)
		if err != nil {
			return err
		}

		transcript, err := s.speech.Transcribe(ctx, audio)
		if err != nil {
			return err
		}
		log.Printf("[sentiment] transcribed: %q", transcript)

		raw, err := s.classifier.ClassifySentiment(ctx, transcript)
		if err != nil {
			return err
		}

		text, label := Parse(raw)
		log.Printf("[sentiment] label=%s", label)

		token := artifacts.Token(audioID)

		tID, err := s.store.PutWithToken(artifacts.KindTranscript, token, []byte(raw))
		if err != nil {
			return err
		}
		sID, err := s.store.PutWithToken(artifacts.KindSentiment, token, []byte(label))
		if err != nil {
			return err
		}

		res = Result{
			TranscriptID: tID,
			SentimentID:  sID,
			Transcript:   text,
			Sentiment:    label,
			Raw:          raw,
		}
		return nil
	})

	return res, err
}
