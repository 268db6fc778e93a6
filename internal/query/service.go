package query

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Vovarama1992/doc_voice_qa/internal/ai"
	"github.com/Vovarama1992/doc_voice_qa/internal/artifacts"
	"github.com/Vovarama1992/doc_voice_qa/internal/mirror"
	"github.com/Vovarama1992/doc_voice_qa/internal/notify"
	"github.com/Vovarama1992/doc_voice_qa/internal/speech"
)

type Service struct {
	sessions SessionManager
	store    artifacts.Store
	docs     DocConverter
	speech   *speech.Service
	answerer ai.Answerer
	mirror   mirror.Mirror // может быть nil
	notifier *notify.Service
}

func NewService(
	sessions SessionManager,
	store artifacts.Store,
	docs DocConverter,
	speechSvc *speech.Service,
	answerer ai.Answerer,
	mir mirror.Mirror,
	notifier *notify.Service,
) *Service {
	return &Service{
		sessions: sessions,
		store:    store,
		docs:     docs,
		speech:   speechSvc,
		answerer: answerer,
		mirror:   mir,
		notifier: notifier,
	}
}

// Answer гонит голосовой вопрос через весь пайплайн:
// документ → вопрос в хранилище → STT → GPT → TTS → ответ в хранилище.
// Весь обмен идёт под сессионной блокировкой, подмена документа
// не может выдернуть документ из-под идущего ответа.
func (s *Service) Answer(ctx context.Context, questionAudio []byte) (Exchange, error) {
	var ex Exchange
	start := time.Now()

	err := s.sessions.Exclusive(func() error {
		docID, docBytes, err := s.sessions.CurrentDocument()
		if err != nil {
			return err
		}
		log.Printf("[query] start doc=%s question=%d bytes", docID, len(questionAudio))

		// вопрос сохраняем до любых внешних вызовов: даже если пайплайн
		// упадёт, сырой вопрос не потеряется
		qID, err := s.store.Put(artifacts.KindQuestionAudio, questionAudio)
		if err != nil {
			return err
		}
		ex.QuestionID = qID

		question, err := s.speech.Transcribe(ctx, questionAudio)
		if err != nil {
			return s.fail(ctx, StageTranscribe, err)
		}
		log.Printf("[query] transcribed: %q", question)

		docText, err := s.docs.Convert(ctx, docBytes)
		if err != nil {
			return s.fail(ctx, StageDocument, err)
		}

		reply, err := s.answerer.Answer(ctx, question, docText)
		if err != nil {
			return s.fail(ctx, StageAnswer, err)
		}
		log.Printf("[query] answer: %q", reply.Text)

		audio, err := s.speech.Synthesize(ctx, reply.Text)
		if err != nil {
			return s.fail(ctx, StageSynthesize, err)
		}

		// ответ и его транскрипт делят токен вопроса — по нему пара ищется
		token := artifacts.Token(qID)

		aID, err := s.store.PutWithToken(artifacts.KindAnswerAudio, token, audio)
		if err != nil {
			return err
		}
		if _, err := s.store.PutWithToken(artifacts.KindTranscript, token, []byte(reply.Text)); err != nil {
			return err
		}

		ex.AnswerID = aID
		ex.Question = question
		ex.AnswerText = reply.Text
		ex.AnswerAudio = audio

		if s.mirror != nil {
			url, err := s.mirror.Put(ctx, aID, audio, "audio/mpeg")
			if err != nil {
				// зеркало не критично: ответ уже на диске
				log.Printf("[query] mirror fail: %v", err)
				_ = s.notifier.Notify(ctx, err, "mirror upload "+aID)
			} else {
				ex.AudioURL = url
			}
		}

		return nil
	})

	log.Printf("[query][%.1fs] done err=%v", time.Since(start).Seconds(), err)
	return ex, err
}

func (s *Service) fail(ctx context.Context, stage string, err error) error {
	perr := &PipelineError{Stage: stage, Err: err}
	_ = s.notifier.Notify(ctx, err, fmt.Sprintf("query pipeline stage %s", stage))
	return perr
}
