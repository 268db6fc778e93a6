package query

import (
	"context"
	"fmt"
)

// Exchange — один обмен: голосовой вопрос и сгенерированный ответ.
type Exchange struct {
	QuestionID  string `json:"question_id"`
	AnswerID    string `json:"answer_id"`
	Question    string `json:"question"`
	AnswerText  string `json:"answer"`
	AnswerAudio []byte `json:"-"`
	AudioURL    string `json:"audio_url,omitempty"`
}

// стадии пайплайна, на которых ходим во внешние сервисы
const (
	StageTranscribe = "transcribe"
	StageDocument   = "document"
	StageAnswer     = "answer"
	StageSynthesize = "synthesize"
)

// PipelineError — упавшая стадия пайплайна. Вопрос к этому моменту
// уже лежит в хранилище и не откатывается.
type PipelineError struct {
	Stage string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("pipeline stage %s: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// узкие порты: пайплайну не нужны сервисы целиком

type SessionManager interface {
	CurrentDocument() (string, []byte, error)
	Exclusive(fn func() error) error
}

type DocConverter interface {
	Convert(ctx context.Context, data []byte) (string, error)
}
