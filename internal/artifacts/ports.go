package artifacts

import "errors"

// Kind определяет тип артефакта; префикс имени файла в хранилище.
type Kind string

const (
	KindDocument      Kind = "document"
	KindQuestionAudio Kind = "question"
	KindAnswerAudio   Kind = "answer"
	KindTranscript    Kind = "transcript"
	KindSentiment     Kind = "sentiment"
)

var (
	ErrNotFound = errors.New("artifact not found")
	ErrWrite    = errors.New("artifact write failed")
)

type Store interface {
	// Put сохраняет артефакт под новым токеном и возвращает его идентификатор.
	Put(kind Kind, data []byte) (string, error)
	// PutWithToken сохраняет артефакт под уже существующим токеном
	// (связка вопрос → ответ).
	PutWithToken(kind Kind, token string, data []byte) (string, error)
	Get(id string) ([]byte, error)
	// List возвращает идентификаторы от новых к старым.
	// Пустой фильтр = все виды.
	List(kinds ...Kind) ([]string, error)
	Clear(kinds ...Kind) error
	// ReplaceDocument атомарно подменяет документ сессии:
	// сначала записываем новый, потом удаляем всё остальное.
	ReplaceDocument(data []byte) (string, error)
	Dir() string
}
