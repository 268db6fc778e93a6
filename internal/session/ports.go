package session

import "errors"

// ErrNoActiveSession — документ ещё не загружали (или его уже затёрли).
var ErrNoActiveSession = errors.New("no active document")

type Manager interface {
	SetDocument(data []byte) (string, error)
	CurrentDocument() (id string, data []byte, err error)
	// Exclusive выполняет fn под сессионной блокировкой: подмена документа
	// не может вклиниться в идущий обмен.
	Exclusive(fn func() error) error
}
