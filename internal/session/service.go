package session

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Vovarama1992/doc_voice_qa/internal/artifacts"
)

const pointerFile = "current_document"

// Service держит ровно одну глобальную сессию: текущий документ — это
// явная запись (pointer-файл рядом с артефактами), а не скан каталога.
type Service struct {
	mu    sync.Mutex
	store artifacts.Store
}

func NewService(store artifacts.Store) *Service {
	return &Service{store: store}
}

func (s *Service) pointerPath() string {
	return filepath.Join(s.store.Dir(), pointerFile)
}

// SetDocument начинает новую сессию: новый документ записывается и
// подменяется атомарно, история вопросов/ответов прошлой сессии стирается.
// Это осознанная цена: свежий документ всегда важнее старых ответов.
func (s *Service) SetDocument(data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.store.ReplaceDocument(data)
	if err != nil {
		return "", err
	}

	if err := s.setPointer(id); err != nil {
		return "", err
	}

	log.Printf("[session] new document id=%s size=%d", id, len(data))
	return id, nil
}

func (s *Service) setPointer(id string) error {
	tmp := s.pointerPath() + ".tmp"
	if err := os.WriteFile(tmp, []byte(id+"\n"), 0644); err != nil {
		return fmt.Errorf("%w: %v", artifacts.ErrWrite, err)
	}
	if err := os.Rename(tmp, s.pointerPath()); err != nil {
		return fmt.Errorf("%w: %v", artifacts.ErrWrite, err)
	}
	return nil
}

func (s *Service) CurrentDocument() (string, []byte, error) {
	raw, err := os.ReadFile(s.pointerPath())
	if os.IsNotExist(err) {
		return "", nil, ErrNoActiveSession
	}
	if err != nil {
		return "", nil, fmt.Errorf("read session pointer: %w", err)
	}

	id := strings.TrimSpace(string(raw))
	data, err := s.store.Get(id)
	if errors.Is(err, artifacts.ErrNotFound) {
		// pointer остался, файла нет — сессии фактически нет
		return "", nil, ErrNoActiveSession
	}
	if err != nil {
		return "", nil, err
	}
	return id, data, nil
}

func (s *Service) Exclusive(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}
