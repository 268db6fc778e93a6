package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var kindExt = map[Kind]string{
	KindDocument:      ".pdf",
	KindQuestionAudio: ".wav",
	KindAnswerAudio:   ".mp3",
	KindTranscript:    ".txt",
	KindSentiment:     ".txt",
}

// DirStore — файловое хранилище: один каталог, все виды артефактов.
// Каталог и есть индекс, никакого кэша поверх него.
type DirStore struct {
	mu      sync.Mutex
	dir     string
	counter uint64
}

func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	s := &DirStore{dir: dir}

	// восстанавливаем счётчик по максимуму в каталоге,
	// чтобы после рестарта идентификаторы не откатывались
	ids, err := s.list(nil)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if n, ok := counterOf(Token(id)); ok && n > s.counter {
			s.counter = n
		}
	}

	return s, nil
}

func (s *DirStore) Dir() string {
	return s.dir
}

// Token извлекает временной токен из идентификатора артефакта.
// Ответ и вопрос одного обмена делят один токен.
func Token(id string) string {
	name := strings.TrimSuffix(id, filepath.Ext(id))
	if i := strings.Index(name, "_"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// KindOf возвращает вид артефакта по идентификатору.
func KindOf(id string) (Kind, bool) {
	i := strings.Index(id, "_")
	if i < 0 {
		return "", false
	}
	k := Kind(id[:i])
	switch k {
	case KindDocument, KindQuestionAudio, KindAnswerAudio, KindTranscript, KindSentiment:
		return k, true
	}
	return "", false
}

func counterOf(token string) (uint64, bool) {
	i := strings.LastIndex(token, "-")
	if i < 0 {
		return 0, false
	}
	n, err := strconv.ParseUint(token[i+1:], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// nextToken: UTC-время + монотонный счётчик.
// Две загрузки в одну секунду всё равно упорядочены.
// Паддинг на 9 знаков: лексикографический порядок держится
// до миллиарда артефактов в каталоге.
func (s *DirStore) nextToken() string {
	s.counter++
	return fmt.Sprintf("%s-%09d", time.Now().UTC().Format("20060102-150405"), s.counter)
}

func fileName(kind Kind, token string) string {
	return string(kind) + "_" + token + kindExt[kind]
}

func (s *DirStore) Put(kind Kind, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(kind, s.nextToken(), data)
}

func (s *DirStore) PutWithToken(kind Kind, token string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(kind, token, data)
}

func (s *DirStore) write(kind Kind, token string, data []byte) (string, error) {
	id := fileName(kind, token)
	if err := os.WriteFile(filepath.Join(s.dir, id), data, 0644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return id, nil
}

func (s *DirStore) Get(id string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// идентификатор — всегда голое имя файла
	if id == "" || filepath.Base(id) != id {
		return nil, ErrNotFound
	}
	if _, ok := KindOf(id); !ok {
		return nil, ErrNotFound
	}

	data, err := os.ReadFile(filepath.Join(s.dir, id))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	return data, nil
}

func (s *DirStore) List(kinds ...Kind) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list(kinds)
}

func (s *DirStore) list(kinds []Kind) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read store dir: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		k, ok := KindOf(e.Name())
		if !ok {
			continue // current_document и прочие служебные файлы
		}
		if len(kinds) > 0 && !matchKind(k, kinds) {
			continue
		}
		ids = append(ids, e.Name())
	}

	// свежие сверху: токен начинается с времени, хвост — счётчик
	sort.Slice(ids, func(i, j int) bool {
		ti, tj := Token(ids[i]), Token(ids[j])
		if ti != tj {
			return ti > tj
		}
		return ids[i] < ids[j]
	})

	return ids, nil
}

func matchKind(k Kind, kinds []Kind) bool {
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

func (s *DirStore) Clear(kinds ...Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clear(kinds, "")
}

func (s *DirStore) clear(kinds []Kind, keep string) error {
	ids, err := s.list(kinds)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == keep {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, id)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove artifact %s: %w", id, err)
		}
	}
	return nil
}

// ReplaceDocument: сначала полностью записываем новый документ во временный
// файл и переименовываем, и только потом чистим старую сессию. Если запись
// упала — старый документ остаётся нетронутым.
func (s *DirStore) ReplaceDocument(data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fileName(KindDocument, s.nextToken())

	staging := filepath.Join(s.dir, ".staging-"+uuid.NewString())
	if err := os.WriteFile(staging, data, 0644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := os.Rename(staging, filepath.Join(s.dir, id)); err != nil {
		_ = os.Remove(staging)
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}

	if err := s.clear(nil, id); err != nil {
		return "", err
	}

	return id, nil
}
