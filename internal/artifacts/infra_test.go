package artifacts

import (
	"bytes"
	"errors"
	"testing"
)

func newTestStore(t *testing.T) *DirStore {
	t.Helper()
	s, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDirStore: %v", err)
	}
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := newTestStore(t)

	content := []byte{0x00, 0x01, 0xff, 0x10}
	id, err := s.Put(KindQuestionAudio, content)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("round trip mismatch: got %v want %v", got, content)
	}
}

func TestGetUnknown(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Get("question_20200101-000000-000001.wav"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Get("../../etc/passwd"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for path escape, got %v", err)
	}
	if _, err := s.Get("current_document"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for service file, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := newTestStore(t)

	id1, _ := s.Put(KindQuestionAudio, []byte("one"))
	id2, _ := s.Put(KindQuestionAudio, []byte("two"))
	id3, _ := s.Put(KindQuestionAudio, []byte("three"))

	ids, err := s.List(KindQuestionAudio)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 ids, got %d", len(ids))
	}
	if ids[0] != id3 || ids[1] != id2 || ids[2] != id1 {
		t.Fatalf("wrong order: %v", ids)
	}
}

func TestListFiltersByKind(t *testing.T) {
	s := newTestStore(t)

	s.Put(KindQuestionAudio, []byte("q"))
	docID, _ := s.Put(KindDocument, []byte("d"))

	ids, err := s.List(KindDocument)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 1 || ids[0] != docID {
		t.Fatalf("expected only %s, got %v", docID, ids)
	}
}

func TestClearByKind(t *testing.T) {
	s := newTestStore(t)

	s.Put(KindQuestionAudio, []byte("q"))
	s.Put(KindAnswerAudio, []byte("a"))
	docID, _ := s.Put(KindDocument, []byte("d"))

	if err := s.Clear(KindQuestionAudio, KindAnswerAudio); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	ids, _ := s.List()
	if len(ids) != 1 || ids[0] != docID {
		t.Fatalf("expected only document to survive, got %v", ids)
	}
}

func TestReplaceDocumentClearsEverythingElse(t *testing.T) {
	s := newTestStore(t)

	s.Put(KindDocument, []byte("old doc"))
	s.Put(KindQuestionAudio, []byte("q"))
	s.Put(KindAnswerAudio, []byte("a"))
	s.Put(KindTranscript, []byte("t"))

	newID, err := s.ReplaceDocument([]byte("new doc"))
	if err != nil {
		t.Fatalf("ReplaceDocument: %v", err)
	}

	ids, _ := s.List()
	if len(ids) != 1 || ids[0] != newID {
		t.Fatalf("expected only new document, got %v", ids)
	}

	got, err := s.Get(newID)
	if err != nil {
		t.Fatalf("Get new document: %v", err)
	}
	if string(got) != "new doc" {
		t.Fatalf("wrong document content: %q", got)
	}
}

func TestSameSecondIdentifiersStayOrdered(t *testing.T) {
	s := newTestStore(t)

	// обе записи почти наверняка попадут в одну секунду,
	// порядок должен держаться на счётчике
	id1, _ := s.Put(KindQuestionAudio, []byte("first"))
	id2, _ := s.Put(KindQuestionAudio, []byte("second"))

	if !(Token(id2) > Token(id1)) {
		t.Fatalf("tokens not ordered: %s then %s", Token(id1), Token(id2))
	}
}

func TestCounterOrderBeyondSixDigits(t *testing.T) {
	s := newTestStore(t)

	// на границе 999999 → 1000000 порядок раньше ломался бы
	// при коротком паддинге
	s.counter = 999998

	id1, _ := s.Put(KindQuestionAudio, []byte("a"))
	id2, _ := s.Put(KindQuestionAudio, []byte("b"))

	if !(Token(id2) > Token(id1)) {
		t.Fatalf("tokens not ordered past a million: %s then %s", Token(id1), Token(id2))
	}

	ids, _ := s.List(KindQuestionAudio)
	if ids[0] != id2 {
		t.Fatalf("List order broke past a million: %v", ids)
	}
}

func TestCounterSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s1, err := NewDirStore(dir)
	if err != nil {
		t.Fatalf("NewDirStore: %v", err)
	}
	id1, _ := s1.Put(KindQuestionAudio, []byte("before restart"))

	s2, err := NewDirStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	id2, _ := s2.Put(KindQuestionAudio, []byte("after restart"))

	if !(Token(id2) > Token(id1)) {
		t.Fatalf("identifier rolled back after reopen: %s then %s", Token(id1), Token(id2))
	}
}

func TestSharedTokenCorrelation(t *testing.T) {
	s := newTestStore(t)

	qID, _ := s.Put(KindQuestionAudio, []byte("question"))
	aID, err := s.PutWithToken(KindAnswerAudio, Token(qID), []byte("answer"))
	if err != nil {
		t.Fatalf("PutWithToken: %v", err)
	}

	if Token(qID) != Token(aID) {
		t.Fatalf("tokens differ: %s vs %s", Token(qID), Token(aID))
	}

	k, ok := KindOf(aID)
	if !ok || k != KindAnswerAudio {
		t.Fatalf("wrong kind for %s: %s", aID, k)
	}
}
