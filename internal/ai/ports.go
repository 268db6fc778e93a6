package ai

import "context"

// Reply — типизированный ответ генеративной модели: никакого
// выскребания полей из свободного текста на стороне пайплайна.
type Reply struct {
	Text string
}

type Answerer interface {
	// Answer отвечает на вопрос, опираясь только на переданный документ.
	Answer(ctx context.Context, question, document string) (Reply, error)
}
