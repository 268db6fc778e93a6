package sentiment

import "strings"

const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
	SentimentUnknown  = "Unknown"
)

// Parse разбирает легаси-блок
//
//	Text: ...
//	SENTIMENT ANALYSIS: Positive | Neutral | Negative
//
// на текст и метку. Кривой блок — не ошибка: возвращаем сырой текст
// целиком и метку Unknown.
func Parse(raw string) (transcript, label string) {
	transcript = strings.TrimSpace(raw)
	label = SentimentUnknown

	const marker = "SENTIMENT ANALYSIS:"
	i := strings.Index(raw, marker)
	if i < 0 {
		return transcript, label
	}

	head := raw[:i]
	tail := strings.TrimSpace(raw[i+len(marker):])

	head = strings.TrimSpace(head)
	head = strings.TrimPrefix(head, "Text:")
	transcript = strings.TrimSpace(head)

	switch {
	case strings.HasPrefix(tail, SentimentPositive):
		label = SentimentPositive
	case strings.HasPrefix(tail, SentimentNeutral):
		label = SentimentNeutral
	case strings.HasPrefix(tail, SentimentNegative):
		label = SentimentNegative
	}

	if transcript == "" {
		transcript = strings.TrimSpace(raw)
	}

	return transcript, label
}
