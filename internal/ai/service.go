package ai

import (
	"context"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

type Service struct {
	openaiClient *OpenAIClient
}

func NewService(client *OpenAIClient) *Service {
	return &Service{openaiClient: client}
}

// диагностика ошибок GPT
func analyzeOpenAIError(err error) string {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "status code: 401"):
		return "bad OpenAI api key"
	case strings.Contains(msg, "status code: 404"):
		return "model not found"
	case strings.Contains(msg, "status code: 429"):
		return "OpenAI rate limit"
	case strings.Contains(msg, "status code: 400"):
		return "bad request to OpenAI"
	case strings.Contains(msg, "status code: 500"):
		return "OpenAI internal error"
	}
	return "unknown OpenAI error"
}

// фиксированный координационный промпт: ответ строго по документу
const groundingPrompt = `You are answering spoken questions about one reference document.
Answer using ONLY the provided document. If the document does not contain
the answer, say that the document does not cover it. Do not invent facts.
The answer will be read aloud: keep it short, plain prose, no markdown,
no lists, at most a few sentences.`

func (s *Service) Answer(ctx context.Context, question, document string) (Reply, error) {
	start := time.Now()

	messages := []openai.ChatCompletionMessage{
		{Role: "system", Content: groundingPrompt},
		{Role: "system", Content: "Reference document:\n\n" + document},
		{Role: "user", Content: question},
	}

	ctxGPT, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	text, err := s.openaiClient.GetCompletion(ctxGPT, messages)
	log.Printf("[ai][%.1fs] answer done err=%v", time.Since(start).Seconds(), err)

	if err != nil {
		log.Printf("[ai] %s: %v", analyzeOpenAIError(err), err)
		return Reply{}, err
	}

	return Reply{Text: strings.TrimSpace(text)}, nil
}

// шаблон ответа фиксированный: его в сыром виде читают старые
// потребители транскриптов, менять без согласования нельзя
const sentimentPrompt = `Please provide the exact transcript text given below, followed by sentiment analysis.

Your response should follow the format:

Text: USERS SPEECH TRANSCRIPTION

SENTIMENT ANALYSIS: Positive | Neutral | Negative`

// ClassifySentiment возвращает сырой блок "Text: ... / SENTIMENT ANALYSIS: ..."
// как его отдаёт модель. Разбор на типизированные поля — забота вызывающего.
func (s *Service) ClassifySentiment(ctx context.Context, transcript string) (string, error) {
	start := time.Now()

	messages := []openai.ChatCompletionMessage{
		{Role: "system", Content: sentimentPrompt},
		{Role: "user", Content: transcript},
	}

	ctxGPT, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	text, err := s.openaiClient.GetCompletion(ctxGPT, messages)
	log.Printf("[ai][%.1fs] sentiment done err=%v", time.Since(start).Seconds(), err)

	if err != nil {
		log.Printf("[ai] %s: %v", analyzeOpenAIError(err), err)
		return "", err
	}

	return strings.TrimSpace(text), nil
}
