package speech

import "context"

type STTClient interface {
	Transcribe(ctx context.Context, audio []byte) (string, error) // голос → текст
}

type TTSClient interface {
	Synthesize(ctx context.Context, text string) ([]byte, error) // текст → голос
}
