package mirror

import "context"

// Mirror — публикация ответов в S3-совместимое хранилище,
// чтобы клиент мог забрать аудио по прямой ссылке с CDN.
type Mirror interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (publicURL string, err error)
}
