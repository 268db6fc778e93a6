package doc

import "context"

// Service прячет конвертер за собой: пайплайну без разницы,
// кто именно превращает pdf в текст.
type Service struct {
	conv Converter
}

func NewService(conv Converter) *Service {
	return &Service{conv: conv}
}

func (s *Service) Convert(ctx context.Context, data []byte) (string, error) {
	return s.conv.ConvertToText(ctx, data)
}
