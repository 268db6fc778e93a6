package doc

import "context"

type Converter interface {
	ConvertToText(ctx context.Context, data []byte) (string, error)
}
