package notify

import "context"

type Service struct {
	infra *Infra
}

func NewService(infra *Infra) *Service {
	return &Service{infra: infra}
}

func (s *Service) Notify(ctx context.Context, err error, details string) error {
	if s == nil || s.infra == nil {
		return nil
	}
	return s.infra.Notify(ctx, err, details)
}
