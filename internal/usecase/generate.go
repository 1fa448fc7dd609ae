package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
)

type GenerateRegistry struct {
	convert *ConvertSource
	log     *zap.Logger
}

func NewGenerateRegistry(convert *ConvertSource, log *zap.Logger) *GenerateRegistry {
	if log == nil {
		log = zap.NewNop()
	}
	return &GenerateRegistry{convert: convert, log: log}
}

// Execute converts the source and keeps the entries that carry a numeric code.
// Header rows and unassigned ranges (e.g. "104-199") are dropped.
func (uc *GenerateRegistry) Execute(ctx context.Context, path string) (domain.Registry, error) {
	entries, err := uc.convert.Execute(ctx, path)
	if err != nil {
		return nil, err
	}

	reg := make(domain.Registry, 0, len(entries))
	for _, e := range entries {
		s, err := e.Status()
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				uc.log.Debug("generate.entry.skipped", zap.String("code", e.Code))
				continue
			}
			return nil, err
		}
		reg = append(reg, s)
	}
	return reg, nil
}
