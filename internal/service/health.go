package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/peoplelens/attritiond/internal/core/employee"
)

var ErrDatasetNotLoaded = errors.New("dataset not loaded")

type Health struct {
	Loader *employee.Loader
}

func NewHealth(loader *employee.Loader) *Health {
	return &Health{
		Loader: loader,
	}
}

func (s *Health) Ping(ctx context.Context) error {
	if s.Loader.Loaded() {
		return nil
	}
	if _, err := s.Loader.Load(ctx); err != nil {
		return errors.Wrap(ErrDatasetNotLoaded, err.Error())
	}
	return nil
}
