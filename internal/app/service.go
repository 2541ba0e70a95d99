// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"

	"github.com/okian/vizboard/internal/domain/model"
	"github.com/okian/vizboard/internal/domain/ports"
	"github.com/okian/vizboard/pkg/logger"
)

var _ ports.VisualizationService = (*Service)(nil)

// Service sits between the HTTP layer and a VisualizationRepository. It is
// the place to combine sources or add caching without touching handlers.
type Service struct {
	repo   ports.VisualizationRepository
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service over repo. It panics when repo is nil.
func New(repo ports.VisualizationRepository, opts ...Option) *Service {
	if repo == nil {
		panic("service: nil repository")
	}
	s := &Service{
		repo:   repo,
		logger: logger.OrNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetVisualizationData returns the repository's data. Errors are returned
// unchanged so their kind reaches the HTTP layer intact.
func (s *Service) GetVisualizationData(ctx context.Context) (model.VisualizationData, error) {
	s.logger.Debug(ctx, "fetching visualization data")
	return s.repo.GetData(ctx)
}
