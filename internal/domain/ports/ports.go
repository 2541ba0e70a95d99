// Package ports declares the contracts between the HTTP layer, the service
// and the data source. Any data source (file, memory, network) that
// satisfies VisualizationRepository can back the API.
package ports

//go:generate mockgen -destination=mocks/ports_mock.go -package=mocks github.com/okian/vizboard/internal/domain/ports VisualizationRepository,VisualizationService

import (
	"context"

	"github.com/okian/vizboard/internal/domain/model"
)

// VisualizationRepository loads chart data from a backing store.
// Failures are classified with the kind package.
type VisualizationRepository interface {
	GetData(ctx context.Context) (model.VisualizationData, error)
}

// VisualizationService is what the HTTP layer depends on.
type VisualizationService interface {
	GetVisualizationData(ctx context.Context) (model.VisualizationData, error)
}
