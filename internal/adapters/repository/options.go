// Package repository holds the data sources behind the visualization API.
package repository

import "github.com/okian/vizboard/pkg/logger"

// Option applies a configuration option to the JSONFileRepository.
type Option func(*JSONFileRepository)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(r *JSONFileRepository) {
		if l != nil {
			r.logger = l
		}
	}
}
