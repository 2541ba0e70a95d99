// Package api declares HTTP contracts and route registration helpers.
package api

import "github.com/okian/vizboard/pkg/logger"

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithInfo sets the title and version served by GET /api/info.
func WithInfo(title, version string) Option {
	return func(s *Server) {
		s.infoHandler = NewInfoHandler(title, version)
	}
}

// WithCORSOrigins sets the allowed CORS origins. "*" allows any origin.
func WithCORSOrigins(origins []string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.corsOrigins = origins
		}
	}
}
