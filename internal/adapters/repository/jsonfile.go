// Package repository holds the data sources behind the visualization API.
package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"
	"unicode/utf8"

	"github.com/okian/vizboard/internal/domain/kind"
	"github.com/okian/vizboard/internal/domain/model"
	"github.com/okian/vizboard/internal/domain/ports"
	"github.com/okian/vizboard/pkg/logger"
	"github.com/okian/vizboard/pkg/metrics"
)

var _ ports.VisualizationRepository = (*JSONFileRepository)(nil)

// JSONFileRepository serves VisualizationData from a JSON file. The file is
// read and validated on every call; nothing is cached, so edits to the file
// are visible on the next request. Safe for concurrent use.
type JSONFileRepository struct {
	path   string
	logger logger.Logger
}

// NewJSONFileRepository creates a repository bound to path.
func NewJSONFileRepository(path string, opts ...Option) *JSONFileRepository {
	r := &JSONFileRepository{
		path:   path,
		logger: logger.OrNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Path returns the file the repository reads.
func (r *JSONFileRepository) Path() string { return r.path }

// GetData reads, parses and validates the data file.
//
// Errors are classified: a missing file is kind.NotFound, malformed JSON or
// a document that breaks the model's rules is kind.Validation, anything
// else (permissions, I/O, cancellation) is kind.Unexpected.
func (r *JSONFileRepository) GetData(ctx context.Context) (model.VisualizationData, error) {
	start := time.Now()
	d, err := r.load(ctx)
	metrics.RecordDataLoad(float64(time.Since(start).Microseconds()) / 1000)
	if err != nil {
		k := kind.Of(err)
		metrics.RecordDataLoadError(k.String())
		r.logger.Warn(ctx, "data load failed",
			logger.String("path", r.path),
			logger.String("kind", k.String()),
			logger.Error(err))
		return model.VisualizationData{}, err
	}
	r.logger.Debug(ctx, "data loaded",
		logger.String("path", r.path),
		logger.Int("pie_points", len(d.PieChart.Values)),
		logger.Int("bar_points", len(d.BarPlot.Values)))
	return d, nil
}

func (r *JSONFileRepository) load(ctx context.Context) (model.VisualizationData, error) {
	const op = "repository.get_data"
	if err := ctx.Err(); err != nil {
		return model.VisualizationData{}, kind.Wrap(op, kind.Unexpected, err, msgCancelled)
	}

	content, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || isDir(r.path) {
			return model.VisualizationData{}, kind.Wrap(op, kind.NotFound, err, fmt.Sprintf(msgNotFound, r.path))
		}
		return model.VisualizationData{}, kind.Wrap(op, kind.Unexpected, err, msgReadFailed)
	}

	// encoding/json would replace invalid bytes with U+FFFD and serve altered labels.
	if !utf8.Valid(content) {
		return model.VisualizationData{}, kind.New(op, kind.Validation, msgInvalidJSON)
	}

	raw, err := decodeDocument(content)
	if err != nil {
		return model.VisualizationData{}, kind.Wrap(op, kind.Validation, err, msgInvalidJSON)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return model.VisualizationData{}, kind.New(op, kind.Validation, fmt.Sprintf(msgValidation, msgNotAnObject))
	}

	d, err := model.FromMap(obj)
	if err != nil {
		return model.VisualizationData{}, kind.Wrap(op, kind.Validation, err, fmt.Sprintf(msgValidation, kind.Message(err)))
	}
	return d, nil
}

// decodeDocument parses exactly one JSON value. Numbers are kept as
// json.Number so large integers survive intact.
func decodeDocument(content []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON document")
	}
	return raw, nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
