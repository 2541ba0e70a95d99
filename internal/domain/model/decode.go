package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/okian/vizboard/internal/domain/kind"
)

// FromMap builds VisualizationData from an untyped JSON document, as
// produced by decoding into map[string]any. Shape problems and series
// length mismatches are reported as one Validation error.
func FromMap(raw map[string]any) (VisualizationData, error) {
	const op = "model.from_map"
	var w walker

	var d VisualizationData
	if pie, ok := w.object(raw, "piechart"); ok {
		d.PieChart.Labels = w.stringList(pie, "piechart", "labels")
		d.PieChart.Values = w.intList(pie, "piechart", "values")
	}
	if bar, ok := w.object(raw, "barplot"); ok {
		d.BarPlot.Categories = w.stringList(bar, "barplot", "categories")
		d.BarPlot.Values = w.intList(bar, "barplot", "values")
	}
	if len(w.problems) > 0 {
		return VisualizationData{}, kind.New(op, kind.Validation, strings.Join(w.problems, "; "))
	}
	if err := d.Validate(); err != nil {
		return VisualizationData{}, err
	}
	return d, nil
}

// walker collects every shape problem instead of stopping at the first.
type walker struct {
	problems []string
}

func (w *walker) addf(format string, args ...any) {
	w.problems = append(w.problems, fmt.Sprintf(format, args...))
}

func (w *walker) object(raw map[string]any, key string) (map[string]any, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		w.addf("%s is required", key)
		return nil, false
	}
	obj, ok := v.(map[string]any)
	if !ok {
		w.addf("%s must be an object", key)
		return nil, false
	}
	return obj, true
}

func (w *walker) array(obj map[string]any, section, key string) ([]any, bool) {
	v, ok := obj[key]
	if !ok || v == nil {
		w.addf("%s.%s is required", section, key)
		return nil, false
	}
	arr, ok := v.([]any)
	if !ok {
		w.addf("%s.%s must be an array", section, key)
		return nil, false
	}
	return arr, true
}

func (w *walker) stringList(obj map[string]any, section, key string) []string {
	arr, ok := w.array(obj, section, key)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for i, v := range arr {
		s, ok := v.(string)
		if !ok {
			w.addf("%s.%s[%d] must be a string", section, key, i)
			continue
		}
		out = append(out, s)
	}
	return out
}

func (w *walker) intList(obj map[string]any, section, key string) []int {
	arr, ok := w.array(obj, section, key)
	if !ok {
		return nil
	}
	out := make([]int, 0, len(arr))
	for i, v := range arr {
		n, ok := toInt(v)
		if !ok {
			w.addf("%s.%s[%d] must be an integer", section, key, i)
			continue
		}
		out = append(out, n)
	}
	return out
}

// toInt accepts whole numbers in any of the forms encoding/json yields.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case float64:
		return floatToInt(n)
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int(f), true
}
