package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/okian/vizboard/internal/domain/kind"
)

const tagLengthMatch = "lengthmatch"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their wire names so messages read like the JSON document.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(pieLengths, PieSeries{})
	v.RegisterStructValidation(barLengths, BarSeries{})
	return v
}

func pieLengths(sl validator.StructLevel) {
	s := sl.Current().Interface().(PieSeries)
	if s.Labels == nil || s.Values == nil {
		return
	}
	if len(s.Labels) != len(s.Values) {
		sl.ReportError(s.Values, "values", "Values", tagLengthMatch, "labels")
	}
}

func barLengths(sl validator.StructLevel) {
	s := sl.Current().Interface().(BarSeries)
	if s.Categories == nil || s.Values == nil {
		return
	}
	if len(s.Categories) != len(s.Values) {
		sl.ReportError(s.Values, "values", "Values", tagLengthMatch, "categories")
	}
}

// Validate checks presence of every series field and that each series'
// parallel arrays have equal length. All violations are folded into a
// single Validation error.
func (d VisualizationData) Validate() error {
	const op = "model.validate"
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return kind.Wrap(op, kind.Validation, err, err.Error())
	}
	reasons := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		reasons = append(reasons, describe(fe))
	}
	return kind.New(op, kind.Validation, strings.Join(reasons, "; "))
}

// describe turns a field error into a human readable reason.
func describe(fe validator.FieldError) string {
	path := fe.Namespace()
	// Drop the root type name: "VisualizationData.piechart.values" -> "piechart.values".
	if _, rest, ok := strings.Cut(path, "."); ok {
		path = rest
	}
	section, _, _ := strings.Cut(path, ".")
	switch fe.Tag() {
	case tagLengthMatch:
		return fmt.Sprintf("Number of %s must match number of values in %s", fe.Param(), section)
	case "required":
		return path + " is required"
	default:
		return fmt.Sprintf("%s failed %s", path, fe.Tag())
	}
}
