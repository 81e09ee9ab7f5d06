package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-chart/pkg/errors"
)

func checkParamCount(params []any, minCount, maxCount int, usage string) error {
	if len(params) < minCount || len(params) > maxCount {
		return errors.New(errors.ErrCodeMissingParameter, usage)
	}

	return nil
}

// periodParam accepts int, int64 and integral float64 values.
func periodParam(param any, name string) (int, error) {
	var period int

	switch p := param.(type) {
	case int:
		period = p
	case int64:
		period = int(p)
	case float64:
		if p != math.Trunc(p) {
			return 0, errors.Newf(errors.ErrCodeInvalidType, "invalid type for %s parameter, expected an integer, got %v", name, p)
		}

		period = int(p)
	default:
		return 0, errors.Newf(errors.ErrCodeInvalidType, "invalid type for %s parameter, expected int", name)
	}

	if period <= 0 {
		return 0, errors.Newf(errors.ErrCodeInvalidPeriod, "%s must be a positive integer, got %d", name, period)
	}

	return period, nil
}

func floatParam(param any, name string) (float64, error) {
	var value float64

	switch p := param.(type) {
	case float64:
		value = p
	case int:
		value = float64(p)
	case int64:
		value = float64(p)
	default:
		return 0, errors.Newf(errors.ErrCodeInvalidType, "invalid type for %s parameter, expected float64", name)
	}

	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errors.Newf(errors.ErrCodeInvalidMultiplier, "%s must be a positive number, got %f", name, value)
	}

	return value, nil
}
