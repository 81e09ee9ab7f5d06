package series

import "github.com/rxtech-lab/argo-chart/internal/types"

// Projection maps one series element to the span it occupies on a value axis.
type Projection[T any] func(T) types.ExtremePoint

// Extremer is implemented by multi-field indicator outputs.
type Extremer interface {
	ExtremePoint() types.ExtremePoint
}

// Scalar projects a single real number onto itself.
func Scalar(v float64) types.ExtremePoint {
	return types.ExtremePoint{Min: v, Max: v}
}

// ByExtremeValue projects a multi-field element through its own ExtremePoint method.
func ByExtremeValue[T Extremer](v T) types.ExtremePoint {
	return v.ExtremePoint()
}
