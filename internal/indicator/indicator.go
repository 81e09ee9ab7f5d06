package indicator

import (
	"github.com/rxtech-lab/argo-chart/internal/types"
)

// Indicator is the configuration surface shared by every algorithm.
type Indicator interface {
	// Name returns the indicator family.
	Name() types.IndicatorType
	// Config replaces the construction parameters. Params decoded from YAML arrive as int or float64.
	Config(params ...any) error
}

// Algorithm computes an output sequence from a time-ascending quote sequence.
// Process is deterministic and returns an empty sequence when there is not enough history.
type Algorithm[T any] interface {
	Indicator
	Process(quotes []types.Quote) []T
}
