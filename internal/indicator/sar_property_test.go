package indicator_test

import (
	"testing"

	"github.com/rxtech-lab/argo-chart/internal/indicator"
	"github.com/rxtech-lab/argo-chart/internal/types"
	"github.com/rxtech-lab/argo-chart/mocks"
	"github.com/stretchr/testify/suite"
)

type SARPropertyTestSuite struct {
	suite.Suite
}

func TestSARPropertySuite(t *testing.T) {
	suite.Run(t, new(SARPropertyTestSuite))
}

func (suite *SARPropertyTestSuite) TestReversalFlipsTrendAndResetsStep() {
	const (
		period = 4
		minAF  = 0.02
		maxAF  = 0.2
	)

	config := mocks.DefaultConfig()
	config.Count = 500
	quotes := mocks.NewDataGenerator(42).Generate(config)

	sar := indicator.NewSAR()
	suite.Require().NoError(sar.Config(period, minAF, maxAF))

	result := sar.Process(quotes)
	suite.Require().Len(result, len(quotes)-period+1)

	// result[i] is emitted for quote index period+i-1.
	step := minAF
	reversals := 0

	for i := 1; i < len(result); i++ {
		if result[i].IsReversal {
			reversals++

			suite.NotEqual(result[i-1].IsUp, result[i].IsUp)

			step = minAF

			continue
		}

		suite.Equal(result[i-1].IsUp, result[i].IsUp)

		step = min(step+minAF, maxAF)

		if i+1 < len(result) && !result[i+1].IsReversal {
			window := quotes[i : period+i]
			ep := trailingExtreme(window, result[i].IsUp)
			suite.InDelta(result[i].SAR+step*(ep-result[i].SAR), result[i+1].SAR, 1e-9)
		}
	}

	suite.Positive(reversals)
}

func trailingExtreme(window []types.Quote, isUp bool) float64 {
	extreme := window[0].Low
	if isUp {
		extreme = window[0].High
	}

	for _, q := range window[1:] {
		if isUp {
			extreme = max(extreme, q.High)
		} else {
			extreme = min(extreme, q.Low)
		}
	}

	return extreme
}
