package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-chart/internal/types"
	"github.com/rxtech-lab/argo-chart/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type KDJTestSuite struct {
	suite.Suite
}

func TestKDJSuite(t *testing.T) {
	suite.Run(t, new(KDJTestSuite))
}

func (suite *KDJTestSuite) assertValues(expected []types.KDJValue, actual []types.KDJValue) {
	suite.Require().Len(actual, len(expected))

	for i := range expected {
		suite.InDelta(expected[i].K, actual[i].K, 1e-4)
		suite.InDelta(expected[i].D, actual[i].D, 1e-4)
		suite.InDelta(expected[i].J, actual[i].J, 1e-4)
	}
}

func (suite *KDJTestSuite) TestConfig() {
	kdj := NewKDJ()
	suite.Equal(9, kdj.period)
	suite.Equal(types.IndicatorTypeKDJ, kdj.Name())

	suite.NoError(kdj.Config(3))
	suite.Equal(3, kdj.period)

	suite.NoError(kdj.Config())
	suite.Equal(9, kdj.period)

	suite.True(errors.HasCode(kdj.Config(3, 3), errors.ErrCodeMissingParameter))
	suite.True(errors.HasCode(kdj.Config(0), errors.ErrCodeInvalidPeriod))
}

func (suite *KDJTestSuite) TestProcessRisingPrices() {
	kdj := NewKDJ()

	result := kdj.Process(quotesFromCloses(10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20))
	suite.assertValues([]types.KDJValue{
		{K: 63.33333, D: 54.44444, J: 81.11111},
		{K: 72.22222, D: 60.37037, J: 95.92593},
		{K: 78.14815, D: 66.29630, J: 101.85185},
	}, result)

	// J is unbounded.
	suite.Greater(result[2].J, 100.0)
}

func (suite *KDJTestSuite) TestProcessSwingingPrices() {
	kdj := NewKDJ()
	suite.Require().NoError(kdj.Config(3))

	result := kdj.Process(quotesFromCloses(10, 11, 12, 11, 10, 9, 10, 12, 14))
	suite.assertValues([]types.KDJValue{
		{K: 58.33333, D: 52.77778, J: 69.44444},
		{K: 50.0, D: 51.85185, J: 46.29630},
		{K: 41.66667, D: 48.45679, J: 28.08642},
		{K: 36.11111, D: 44.34156, J: 19.65021},
		{K: 46.29630, D: 44.99314, J: 48.90261},
		{K: 57.53086, D: 49.17238, J: 74.24783},
		{K: 66.13169, D: 54.82548, J: 88.74409},
	}, result)
}

func (suite *KDJTestSuite) TestFlatRangeUsesZeroRSV() {
	kdj := NewKDJ()
	suite.Require().NoError(kdj.Config(3))

	quotes := make([]types.Quote, 3)
	for i := range quotes {
		quotes[i] = types.Quote{Open: 10, High: 10, Low: 10, Close: 10}
	}

	suite.assertValues([]types.KDJValue{
		{K: 33.33333, D: 44.44444, J: 11.11111},
	}, kdj.Process(quotes))
}

func (suite *KDJTestSuite) TestProcessInsufficientData() {
	kdj := NewKDJ()
	suite.Empty(kdj.Process(quotesFromCloses(1, 2, 3, 4, 5, 6, 7, 8)))
}
