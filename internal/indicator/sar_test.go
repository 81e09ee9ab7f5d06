package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-chart/internal/types"
	"github.com/rxtech-lab/argo-chart/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type SARTestSuite struct {
	suite.Suite
	quotes []types.Quote
}

func TestSARSuite(t *testing.T) {
	suite.Run(t, new(SARTestSuite))
}

func (suite *SARTestSuite) SetupTest() {
	// low, high, open, close
	rows := [][4]float64{
		{25.52, 45, 42.05, 31.095},
		{17.55, 32.88, 31.25, 21.66},
		{18.8, 28.88, 22.08, 26.62},
		{24.72, 32.506, 27.44, 25.58},
		{22.67, 29.07, 25.63, 24.88},
		{24.15, 51.6, 24.969, 50.23},
		{43.55, 58.58, 49.97, 54.649},
		{51.85, 72.59, 54.83, 60.24},
	}

	suite.quotes = make([]types.Quote, len(rows))
	for i, row := range rows {
		suite.quotes[i] = types.Quote{Low: row[0], High: row[1], Open: row[2], Close: row[3]}
	}
}

func (suite *SARTestSuite) TestAccelerationFactor() {
	af := newAccelerationFactor(0.02, 0.2)
	suite.Equal(0.02, af.value)

	af.increase(0.02)
	suite.InDelta(0.04, af.value, 1e-12)
	af.increase(0.02)
	suite.InDelta(0.06, af.value, 1e-12)

	af.increase(10)
	suite.Equal(0.2, af.value)
	af.increase(10)
	suite.Equal(0.2, af.value)

	af.reset()
	suite.Equal(0.02, af.value)
}

func (suite *SARTestSuite) TestConfig() {
	sar := NewSAR()
	suite.Equal(4, sar.period)
	suite.Equal(0.02, sar.minAF)
	suite.Equal(0.2, sar.maxAF)
	suite.Equal(types.IndicatorTypeSAR, sar.Name())

	suite.NoError(sar.Config(5))
	suite.Equal(5, sar.period)
	suite.Equal(0.02, sar.minAF)

	suite.NoError(sar.Config(6, 0.01, 0.1))
	suite.Equal(6, sar.period)
	suite.Equal(0.01, sar.minAF)
	suite.Equal(0.1, sar.maxAF)

	suite.True(errors.HasCode(sar.Config(4, 0.02), errors.ErrCodeMissingParameter))
	suite.True(errors.HasCode(sar.Config(4, 0.3, 0.2), errors.ErrCodeInvalidMultiplier))
	suite.True(errors.HasCode(sar.Config(4, "0.02", 0.2), errors.ErrCodeInvalidType))
}

func (suite *SARTestSuite) TestProcess() {
	result := NewSAR().Process(suite.quotes)

	expected := []types.SARValue{
		{SAR: 45.0, IsReversal: true, IsUp: false},
		{SAR: 44.451, IsReversal: false, IsUp: false},
		{SAR: 18.8, IsReversal: true, IsUp: true},
		{SAR: 19.456, IsReversal: false, IsUp: true},
		{SAR: 21.02096, IsReversal: false, IsUp: true},
	}

	suite.Require().Len(result, len(expected))

	for i := range expected {
		suite.InDelta(expected[i].SAR, result[i].SAR, 1e-6)
		suite.Equal(expected[i].IsReversal, result[i].IsReversal)
		suite.Equal(expected[i].IsUp, result[i].IsUp)
	}
}

func (suite *SARTestSuite) TestProcessInsufficientData() {
	sar := NewSAR()
	suite.Empty(sar.Process(suite.quotes[:4]))

	result := sar.Process(suite.quotes[:5])
	suite.Require().Len(result, 2)
	suite.InDelta(45.0, result[0].SAR, 1e-9)
	suite.InDelta(44.451, result[1].SAR, 1e-9)
}
