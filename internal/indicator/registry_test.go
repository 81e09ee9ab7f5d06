package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-chart/internal/cache"
	"github.com/rxtech-lab/argo-chart/internal/types"
	"github.com/rxtech-lab/argo-chart/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type RegistryTestSuite struct {
	suite.Suite
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func noopFactory(id string, params ...any) (QuoteProcessor, error) {
	return nil, nil
}

func (suite *RegistryTestSuite) TestNewIndicatorRegistry() {
	registry := NewIndicatorRegistry()
	suite.NotNil(registry)
	suite.Empty(registry.ListIndicators())
}

func (suite *RegistryTestSuite) TestRegisterIndicatorDuplicate() {
	registry := NewIndicatorRegistry()

	suite.NoError(registry.RegisterIndicator(types.IndicatorTypeRSI, noopFactory))

	err := registry.RegisterIndicator(types.IndicatorTypeRSI, noopFactory)
	suite.Error(err)
	suite.Contains(err.Error(), "already registered")
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorAlreadyExists))
}

func (suite *RegistryTestSuite) TestRemoveIndicator() {
	registry := NewIndicatorRegistry()
	suite.Require().NoError(registry.RegisterIndicator(types.IndicatorTypeRSI, noopFactory))

	suite.NoError(registry.RemoveIndicator(types.IndicatorTypeRSI))
	suite.Empty(registry.ListIndicators())

	err := registry.RemoveIndicator(types.IndicatorTypeRSI)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorNotFound))
}

func (suite *RegistryTestSuite) TestDefaultRegistryListsEveryIndicator() {
	registry := NewDefaultIndicatorRegistry()

	suite.Equal([]types.IndicatorType{
		types.IndicatorTypeBollingerBands,
		types.IndicatorTypeEMA,
		types.IndicatorTypeKDJ,
		types.IndicatorTypeMA,
		types.IndicatorTypeMACD,
		types.IndicatorTypeRS,
		types.IndicatorTypeRSI,
		types.IndicatorTypeSAR,
	}, registry.ListIndicators())
}

func (suite *RegistryTestSuite) TestNewProcessor() {
	registry := NewDefaultIndicatorRegistry()
	quotes := quotesFromCloses(11, 12, 13, 14, 15, 16, 17)
	values := cache.NewValues()

	processor, err := registry.NewProcessor(types.IndicatorTypeMA, "", 5)
	suite.Require().NoError(err)
	suite.Equal(types.IndicatorTypeMA, processor.Name())
	suite.Equal(DefaultKey[float64, *MA]().ID(), processor.ID())

	processor.Process(quotes, values)
	stored := cache.Get(values, DefaultKey[float64, *MA]())
	suite.Require().True(stored.IsSome())
	suite.InDelta(15, stored.Unwrap().Get(6).Unwrap(), 1e-9)
}

func (suite *RegistryTestSuite) TestNewProcessorWithNamedKey() {
	registry := NewDefaultIndicatorRegistry()

	processor, err := registry.NewProcessor(types.IndicatorTypeBollingerBands, "boll20", 20, 2.0)
	suite.Require().NoError(err)
	suite.Equal("boll20", processor.ID())

	processor.Process(quotesFromCloses(bollCloses...), cache.NewValues())
}

func (suite *RegistryTestSuite) TestNewProcessorDefaults() {
	registry := NewDefaultIndicatorRegistry()

	for _, name := range registry.ListIndicators() {
		processor, err := registry.NewProcessor(name, "")
		suite.Require().NoError(err, name)
		suite.Equal(name, processor.Name())
	}
}

func (suite *RegistryTestSuite) TestNewProcessorErrors() {
	registry := NewDefaultIndicatorRegistry()

	_, err := registry.NewProcessor("ichimoku", "")
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorNotFound))

	_, err = registry.NewProcessor(types.IndicatorTypeMACD, "", 26, 12, 9)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))
	suite.Contains(err.Error(), "fastPeriod must be less than slowPeriod")
}

func (suite *RegistryTestSuite) TestProjectionsArePresent() {
	registry := NewDefaultIndicatorRegistry()
	quotes := quotesFromCloses(macdCloses...)
	values := cache.NewValues()
	visible := types.NewRange(0, len(quotes))

	for _, name := range registry.ListIndicators() {
		processor, err := registry.NewProcessor(name, "")
		suite.Require().NoError(err)

		processor.Process(quotes, values)
		suite.True(processor.ExtremePoint(values, visible).IsSome(), name)
	}
}
