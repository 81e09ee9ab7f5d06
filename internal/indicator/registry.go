package indicator

import (
	"slices"
	"sync"

	"github.com/rxtech-lab/argo-chart/internal/series"
	"github.com/rxtech-lab/argo-chart/internal/types"
	"github.com/rxtech-lab/argo-chart/pkg/errors"
)

// Factory builds a configured processor. An empty id selects the type-identity key.
type Factory func(id string, params ...any) (QuoteProcessor, error)

// IndicatorRegistry manages all available indicators.
type IndicatorRegistry interface {
	RegisterIndicator(name types.IndicatorType, factory Factory) error
	NewProcessor(name types.IndicatorType, id string, params ...any) (QuoteProcessor, error)
	ListIndicators() []types.IndicatorType
	RemoveIndicator(name types.IndicatorType) error
}

// IndicatorRegistryV1 manages all available indicators.
type IndicatorRegistryV1 struct {
	factories map[types.IndicatorType]Factory
	mu        sync.RWMutex
}

// NewIndicatorRegistry creates a new, empty indicator registry.
func NewIndicatorRegistry() IndicatorRegistry {
	return &IndicatorRegistryV1{
		factories: make(map[types.IndicatorType]Factory),
		mu:        sync.RWMutex{},
	}
}

// NewDefaultIndicatorRegistry creates a registry holding every built-in indicator.
func NewDefaultIndicatorRegistry() IndicatorRegistry {
	registry := NewIndicatorRegistry()

	builtins := map[types.IndicatorType]Factory{
		types.IndicatorTypeMA:             scalarFactory(func() Algorithm[float64] { return NewMA() }, DefaultKey[float64, *MA]),
		types.IndicatorTypeEMA:            scalarFactory(func() Algorithm[float64] { return NewEMA() }, DefaultKey[float64, *EMA]),
		types.IndicatorTypeRS:             scalarFactory(func() Algorithm[float64] { return NewRS() }, DefaultKey[float64, *RS]),
		types.IndicatorTypeRSI:            scalarFactory(func() Algorithm[float64] { return NewRSI() }, DefaultKey[float64, *RSI]),
		types.IndicatorTypeBollingerBands: valueFactory(func() Algorithm[types.BOLLValue] { return NewBollingerBands() }, DefaultKey[types.BOLLValue, *BollingerBands]),
		types.IndicatorTypeMACD:           valueFactory(func() Algorithm[types.MACDValue] { return NewMACD() }, DefaultKey[types.MACDValue, *MACD]),
		types.IndicatorTypeKDJ:            valueFactory(func() Algorithm[types.KDJValue] { return NewKDJ() }, DefaultKey[types.KDJValue, *KDJ]),
		types.IndicatorTypeSAR:            valueFactory(func() Algorithm[types.SARValue] { return NewSAR() }, DefaultKey[types.SARValue, *SAR]),
	}

	for name, factory := range builtins {
		// The registry is empty, so registration cannot collide.
		_ = registry.RegisterIndicator(name, factory)
	}

	return registry
}

func newFactory[T any](newAlgorithm func() Algorithm[T], defaultKey func() SeriesKey[T], projection series.Projection[T]) Factory {
	return func(id string, params ...any) (QuoteProcessor, error) {
		algorithm := newAlgorithm()
		if len(params) > 0 {
			if err := algorithm.Config(params...); err != nil {
				return nil, err
			}
		}

		key := defaultKey()
		if id != "" {
			key = NamedKey[T](id)
		}

		return NewProcessor(algorithm, key, projection), nil
	}
}

func scalarFactory(newAlgorithm func() Algorithm[float64], defaultKey func() SeriesKey[float64]) Factory {
	return newFactory(newAlgorithm, defaultKey, series.Scalar)
}

func valueFactory[T series.Extremer](newAlgorithm func() Algorithm[T], defaultKey func() SeriesKey[T]) Factory {
	return newFactory(newAlgorithm, defaultKey, series.ByExtremeValue[T])
}

// RegisterIndicator adds an indicator factory to the registry.
func (r *IndicatorRegistryV1) RegisterIndicator(name types.IndicatorType, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return errors.Newf(errors.ErrCodeIndicatorAlreadyExists, "RegisterIndicator: indicator with name %s already registered", name)
	}

	r.factories[name] = factory

	return nil
}

// NewProcessor builds a configured processor for the named indicator. With no params
// the indicator keeps its defaults.
func (r *IndicatorRegistryV1) NewProcessor(name types.IndicatorType, id string, params ...any) (QuoteProcessor, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.Newf(errors.ErrCodeIndicatorNotFound, "NewProcessor: indicator with name %s not found", name)
	}

	processor, err := factory(id, params...)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeInvalidParameter, err, "NewProcessor: invalid parameters for %s", name)
	}

	return processor, nil
}

// ListIndicators returns all registered indicator names in sorted order.
func (r *IndicatorRegistryV1) ListIndicators() []types.IndicatorType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]types.IndicatorType, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// RemoveIndicator removes an indicator from the registry.
func (r *IndicatorRegistryV1) RemoveIndicator(name types.IndicatorType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; !exists {
		return errors.Newf(errors.ErrCodeIndicatorNotFound, "RemoveIndicator: indicator with name %s not found", name)
	}

	delete(r.factories, name)

	return nil
}
