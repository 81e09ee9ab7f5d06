package mocks

//go:generate mockgen -destination=./mock_quote_processor.go -package=mocks github.com/rxtech-lab/argo-chart/internal/indicator QuoteProcessor
//go:generate mockgen -destination=./mock_indicator_registry.go -package=mocks github.com/rxtech-lab/argo-chart/internal/indicator IndicatorRegistry
