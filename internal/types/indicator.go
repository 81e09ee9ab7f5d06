package types

import "strings"

// IndicatorType names an indicator family.
type IndicatorType string

const (
	IndicatorTypeMA             IndicatorType = "ma"
	IndicatorTypeEMA            IndicatorType = "ema"
	IndicatorTypeBollingerBands IndicatorType = "bollinger_bands"
	IndicatorTypeMACD           IndicatorType = "macd"
	IndicatorTypeKDJ            IndicatorType = "kdj"
	IndicatorTypeRS             IndicatorType = "rs"
	IndicatorTypeRSI            IndicatorType = "rsi"
	IndicatorTypeSAR            IndicatorType = "sar"
)

var indicatorAliases = map[string]IndicatorType{
	"sma":  IndicatorTypeMA,
	"boll": IndicatorTypeBollingerBands,
	"bb":   IndicatorTypeBollingerBands,
}

// ParseIndicatorType resolves a chart option name (ma, ema, boll, sar, kdj, rsi, macd, ...)
// to its IndicatorType. The lookup is case-insensitive.
func ParseIndicatorType(name string) (IndicatorType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := indicatorAliases[normalized]; ok {
		return alias, true
	}

	for _, t := range AllIndicatorTypes() {
		if string(t) == normalized {
			return t, true
		}
	}

	return "", false
}

// AllIndicatorTypes returns every supported indicator family in display order.
func AllIndicatorTypes() []IndicatorType {
	return []IndicatorType{
		IndicatorTypeMA,
		IndicatorTypeEMA,
		IndicatorTypeBollingerBands,
		IndicatorTypeMACD,
		IndicatorTypeKDJ,
		IndicatorTypeRS,
		IndicatorTypeRSI,
		IndicatorTypeSAR,
	}
}
