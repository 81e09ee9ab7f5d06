package indicator

import (
	"time"

	"github.com/rxtech-lab/argo-chart/internal/types"
	"github.com/shopspring/decimal"
)

var baseTime = time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)

// quotesFromCloses builds one-minute quotes whose low and high sit one unit around the close.
func quotesFromCloses(closes ...float64) []types.Quote {
	quotes := make([]types.Quote, len(closes))
	for i, c := range closes {
		quotes[i] = types.Quote{
			Time:   baseTime.Add(time.Duration(i) * time.Minute),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		}
	}

	return quotes
}

func round2(values []float64) []float64 {
	rounded := make([]float64, len(values))
	for i, v := range values {
		rounded[i] = decimal.NewFromFloat(v).Round(2).InexactFloat64()
	}

	return rounded
}
