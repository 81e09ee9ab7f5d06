package types

import "time"

// Quote is one OHLCV record. Start and End carry the interval bounds (unix milliseconds)
// when the feed provides them; the indicator pipeline ignores both.
type Quote struct {
	Time   time.Time `csv:"time" json:"time"`
	Start  int64     `csv:"start,omitempty" json:"start,omitempty"`
	End    int64     `csv:"end,omitempty" json:"end,omitempty"`
	Open   float64   `csv:"open" json:"open"`
	High   float64   `csv:"high" json:"high"`
	Low    float64   `csv:"low" json:"low"`
	Close  float64   `csv:"close" json:"close"`
	Volume float64   `csv:"volume" json:"volume"`
}

// Closes extracts the close price of every quote.
func Closes(quotes []Quote) []float64 {
	closes := make([]float64, len(quotes))
	for i, q := range quotes {
		closes[i] = q.Close
	}

	return closes
}
