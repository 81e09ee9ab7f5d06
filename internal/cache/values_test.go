package cache

import (
	"testing"
	"time"

	"github.com/rxtech-lab/argo-chart/internal/types"
	"github.com/stretchr/testify/suite"
)

type ValuesTestSuite struct {
	suite.Suite
	values *Values
}

func (suite *ValuesTestSuite) SetupTest() {
	suite.values = NewValues()
}

func TestValuesSuite(t *testing.T) {
	suite.Run(t, new(ValuesTestSuite))
}

type movingAverageMarker struct{}

type otherMarker struct{}

type chartOption int

const (
	chartOptionMA chartOption = iota
	chartOptionEMA
)

func (suite *ValuesTestSuite) TestTypeIdentityKey() {
	key := KeyOf[float64, movingAverageMarker]()
	suite.True(Get(suite.values, key).IsNone())

	Set(suite.values, key, 2.5)
	suite.Equal(2.5, Get(suite.values, key).Unwrap())

	// A key built from the same type addresses the same entry.
	suite.Equal(2.5, Get(suite.values, KeyOf[float64, movingAverageMarker]()).Unwrap())
	suite.True(Get(suite.values, KeyOf[float64, otherMarker]()).IsNone())

	Delete(suite.values, key)
	suite.True(Get(suite.values, key).IsNone())
}

func (suite *ValuesTestSuite) TestValueKey() {
	ma := NewKey[string](chartOptionMA)
	ema := NewKey[string](chartOptionEMA)

	Set(suite.values, ma, "ma")
	Set(suite.values, ema, "ema")

	suite.Equal("ma", Get(suite.values, ma).Unwrap())
	suite.Equal("ema", Get(suite.values, ema).Unwrap())
	suite.Equal(2, suite.values.Len())
}

func (suite *ValuesTestSuite) TestValueKeysOfDifferentDynamicTypesDoNotCollide() {
	intKey := NewKey[string](1)
	optionKey := NewKey[string](chartOption(1))

	Set(suite.values, intKey, "int")
	Set(suite.values, optionKey, "option")

	suite.Equal("int", Get(suite.values, intKey).Unwrap())
	suite.Equal("option", Get(suite.values, optionKey).Unwrap())
}

func (suite *ValuesTestSuite) TestMismatchedTypeIsAbsent() {
	Set(suite.values, NewKey[int]("period"), 5)
	suite.True(Get(suite.values, NewKey[string]("period")).IsNone())
	suite.Equal(5, Get(suite.values, NewKey[int]("period")).Unwrap())
}

func (suite *ValuesTestSuite) TestSetOverwrites() {
	key := NewKey[int]("count")
	Set(suite.values, key, 1)
	Set(suite.values, key, 5)
	suite.Equal(5, Get(suite.values, key).Unwrap())
	suite.Equal(1, suite.values.Len())
}

func (suite *ValuesTestSuite) TestUniqueKeys() {
	a := NewUniqueKey[int]()
	b := NewUniqueKey[int]()
	suite.NotEqual(a.ID(), b.ID())

	Set(suite.values, a, 1)
	suite.True(Get(suite.values, b).IsNone())
}

func (suite *ValuesTestSuite) TestQuotesKey() {
	quotes := []types.Quote{
		{Time: time.Unix(0, 0), Close: 1},
		{Time: time.Unix(60, 0), Close: 2},
	}
	Set(suite.values, QuotesKey, quotes)

	stored := Get(suite.values, QuotesKey)
	suite.True(stored.IsSome())
	suite.Equal(quotes, stored.Unwrap())
	suite.Equal("quotes", QuotesKey.String())
}

func (suite *ValuesTestSuite) TestReset() {
	Set(suite.values, NewKey[int]("a"), 1)
	Set(suite.values, QuotesKey, []types.Quote{{Close: 1}})

	suite.values.Reset()

	suite.Equal(0, suite.values.Len())
	suite.True(Get(suite.values, QuotesKey).IsNone())
}

func (suite *ValuesTestSuite) TestKeyString() {
	suite.Equal("cache.movingAverageMarker", KeyOf[float64, movingAverageMarker]().String())
	suite.Equal("ma5", NewKey[float64]("ma5").String())
}
