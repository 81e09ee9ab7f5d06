package types

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RangeTestSuite struct {
	suite.Suite
}

func TestRangeSuite(t *testing.T) {
	suite.Run(t, new(RangeTestSuite))
}

func (suite *RangeTestSuite) TestLen() {
	suite.Equal(3, NewRange(2, 5).Len())
	suite.Equal(0, NewRange(4, 4).Len())
	suite.Equal(0, NewRange(5, 2).Len())
	suite.True(NewRange(5, 2).IsEmpty())
	suite.False(NewRange(0, 1).IsEmpty())
}

func (suite *RangeTestSuite) TestContains() {
	r := NewRange(3, 6)
	suite.False(r.Contains(2))
	suite.True(r.Contains(3))
	suite.True(r.Contains(5))
	suite.False(r.Contains(6))
}

func (suite *RangeTestSuite) TestClamp() {
	tests := []struct {
		name     string
		input    Range
		lower    int
		upper    int
		expected Range
	}{
		{name: "inside", input: NewRange(4, 5), lower: 3, upper: 7, expected: NewRange(4, 5)},
		{name: "covers everything", input: NewRange(0, 10), lower: 3, upper: 7, expected: NewRange(3, 7)},
		{name: "overlaps start", input: NewRange(0, 5), lower: 3, upper: 7, expected: NewRange(3, 5)},
		{name: "before", input: NewRange(0, 2), lower: 3, upper: 7, expected: NewRange(3, 3)},
		{name: "after", input: NewRange(8, 12), lower: 3, upper: 7, expected: NewRange(8, 8)},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			actual := tc.input.Clamp(tc.lower, tc.upper)
			suite.Equal(tc.expected, actual)
		})
	}
}

func (suite *RangeTestSuite) TestString() {
	suite.Equal("3..<7", NewRange(3, 7).String())
}
