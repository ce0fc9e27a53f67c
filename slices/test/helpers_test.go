package test

import (
	"github.com/algebraic-go/algebra"
	"github.com/algebraic-go/algebra/slices"
	"github.com/stretchr/testify/suite"
	"strconv"
	"strings"
	"testing"
)

type SlicesTestSuite struct {
	suite.Suite
}

func (suite *SlicesTestSuite) TestSlices() {
	suite.Run("Map", func() {
		s := []string{"a", "b", "c"}
		result := slices.Map[string, string](s, func(i int, s string) string {
			return strings.ToUpper(s)
		})
		expected := []string{"A", "B", "C"}

		suite.Equal(expected, result)
		suite.Equal([]string{"FISH"}, slices.Map[string, string]([]string{"fish"}, strings.ToUpper))
		suite.Equal([]int{4}, slices.Map[string, int]([]string{"fish"}, func(s string) int { return len(s) }))
		suite.Nil(slices.Map[string, int](nil, func(s string) int { return len(s) }))
	})

	suite.Run("Filter", func() {
		s := []int{1, 2, 3, 4, 5}
		result := slices.Filter(s, func(x int) bool { return x%2 == 0 })
		suite.Equal([]int{2, 4}, result)
	})

	suite.Run("FlatMap", func() {
		s := []string{"a", "b"}
		result := slices.FlatMap[string, string](s, func(s string) []string {
			return []string{s, strings.ToUpper(s)}
		})
		suite.Equal([]string{"a", "A", "b", "B"}, result)
		suite.Len(slices.FlatMap[string, string]([]string{"X", "Y"},
			func(s string) []string {
				return []string{}
			}), 0)
	})

	suite.Run("FoldLeft", func() {
		s := []string{"1", "2", "3"}
		result := slices.FoldLeft(s, "0", func(acc string, x string) string {
			return "(" + acc + "+" + x + ")"
		})
		suite.Equal("(((0+1)+2)+3)", result)
		suite.Equal("seed", slices.FoldLeft(nil, "seed",
			func(acc string, x string) string { return acc + x }))
	})

	suite.Run("FoldRight", func() {
		s := []string{"1", "2", "3"}
		result := slices.FoldRight(s, "0", func(x string, acc string) string {
			return "(" + x + "+" + acc + ")"
		})
		suite.Equal("(1+(2+(3+0)))", result)
	})

	suite.Run("Fold Directions Differ", func() {
		s := []int{10, 2, 1}
		sub := func(acc int, x int) int { return acc - x }
		left := slices.FoldLeft(s, 0, sub)
		right := slices.FoldRight(s, 0, func(x int, acc int) int { return x - acc })
		suite.Equal(-13, left)
		suite.Equal(9, right)
		suite.NotEqual(left, right)
	})

	suite.Run("First Last", func() {
		s := []int{7, 8, 9}
		first, ok := slices.First(s)
		suite.True(ok)
		suite.Equal(7, first)
		last, ok := slices.Last(s)
		suite.True(ok)
		suite.Equal(9, last)
		_, ok = slices.First([]int{})
		suite.False(ok)
	})

	suite.Run("Concat Monoid", func() {
		m := algebra.Slice[int]()
		a := []int{1, 2}
		b := []int{3}
		suite.Equal([]int{1, 2, 3}, m.Append(a, b))
		suite.Equal(a, m.Append(a, m.Id()))
		suite.Nil(m.Append(m.Id(), m.Id()))

		appended := m.Append(a, b)
		appended[0] = 99
		suite.Equal([]int{1, 2}, a)
	})

	suite.Run("Map Then Fold", func() {
		s := []int{1, 2, 3}
		total := slices.FoldLeft(
			slices.Map[int, string](s, strconv.Itoa),
			"", func(acc string, x string) string { return acc + x })
		suite.Equal("123", total)
	})
}

func TestSlicesTestSuite(t *testing.T) {
	suite.Run(t, new(SlicesTestSuite))
}
