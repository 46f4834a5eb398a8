package optics_test

import (
	"math"
	"testing"

	"github.com/on-the-ground/optic_ive_go/optics"

	"github.com/stretchr/testify/assert"
)

func TestOperators_EqualTheirDefiningAdjust(t *testing.T) {
	l := optics.FirstOf[int, string, int]()
	a := optics.PairOf(12, "snd")

	cases := []struct {
		name     string
		operator func(optics.Pair[int, string]) optics.Pair[int, string]
		update   func(int) int
	}{
		{"add", optics.Add(l, 5), func(x int) int { return x + 5 }},
		{"sub", optics.Sub(l, 5), func(x int) int { return x - 5 }},
		{"mul", optics.Mul(l, 5), func(x int) int { return x * 5 }},
		{"div", optics.Div(l, 5), func(x int) int { return x / 5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, optics.Adjust(l, tc.update)(a), tc.operator(a))
		})
	}
}

func TestReplaceAndOver(t *testing.T) {
	l := optics.SecondOf[int, string, string]()
	a := optics.PairOf(1, "old")

	assert.Equal(t, optics.PairOf(1, "new"), optics.Replace(l, "new")(a))
	assert.Equal(t, optics.Set(l, "new")(a), optics.Replace(l, "new")(a))

	upper := func(s string) string { return s + "!" }
	assert.Equal(t, optics.Adjust(l, upper)(a), optics.Over(l, upper)(a))
}

func TestLogicalOperators(t *testing.T) {
	l := optics.FirstOf[bool, int, bool]()

	for _, focus := range []bool{true, false} {
		for _, n := range []bool{true, false} {
			a := optics.PairOf(focus, 0)
			assert.Equal(t, optics.PairOf(focus || n, 0), optics.Or(l, n)(a))
			assert.Equal(t, optics.PairOf(focus && n, 0), optics.And(l, n)(a))
		}
	}
}

func TestCombine_NewOperandOnTheLeft(t *testing.T) {
	// String concatenation is non-commutative, so the operand order is
	// observable: the new value must land on the left of the focus.
	l := optics.SecondOf[int, string, string]()
	a := optics.PairOf(0, "world")

	concat := optics.StringMonoid().Combine
	got := optics.Combine(l, concat, "hello ")(a)
	assert.Equal(t, optics.PairOf(0, "hello world"), got)
}

func TestCombine_SliceOrder(t *testing.T) {
	l := optics.FirstOf[[]int, string, []int]()
	a := optics.PairOf([]int{3, 4}, "")

	got := optics.Combine(l, optics.SliceMonoid[int]().Combine, []int{1, 2})(a)
	assert.Equal(t, []int{1, 2, 3, 4}, got.Fst)
}

func TestDiv_FloatPartiality(t *testing.T) {
	l := optics.FirstOf[float64, int, float64]()
	got := optics.Div(l, 0.0)(optics.PairOf(1.0, 0))
	assert.True(t, math.IsInf(got.Fst, 1))
}

func TestOperators_OverDefinedTypes(t *testing.T) {
	type score int
	l := optics.Mapped[score, score]()
	assert.Equal(t, []score{11, 12}, optics.Add(l, score(10))([]score{1, 2}))

	type flag bool
	lb := optics.Mapped[flag, flag]()
	assert.Equal(t, []flag{true, true}, optics.Or(lb, flag(true))([]flag{false, true}))
}
