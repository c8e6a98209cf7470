package money

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"5", 500, true},
		{"5.0", 500, true},
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"0.01", 1, true},
		{"0", 0, true},
		{"-100.00", -10000, true},
		{"12.345", 1235, true}, // third digit rounds half away from zero
		{"12.344", 1234, true},
		{" 2.50 ", 250, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"12..", 0, false},
	}

	for _, tc := range cases {
		m, err := Parse(tc.in)
		if tc.ok {
			assert.NoError(t, err, "input %q", tc.in)
			assert.Equal(t, tc.cents, m.Cents(), "input %q", tc.in)
		} else {
			assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", tc.in)
		}
	}
}

func TestParsePositive(t *testing.T) {
	m, err := ParsePositive("500.00")
	assert.NoError(t, err)
	assert.Equal(t, int64(50000), m.Cents())

	for _, in := range []string{"0", "0.00", "-1", "-0.01", "junk"} {
		_, err := ParsePositive(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", in)
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{50000, "500.00"},
		{-10000, "-100.00"},
		{-5, "-0.05"},
		{123456789, "1234567.89"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FromCents(tc.cents).String())
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	// Canonical two-decimal strings survive a Parse/String round trip.
	for _, s := range []string{"0.00", "0.01", "5.00", "500.00", "-100.00", "1234567.89"} {
		m, err := Parse(s)
		assert.NoError(t, err)
		assert.Equal(t, s, m.String())
	}

	// Shorthand input canonicalizes to two decimals.
	m, err := Parse("5")
	assert.NoError(t, err)
	assert.Equal(t, "5.00", m.String())
}

func TestAdditiveConsistency(t *testing.T) {
	// (a+b)-b == a exactly, for randomized cent counts including negatives.
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		a := FromCents(rng.Int63n(2_000_000_000) - 1_000_000_000)
		b := FromCents(rng.Int63n(2_000_000_000) - 1_000_000_000)
		assert.True(t, a.Add(b).Sub(b).Equal(a), "a=%v b=%v", a, b)
	}
}

func TestFromFloat(t *testing.T) {
	assert.Equal(t, int64(50000), FromFloat(500.00).Cents())
	assert.Equal(t, int64(1235), FromFloat(12.345).Cents())
	assert.Equal(t, int64(-1235), FromFloat(-12.345).Cents())
	// The classic float trap: 0.1 + 0.2 still lands on exactly 30 cents.
	assert.Equal(t, int64(30), FromFloat(0.1+0.2).Cents())
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, FromCents(1).Compare(FromCents(2)))
	assert.Equal(t, 1, FromCents(2).Compare(FromCents(1)))
	assert.Equal(t, 0, FromCents(2).Compare(FromCents(2)))
	assert.True(t, FromCents(5).Neg().Equal(FromCents(-5)))
}

func TestValueScanRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, -1, 50000, -123456789} {
		v, err := FromCents(cents).Value()
		assert.NoError(t, err)

		var m Money
		assert.NoError(t, m.Scan(v))
		assert.Equal(t, cents, m.Cents())
	}

	var m Money
	assert.Error(t, m.Scan("42"))
}
