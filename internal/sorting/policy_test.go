package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphaAscending_Before(t *testing.T) {
	p := AlphaAscending

	assert.True(t, p.Before("apple", "banana"))
	assert.False(t, p.Before("banana", "apple"))

	// Uppercase sorts before lowercase in byte order.
	assert.True(t, p.Before("Apple", "apple"))
	assert.True(t, p.Before("Banana", "apple"))

	// A strict prefix sorts first.
	assert.True(t, p.Before("app", "apple"))
	assert.False(t, p.Before("apple", "app"))

	// Equal lines: neither is strictly before.
	assert.False(t, p.Before("same", "same"))
}

func TestAlphaDescending_Before(t *testing.T) {
	p := AlphaDescending

	assert.True(t, p.Before("banana", "apple"))
	assert.False(t, p.Before("apple", "banana"))

	// On a prefix relationship the longer line sorts first.
	assert.True(t, p.Before("apple", "app"))
	assert.False(t, p.Before("app", "apple"))

	assert.False(t, p.Before("same", "same"))
}

func TestLastLetterAscending_Before(t *testing.T) {
	p := LastLetterAscending

	// "dog" ends in 'g' < 't', so it goes first.
	assert.True(t, p.Before("dog", "cat"))
	assert.True(t, p.Before("dog", "bat"))

	// "cat" vs "bat": last bytes equal, step back, 'a' < 'b'.
	assert.True(t, p.Before("cat", "bat"))
	assert.False(t, p.Before("bat", "cat"))

	// The side exhausted first sorts first: "at" is a suffix of "bat".
	assert.True(t, p.Before("at", "bat"))
	assert.False(t, p.Before("bat", "at"))

	// Identical lines are equal-ranked, not strictly ordered.
	assert.False(t, p.Before("same", "same"))
	assert.False(t, p.Before("", ""))
	assert.True(t, p.Before("", "a"))
}

// TestBefore_Asymmetry spot-checks the strict-weak-ordering requirement that
// Before(a, b) and Before(b, a) are never both true.
func TestBefore_Asymmetry(t *testing.T) {
	words := []string{"", "a", "b", "ab", "ba", "Apple", "apple", "cherry", "at", "bat", "cat"}
	for _, p := range []Policy{AlphaAscending, AlphaDescending, LastLetterAscending} {
		for _, a := range words {
			for _, b := range words {
				if p.Before(a, b) && p.Before(b, a) {
					t.Fatalf("policy %s: Before is symmetric for %q, %q", p, a, b)
				}
			}
		}
	}
}

func TestParsePolicy(t *testing.T) {
	cases := []struct {
		raw  string
		want Policy
	}{
		{"alpha-asc", AlphaAscending},
		{"ALPHA-DESC", AlphaDescending},
		{"  last-letter-asc ", LastLetterAscending},
	}
	for _, tc := range cases {
		got, err := ParsePolicy(tc.raw)
		require.NoError(t, err, "raw=%q", tc.raw)
		assert.Equal(t, tc.want, got, "raw=%q", tc.raw)
	}

	_, err := ParsePolicy("bogus")
	require.Error(t, err)
}

func TestPolicy_IsValid(t *testing.T) {
	assert.True(t, AlphaAscending.IsValid())
	assert.True(t, AlphaDescending.IsValid())
	assert.True(t, LastLetterAscending.IsValid())
	assert.False(t, Policy(99).IsValid())
}
