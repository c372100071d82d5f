package fflonk

import (
	"math/big"
	"testing"
)

func bigFromHex(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		t.Fatalf("bad hex literal %q", s)
	}
	return v
}

// Vectors cross-checked against the Solidity/SnarkJS Keccak-256 transcript
// hash: each absorbs a sequence of 32-byte big-endian words and reduces the
// digest mod r.
func TestHashToFrVectors(t *testing.T) {
	zero := big.NewInt(0)

	cases := []struct {
		name     string
		words    []*big.Int
		expected string
	}{
		{
			name:     "zero",
			words:    []*big.Int{zero},
			expected: "290decd9548b62a8d60345a988386fc84ba6bc95484008f6362f93160ef3e563",
		},
		{
			name:     "zero_zero",
			words:    []*big.Int{zero, zero},
			expected: "1c053d5dd362f3501993d420ba93e87eb29b2bb845ddeefe74b26929c7ba5fb2",
		},
		{
			name:     "zero_zero_zero",
			words:    []*big.Int{zero, zero, zero},
			expected: "160bbcda5f7abc0bf6dbdd2720f72234c32292be4f6b386a4707aac730c08c20",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := hashToFr(c.words...)
			want := bigFromHex(t, c.expected)
			if frToBigInt(&got).Cmp(want) != 0 {
				t.Errorf("hashToFr(%v) = %s, want %s", c.words, frToBigInt(&got).Text(16), c.expected)
			}
		})
	}

	t.Run("zero_of_zero", func(t *testing.T) {
		inner := hashToFr(zero)
		got := hashToFr(frToBigInt(&inner))
		want := bigFromHex(t, "20aa000426f73d95c72abaf47f289e50874dd894230eee8e3e67ccc2a42d61d8")
		if frToBigInt(&got).Cmp(want) != 0 {
			t.Errorf("hashToFr(hashToFr(0)) = %s, want %s", frToBigInt(&got).Text(16), "20aa000426f73d95c72abaf47f289e50874dd894230eee8e3e67ccc2a42d61d8")
		}
	})

	t.Run("some_u256_pair", func(t *testing.T) {
		a := bigFromHex(t, "290decd9548b62a8d60345a988386fc84ba6bc95484008f6362f93160ef3e563")
		got := hashToFr(a, zero)
		want := bigFromHex(t, "07d87f7eed9223d1a55da14bb15eb643a549958a8e4006dba9367247b039b571")
		if frToBigInt(&got).Cmp(want) != 0 {
			t.Errorf("hashToFr(a, 0) = %s, want %s", frToBigInt(&got).Text(16), "07d87f7eed9223d1a55da14bb15eb643a549958a8e4006dba9367247b039b571")
		}
	})

	t.Run("some_u256_triple", func(t *testing.T) {
		a := bigFromHex(t, "290decd9548b62a8d60345a988386fc84ba6bc95484008f6362f93160ef3e563")
		b := bigFromHex(t, "20aa000426f73d95c72abaf47f289e50874dd894230eee8e3e67ccc2a42d61d8")
		got := hashToFr(a, zero, b)
		want := bigFromHex(t, "189b3f9023ec42435ff11d489e03af64b7632d6c8e6e413a504ae617e1282d97")
		if frToBigInt(&got).Cmp(want) != 0 {
			t.Errorf("hashToFr(a, 0, b) = %s, want %s", frToBigInt(&got).Text(16), "189b3f9023ec42435ff11d489e03af64b7632d6c8e6e413a504ae617e1282d97")
		}
	})
}
