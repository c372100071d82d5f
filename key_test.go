package fflonk

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func mustFrHex(t *testing.T, s string) fr.Element {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex literal %q: %v", s, err)
	}
	var e fr.Element
	e.SetBigInt(new(big.Int).SetBytes(b))
	return e
}

// The augmented key derived from the default verification key must match
// the literal augmented-key constants baked into the reference verifier:
// confirms NewAugmentedKey's power tables (w3, w4, w8) are built the same
// way the reference implementation's From<VerificationKey> impl does.
func TestAugmentedKeyMatchesReferenceDefaults(t *testing.T) {
	vk := DefaultVerificationKey()
	aug, err := NewAugmentedKey(vk)
	if err != nil {
		t.Fatalf("NewAugmentedKey: %v", err)
	}

	if aug.N.BigInt(new(big.Int)).Cmp(big.NewInt(16777216)) != 0 {
		t.Errorf("n = %s, want 2^24", aug.N.String())
	}

	wantW3_2 := mustFrHex(t, "0000000000000000b3c4d79d41a917585bfc41088d8daaa78b17ea66b99c90dd")
	if !aug.W3[1].Equal(&wantW3_2) {
		t.Errorf("w3^2 = %s, want %s", aug.W3[1].String(), wantW3_2.String())
	}

	wantW4_2 := mustFrHex(t, "30644e72e131a029b85045b68181585d2833e84879b9709143e1f593f0000000")
	wantW4_3 := mustFrHex(t, "0000000000000000b3c4d79d41a91758cb49c3517c4604a520cff123608fc9cb")
	if !aug.W4[1].Equal(&wantW4_2) {
		t.Errorf("w4^2 = %s, want %s", aug.W4[1].String(), wantW4_2.String())
	}
	if !aug.W4[2].Equal(&wantW4_3) {
		t.Errorf("w4^3 = %s, want %s", aug.W4[2].String(), wantW4_3.String())
	}

	wantW8 := []string{
		"2b337de1c8c14f22ec9b9e2f96afef3652627366f8170a0a948dad4ac1bd5e80",
		"30644e72e131a029048b6e193fd841045cea24f6fd736bec231204708f703636",
		"1d59376149b959ccbd157ac850893a6f07c2d99b3852513ab8d01be8e846a566",
		"30644e72e131a029b85045b68181585d2833e84879b9709143e1f593f0000000",
		"0530d09118705106cbb4a786ead16926d5d174e181a26686af5448492e42a181",
		"0000000000000000b3c4d79d41a91758cb49c3517c4604a520cff123608fc9cb",
		"130b17119778465cfb3acaee30f81dee20710ead41671f568b11d9ab07b95a9b",
	}
	for i, w := range wantW8 {
		want := mustFrHex(t, w)
		if !aug.W8[i].Equal(&want) {
			t.Errorf("w8[%d] = %s, want %s", i, aug.W8[i].String(), want.String())
		}
	}
}
