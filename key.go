package fflonk

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// VerificationKey parameterizes a single fflonk circuit instance: the
// evaluation-domain size (as a power of two), the two coset shift factors,
// the roots of unity used to build the opening sets, and the two
// fixed commitments (C0, the first-round setup commitment, and X2, the
// trusted-setup G2 element).
type VerificationKey struct {
	Power uint8
	K1    fr.Element
	K2    fr.Element
	W     fr.Element
	W3    fr.Element
	W4    fr.Element
	W8    fr.Element
	Wr    fr.Element
	X2    bn254.G2Affine
	C0    bn254.G1Affine
}

// AugmentedKey caches the per-verification root-of-unity power tables
// derived from a VerificationKey (§4.3). Verify takes a VerificationKey and
// builds a fresh AugmentedKey on every call; it does not accept or reuse a
// previously built one.
type AugmentedKey struct {
	N    fr.Element
	K1   fr.Element
	K2   fr.Element
	W    fr.Element
	W3   [2]fr.Element
	W4   [3]fr.Element
	W8   [7]fr.Element
	Wr   fr.Element
	X2   bn254.G2Affine
	C0   bn254.G1Affine
}

// NewAugmentedKey derives the augmented key for vk: n = 2^power, and the
// w3/w4/w8 power tables built by repeated multiplication. It cross-checks
// that w actually has multiplicative order n — i.e. that the declared
// power field agrees with the root of unity the key carries — returning a
// DecodeError if w^n != 1 or w^(n/2) == 1.
func NewAugmentedKey(vk *VerificationKey) (*AugmentedKey, error) {
	nBig := new(big.Int).Lsh(big.NewInt(1), uint(vk.Power))
	var n fr.Element
	n.SetBigInt(nBig)

	var check, one fr.Element
	one.SetOne()
	check.Exp(vk.W, nBig)
	if !check.Equal(&one) {
		return nil, &DecodeError{Field: "w", Kind: NotMember}
	}
	check.Exp(vk.W, new(big.Int).Rsh(nBig, 1))
	if check.Equal(&one) {
		return nil, &DecodeError{Field: "w", Kind: NotMember}
	}

	var w3 [2]fr.Element
	w3[0] = vk.W3
	w3[1].Mul(&vk.W3, &vk.W3)

	var w4 [3]fr.Element
	w4[0] = vk.W4
	w4[1].Mul(&vk.W4, &vk.W4)
	w4[2].Mul(&w4[1], &vk.W4)

	var w8 [7]fr.Element
	w8[0] = vk.W8
	for i := 1; i < 7; i++ {
		w8[i].Mul(&w8[i-1], &vk.W8)
	}

	return &AugmentedKey{
		N:  n,
		K1: vk.K1,
		K2: vk.K2,
		W:  vk.W,
		W3: w3,
		W4: w4,
		W8: w8,
		Wr: vk.Wr,
		X2: vk.X2,
		C0: vk.C0,
	}, nil
}
