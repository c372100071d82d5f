package fflonk

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Challenges holds the Fiat-Shamir transcript derived from a verification
// key, a proof, and the public input (§4.5). Every value here is a
// deterministic function of those three inputs: recomputing it is how a
// verifier keeps the prover honest about the points it opened its
// polynomials at.
type Challenges struct {
	Beta  fr.Element
	Gamma fr.Element
	Xi    fr.Element
	Zh    fr.Element
	Alpha fr.Element
	Y     fr.Element

	H0W8 [8]fr.Element
	H1W4 [4]fr.Element
	H2W3 [3]fr.Element
	H3W3 [3]fr.Element
}

// deriveChallenges recomputes the full transcript for (augKey, proof,
// public). The schedule and hash inputs must match the SnarkJS/Solidity
// verifier bit-for-bit: nothing here may be reordered or "cleaned up".
func deriveChallenges(augKey *AugmentedKey, proof *Proof, public *big.Int) *Challenges {
	c0x := fqToBigInt(&augKey.C0.X)
	c0y := fqToBigInt(&augKey.C0.Y)
	c1x := fqToBigInt(&proof.C1.X)
	c1y := fqToBigInt(&proof.C1.Y)
	beta := hashToFr(c0x, c0y, public, c1x, c1y)

	gamma := hashToFr(frToBigInt(&beta))

	c2x := fqToBigInt(&proof.C2.X)
	c2y := fqToBigInt(&proof.C2.Y)
	xiSeed := hashToFr(frToBigInt(&gamma), c2x, c2y)

	var xiSeed2, xiSeed3 fr.Element
	xiSeed2.Square(&xiSeed)
	xiSeed3.Mul(&xiSeed2, &xiSeed)

	var h0w8 [8]fr.Element
	h0w8[0] = xiSeed3
	for i := 1; i < 8; i++ {
		h0w8[i].Mul(&xiSeed3, &augKey.W8[i-1])
	}

	var xiSeed6 fr.Element
	xiSeed6.Mul(&xiSeed3, &xiSeed3)

	var h1w4 [4]fr.Element
	h1w4[0] = xiSeed6
	h1w4[1].Mul(&xiSeed6, &augKey.W4[0])
	h1w4[2].Mul(&xiSeed6, &augKey.W4[1])
	h1w4[3].Mul(&xiSeed6, &augKey.W4[2])

	var xiSeed8 fr.Element
	xiSeed8.Mul(&xiSeed6, &xiSeed2)

	var h2w3 [3]fr.Element
	h2w3[0] = xiSeed8
	h2w3[1].Mul(&xiSeed8, &augKey.W3[0])
	h2w3[2].Mul(&xiSeed8, &augKey.W3[1])

	var h3w3Base fr.Element
	h3w3Base.Mul(&xiSeed8, &augKey.Wr)
	var h3w3 [3]fr.Element
	h3w3[0] = h3w3Base
	h3w3[1].Mul(&h3w3Base, &augKey.W3[0])
	h3w3[2].Mul(&h3w3Base, &augKey.W3[1])

	var xi fr.Element
	xi.Mul(&xiSeed8, &xiSeed8)
	xi.Mul(&xi, &xiSeed8)

	var zh fr.Element
	zh.Exp(xi, augKey.N.BigInt(new(big.Int)))
	one := fr.One()
	zh.Sub(&zh, &one)

	alpha := hashToFr(
		frToBigInt(&xiSeed),
		frToBigInt(&proof.Ql), frToBigInt(&proof.Qr), frToBigInt(&proof.Qm), frToBigInt(&proof.Qo), frToBigInt(&proof.Qc),
		frToBigInt(&proof.S1), frToBigInt(&proof.S2), frToBigInt(&proof.S3),
		frToBigInt(&proof.A), frToBigInt(&proof.B), frToBigInt(&proof.C),
		frToBigInt(&proof.Z), frToBigInt(&proof.Zw),
		frToBigInt(&proof.T1w), frToBigInt(&proof.T2w),
	)

	w1x := fqToBigInt(&proof.W1.X)
	w1y := fqToBigInt(&proof.W1.Y)
	y := hashToFr(frToBigInt(&alpha), w1x, w1y)

	return &Challenges{
		Beta:  beta,
		Gamma: gamma,
		Xi:    xi,
		Zh:    zh,
		Alpha: alpha,
		Y:     y,
		H0W8:  h0w8,
		H1W4:  h1w4,
		H2W3:  h2w3,
		H3W3:  h3w3,
	}
}
