package fflonk

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// computeFEJ folds the three openings into the three group elements the
// final pairing check consumes (§4.8): F (the batched commitment), E (the
// batched opening value lifted into G1), and J (the W1 quotient commitment
// scaled by the same numerator).
func computeFEJ(c *Challenges, proof *Proof, c0 *bn254.G1Affine, r0, r1, r2, denH1, denH2 fr.Element) (f, e, j bn254.G1Affine) {
	numerator := fr.One()
	for i := range c.H0W8 {
		var diff fr.Element
		diff.Sub(&c.Y, &c.H0W8[i])
		numerator.Mul(&numerator, &diff)
	}

	var quotient1 fr.Element
	quotient1.Mul(&c.Alpha, &numerator)
	quotient1.Mul(&quotient1, &denH1)

	var alphaSq fr.Element
	alphaSq.Mul(&c.Alpha, &c.Alpha)
	var quotient2 fr.Element
	quotient2.Mul(&alphaSq, &numerator)
	quotient2.Mul(&quotient2, &denH2)

	var c1Term, c2Term bn254.G1Affine
	c1Term.ScalarMultiplication(&proof.C1, quotient1.BigInt(new(big.Int)))
	c2Term.ScalarMultiplication(&proof.C2, quotient2.BigInt(new(big.Int)))

	f = c1Term
	f.Add(&f, &c2Term)
	f.Add(&f, c0)

	var rSum fr.Element
	var q1r1, q2r2 fr.Element
	q1r1.Mul(&quotient1, &r1)
	q2r2.Mul(&quotient2, &r2)
	rSum.Add(&r0, &q1r1)
	rSum.Add(&rSum, &q2r2)

	e = g1Generator()
	e.ScalarMultiplication(&e, rSum.BigInt(new(big.Int)))

	j.ScalarMultiplication(&proof.W1, numerator.BigInt(new(big.Int)))

	return f, e, j
}

// checkPairing verifies the two-term pairing equation
// e(F', G2_gen) . e(-W2, X2) == 1, where F' = F - E - J + y*W2 (§4.8). G2_gen
// is the fixed curve constant from g2Generator; X2 comes from the caller's
// verification key, not a hardcoded literal.
func checkPairing(c *Challenges, proof *Proof, x2 *bn254.G2Affine, f, e, j bn254.G1Affine) error {
	var yW2 bn254.G1Affine
	yW2.ScalarMultiplication(&proof.W2, c.Y.BigInt(new(big.Int)))

	fPrime := f
	fPrime.Sub(&fPrime, &e)
	fPrime.Sub(&fPrime, &j)
	fPrime.Add(&fPrime, &yW2)

	var negW2 bn254.G1Affine
	negW2.Neg(&proof.W2)

	g2gen := g2Generator()
	ok, err := bn254.PairingCheck(
		[]bn254.G1Affine{fPrime, negW2},
		[]bn254.G2Affine{g2gen, *x2},
	)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotPairing
	}
	return nil
}
