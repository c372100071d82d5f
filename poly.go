package fflonk

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// polynomialEval evaluates, via Lagrange interpolation in barycentric form,
// the unique low-degree polynomial through an opening set's roots at the
// point encoded in base, accumulating onto acc (§4.7). One call handles one
// opening set; the caller chains calls across sets by passing the running
// accumulator back in.
func polynomialEval(base fr.Element, coefficients, roots, inv []fr.Element, acc fr.Element) fr.Element {
	for i, root := range roots {
		h := fr.One()
		var c1Value fr.Element
		for _, c := range coefficients {
			var term fr.Element
			term.Mul(&c, &h)
			c1Value.Add(&c1Value, &term)
			h.Mul(&h, &root)
		}
		var term fr.Element
		term.Mul(&c1Value, &base)
		term.Mul(&term, &inv[i])
		acc.Add(&acc, &term)
	}
	return acc
}

// computePI evaluates the public input polynomial PI(xi) = -l1 * public
// (§4.7.1).
func computePI(l1 fr.Element, public *fr.Element) fr.Element {
	var out fr.Element
	out.Mul(&l1, public)
	out.Neg(&out)
	return out
}

// computeR0 evaluates r0(y) by interpolating C0's eight-point opening set
// (§4.7.2). The coefficient order (ql, qr, qo, qm, qc, s1, s2, s3) is not
// alphabetical: qo precedes qm, matching the wire protocol's Horner layout.
func computeR0(c *Challenges, proof *Proof, liS0Inv []fr.Element) fr.Element {
	var yPow, base fr.Element
	yPow.Exp(c.Y, big.NewInt(8))
	base.Sub(&yPow, &c.Xi)

	coefficients := []fr.Element{proof.Ql, proof.Qr, proof.Qo, proof.Qm, proof.Qc, proof.S1, proof.S2, proof.S3}
	return polynomialEval(base, coefficients, c.H0W8[:], liS0Inv, fr.Element{})
}

// computeR1 evaluates r1(y) by interpolating C1's four-point opening set
// (§4.7.3).
func computeR1(c *Challenges, proof *Proof, pi, zhInv fr.Element, liS1Inv []fr.Element) fr.Element {
	var yPow, base fr.Element
	yPow.Exp(c.Y, big.NewInt(4))
	base.Sub(&yPow, &c.Xi)

	var t0, tmp fr.Element
	t0.Mul(&proof.Ql, &proof.A)
	tmp.Mul(&proof.Qr, &proof.B)
	t0.Add(&t0, &tmp)
	tmp.Mul(&proof.Qm, &proof.A)
	tmp.Mul(&tmp, &proof.B)
	t0.Add(&t0, &tmp)
	tmp.Mul(&proof.Qo, &proof.C)
	t0.Add(&t0, &tmp)
	t0.Add(&t0, &proof.Qc)
	t0.Add(&t0, &pi)
	t0.Mul(&t0, &zhInv)

	coefficients := []fr.Element{proof.A, proof.B, proof.C, t0}
	return polynomialEval(base, coefficients, c.H1W4[:], liS1Inv, fr.Element{})
}

// computeR2 evaluates r2(y) by interpolating C2's two three-point opening
// sets (h2_w3 with z, t1, t2; h3_w3 with the shifted openings zw, t1w, t2w),
// sharing the base term and threading the accumulator across both halves
// (§4.7.4).
func computeR2(c *Challenges, proof *Proof, l1, zhInv fr.Element, w1, k1, k2 *fr.Element, liS2Inv []fr.Element) fr.Element {
	one := fr.One()

	var yPow6, yPow3, xiSq, term2, term3, base fr.Element
	yPow6.Exp(c.Y, big.NewInt(6))
	yPow3.Exp(c.Y, big.NewInt(3))

	var onePlusW1 fr.Element
	onePlusW1.Add(&one, w1)
	term2.Mul(&yPow3, &c.Xi)
	term2.Mul(&term2, &onePlusW1)

	xiSq.Mul(&c.Xi, &c.Xi)
	term3.Mul(&xiSq, w1)

	base.Sub(&yPow6, &term2)
	base.Add(&base, &term3)

	var betaXi fr.Element
	betaXi.Mul(&c.Beta, &c.Xi)

	var t1 fr.Element
	t1.Sub(&proof.Z, &one)
	t1.Mul(&t1, &l1)
	t1.Mul(&t1, &zhInv)

	var betaXiK1, betaXiK2 fr.Element
	betaXiK1.Mul(&betaXi, k1)
	betaXiK2.Mul(&betaXi, k2)

	var left, term fr.Element
	left.Add(&proof.A, &betaXi)
	left.Add(&left, &c.Gamma)
	term.Add(&proof.B, &betaXiK1)
	term.Add(&term, &c.Gamma)
	left.Mul(&left, &term)
	term.Add(&proof.C, &betaXiK2)
	term.Add(&term, &c.Gamma)
	left.Mul(&left, &term)
	left.Mul(&left, &proof.Z)

	var betaS1, betaS2, betaS3 fr.Element
	betaS1.Mul(&c.Beta, &proof.S1)
	betaS2.Mul(&c.Beta, &proof.S2)
	betaS3.Mul(&c.Beta, &proof.S3)

	var right fr.Element
	right.Add(&proof.A, &betaS1)
	right.Add(&right, &c.Gamma)
	term.Add(&proof.B, &betaS2)
	term.Add(&term, &c.Gamma)
	right.Mul(&right, &term)
	term.Add(&proof.C, &betaS3)
	term.Add(&term, &c.Gamma)
	right.Mul(&right, &term)
	right.Mul(&right, &proof.Zw)

	var t2 fr.Element
	t2.Sub(&left, &right)
	t2.Mul(&t2, &zhInv)

	coefficients := []fr.Element{proof.Z, t1, t2}
	gamma := polynomialEval(base, coefficients, c.H2W3[:], liS2Inv[:3], fr.Element{})

	coefficients2 := []fr.Element{proof.Zw, proof.T1w, proof.T2w}
	return polynomialEval(base, coefficients2, c.H3W3[:], liS2Inv[3:], gamma)
}
