package fflonk

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Inverse holds the twenty-one per-verification inverses recovered from a
// single batched inversion (§4.6): the inverted Lagrange-basis denominators
// for each opening set, the two "den_h" cross terms used by the FEJ
// combination, and 1/Zh(xi).
type Inverse struct {
	LiS0 [8]fr.Element
	LiS1 [4]fr.Element
	LiS2 [6]fr.Element
	DenH1 fr.Element
	DenH2 fr.Element
	ZhInv fr.Element
}

func computeLiS0(c *Challenges) [8]fr.Element {
	var den1 fr.Element
	den1.Exp(c.H0W8[0], big.NewInt(6))
	var eight fr.Element
	eight.SetUint64(8)
	den1.Mul(&den1, &eight)

	idx := [8]int{0, 7, 6, 5, 4, 3, 2, 1}
	var out [8]fr.Element
	for i := 0; i < 8; i++ {
		var diff fr.Element
		diff.Sub(&c.Y, &c.H0W8[i])
		out[i].Mul(&den1, &c.H0W8[idx[i]])
		out[i].Mul(&out[i], &diff)
	}
	return out
}

func computeLiS1(c *Challenges) [4]fr.Element {
	var den1 fr.Element
	den1.Mul(&c.H1W4[0], &c.H1W4[0])
	var four fr.Element
	four.SetUint64(4)
	den1.Mul(&den1, &four)

	idx := [4]int{0, 3, 2, 1}
	var out [4]fr.Element
	for i := 0; i < 4; i++ {
		var diff fr.Element
		diff.Sub(&c.Y, &c.H1W4[i])
		out[i].Mul(&den1, &c.H1W4[idx[i]])
		out[i].Mul(&out[i], &diff)
	}
	return out
}

func computeLiS2(c *Challenges, w1 *fr.Element) [6]fr.Element {
	var three fr.Element
	three.SetUint64(3)

	var xiW1, oneMinus fr.Element
	xiW1.Mul(&c.Xi, w1)
	var den10 fr.Element
	den10.Sub(&c.Xi, &xiW1)
	den10.Mul(&den10, &three)
	den10.Mul(&den10, &c.H2W3[0])

	oneMinus.Sub(&xiW1, &c.Xi)
	var den11 fr.Element
	den11.Mul(&oneMinus, &three)
	den11.Mul(&den11, &c.H3W3[0])

	idx0 := [3]int{0, 2, 1}
	idx1 := [3]int{0, 2, 1}

	var out [6]fr.Element
	for i := 0; i < 3; i++ {
		var diff fr.Element
		diff.Sub(&c.Y, &c.H2W3[i])
		out[i].Mul(&den10, &c.H2W3[idx0[i]])
		out[i].Mul(&out[i], &diff)
	}
	for i := 0; i < 3; i++ {
		var diff fr.Element
		diff.Sub(&c.Y, &c.H3W3[i])
		out[3+i].Mul(&den11, &c.H3W3[idx1[i]])
		out[3+i].Mul(&out[3+i], &diff)
	}
	return out
}

func computeEvalL1Base(c *Challenges, n *fr.Element) fr.Element {
	var out, one fr.Element
	one.SetOne()
	out.Sub(&c.Xi, &one)
	out.Mul(&out, n)
	return out
}

func computeDenH1Base(c *Challenges) fr.Element {
	w := new(fr.Element).Sub(&c.Y, &c.H1W4[0])
	for i := 1; i < 4; i++ {
		w.Mul(w, new(fr.Element).Sub(&c.Y, &c.H1W4[i]))
	}
	return *w
}

func computeDenH2Base(c *Challenges) fr.Element {
	w := new(fr.Element).Sub(&c.Y, &c.H2W3[0])
	w.Mul(w, new(fr.Element).Sub(&c.Y, &c.H2W3[1]))
	w.Mul(w, new(fr.Element).Sub(&c.Y, &c.H2W3[2]))
	w.Mul(w, new(fr.Element).Sub(&c.Y, &c.H3W3[0]))
	w.Mul(w, new(fr.Element).Sub(&c.Y, &c.H3W3[1]))
	w.Mul(w, new(fr.Element).Sub(&c.Y, &c.H3W3[2]))
	return *w
}

// computeInverse checks the prover-supplied batched inverse hint against a
// single forward product over twenty-two denominators, then unwinds the
// chain into the twenty-one individual inverses plus L1(xi) (§4.6). Returns
// an *InvalidInverseError if the hint does not match.
func computeInverse(c *Challenges, w1, n *fr.Element, provided fr.Element) (*Inverse, fr.Element, error) {
	denH1Base := computeDenH1Base(c)
	denH2Base := computeDenH2Base(c)

	liS0 := computeLiS0(c)
	liS1 := computeLiS1(c)
	liS2 := computeLiS2(c, w1)
	evalL1Base := computeEvalL1Base(c, n)

	var data [22]fr.Element
	data[0] = c.Zh
	data[1].Mul(&data[0], &denH1Base)
	data[2].Mul(&data[1], &denH2Base)

	cursor := 3
	for _, e := range liS0 {
		data[cursor].Mul(&data[cursor-1], &e)
		cursor++
	}
	for _, e := range liS1 {
		data[cursor].Mul(&data[cursor-1], &e)
		cursor++
	}
	for _, e := range liS2 {
		data[cursor].Mul(&data[cursor-1], &e)
		cursor++
	}
	data[cursor].Mul(&data[cursor-1], &evalL1Base)
	value := data[cursor]

	var check fr.Element
	check.Mul(&value, &provided)
	var one fr.Element
	one.SetOne()
	if !check.Equal(&one) {
		return nil, fr.Element{}, &InvalidInverseError{Provided: provided, Computed: value}
	}

	data[cursor] = provided
	cursor--
	var l1 fr.Element
	l1.Mul(&data[cursor+1], &data[cursor])
	l1.Mul(&l1, &c.Zh)
	data[cursor].Mul(&data[cursor+1], &evalL1Base)
	cursor--

	var liS2Inv [6]fr.Element
	for pos := 5; pos >= 0; pos-- {
		liS2Inv[pos].Mul(&data[cursor+1], &data[cursor])
		data[cursor].Mul(&data[cursor+1], &liS2[pos])
		cursor--
	}
	var liS1Inv [4]fr.Element
	for pos := 3; pos >= 0; pos-- {
		liS1Inv[pos].Mul(&data[cursor+1], &data[cursor])
		data[cursor].Mul(&data[cursor+1], &liS1[pos])
		cursor--
	}
	var liS0Inv [8]fr.Element
	for pos := 7; pos >= 0; pos-- {
		liS0Inv[pos].Mul(&data[cursor+1], &data[cursor])
		data[cursor].Mul(&data[cursor+1], &liS0[pos])
		cursor--
	}

	var denH2 fr.Element
	denH2.Mul(&data[cursor+1], &data[cursor])
	data[cursor].Mul(&data[cursor+1], &denH2Base)
	cursor--

	var denH1 fr.Element
	denH1.Mul(&data[cursor+1], &data[cursor])
	data[cursor].Mul(&data[cursor+1], &denH1Base)
	zhInv := data[cursor]

	return &Inverse{
		LiS0:  liS0Inv,
		LiS1:  liS1Inv,
		LiS2:  liS2Inv,
		DenH1: denH1,
		DenH2: denH2,
		ZhInv: zhInv,
	}, l1, nil
}
