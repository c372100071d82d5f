package fflonk

import (
	"encoding/hex"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// proofByteLen is the size of the raw wire encoding: 24 32-byte big-endian
// words (§6.2).
const proofByteLen = 24 * 32

// Proof is a decoded fflonk proof: four G1 commitments followed by fifteen
// scalar openings and the prover-supplied batched-inverse hint.
type Proof struct {
	C1 bn254.G1Affine
	C2 bn254.G1Affine
	W1 bn254.G1Affine
	W2 bn254.G1Affine

	Ql  fr.Element
	Qr  fr.Element
	Qm  fr.Element
	Qo  fr.Element
	Qc  fr.Element
	S1  fr.Element
	S2  fr.Element
	S3  fr.Element
	A   fr.Element
	B   fr.Element
	C   fr.Element
	Z   fr.Element
	Zw  fr.Element
	T1w fr.Element
	T2w fr.Element
	Inv fr.Element
}

// DecodeProofBytes parses the 768-byte raw wire form (§6.2).
func DecodeProofBytes(data []byte) (*Proof, error) {
	if len(data) != proofByteLen {
		return nil, &DecodeError{Field: "proof", Kind: SizeMismatch}
	}

	word := func(i int) []byte { return data[i*32 : (i+1)*32] }

	c1, err := readG1("c1", word(0), word(1))
	if err != nil {
		return nil, err
	}
	c2, err := readG1("c2", word(2), word(3))
	if err != nil {
		return nil, err
	}
	w1, err := readG1("w1", word(4), word(5))
	if err != nil {
		return nil, err
	}
	w2, err := readG1("w2", word(6), word(7))
	if err != nil {
		return nil, err
	}

	scalarNames := []string{"ql", "qr", "qm", "qo", "qc", "s1", "s2", "s3",
		"a", "b", "c", "z", "zw", "t1w", "t2w", "inv"}
	scalars := make([]fr.Element, len(scalarNames))
	for i, name := range scalarNames {
		s, err := frFromBytes(name, word(8+i))
		if err != nil {
			return nil, err
		}
		scalars[i] = s
	}

	return &Proof{
		C1: c1, C2: c2, W1: w1, W2: w2,
		Ql: scalars[0], Qr: scalars[1], Qm: scalars[2], Qo: scalars[3], Qc: scalars[4],
		S1: scalars[5], S2: scalars[6], S3: scalars[7],
		A: scalars[8], B: scalars[9], C: scalars[10],
		Z: scalars[11], Zw: scalars[12], T1w: scalars[13], T2w: scalars[14], Inv: scalars[15],
	}, nil
}

// DecodeProofHex parses the hex wire form, accepting an optional "0x" prefix.
func DecodeProofHex(s string) (*Proof, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, &DecodeError{Field: "proof", Kind: SizeMismatch}
	}
	return DecodeProofBytes(data)
}

// Bytes re-encodes the proof into the 768-byte raw wire form, the inverse of
// DecodeProofBytes (§8 property 1, round-trip).
func (p *Proof) Bytes() []byte {
	out := make([]byte, 0, proofByteLen)
	appendG1 := func(pt *bn254.G1Affine) {
		xb := make([]byte, 32)
		fqToBigInt(&pt.X).FillBytes(xb)
		out = append(out, xb...)
		yb := make([]byte, 32)
		fqToBigInt(&pt.Y).FillBytes(yb)
		out = append(out, yb...)
	}
	appendG1(&p.C1)
	appendG1(&p.C2)
	appendG1(&p.W1)
	appendG1(&p.W2)

	scalars := []*fr.Element{&p.Ql, &p.Qr, &p.Qm, &p.Qo, &p.Qc, &p.S1, &p.S2, &p.S3,
		&p.A, &p.B, &p.C, &p.Z, &p.Zw, &p.T1w, &p.T2w, &p.Inv}
	for _, s := range scalars {
		out = append(out, frToBytes(s)...)
	}
	return out
}

func readG1(field string, xb, yb []byte) (bn254.G1Affine, error) {
	x, err := fqFromBytes(field+".x", xb)
	if err != nil {
		return bn254.G1Affine{}, err
	}
	y, err := fqFromBytes(field+".y", yb)
	if err != nil {
		return bn254.G1Affine{}, err
	}
	p := bn254.G1Affine{X: x, Y: y}
	if !p.IsOnCurve() {
		return bn254.G1Affine{}, &DecodeError{Field: field, Kind: NotOnCurve}
	}
	return p, nil
}

