package fflonk

import (
	"encoding/json"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// proofJSON mirrors the SnarkJS proof.json shape: each G1 point as a
// 3-element [x, y, z] decimal-string array (z must be "1"), and each
// scalar opening as a decimal string. Unknown top-level fields (protocol,
// curve, ...) are tolerated by leaving them out of this struct.
type proofJSON struct {
	Polynomials struct {
		C1 [3]string `json:"C1"`
		C2 [3]string `json:"C2"`
		W1 [3]string `json:"W1"`
		W2 [3]string `json:"W2"`
	} `json:"polynomials"`
	Evaluations struct {
		Ql  string `json:"ql"`
		Qr  string `json:"qr"`
		Qm  string `json:"qm"`
		Qo  string `json:"qo"`
		Qc  string `json:"qc"`
		S1  string `json:"s1"`
		S2  string `json:"s2"`
		S3  string `json:"s3"`
		A   string `json:"a"`
		B   string `json:"b"`
		C   string `json:"c"`
		Z   string `json:"z"`
		Zw  string `json:"zw"`
		T1w string `json:"t1w"`
		T2w string `json:"t2w"`
		Inv string `json:"inv"`
	} `json:"evaluations"`
}

// DecodeProofJSON parses the SnarkJS-shaped proof JSON document (§6.2).
func DecodeProofJSON(data []byte) (*Proof, error) {
	var doc proofJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fflonk: decode proof json: %w", err)
	}

	c1, err := readG1Decimal("c1", doc.Polynomials.C1)
	if err != nil {
		return nil, err
	}
	c2, err := readG1Decimal("c2", doc.Polynomials.C2)
	if err != nil {
		return nil, err
	}
	w1, err := readG1Decimal("w1", doc.Polynomials.W1)
	if err != nil {
		return nil, err
	}
	w2, err := readG1Decimal("w2", doc.Polynomials.W2)
	if err != nil {
		return nil, err
	}

	p := &Proof{C1: c1, C2: c2, W1: w1, W2: w2}

	fields := []struct {
		name string
		dst  *fr.Element
		val  string
	}{
		{"ql", &p.Ql, doc.Evaluations.Ql},
		{"qr", &p.Qr, doc.Evaluations.Qr},
		{"qm", &p.Qm, doc.Evaluations.Qm},
		{"qo", &p.Qo, doc.Evaluations.Qo},
		{"qc", &p.Qc, doc.Evaluations.Qc},
		{"s1", &p.S1, doc.Evaluations.S1},
		{"s2", &p.S2, doc.Evaluations.S2},
		{"s3", &p.S3, doc.Evaluations.S3},
		{"a", &p.A, doc.Evaluations.A},
		{"b", &p.B, doc.Evaluations.B},
		{"c", &p.C, doc.Evaluations.C},
		{"z", &p.Z, doc.Evaluations.Z},
		{"zw", &p.Zw, doc.Evaluations.Zw},
		{"t1w", &p.T1w, doc.Evaluations.T1w},
		{"t2w", &p.T2w, doc.Evaluations.T2w},
		{"inv", &p.Inv, doc.Evaluations.Inv},
	}
	for _, f := range fields {
		v, err := frFromDecimalString(f.name, f.val)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	return p, nil
}

func readG1Decimal(field string, coords [3]string) (bn254.G1Affine, error) {
	if coords[2] != "1" {
		return bn254.G1Affine{}, &DecodeError{Field: field, Kind: NotOnCurve}
	}
	x, err := fqFromDecimalString(field+".x", coords[0])
	if err != nil {
		return bn254.G1Affine{}, err
	}
	y, err := fqFromDecimalString(field+".y", coords[1])
	if err != nil {
		return bn254.G1Affine{}, err
	}
	p := bn254.G1Affine{X: x, Y: y}
	if !p.IsOnCurve() {
		return bn254.G1Affine{}, &DecodeError{Field: field, Kind: NotOnCurve}
	}
	return p, nil
}
