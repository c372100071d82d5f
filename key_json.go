package fflonk

import (
	"encoding/json"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// verificationKeyJSON mirrors the SnarkJS verification_key.json shape
// (§6.3). Fields like "protocol", "curve", "nPublic" are accepted and
// ignored by omission from this struct.
type verificationKeyJSON struct {
	Power uint8  `json:"power"`
	K1    string `json:"k1"`
	K2    string `json:"k2"`
	W     string `json:"w"`
	W3    string `json:"w3"`
	W4    string `json:"w4"`
	W8    string `json:"w8"`
	Wr    string `json:"wr"`
	X2    [3][2]string `json:"X_2"`
	C0    [3]string    `json:"C0"`
}

// DecodeVerificationKeyJSON parses the SnarkJS-shaped verification key
// JSON document (§6.3).
func DecodeVerificationKeyJSON(data []byte) (*VerificationKey, error) {
	var doc verificationKeyJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fflonk: decode verification key json: %w", err)
	}

	scalars := []struct {
		name string
		val  string
	}{
		{"k1", doc.K1},
		{"k2", doc.K2},
		{"w", doc.W},
		{"w3", doc.W3},
		{"w4", doc.W4},
		{"w8", doc.W8},
		{"wr", doc.Wr},
	}
	vk := &VerificationKey{Power: doc.Power}
	dests := []*fr.Element{&vk.K1, &vk.K2, &vk.W, &vk.W3, &vk.W4, &vk.W8, &vk.Wr}
	for i := range scalars {
		v, err := frFromDecimalString(scalars[i].name, scalars[i].val)
		if err != nil {
			return nil, err
		}
		*dests[i] = v
	}

	if doc.X2[2][0] != "1" || doc.X2[2][1] != "0" {
		return nil, &DecodeError{Field: "X_2", Kind: NotOnCurve}
	}
	x2x1, err := fqFromDecimalString("X_2[0][0]", doc.X2[0][0])
	if err != nil {
		return nil, err
	}
	x2x2, err := fqFromDecimalString("X_2[0][1]", doc.X2[0][1])
	if err != nil {
		return nil, err
	}
	x2y1, err := fqFromDecimalString("X_2[1][0]", doc.X2[1][0])
	if err != nil {
		return nil, err
	}
	x2y2, err := fqFromDecimalString("X_2[1][1]", doc.X2[1][1])
	if err != nil {
		return nil, err
	}
	vk.X2 = bn254.G2Affine{
		X: bn254.E2{A0: x2x1, A1: x2x2},
		Y: bn254.E2{A0: x2y1, A1: x2y2},
	}
	if !vk.X2.IsOnCurve() {
		return nil, &DecodeError{Field: "X_2", Kind: NotOnCurve}
	}

	if doc.C0[2] != "1" {
		return nil, &DecodeError{Field: "C0", Kind: NotOnCurve}
	}
	c0x, err := fqFromDecimalString("C0.x", doc.C0[0])
	if err != nil {
		return nil, err
	}
	c0y, err := fqFromDecimalString("C0.y", doc.C0[1])
	if err != nil {
		return nil, err
	}
	vk.C0 = bn254.G1Affine{X: c0x, Y: c0y}
	if !vk.C0.IsOnCurve() {
		return nil, &DecodeError{Field: "C0", Kind: NotOnCurve}
	}

	return vk, nil
}
