package fflonk

import (
	"encoding/hex"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

// mustFqHex decodes a 64-character hex string into a canonical Fq element.
// Panics on malformed input: every call site below is a compile-time
// literal, so failure here means the constant table itself is broken.
func mustFqHex(s string) fp.Element {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("fflonk: malformed field constant: " + err.Error())
	}
	var e fp.Element
	e.SetBytes(b)
	return e
}

// mustBigIntHex decodes a hex string into a *big.Int. Panics on malformed
// input, same rationale as mustFqHex.
func mustBigIntHex(s string) *big.Int {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("fflonk: malformed field constant: " + err.Error())
	}
	return new(big.Int).SetBytes(b)
}

// g1Generator returns the canonical BN254 G1 generator (1, 2), used as the
// base point for the E commitment in §4.8.
func g1Generator() bn254.G1Affine {
	var g bn254.G1Affine
	g.X.SetOne()
	g.Y.SetUint64(2)
	return g
}

// Hex literals for the fixed BN254 G2 generator used in the final pairing
// check (§6.4). This is a curve constant, independent of any verification
// key.
const (
	g2GenX1Hex = "1800deef121f1e76426a00665e5c4479674322d4f75edadd46debd5cd992f6ed"
	g2GenX2Hex = "198e9393920d483a7260bfb731fb5d25f1aa493335a9e71297e485b7aef312c2"
	g2GenY1Hex = "12c85ea5db8c6deb4aab71808dcb408fe3d1e7690c43d37b4ce6cc0166fa7daa"
	g2GenY2Hex = "090689d0585ff075ec9e99ad690c3395bc4b313370b38ef355acdadcd122975b"
)

// g2Generator returns the fixed BN254 G2 generator used on the left-hand
// side of the pairing product in §4.8.
func g2Generator() bn254.G2Affine {
	var g bn254.G2Affine
	g.X.A0 = mustFqHex(g2GenX1Hex)
	g.X.A1 = mustFqHex(g2GenX2Hex)
	g.Y.A0 = mustFqHex(g2GenY1Hex)
	g.Y.A1 = mustFqHex(g2GenY2Hex)
	return g
}
