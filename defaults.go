package fflonk

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Hex literals for the default SnarkJS/fflonk verification key (§6.5),
// the circuit this verifier was originally built against.
const (
	defaultWHex  = "0c9fabc7845d50d2852e2a0371c6441f145e0db82e8326961c25f1e3e32b045b"
	defaultW3Hex = "30644e72e131a029048b6e193fd84104cc37a73fec2bc5e9b8ca0b2d36636f23"
	defaultW4Hex = "30644e72e131a029048b6e193fd841045cea24f6fd736bec231204708f703636"
	defaultW8Hex = "2b337de1c8c14f22ec9b9e2f96afef3652627366f8170a0a948dad4ac1bd5e80"
	defaultWrHex = "283ce45a2e5b8e4e78f9fbaf5f6a348bfcfaf76dd28e5ca7121b74ef68fdec2e"

	defaultX2X1Hex = "30441fd1b5d3370482c42152a8899027716989a6996c2535bc9f7fee8aaef79e"
	defaultX2X2Hex = "26186a2d65ee4d2f9c9a5b91f86597d35f192cd120caf7e935d8443d1938e23d"
	defaultX2Y1Hex = "054793348f12c0cf5622c340573cb277586319de359ab9389778f689786b1e48"
	defaultX2Y2Hex = "1970ea81dd6992adfbc571effb03503adbbb6a857f578403c6c40e22d65b3c02"

	defaultC0XHex = "10711a639fed66ba6cd6001188b8fe7285cb9bd01afc1f90598223550aa57e36"
	defaultC0YHex = "28c937a4cb758326763015d30fff3568f5cbed932cdc7c411a435d3de04549ef"
)

// DefaultVerificationKey returns the verification key for the reference
// SnarkJS fflonk circuit (power=24, k1=2, k2=3), used by the conformance
// test vectors in §8.
func DefaultVerificationKey() *VerificationKey {
	var x2 bn254.G2Affine
	x2.X.A0 = mustFqHex(defaultX2X1Hex)
	x2.X.A1 = mustFqHex(defaultX2X2Hex)
	x2.Y.A0 = mustFqHex(defaultX2Y1Hex)
	x2.Y.A1 = mustFqHex(defaultX2Y2Hex)

	var c0 bn254.G1Affine
	c0.X = mustFqHex(defaultC0XHex)
	c0.Y = mustFqHex(defaultC0YHex)

	var k1, k2, w, w3, w4, w8, wr fr.Element
	k1.SetUint64(2)
	k2.SetUint64(3)
	w.SetBigInt(mustBigIntHex(defaultWHex))
	w3.SetBigInt(mustBigIntHex(defaultW3Hex))
	w4.SetBigInt(mustBigIntHex(defaultW4Hex))
	w8.SetBigInt(mustBigIntHex(defaultW8Hex))
	wr.SetBigInt(mustBigIntHex(defaultWrHex))

	return &VerificationKey{
		Power: 24,
		K1:    k1,
		K2:    k2,
		W:     w,
		W3:    w3,
		W4:    w4,
		W8:    w8,
		Wr:    wr,
		X2:    x2,
		C0:    c0,
	}
}
