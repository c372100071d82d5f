package fflonk

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// frFromBytes decodes 32 big-endian bytes as a canonical Fr element,
// rejecting any value >= r (the scalar field modulus).
func frFromBytes(field string, b []byte) (fr.Element, error) {
	v := new(big.Int).SetBytes(b)
	if v.Cmp(fr.Modulus()) >= 0 {
		return fr.Element{}, &DecodeError{Field: field, Kind: NotMember}
	}
	var e fr.Element
	e.SetBigInt(v)
	return e, nil
}

// fqFromBytes decodes 32 big-endian bytes as a canonical Fq (base field)
// element, rejecting any value >= q.
func fqFromBytes(field string, b []byte) (fp.Element, error) {
	v := new(big.Int).SetBytes(b)
	if v.Cmp(fp.Modulus()) >= 0 {
		return fp.Element{}, &DecodeError{Field: field, Kind: NotMember}
	}
	var e fp.Element
	e.SetBigInt(v)
	return e, nil
}

// frToBytes encodes an Fr element as 32 big-endian bytes (its canonical
// residue, not its internal Montgomery representation).
func frToBytes(e *fr.Element) []byte {
	buf := make([]byte, 32)
	e.BigInt(new(big.Int)).FillBytes(buf)
	return buf
}

// frToBigInt returns the canonical residue of an Fr element as a *big.Int,
// the shape the hash absorber (§4.1) consumes.
func frToBigInt(e *fr.Element) *big.Int {
	return e.BigInt(new(big.Int))
}

// fqToBigInt returns the canonical residue of an Fq element as a *big.Int.
func fqToBigInt(e *fp.Element) *big.Int {
	return e.BigInt(new(big.Int))
}

// frFromDecimalString parses a base-10 scalar string (the SnarkJS/JSON wire
// representation) into a canonical Fr element.
func frFromDecimalString(field, s string) (fr.Element, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fr.Element{}, &DecodeError{Field: field, Kind: NotMember}
	}
	if v.Sign() < 0 || v.Cmp(fr.Modulus()) >= 0 {
		return fr.Element{}, &DecodeError{Field: field, Kind: NotMember}
	}
	var e fr.Element
	e.SetBigInt(v)
	return e, nil
}

// fqFromDecimalString parses a base-10 coordinate string into a canonical Fq
// element.
func fqFromDecimalString(field, s string) (fp.Element, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fp.Element{}, &DecodeError{Field: field, Kind: NotMember}
	}
	if v.Sign() < 0 || v.Cmp(fp.Modulus()) >= 0 {
		return fp.Element{}, &DecodeError{Field: field, Kind: NotMember}
	}
	var e fp.Element
	e.SetBigInt(v)
	return e, nil
}
