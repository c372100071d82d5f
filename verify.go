package fflonk

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Verify checks proof against vk and the single public input, following the
// eight-step pipeline of §4.4: derive the transcript, validate the batched
// inverse hint, evaluate PI/r0/r1/r2, fold into F/E/J, and check the final
// pairing. public is the raw 256-bit public input; it is reduced mod r only
// where the reference verifier reduces it (§9 note 3) — the transcript hash
// absorbs it unreduced.
func Verify(vk *VerificationKey, proof *Proof, public *big.Int) error {
	augKey, err := NewAugmentedKey(vk)
	if err != nil {
		return err
	}
	challenges := deriveChallenges(augKey, proof, public)

	var publicFr fr.Element
	publicFr.SetBigInt(new(big.Int).Mod(public, fr.Modulus()))

	inv, l1, err := computeInverse(challenges, &augKey.W, &augKey.N, proof.Inv)
	if err != nil {
		return err
	}

	pi := computePI(l1, &publicFr)
	r0 := computeR0(challenges, proof, inv.LiS0[:])
	r1 := computeR1(challenges, proof, pi, inv.ZhInv, inv.LiS1[:])
	r2 := computeR2(challenges, proof, l1, inv.ZhInv, &augKey.W, &augKey.K1, &augKey.K2, inv.LiS2[:])

	f, e, j := computeFEJ(challenges, proof, &augKey.C0, r0, r1, r2, inv.DenH1, inv.DenH2)

	return checkPairing(challenges, proof, &augKey.X2, f, e, j)
}
