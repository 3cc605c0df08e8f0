package utils

import "crypto/ed25519"

// VerifySignedPreKey checks that the signed prekey was signed by the holder
// of the identity key. Pure function, no storage involved.
func VerifySignedPreKey(identityPubKey, signedPreKeyPub, signature []byte) bool {
	if len(identityPubKey) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(identityPubKey, signedPreKeyPub, signature)
}
