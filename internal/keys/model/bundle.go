package models

import "github.com/google/uuid"

// PreKeyBundle is everything a handshake initiator needs for X3DH.
// OneTimePreKeyID is nil when the pool was empty at claim time (degraded
// signed-prekey-only mode).
type PreKeyBundle struct {
	UserID                uuid.UUID
	IdentityKey           []byte
	SignedPreKeyID        uint32
	SignedPreKey          []byte
	SignedPreKeySignature []byte
	OneTimePreKeyID       *uint32
	OneTimePreKey         []byte
}
