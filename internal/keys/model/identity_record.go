package models

import (
	"time"

	"github.com/google/uuid"
)

type IdentityRecord struct {
	UserID uuid.UUID `bun:",pk,type:uuid"`

	// Ed25519 — authenticates every signed prekey this user uploads
	IdentityPublicKey []byte `bun:",notnull"` // 32 bytes

	// Exactly one active signed prekey per user; rotation replaces it in
	// place and never touches the one-time pool.
	SignedPreKeyID        uint32 `bun:",notnull"` // client-chosen, monotonically assigned
	SignedPreKeyPublicKey []byte `bun:",notnull"` // 32 bytes Curve25519
	SignedPreKeySignature []byte `bun:",notnull"` // 64 bytes — by the identity key

	LastBundleUploadAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
