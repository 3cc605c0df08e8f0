package keys

import (
	"time"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// NOTE: DTOs travel from usecase to handler

type RegisterBundleCommand struct {
	UserID            uuid.UUID
	IdentityPublicKey []byte // Ed25519, 32 bytes
	SignedPreKey      SignedPreKeyUpload
	OneTimePreKeys    []OneTimePreKeyUpload // can be empty (rotation-only upload)
}

type SignedPreKeyUpload struct {
	KeyID     uint32
	PublicKey []byte
	Signature []byte // by the identity Ed25519 private key
}

type OneTimePreKeyUpload struct {
	KeyID     uint32
	PublicKey []byte
}

type UploadBackupCommand struct {
	UserID                uuid.UUID
	EncryptedIdentityKey  []byte
	EncryptedSigningKey   []byte
	EncryptedSignedPreKey []byte
}

type PreKeyBundleDTO struct {
	UserID                uuid.UUID
	IdentityKey           []byte
	SignedPreKeyID        uint32
	SignedPreKey          []byte
	SignedPreKeySignature []byte
	OneTimePreKeyID       *uint32 // nil when the pool was exhausted
	OneTimePreKey         []byte
}

type PoolStatusDTO struct {
	Remaining      int
	NeedsReplenish bool
}

type PrivateKeyBackupDTO struct {
	UserID                uuid.UUID
	EncryptedIdentityKey  []byte
	EncryptedSigningKey   []byte
	EncryptedSignedPreKey []byte
	BackedUpAt            time.Time
}
