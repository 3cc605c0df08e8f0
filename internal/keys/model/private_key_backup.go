package models

import (
	"time"

	"github.com/google/uuid"
)

// PrivateKeyBackup is a blind store: all three fields are ciphertext the
// client produced, and the server never validates, decrypts or logs them.
// At most one row per user, overwritten wholesale on each upload.
type PrivateKeyBackup struct {
	UserID uuid.UUID `bun:",pk,type:uuid"`

	EncryptedIdentityKey  []byte `bun:",notnull"`
	EncryptedSigningKey   []byte `bun:",notnull"`
	EncryptedSignedPreKey []byte `bun:",notnull"`

	BackedUpAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
