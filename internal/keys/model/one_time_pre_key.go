package models

import (
	"time"

	"github.com/google/uuid"
)

// OneTimePreKey rows exist only while unconsumed: claiming one deletes the
// row, so a given (user_id, pre_key_id) can be handed out at most once.
type OneTimePreKey struct {
	UserID   uuid.UUID `bun:",pk,type:uuid"`
	PreKeyID uint32    `bun:",pk"`

	PublicKey  []byte    `bun:",notnull"` // 32 bytes Curve25519
	UploadedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
