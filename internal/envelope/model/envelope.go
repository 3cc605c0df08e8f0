package model

import (
	"time"

	"github.com/google/uuid"
)

// CipherEnvelope is one recipient's decryptable view of a message:
// ciphertext, sender ephemeral key, initialization vector. The same value
// type is used for both halves of a message so scrub logic cannot diverge.
type CipherEnvelope struct {
	Content      []byte `bun:"content"`
	EphemeralKey []byte `bun:"ephemeral_key"`
	IV           []byte `bun:"iv"`
}

func (e CipherEnvelope) Complete() bool {
	return len(e.Content) > 0 && len(e.EphemeralKey) > 0 && len(e.IV) > 0
}

func (e CipherEnvelope) Empty() bool {
	return len(e.Content) == 0 && len(e.EphemeralKey) == 0 && len(e.IV) == 0
}

// Envelope stores one message as two independently-decryptable ciphertexts:
// the receiver half and the sender's own-history ("self") half. The server
// cannot verify that the two halves carry the same plaintext; it only stores
// them. Soft-delete scrubs both halves and the translations but keeps
// sender/room/sent_at for ordering and read-receipt reconciliation.
type Envelope struct {
	ID     uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	RoomID uuid.UUID `bun:",notnull,type:uuid"`

	SenderID   uuid.UUID  `bun:",notnull,type:uuid"`
	ReceiverID *uuid.UUID `bun:",type:uuid"` // nil in group rooms

	MessageType string `bun:",notnull,default:'text'"`

	Receiver CipherEnvelope `bun:"embed:receiver_"`
	Self     CipherEnvelope `bun:"embed:self_"`

	// Set only on the message that consumed a one-time prekey
	UsedPreKeyID *uint32 `bun:"used_pre_key_id"`

	IsRead    bool       `bun:",notnull,default:false"`
	IsDeleted bool       `bun:",notnull,default:false"`
	DeletedAt *time.Time `bun:",nullzero"`

	// language code -> translated plaintext, filled in asynchronously;
	// independent of the ciphertext and discarded on soft-delete
	Translations map[string]string `bun:",type:jsonb"`

	SentAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
