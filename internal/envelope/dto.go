package envelope

import (
	"time"

	"github.com/google/uuid"
)

type AppendCommand struct {
	RoomID      uuid.UUID
	SenderID    uuid.UUID
	ReceiverID  *uuid.UUID // nil in group rooms
	MessageType string

	Receiver EnvelopeUpload // for the receiver's keys
	Self     EnvelopeUpload // sender's own-history copy

	// Present only on the handshake message that consumed a one-time prekey
	UsedPreKeyID *uint32
}

type EnvelopeUpload struct {
	Content      []byte
	EphemeralKey []byte
	IV           []byte
}

type EnvelopeDTO struct {
	ID          uuid.UUID
	RoomID      uuid.UUID
	SenderID    uuid.UUID
	ReceiverID  *uuid.UUID
	MessageType string

	Receiver EnvelopeUpload
	Self     EnvelopeUpload

	UsedPreKeyID *uint32

	IsRead       bool
	IsDeleted    bool
	DeletedAt    *time.Time
	Translations map[string]string
	SentAt       time.Time
}
