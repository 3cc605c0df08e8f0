package envelope

import (
	"context"

	"github.com/google/uuid"
)

type EnvelopeUsecase interface {
	// Persists one message as its two cipher halves. Callers are trusted to
	// have authorized the sender for the room (ConversationGateway contract).
	Append(ctx context.Context, cmd AppendCommand) (*EnvelopeDTO, error)

	// Per-room history in insertion order.
	RoomHistory(ctx context.Context, roomID uuid.UUID, limit int) ([]EnvelopeDTO, error)

	// Idempotent; marks by anyone but the designated receiver (including the
	// sender) are silently ignored, as are marks on deleted/unknown messages.
	MarkRead(ctx context.Context, messageID uuid.UUID, readerID uuid.UUID) error

	// Sender-only, one-way. Scrubs ciphertext and translations irreversibly;
	// routing metadata survives for downstream consumers.
	SoftDelete(ctx context.Context, messageID uuid.UUID, requesterID uuid.UUID) error

	// Best-effort enrichment; attaching to a deleted or unknown message is a
	// silent no-op.
	AttachTranslation(ctx context.Context, messageID uuid.UUID, languageCode, translatedText string) error
}
