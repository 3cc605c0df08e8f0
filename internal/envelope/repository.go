package envelope

import (
	"context"

	"github.com/google/uuid"

	"linguachat/internal/envelope/model"
)

type EnvelopeRepository interface {
	Insert(ctx context.Context, env *model.Envelope) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Envelope, error)
	// Insertion order per room, oldest first.
	ListByRoom(ctx context.Context, roomID uuid.UUID, limit int) ([]model.Envelope, error)

	// Conditional single-row update: takes effect only when readerID is the
	// designated receiver and the message is not deleted. Idempotent.
	MarkRead(ctx context.Context, messageID uuid.UUID, readerID uuid.UUID) error

	// Conditional scrub: clears both cipher halves and the translations, sets
	// is_deleted/deleted_at, only when senderID authored the message and it
	// is not already deleted. Reports whether a row was scrubbed.
	ScrubCiphertext(ctx context.Context, messageID uuid.UUID, senderID uuid.UUID) (bool, error)

	// Inserts/overwrites one translations entry unless the message has been
	// deleted (soft-delete wins the race).
	AttachTranslation(ctx context.Context, messageID uuid.UUID, languageCode, translatedText string) error
}
