package keys

import (
	"context"

	"github.com/google/uuid"

	models "linguachat/internal/keys/model"
)

type KeyRepository interface {
	// Registers/rotates the identity record and inserts the supplied
	// one-time prekeys in a single transaction. Prekey ids already present
	// for the user are skipped (idempotent re-upload).
	RegisterBundle(ctx context.Context, rec *models.IdentityRecord, otpks []models.OneTimePreKey) error

	GetIdentityRecord(ctx context.Context, userID uuid.UUID) (*models.IdentityRecord, error)

	CountRemainingOneTimePreKeys(ctx context.Context, userID uuid.UUID) (int, error)
	// Administrative revocation; no-op if the prekey is already gone.
	DeleteOneTimePreKey(ctx context.Context, userID uuid.UUID, preKeyID uint32) error

	// Atomically removes the lowest-id one-time prekey (if any) and returns
	// the full bundle. Concurrent calls can never claim the same prekey.
	FetchPreKeyBundle(ctx context.Context, userID uuid.UUID) (*models.PreKeyBundle, error)

	SaveBackup(ctx context.Context, backup *models.PrivateKeyBackup) error
	GetBackup(ctx context.Context, userID uuid.UUID) (*models.PrivateKeyBackup, error)
}
