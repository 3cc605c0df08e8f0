package keys

import (
	"context"

	"github.com/google/uuid"
)

type KeyUsecase interface {
	// Upload/replace identity key + signed prekey + batch of one-time prekeys.
	// The signed prekey signature is verified against the identity key before
	// anything is stored.
	RegisterBundle(ctx context.Context, cmd RegisterBundleCommand) error

	// Returns everything the sender needs to perform X3DH with the target.
	// Consumes one one-time prekey when the pool is non-empty; otherwise the
	// bundle is issued without one (degraded handshake, not an error).
	ClaimPreKeyBundle(ctx context.Context, targetUserID uuid.UUID) (*PreKeyBundleDTO, error)

	// Remaining pool size plus whether it is below the replenishment
	// low-water mark. The owning client is expected to top up via
	// RegisterBundle; the server never fabricates prekeys.
	PoolSize(ctx context.Context, userID uuid.UUID) (*PoolStatusDTO, error)

	// Administrative revocation of a single one-time prekey; idempotent.
	DeletePreKey(ctx context.Context, userID uuid.UUID, preKeyID uint32) error

	// Blind custody of the client-encrypted private key material.
	UploadBackup(ctx context.Context, cmd UploadBackupCommand) error
	FetchBackup(ctx context.Context, userID uuid.UUID) (*PrivateKeyBackupDTO, error)
}
