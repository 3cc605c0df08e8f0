package usecase

import (
	"context"
	"crypto/ed25519"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"linguachat/config"
	"linguachat/internal/keys"
	models "linguachat/internal/keys/model"
	"linguachat/internal/keys/repository"
	appErrors "linguachat/pkg/errors"
	"linguachat/pkg/logger"
	"linguachat/pkg/utils"
)

const curveKeySize = 32 // X25519 public keys

type KeyUsecase struct {
	repo   keys.KeyRepository
	logger logger.Logger
	config config.Config
}

func NewKeyUsecase(repo keys.KeyRepository, logger logger.Logger, config config.Config) *KeyUsecase {
	return &KeyUsecase{repo: repo, logger: logger, config: config}
}

func (uc *KeyUsecase) RegisterBundle(ctx context.Context, cmd keys.RegisterBundleCommand) error {
	if len(cmd.IdentityPublicKey) != ed25519.PublicKeySize {
		return appErrors.ErrInvalidIdentityKey
	}
	if len(cmd.SignedPreKey.PublicKey) != curveKeySize {
		return appErrors.ErrInvalidSignedPreKey
	}

	// pure check against the identity key; nothing is stored on failure
	if !utils.VerifySignedPreKey(cmd.IdentityPublicKey, cmd.SignedPreKey.PublicKey, cmd.SignedPreKey.Signature) {
		return appErrors.ErrInvalidPreKeySignature
	}

	otpks := make([]models.OneTimePreKey, 0, len(cmd.OneTimePreKeys))
	seenKeyIDs := make(map[uint32]bool)
	for _, k := range cmd.OneTimePreKeys {
		if seenKeyIDs[k.KeyID] {
			return appErrors.ErrDuplicatePreKeyID
		}
		seenKeyIDs[k.KeyID] = true

		if len(k.PublicKey) != curveKeySize {
			return appErrors.ErrInvalidOneTimePreKey
		}
		otpks = append(otpks, models.OneTimePreKey{
			UserID:    cmd.UserID,
			PreKeyID:  k.KeyID,
			PublicKey: k.PublicKey,
		})
	}

	rec := &models.IdentityRecord{
		UserID:                cmd.UserID,
		IdentityPublicKey:     cmd.IdentityPublicKey,
		SignedPreKeyID:        cmd.SignedPreKey.KeyID,
		SignedPreKeyPublicKey: cmd.SignedPreKey.PublicKey,
		SignedPreKeySignature: cmd.SignedPreKey.Signature,
	}

	if err := uc.repo.RegisterBundle(ctx, rec, otpks); err != nil {
		uc.logger.Error("failed to register key bundle", "user_id", cmd.UserID, "err", err)
		return appErrors.ErrStorageUnavailable
	}

	return nil
}

// ClaimPreKeyBundle consumes one one-time prekey as a side effect of a
// successful claim. A caller that abandons the request afterwards has still
// consumed it — one-time prekeys are fire and forget once the delete commits.
// Transient storage failures are retried up to the configured budget;
// a missing identity is surfaced immediately.
func (uc *KeyUsecase) ClaimPreKeyBundle(ctx context.Context, targetUserID uuid.UUID) (*keys.PreKeyBundleDTO, error) {
	attempts := uc.config.PreKeys.ClaimRetries
	if attempts < 1 {
		attempts = 1
	}

	var bundle *models.PreKeyBundle
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		bundle, err = uc.repo.FetchPreKeyBundle(ctx, targetUserID)
		if err == nil {
			break
		}
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, appErrors.ErrNoIdentity
		}
		if attempt < attempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * 50 * time.Millisecond):
			}
		}
	}
	if err != nil {
		uc.logger.Error("prekey bundle claim failed after retries", "user_id", targetUserID, "err", err)
		return nil, appErrors.ErrStorageUnavailable
	}

	if bundle.OneTimePreKeyID == nil {
		uc.logger.Warn("one-time prekey pool exhausted, issuing degraded bundle", "user_id", targetUserID)
	} else if remaining, cerr := uc.repo.CountRemainingOneTimePreKeys(ctx, targetUserID); cerr == nil && remaining < uc.config.PreKeys.LowWaterMark {
		uc.logger.Warn("one-time prekey pool below low-water mark",
			"user_id", targetUserID, "remaining", remaining, "low_water_mark", uc.config.PreKeys.LowWaterMark)
	}

	return &keys.PreKeyBundleDTO{
		UserID:                bundle.UserID,
		IdentityKey:           bundle.IdentityKey,
		SignedPreKeyID:        bundle.SignedPreKeyID,
		SignedPreKey:          bundle.SignedPreKey,
		SignedPreKeySignature: bundle.SignedPreKeySignature,
		OneTimePreKeyID:       bundle.OneTimePreKeyID,
		OneTimePreKey:         bundle.OneTimePreKey,
	}, nil
}

func (uc *KeyUsecase) PoolSize(ctx context.Context, userID uuid.UUID) (*keys.PoolStatusDTO, error) {
	remaining, err := uc.repo.CountRemainingOneTimePreKeys(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to count one-time prekeys", "user_id", userID, "err", err)
		return nil, appErrors.ErrStorageUnavailable
	}
	return &keys.PoolStatusDTO{
		Remaining:      remaining,
		NeedsReplenish: remaining < uc.config.PreKeys.LowWaterMark,
	}, nil
}

func (uc *KeyUsecase) DeletePreKey(ctx context.Context, userID uuid.UUID, preKeyID uint32) error {
	if err := uc.repo.DeleteOneTimePreKey(ctx, userID, preKeyID); err != nil {
		uc.logger.Error("failed to delete one-time prekey", "user_id", userID, "pre_key_id", preKeyID, "err", err)
		return appErrors.ErrStorageUnavailable
	}
	return nil
}

func (uc *KeyUsecase) UploadBackup(ctx context.Context, cmd keys.UploadBackupCommand) error {
	if len(cmd.EncryptedIdentityKey) == 0 || len(cmd.EncryptedSigningKey) == 0 || len(cmd.EncryptedSignedPreKey) == 0 {
		return appErrors.ErrEmptyBackupField
	}

	backup := &models.PrivateKeyBackup{
		UserID:                cmd.UserID,
		EncryptedIdentityKey:  cmd.EncryptedIdentityKey,
		EncryptedSigningKey:   cmd.EncryptedSigningKey,
		EncryptedSignedPreKey: cmd.EncryptedSignedPreKey,
	}
	if err := uc.repo.SaveBackup(ctx, backup); err != nil {
		uc.logger.Error("failed to store private key backup", "user_id", cmd.UserID, "err", err)
		return appErrors.ErrStorageUnavailable
	}
	return nil
}

func (uc *KeyUsecase) FetchBackup(ctx context.Context, userID uuid.UUID) (*keys.PrivateKeyBackupDTO, error) {
	backup, err := uc.repo.GetBackup(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBackupNotFound) {
			// expected for users who never backed up; not worth alarming on
			uc.logger.Debug("no private key backup stored", "user_id", userID)
			return nil, appErrors.ErrBackupNotFound
		}
		uc.logger.Error("failed to fetch private key backup", "user_id", userID, "err", err)
		return nil, appErrors.ErrStorageUnavailable
	}

	return &keys.PrivateKeyBackupDTO{
		UserID:                backup.UserID,
		EncryptedIdentityKey:  backup.EncryptedIdentityKey,
		EncryptedSigningKey:   backup.EncryptedSigningKey,
		EncryptedSignedPreKey: backup.EncryptedSignedPreKey,
		BackedUpAt:            backup.BackedUpAt,
	}, nil
}
