package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "linguachat/internal/keys/model"
	"linguachat/pkg/logger"
)

type KeyRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrIdentityNotFound = errors.New("identity record not found")
	ErrBackupNotFound   = errors.New("private key backup not found")
)

func NewKeyRepository(db *bun.DB, logger logger.Logger) *KeyRepository {
	return &KeyRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *KeyRepository) RegisterBundle(ctx context.Context, rec *models.IdentityRecord, otpks []models.OneTimePreKey) error {

	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {

		_, err := tx.NewInsert().
			Model(rec).
			On("CONFLICT (user_id) DO UPDATE").
			Set("identity_public_key = EXCLUDED.identity_public_key").
			Set("signed_pre_key_id = EXCLUDED.signed_pre_key_id").
			Set("signed_pre_key_public_key = EXCLUDED.signed_pre_key_public_key").
			Set("signed_pre_key_signature = EXCLUDED.signed_pre_key_signature").
			Set("last_bundle_upload_at = now()").
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "keyRepo.RegisterBundle.UpsertIdentity")
		}

		if len(otpks) > 0 {
			// re-uploading an already present id is a no-op, never a replace
			_, err = tx.NewInsert().
				Model(&otpks).
				On("CONFLICT (user_id, pre_key_id) DO NOTHING").
				Exec(ctx)
			if err != nil {
				return errors.Wrap(err, "keyRepo.RegisterBundle.InsertOneTimePreKeys")
			}
		}

		return nil
	})
}

func (r *KeyRepository) GetIdentityRecord(ctx context.Context, userID uuid.UUID) (*models.IdentityRecord, error) {

	rec := new(models.IdentityRecord)
	err := r.db.NewSelect().Model(rec).Where("user_id = ?", userID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrIdentityNotFound
		}
		return nil, errors.Wrap(err, "keyRepo.GetIdentityRecord.Scan")
	}
	return rec, nil
}

func (r *KeyRepository) CountRemainingOneTimePreKeys(ctx context.Context, userID uuid.UUID) (int, error) {

	count, err := r.db.NewSelect().
		Model((*models.OneTimePreKey)(nil)).
		Where("user_id = ?", userID).
		Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "keyRepo.CountRemainingOneTimePreKeys.Count")
	}
	return count, nil
}

func (r *KeyRepository) DeleteOneTimePreKey(ctx context.Context, userID uuid.UUID, preKeyID uint32) error {

	_, err := r.db.NewDelete().
		Model((*models.OneTimePreKey)(nil)).
		Where("user_id = ? AND pre_key_id = ?", userID, preKeyID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "keyRepo.DeleteOneTimePreKey.Exec")
	}
	return nil
}

// FetchPreKeyBundle reads the identity record and claims the lowest-id
// one-time prekey in one transaction. The claim is a single conditional
// DELETE ... RETURNING scoped by a FOR UPDATE SKIP LOCKED subselect, so two
// concurrent callers can never receive the same prekey and no
// reserved-but-present intermediate state is ever observable. An empty pool
// yields a bundle without a one-time prekey.
func (r *KeyRepository) FetchPreKeyBundle(ctx context.Context, userID uuid.UUID) (*models.PreKeyBundle, error) {

	var bundle models.PreKeyBundle

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var rec models.IdentityRecord

		err := tx.NewSelect().Model(&rec).Where("user_id = ?", userID).Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrIdentityNotFound
			}
			return errors.Wrap(err, "keyRepo.FetchPreKeyBundle.Identity")
		}

		bundle = models.PreKeyBundle{
			UserID:                rec.UserID,
			IdentityKey:           rec.IdentityPublicKey,
			SignedPreKeyID:        rec.SignedPreKeyID,
			SignedPreKey:          rec.SignedPreKeyPublicKey,
			SignedPreKeySignature: rec.SignedPreKeySignature,
		}

		var otpk models.OneTimePreKey
		err = tx.NewRaw(`
			DELETE FROM one_time_pre_keys
			WHERE user_id = ? AND pre_key_id = (
				SELECT pre_key_id FROM one_time_pre_keys
				WHERE user_id = ?
				ORDER BY pre_key_id ASC
				LIMIT 1
				FOR UPDATE SKIP LOCKED
			)
			RETURNING user_id, pre_key_id, public_key, uploaded_at`,
			userID, userID).
			Scan(ctx, &otpk)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// pool exhausted — degraded signed-prekey-only bundle
				return nil
			}
			return errors.Wrap(err, "keyRepo.FetchPreKeyBundle.Claim")
		}

		bundle.OneTimePreKeyID = &otpk.PreKeyID
		bundle.OneTimePreKey = otpk.PublicKey

		return nil
	})

	if err != nil {
		return nil, err
	}
	return &bundle, nil
}

func (r *KeyRepository) SaveBackup(ctx context.Context, backup *models.PrivateKeyBackup) error {

	_, err := r.db.NewInsert().
		Model(backup).
		On("CONFLICT (user_id) DO UPDATE").
		Set("encrypted_identity_key = EXCLUDED.encrypted_identity_key").
		Set("encrypted_signing_key = EXCLUDED.encrypted_signing_key").
		Set("encrypted_signed_pre_key = EXCLUDED.encrypted_signed_pre_key").
		Set("backed_up_at = now()").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "keyRepo.SaveBackup.Exec")
	}
	return nil
}

func (r *KeyRepository) GetBackup(ctx context.Context, userID uuid.UUID) (*models.PrivateKeyBackup, error) {

	backup := new(models.PrivateKeyBackup)
	err := r.db.NewSelect().Model(backup).Where("user_id = ?", userID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBackupNotFound
		}
		return nil, errors.Wrap(err, "keyRepo.GetBackup.Scan")
	}
	return backup, nil
}
