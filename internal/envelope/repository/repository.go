package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"linguachat/internal/envelope/model"
	"linguachat/pkg/logger"
)

type EnvelopeRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrEnvelopeNotFound = errors.New("envelope not found")

func NewEnvelopeRepository(db *bun.DB, logger logger.Logger) *EnvelopeRepository {
	return &EnvelopeRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *EnvelopeRepository) Insert(ctx context.Context, env *model.Envelope) error {

	_, err := r.db.NewInsert().Model(env).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "envelopeRepo.Insert.Exec")
	}
	return nil
}

func (r *EnvelopeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Envelope, error) {

	env := new(model.Envelope)
	err := r.db.NewSelect().Model(env).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEnvelopeNotFound
		}
		return nil, errors.Wrap(err, "envelopeRepo.GetByID.Scan")
	}
	return env, nil
}

func (r *EnvelopeRepository) ListByRoom(ctx context.Context, roomID uuid.UUID, limit int) ([]model.Envelope, error) {

	var envs []model.Envelope
	q := r.db.NewSelect().
		Model(&envs).
		Where("room_id = ?", roomID).
		Order("sent_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "envelopeRepo.ListByRoom.Scan")
	}
	return envs, nil
}

func (r *EnvelopeRepository) MarkRead(ctx context.Context, messageID uuid.UUID, readerID uuid.UUID) error {

	// condition makes the operation idempotent and a no-op for anyone who
	// is not the designated receiver, including the sender
	_, err := r.db.NewUpdate().
		Model((*model.Envelope)(nil)).
		Set("is_read = true").
		Where("id = ? AND receiver_id = ? AND is_deleted = false", messageID, readerID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "envelopeRepo.MarkRead.Exec")
	}
	return nil
}

func (r *EnvelopeRepository) ScrubCiphertext(ctx context.Context, messageID uuid.UUID, senderID uuid.UUID) (bool, error) {

	res, err := r.db.NewUpdate().
		Model((*model.Envelope)(nil)).
		Set("receiver_content = NULL").
		Set("receiver_ephemeral_key = NULL").
		Set("receiver_iv = NULL").
		Set("self_content = NULL").
		Set("self_ephemeral_key = NULL").
		Set("self_iv = NULL").
		Set("translations = NULL").
		Set("is_deleted = true").
		Set("deleted_at = now()").
		Where("id = ? AND sender_id = ? AND is_deleted = false", messageID, senderID).
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "envelopeRepo.ScrubCiphertext.Exec")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "envelopeRepo.ScrubCiphertext.RowsAffected")
	}
	return affected > 0, nil
}

func (r *EnvelopeRepository) AttachTranslation(ctx context.Context, messageID uuid.UUID, languageCode, translatedText string) error {

	// is_deleted guard in the same statement: a translation racing a
	// soft-delete is discarded rather than resurrecting scrubbed content
	_, err := r.db.NewUpdate().
		Model((*model.Envelope)(nil)).
		Set("translations = coalesce(translations, '{}'::jsonb) || jsonb_build_object(?::text, ?::text)", languageCode, translatedText).
		Where("id = ? AND is_deleted = false", messageID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "envelopeRepo.AttachTranslation.Exec")
	}
	return nil
}
