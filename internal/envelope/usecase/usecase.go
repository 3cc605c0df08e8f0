package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"linguachat/internal/envelope"
	"linguachat/internal/envelope/model"
	"linguachat/internal/envelope/repository"
	appErrors "linguachat/pkg/errors"
	"linguachat/pkg/logger"
)

type EnvelopeUsecase struct {
	repo   envelope.EnvelopeRepository
	logger logger.Logger
}

func NewEnvelopeUsecase(repo envelope.EnvelopeRepository, logger logger.Logger) *EnvelopeUsecase {
	return &EnvelopeUsecase{repo: repo, logger: logger}
}

func (uc *EnvelopeUsecase) Append(ctx context.Context, cmd envelope.AppendCommand) (*envelope.EnvelopeDTO, error) {
	receiver := model.CipherEnvelope(cmd.Receiver)
	self := model.CipherEnvelope(cmd.Self)
	if !receiver.Complete() || !self.Complete() {
		return nil, appErrors.ErrEmptyEnvelope
	}

	messageType := cmd.MessageType
	if messageType == "" {
		messageType = "text"
	}

	env := &model.Envelope{
		RoomID:       cmd.RoomID,
		SenderID:     cmd.SenderID,
		ReceiverID:   cmd.ReceiverID,
		MessageType:  messageType,
		Receiver:     receiver,
		Self:         self,
		UsedPreKeyID: cmd.UsedPreKeyID,
	}

	if err := uc.repo.Insert(ctx, env); err != nil {
		uc.logger.Error("failed to append envelope", "room_id", cmd.RoomID, "sender_id", cmd.SenderID, "err", err)
		return nil, appErrors.ErrStorageUnavailable
	}

	return toDTO(env), nil
}

func (uc *EnvelopeUsecase) RoomHistory(ctx context.Context, roomID uuid.UUID, limit int) ([]envelope.EnvelopeDTO, error) {
	envs, err := uc.repo.ListByRoom(ctx, roomID, limit)
	if err != nil {
		uc.logger.Error("failed to list room envelopes", "room_id", roomID, "err", err)
		return nil, appErrors.ErrStorageUnavailable
	}

	dtos := make([]envelope.EnvelopeDTO, 0, len(envs))
	for i := range envs {
		dtos = append(dtos, *toDTO(&envs[i]))
	}
	return dtos, nil
}

func (uc *EnvelopeUsecase) MarkRead(ctx context.Context, messageID uuid.UUID, readerID uuid.UUID) error {
	// best-effort: a mark by the sender, on a deleted message, or on an
	// unknown id simply does not match the conditional update
	if err := uc.repo.MarkRead(ctx, messageID, readerID); err != nil {
		uc.logger.Error("failed to mark message read", "message_id", messageID, "err", err)
		return appErrors.ErrStorageUnavailable
	}
	return nil
}

func (uc *EnvelopeUsecase) SoftDelete(ctx context.Context, messageID uuid.UUID, requesterID uuid.UUID) error {
	scrubbed, err := uc.repo.ScrubCiphertext(ctx, messageID, requesterID)
	if err != nil {
		uc.logger.Error("failed to soft-delete message", "message_id", messageID, "err", err)
		return appErrors.ErrStorageUnavailable
	}
	if scrubbed {
		return nil
	}

	// nothing matched: distinguish missing, foreign, and already-deleted
	env, err := uc.repo.GetByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrEnvelopeNotFound) {
			return appErrors.ErrMessageNotFound
		}
		uc.logger.Error("failed to load message for soft-delete", "message_id", messageID, "err", err)
		return appErrors.ErrStorageUnavailable
	}
	if env.SenderID != requesterID {
		return appErrors.ErrNotMessageSender
	}
	// already deleted — one-way operation, repeating it is a no-op
	return nil
}

func (uc *EnvelopeUsecase) AttachTranslation(ctx context.Context, messageID uuid.UUID, languageCode, translatedText string) error {
	if languageCode == "" {
		return appErrors.InvalidArg("language code is required")
	}
	if err := uc.repo.AttachTranslation(ctx, messageID, languageCode, translatedText); err != nil {
		uc.logger.Error("failed to attach translation", "message_id", messageID, "lang", languageCode, "err", err)
		return appErrors.ErrStorageUnavailable
	}
	return nil
}

func toDTO(env *model.Envelope) *envelope.EnvelopeDTO {
	return &envelope.EnvelopeDTO{
		ID:           env.ID,
		RoomID:       env.RoomID,
		SenderID:     env.SenderID,
		ReceiverID:   env.ReceiverID,
		MessageType:  env.MessageType,
		Receiver:     envelope.EnvelopeUpload(env.Receiver),
		Self:         envelope.EnvelopeUpload(env.Self),
		UsedPreKeyID: env.UsedPreKeyID,
		IsRead:       env.IsRead,
		IsDeleted:    env.IsDeleted,
		DeletedAt:    env.DeletedAt,
		Translations: env.Translations,
		SentAt:       env.SentAt,
	}
}
