package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linguachat/internal/envelope"
	"linguachat/internal/envelope/mocks"
	"linguachat/internal/envelope/model"
	"linguachat/internal/envelope/repository"
	appErrors "linguachat/pkg/errors"
	"linguachat/pkg/logger"
)

func testAppendCommand(roomID, senderID uuid.UUID, receiverID *uuid.UUID) envelope.AppendCommand {
	return envelope.AppendCommand{
		RoomID:      roomID,
		SenderID:    senderID,
		ReceiverID:  receiverID,
		MessageType: "text",
		Receiver: envelope.EnvelopeUpload{
			Content:      []byte("c1"),
			EphemeralKey: []byte("e1"),
			IV:           []byte("iv1"),
		},
		Self: envelope.EnvelopeUpload{
			Content:      []byte("c2"),
			EphemeralKey: []byte("e2"),
			IV:           []byte("iv2"),
		},
	}
}

func TestEnvelopeUsecase_Append(t *testing.T) {
	roomID := uuid.New()
	senderID := uuid.New()
	receiverID := uuid.New()

	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockEnvelopeRepository(ctrl)
		uc := NewEnvelopeUsecase(mockRepo, logger.Logger{})

		msgID := uuid.New()
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, env *model.Envelope) error {
				assert.Equal(t, roomID, env.RoomID)
				assert.Equal(t, senderID, env.SenderID)
				require.NotNil(t, env.ReceiverID)
				assert.Equal(t, receiverID, *env.ReceiverID)
				assert.True(t, env.Receiver.Complete())
				assert.True(t, env.Self.Complete())
				env.ID = msgID
				env.SentAt = time.Now()
				return nil
			})

		dto, err := uc.Append(context.Background(), testAppendCommand(roomID, senderID, &receiverID))
		require.NoError(t, err)
		assert.Equal(t, msgID, dto.ID)
		assert.Equal(t, []byte("c1"), dto.Receiver.Content)
		assert.Equal(t, []byte("c2"), dto.Self.Content)
		assert.False(t, dto.SentAt.IsZero())
	})

	t.Run("group room message has no receiver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockEnvelopeRepository(ctrl)
		uc := NewEnvelopeUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, env *model.Envelope) error {
				assert.Nil(t, env.ReceiverID)
				return nil
			})

		_, err := uc.Append(context.Background(), testAppendCommand(roomID, senderID, nil))
		require.NoError(t, err)
	})

	t.Run("incomplete half rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockEnvelopeRepository(ctrl) // repo must not be touched
		uc := NewEnvelopeUsecase(mockRepo, logger.Logger{})

		cmd := testAppendCommand(roomID, senderID, &receiverID)
		cmd.Self.IV = nil

		_, err := uc.Append(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrEmptyEnvelope)
	})

	t.Run("defaults message type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockEnvelopeRepository(ctrl)
		uc := NewEnvelopeUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, env *model.Envelope) error {
				assert.Equal(t, "text", env.MessageType)
				return nil
			})

		cmd := testAppendCommand(roomID, senderID, &receiverID)
		cmd.MessageType = ""

		_, err := uc.Append(context.Background(), cmd)
		require.NoError(t, err)
	})
}

func TestEnvelopeUsecase_MarkRead(t *testing.T) {
	msgID := uuid.New()
	readerID := uuid.New()

	t.Run("passes through to conditional update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockEnvelopeRepository(ctrl)
		uc := NewEnvelopeUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().MarkRead(gomock.Any(), msgID, readerID).Return(nil)

		require.NoError(t, uc.MarkRead(context.Background(), msgID, readerID))
	})

	t.Run("storage failure surfaces as unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockEnvelopeRepository(ctrl)
		uc := NewEnvelopeUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().MarkRead(gomock.Any(), msgID, readerID).Return(errors.New("connection reset"))

		err := uc.MarkRead(context.Background(), msgID, readerID)
		assert.ErrorIs(t, err, appErrors.ErrStorageUnavailable)
	})
}

func TestEnvelopeUsecase_SoftDelete(t *testing.T) {
	msgID := uuid.New()
	senderID := uuid.New()
	otherID := uuid.New()

	t.Run("sender scrub succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockEnvelopeRepository(ctrl)
		uc := NewEnvelopeUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().ScrubCiphertext(gomock.Any(), msgID, senderID).Return(true, nil)

		require.NoError(t, uc.SoftDelete(context.Background(), msgID, senderID))
	})

	t.Run("non-sender is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockEnvelopeRepository(ctrl)
		uc := NewEnvelopeUsecase(mockRepo, logger.Logger{})

		g := mockRepo.EXPECT()
		g.ScrubCiphertext(gomock.Any(), msgID, otherID).Return(false, nil)
		g.GetByID(gomock.Any(), msgID).Return(&model.Envelope{ID: msgID, SenderID: senderID}, nil)

		err := uc.SoftDelete(context.Background(), msgID, otherID)
		assert.ErrorIs(t, err, appErrors.ErrNotMessageSender)
	})

	t.Run("unknown message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockEnvelopeRepository(ctrl)
		uc := NewEnvelopeUsecase(mockRepo, logger.Logger{})

		g := mockRepo.EXPECT()
		g.ScrubCiphertext(gomock.Any(), msgID, senderID).Return(false, nil)
		g.GetByID(gomock.Any(), msgID).Return(nil, repository.ErrEnvelopeNotFound)

		err := uc.SoftDelete(context.Background(), msgID, senderID)
		assert.ErrorIs(t, err, appErrors.ErrMessageNotFound)
	})

	t.Run("repeat delete is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockEnvelopeRepository(ctrl)
		uc := NewEnvelopeUsecase(mockRepo, logger.Logger{})

		g := mockRepo.EXPECT()
		g.ScrubCiphertext(gomock.Any(), msgID, senderID).Return(false, nil)
		g.GetByID(gomock.Any(), msgID).Return(&model.Envelope{ID: msgID, SenderID: senderID, IsDeleted: true}, nil)

		require.NoError(t, uc.SoftDelete(context.Background(), msgID, senderID))
	})
}

func TestEnvelopeUsecase_AttachTranslation(t *testing.T) {
	msgID := uuid.New()

	t.Run("requires a language code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockEnvelopeRepository(ctrl)
		uc := NewEnvelopeUsecase(mockRepo, logger.Logger{})

		err := uc.AttachTranslation(context.Background(), msgID, "", "hello")
		require.Error(t, err)
	})

	t.Run("passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockEnvelopeRepository(ctrl)
		uc := NewEnvelopeUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().AttachTranslation(gomock.Any(), msgID, "en", "hello").Return(nil)

		require.NoError(t, uc.AttachTranslation(context.Background(), msgID, "en", "hello"))
	})
}
