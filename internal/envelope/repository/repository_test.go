package repository

import (
	"context"
	"crypto/rand"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"linguachat/internal/envelope/model"
	"linguachat/pkg/logger"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("linguachat"),
		postgres.WithUsername("linguachat"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connection string: %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	if _, err := testDB.NewCreateTable().Model((*model.Envelope)(nil)).IfNotExists().Exec(ctx); err != nil {
		testDB.Close()
		log.Fatalf("failed to create envelopes table: %v", err)
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func cleanupEnvelopes(t *testing.T) {
	t.Helper()
	_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE envelopes`)
	require.NoError(t, err)
}

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func testEnvelope(t *testing.T, roomID, senderID uuid.UUID, receiverID *uuid.UUID) *model.Envelope {
	t.Helper()
	return &model.Envelope{
		RoomID:      roomID,
		SenderID:    senderID,
		ReceiverID:  receiverID,
		MessageType: "text",
		Receiver: model.CipherEnvelope{
			Content:      randomBytes(t, 64),
			EphemeralKey: randomBytes(t, 32),
			IV:           randomBytes(t, 12),
		},
		Self: model.CipherEnvelope{
			Content:      randomBytes(t, 64),
			EphemeralKey: randomBytes(t, 32),
			IV:           randomBytes(t, 12),
		},
	}
}

func Test_InsertAndRoomOrdering(t *testing.T) {
	defer cleanupEnvelopes(t)

	repo := NewEnvelopeRepository(testDB, logger.Logger{})
	roomID := uuid.New()
	senderID := uuid.New()
	receiverID := uuid.New()

	var inserted []uuid.UUID
	for i := 0; i < 3; i++ {
		env := testEnvelope(t, roomID, senderID, &receiverID)
		require.NoError(t, repo.Insert(t.Context(), env))
		require.NotEqual(t, uuid.Nil, env.ID)
		require.False(t, env.SentAt.IsZero(), "sent_at should be assigned at insert")
		inserted = append(inserted, env.ID)
		time.Sleep(2 * time.Millisecond)
	}

	envs, err := repo.ListByRoom(t.Context(), roomID, 0)
	require.NoError(t, err)
	require.Len(t, envs, 3)
	for i, env := range envs {
		assert.Equal(t, inserted[i], env.ID, "room history must preserve insertion order")
	}

	// another room stays empty
	other, err := repo.ListByRoom(t.Context(), uuid.New(), 0)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func Test_MarkRead(t *testing.T) {
	defer cleanupEnvelopes(t)

	repo := NewEnvelopeRepository(testDB, logger.Logger{})
	roomID := uuid.New()
	senderID := uuid.New()
	receiverID := uuid.New()

	env := testEnvelope(t, roomID, senderID, &receiverID)
	require.NoError(t, repo.Insert(t.Context(), env))

	t.Run("sender marking own message is a no-op", func(t *testing.T) {
		require.NoError(t, repo.MarkRead(t.Context(), env.ID, senderID))

		got, err := repo.GetByID(t.Context(), env.ID)
		require.NoError(t, err)
		assert.False(t, got.IsRead)
	})

	t.Run("receiver mark takes effect and is idempotent", func(t *testing.T) {
		require.NoError(t, repo.MarkRead(t.Context(), env.ID, receiverID))
		require.NoError(t, repo.MarkRead(t.Context(), env.ID, receiverID))

		got, err := repo.GetByID(t.Context(), env.ID)
		require.NoError(t, err)
		assert.True(t, got.IsRead)
	})

	t.Run("unknown message is a no-op", func(t *testing.T) {
		require.NoError(t, repo.MarkRead(t.Context(), uuid.New(), receiverID))
	})
}

func Test_ScrubCiphertext(t *testing.T) {
	defer cleanupEnvelopes(t)

	repo := NewEnvelopeRepository(testDB, logger.Logger{})
	roomID := uuid.New()
	senderID := uuid.New()
	receiverID := uuid.New()

	env := testEnvelope(t, roomID, senderID, &receiverID)
	require.NoError(t, repo.Insert(t.Context(), env))
	require.NoError(t, repo.AttachTranslation(t.Context(), env.ID, "en", "hello"))

	t.Run("non-sender cannot scrub", func(t *testing.T) {
		scrubbed, err := repo.ScrubCiphertext(t.Context(), env.ID, receiverID)
		require.NoError(t, err)
		assert.False(t, scrubbed)

		got, err := repo.GetByID(t.Context(), env.ID)
		require.NoError(t, err)
		assert.False(t, got.IsDeleted)
		assert.True(t, got.Receiver.Complete(), "envelope must be untouched")
		assert.True(t, got.Self.Complete())
	})

	t.Run("sender scrub clears both halves irreversibly", func(t *testing.T) {
		scrubbed, err := repo.ScrubCiphertext(t.Context(), env.ID, senderID)
		require.NoError(t, err)
		assert.True(t, scrubbed)

		got, err := repo.GetByID(t.Context(), env.ID)
		require.NoError(t, err)
		assert.True(t, got.IsDeleted)
		require.NotNil(t, got.DeletedAt)
		assert.True(t, got.Receiver.Empty())
		assert.True(t, got.Self.Empty())
		assert.Empty(t, got.Translations)

		// routing metadata survives for ordering and reconciliation
		assert.Equal(t, senderID, got.SenderID)
		assert.Equal(t, roomID, got.RoomID)
		assert.False(t, got.SentAt.IsZero())
	})

	t.Run("repeat scrub matches nothing", func(t *testing.T) {
		scrubbed, err := repo.ScrubCiphertext(t.Context(), env.ID, senderID)
		require.NoError(t, err)
		assert.False(t, scrubbed)
	})
}

func Test_AttachTranslation(t *testing.T) {
	defer cleanupEnvelopes(t)

	repo := NewEnvelopeRepository(testDB, logger.Logger{})
	roomID := uuid.New()
	senderID := uuid.New()
	receiverID := uuid.New()

	env := testEnvelope(t, roomID, senderID, &receiverID)
	require.NoError(t, repo.Insert(t.Context(), env))

	t.Run("insert and overwrite per language", func(t *testing.T) {
		require.NoError(t, repo.AttachTranslation(t.Context(), env.ID, "en", "hello"))
		require.NoError(t, repo.AttachTranslation(t.Context(), env.ID, "vi", "xin chào"))
		require.NoError(t, repo.AttachTranslation(t.Context(), env.ID, "en", "hello there"))

		got, err := repo.GetByID(t.Context(), env.ID)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"en": "hello there", "vi": "xin chào"}, got.Translations)
	})

	t.Run("unknown message is a no-op", func(t *testing.T) {
		require.NoError(t, repo.AttachTranslation(t.Context(), uuid.New(), "en", "hello"))
	})

	t.Run("translation after soft-delete is discarded", func(t *testing.T) {
		scrubbed, err := repo.ScrubCiphertext(t.Context(), env.ID, senderID)
		require.NoError(t, err)
		require.True(t, scrubbed)

		require.NoError(t, repo.AttachTranslation(t.Context(), env.ID, "fr", "bonjour"))

		got, err := repo.GetByID(t.Context(), env.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Translations, "soft-delete wins the race")
	})
}
