package infrastructure

import (
	"context"
	"os"
	"testing"

	"resume-builder/internal/draft"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSlot(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	client, err := NewRedisClient(ctx, addr, os.Getenv("REDIS_PWD"), 0)
	require.NoError(t, err)
	defer client.Close()

	key := "resume-draft-test-" + uuid.NewString()
	defer client.Del(ctx, key)
	slot := NewRedisSlot(client, key)

	_, err = slot.Read(ctx)
	assert.ErrorIs(t, err, draft.ErrSlotEmpty)

	require.NoError(t, slot.Write(ctx, []byte(`{"summary":"x"}`)))
	got, err := slot.Read(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"summary":"x"}`, string(got))
}
