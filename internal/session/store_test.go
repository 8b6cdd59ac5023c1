package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightup/admin-gateway/internal/models"
)

type memoryKV struct {
	values map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{values: map[string]string{}}
}

func (m *memoryKV) Get(ctx context.Context, key string) (string, error) {
	val, ok := m.values[key]
	if !ok {
		return "", ErrNoSession
	}
	return val, nil
}

func (m *memoryKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.values[key] = value
	return nil
}

func (m *memoryKV) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

func testUser() models.User {
	return models.User{ID: 1, Name: "Admin", Username: "admin@test.com", Role: models.RoleAdmin, IsActive: true}
}

func TestStoreCreateAndRestore(t *testing.T) {
	kv := newMemoryKV()
	store := NewStore(kv, time.Hour, nil)
	token := signedToken(t, jwt.MapClaims{"sub": "1", "exp": time.Now().Add(time.Hour).Unix()})

	created, err := store.Create(context.Background(), token, testUser())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Len(t, kv.values, 2)

	restored, err := store.Restore(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, token, restored.Token)
	assert.Equal(t, int64(1), restored.User.ID)
	assert.Equal(t, "Admin", restored.User.Name)
}

func TestStoreRestoreExpiredTokenClearsKeys(t *testing.T) {
	kv := newMemoryKV()
	store := NewStore(kv, time.Hour, nil)
	token := signedToken(t, jwt.MapClaims{"sub": "1", "exp": time.Now().Add(time.Hour).Unix()})

	created, err := store.Create(context.Background(), token, testUser())
	require.NoError(t, err)

	// Move the clock past the token's expiry.
	store.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	restored, err := store.Restore(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, restored)
	assert.Empty(t, kv.values)
}

func TestStoreRestoreMalformedTokenClearsKeys(t *testing.T) {
	kv := newMemoryKV()
	store := NewStore(kv, time.Hour, nil)

	kv.values[tokenKey("sess")] = "garbage"
	kv.values[userKey("sess")] = `{"id":1}`

	restored, err := store.Restore(context.Background(), "sess")
	require.NoError(t, err)
	assert.Nil(t, restored)
	assert.Empty(t, kv.values)
}

func TestStoreRestoreUnknownSession(t *testing.T) {
	store := NewStore(newMemoryKV(), time.Hour, nil)

	restored, err := store.Restore(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestStoreCreateAcceptsOpaqueToken(t *testing.T) {
	kv := newMemoryKV()
	store := NewStore(kv, time.Hour, nil)

	created, err := store.Create(context.Background(), "abc.def.ghi", testUser())
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", kv.values[tokenKey(created.ID)])

	// An undecodable token is stored fine but can never be restored.
	restored, err := store.Restore(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, restored)
	assert.Empty(t, kv.values)
}

func TestStoreClearRemovesBothKeys(t *testing.T) {
	kv := newMemoryKV()
	store := NewStore(kv, time.Hour, nil)
	token := signedToken(t, jwt.MapClaims{"sub": "1", "exp": time.Now().Add(time.Hour).Unix()})

	created, err := store.Create(context.Background(), token, testUser())
	require.NoError(t, err)

	require.NoError(t, store.Clear(context.Background(), created.ID))
	assert.Empty(t, kv.values)
}
