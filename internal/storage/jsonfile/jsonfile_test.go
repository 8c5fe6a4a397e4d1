package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackerhosting/backend/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "db.json"))
}

func TestStore_Read_CreatesSkeleton(t *testing.T) {
	store := newTestStore(t)

	doc, err := store.Read(context.Background())
	require.NoError(t, err)

	assert.Empty(t, doc.Users)
	assert.Empty(t, doc.Servers)
	assert.Empty(t, doc.Plans)

	// Каркас должен быть записан на диск уже при первом чтении.
	data, err := os.ReadFile(store.path)
	require.NoError(t, err)

	var onDisk map[string]any
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Contains(t, onDisk, "users")
	assert.Contains(t, onDisk, "servers")
	assert.Contains(t, onDisk, "plans")
}

func TestStore_Update_PersistsWholeDocument(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Update(ctx, func(doc *Document) error {
		doc.Users = append(doc.Users, models.User{ID: "u_1", Username: "a", Email: "a@x.com"})
		doc.Plans = append(doc.Plans, models.Plan{ID: "basic", Name: "Basic", Slots: models.LimitedSlots(10)})
		return nil
	})
	require.NoError(t, err)

	reopened := New(store.path)
	doc, err := reopened.Read(ctx)
	require.NoError(t, err)

	require.Len(t, doc.Users, 1)
	assert.Equal(t, "a@x.com", doc.Users[0].Email)
	require.Len(t, doc.Plans, 1)
	assert.Equal(t, "basic", doc.Plans[0].ID)
}

func TestStore_Update_ErrorAbortsWrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	wantErr := errors.New("rejected")
	err := store.Update(ctx, func(doc *Document) error {
		doc.Users = append(doc.Users, models.User{ID: "u_1"})
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	doc, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, doc.Users)
}

func TestStore_Update_ConcurrentUpdatesDoNotLoseWrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			err := store.Update(ctx, func(doc *Document) error {
				doc.Servers = append(doc.Servers, models.Server{ID: "srv", Players: []string{}})
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	doc, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Len(t, doc.Servers, writers)
}

func TestStore_Read_CancelledContext(t *testing.T) {
	store := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Read(ctx)
	assert.Error(t, err)
}
