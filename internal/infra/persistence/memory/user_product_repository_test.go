package memory

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const device = entity.DeviceID("0b7e3c52-5b7a-4c1e-9a55-3c8f0e2d4b61")

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func addOne(productID string, price float64) repository.MutateFunc {
	return func(record *entity.UserRecord) (entity.Collection, error) {
		for i := range record.Cart {
			if record.Cart[i].ProductID == productID {
				record.Cart[i].Quantity++

				return entity.CollectionCart, nil
			}
		}
		record.Cart = append(record.Cart, entity.CartEntry{ProductID: productID, Quantity: 1, Price: price})

		return entity.CollectionCart, nil
	}
}

func TestUserProductRepository_FindUserRecord_NotFound(t *testing.T) {
	repo := NewUserProductRepository(newDiscardLogger())

	record, err := repo.FindUserRecord(context.Background(), device)
	assert.Nil(t, record)
	assert.ErrorIs(t, err, repository.ErrUserRecordNotFound)
}

func TestUserProductRepository_UpdateCollection_LeavesSibling(t *testing.T) {
	ctx := context.Background()
	repo := NewUserProductRepository(newDiscardLogger())
	wishlist := []any{map[string]any{"id": "p9", "watt": "5W"}}
	repo.Seed(device, map[string]any{"wishlist": wishlist})

	err := repo.UpdateCollection(ctx, device, entity.CollectionCart, &entity.UserRecord{
		Cart: []entity.CartEntry{{ProductID: "p1", Quantity: 1, Price: 2}},
	})
	require.NoError(t, err)

	raw := repo.Raw(device)
	assert.Equal(t, wishlist, raw["wishlist"])
	assert.Len(t, raw["cart"], 1)
}

// The legacy flow reads, computes and then writes without a version check. Two
// interleaved adds both start from an empty cart and the second write wins.
func TestUserProductRepository_ReadThenUpdate_LosesUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewUserProductRepository(newDiscardLogger())
	require.NoError(t, repo.SetUserRecord(ctx, device, &entity.UserRecord{}))

	first, err := repo.FindUserRecord(ctx, device)
	require.NoError(t, err)
	second, err := repo.FindUserRecord(ctx, device)
	require.NoError(t, err)

	for _, record := range []*entity.UserRecord{first, second} {
		_, err := addOne("p1", 10)(record)
		require.NoError(t, err)
	}
	require.NoError(t, repo.UpdateCollection(ctx, device, entity.CollectionCart, first))
	require.NoError(t, repo.UpdateCollection(ctx, device, entity.CollectionCart, second))

	stored, err := repo.FindUserRecord(ctx, device)
	require.NoError(t, err)
	require.Len(t, stored.Cart, 1)
	assert.Equal(t, 1, stored.Cart[0].Quantity)
}

func TestUserProductRepository_MutateRecord_RetriesOnConflict(t *testing.T) {
	ctx := context.Background()
	repo := NewUserProductRepository(newDiscardLogger())

	calls := 0
	repo.afterRead = func(attempt int) {
		if attempt == 0 {
			// Another writer commits between our read and our commit.
			require.NoError(t, repo.UpdateCollection(ctx, device, entity.CollectionCart, &entity.UserRecord{
				Cart: []entity.CartEntry{{ProductID: "p1", Quantity: 1, Price: 10}},
			}))
		}
	}

	record, err := repo.MutateRecord(ctx, device, func(record *entity.UserRecord) (entity.Collection, error) {
		calls++

		return addOne("p1", 10)(record)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, record.Cart, 1)
	assert.Equal(t, 2, record.Cart[0].Quantity)
}

func TestUserProductRepository_MutateRecord_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewUserProductRepository(newDiscardLogger())

	const writers = 16
	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.MutateRecord(ctx, device, addOne("p1", 10))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := repo.FindUserRecord(ctx, device)
	require.NoError(t, err)
	require.Len(t, stored.Cart, 1)
	assert.Equal(t, writers, stored.Cart[0].Quantity)
}

func TestUserProductRepository_MutateRecord_PropagatesFnError(t *testing.T) {
	repo := NewUserProductRepository(newDiscardLogger())
	boom := errors.New("boom")

	_, err := repo.MutateRecord(context.Background(), device, func(*entity.UserRecord) (entity.Collection, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, repo.Raw(device))
}

func TestUserProductRepository_MutateRecord_GivesUp(t *testing.T) {
	ctx := context.Background()
	repo := NewUserProductRepository(newDiscardLogger())
	repo.afterRead = func(int) {
		repo.Seed(device, map[string]any{})
	}

	_, err := repo.MutateRecord(ctx, device, addOne("p1", 1))
	assert.ErrorIs(t, err, repository.ErrTooManyConflicts)
}

func TestUserProductRepository_MutateRecord_KeepsUndecodableEntries(t *testing.T) {
	var logs bytes.Buffer
	repo := NewUserProductRepository(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	foreign := map[string]any{"id": "p9", "quantity": "2 pcs"}
	repo.Seed(device, map[string]any{
		"cart": []any{foreign, map[string]any{"id": "p8", "quantity": 1, "price": 3}},
	})

	record, err := repo.MutateRecord(context.Background(), device, addOne("p2", 10))
	require.NoError(t, err)

	assert.Equal(t, []entity.CartEntry{
		{ProductID: "p8", Quantity: 1, Price: 3},
		{ProductID: "p2", Quantity: 1, Price: 10},
	}, record.Cart)

	stored, ok := repo.Raw(device)["cart"].([]any)
	require.True(t, ok)
	require.Len(t, stored, 3)
	assert.Equal(t, foreign, stored[2])

	assert.Contains(t, logs.String(), "Keeping stored entries that do not decode")
	assert.Contains(t, logs.String(), "device_id="+device.String())
	assert.Contains(t, logs.String(), "collection=cart")
}

func TestUserProductRepository_MutateRecord_KeepsUndecodableEntriesAcrossWrites(t *testing.T) {
	ctx := context.Background()
	repo := NewUserProductRepository(newDiscardLogger())
	foreign := map[string]any{"quantity": 3}
	repo.Seed(device, map[string]any{"cart": []any{foreign}})

	for range 3 {
		_, err := repo.MutateRecord(ctx, device, addOne("p1", 1))
		require.NoError(t, err)
	}

	stored, ok := repo.Raw(device)["cart"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{
		map[string]any{"id": "p1", "quantity": 3, "price": 1.0},
		foreign,
	}, stored)

	record, err := repo.FindUserRecord(ctx, device)
	require.NoError(t, err)
	assert.Equal(t, 3, record.CartCount())
}
