package impl

import (
	"context"
	"sync"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/memory"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reconcilerServiceFixtures holds all test dependencies for reconciler service tests.
type reconcilerServiceFixtures struct {
	service   usecase.ReconcilerUsecase
	store     *memory.UserProductRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestReconcilerService(t *testing.T) reconcilerServiceFixtures {
	store := memory.NewUserProductRepository(newDiscardLogger())
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishCollectionChanged(mock.Anything, mock.AnythingOfType("*service.CollectionChangedEvent")).
		Return(nil).
		Maybe()

	srv := NewReconcilerService(ReconcilerServiceParams{
		UserProductRepo: store,
		Publisher:       publisher,
		Logger:          newDiscardLogger(),
	})

	return reconcilerServiceFixtures{
		service:   srv,
		store:     store,
		publisher: publisher,
	}
}

func TestReconcilerService_Apply_AddToCart_FreshDevice(t *testing.T) {
	fx := createTestReconcilerService(t)
	ctx := context.Background()

	result, err := fx.service.Apply(ctx, testDevice, newPanelLight(), nil, entity.OperationAddToCart)
	require.NoError(t, err)

	assert.True(t, result.Applied)
	assert.Equal(t, []entity.CartEntry{{ProductID: "p1", Quantity: 1, Price: 100}}, result.Cart)
	assert.Equal(t, 1, result.CartCount)

	raw := fx.store.Raw(testDevice)
	assert.Contains(t, raw, "cart")
	assert.NotContains(t, raw, "wishlist")
}

func TestReconcilerService_Apply_AddToCart_IncrementsAndKeepsPrice(t *testing.T) {
	fx := createTestReconcilerService(t)
	ctx := context.Background()
	product := newPanelLight()

	_, err := fx.service.Apply(ctx, testDevice, product, nil, entity.OperationAddToCart)
	require.NoError(t, err)

	// Price drop after the first add must not reach the stored line.
	product.Variants[0].Price = 80
	result, err := fx.service.Apply(ctx, testDevice, product, nil, entity.OperationAddToCart)
	require.NoError(t, err)

	require.Len(t, result.Cart, 1)
	assert.Equal(t, 2, result.Cart[0].Quantity)
	assert.Equal(t, 100.0, result.Cart[0].Price)
	assert.Equal(t, 2, result.CartCount)
}

func TestReconcilerService_Apply_AddToCart_ProductWithoutVariants(t *testing.T) {
	fx := createTestReconcilerService(t)

	result, err := fx.service.Apply(context.Background(), testDevice, newPlainBulb(), nil, entity.OperationAddToCart)
	require.NoError(t, err)

	assert.Equal(t, []entity.CartEntry{{ProductID: "p2", Quantity: 1, Price: 10}}, result.Cart)
}

func TestReconcilerService_Apply_AddToCart_UsesSelectedVariantPrice(t *testing.T) {
	fx := createTestReconcilerService(t)
	product := newPanelLight()

	result, err := fx.service.Apply(context.Background(), testDevice, product, &product.Variants[1], entity.OperationAddToCart)
	require.NoError(t, err)

	assert.Equal(t, 140.0, result.Cart[0].Price)
}

func TestReconcilerService_Apply_AddToCart_LeavesWishlistUntouched(t *testing.T) {
	fx := createTestReconcilerService(t)
	wishlist := []any{map[string]any{"id": "p9", "name": "Strip", "watt": "5", "price": 3, "oldprice": 0}}
	fx.store.Seed(testDevice, map[string]any{"wishlist": wishlist})

	result, err := fx.service.Apply(context.Background(), testDevice, newPlainBulb(), nil, entity.OperationAddToCart)
	require.NoError(t, err)

	assert.Equal(t, wishlist, fx.store.Raw(testDevice)["wishlist"])
	require.Len(t, result.Wishlist, 1)
	assert.Equal(t, "p9", result.Wishlist[0].ProductID)
}

func TestReconcilerService_Apply_AddToCart_NormalizesSparseMap(t *testing.T) {
	fx := createTestReconcilerService(t)
	fx.store.Seed(testDevice, map[string]any{
		"cart": map[string]any{
			"10": map[string]any{"id": "p3", "quantity": 1, "price": 5},
			"2":  map[string]any{"id": "p1", "quantity": 4, "price": 90},
		},
	})

	result, err := fx.service.Apply(context.Background(), testDevice, newPanelLight(), nil, entity.OperationAddToCart)
	require.NoError(t, err)

	assert.Equal(t, []entity.CartEntry{
		{ProductID: "p1", Quantity: 5, Price: 90},
		{ProductID: "p3", Quantity: 1, Price: 5},
	}, result.Cart)
	assert.IsType(t, []any{}, fx.store.Raw(testDevice)["cart"])
}

func TestReconcilerService_Apply_ToggleWishlist_AddsThenRemoves(t *testing.T) {
	fx := createTestReconcilerService(t)
	ctx := context.Background()
	product := newPanelLight()

	added, err := fx.service.Apply(ctx, testDevice, product, nil, entity.OperationToggleWishlist)
	require.NoError(t, err)
	assert.True(t, added.InWishlist)
	assert.Equal(t, []entity.WishlistEntry{
		{ProductID: "p1", Name: "Panel Light", Variant: "12", Price: 100, OldPrice: 130},
	}, added.Wishlist)

	removed, err := fx.service.Apply(ctx, testDevice, product, nil, entity.OperationToggleWishlist)
	require.NoError(t, err)
	assert.False(t, removed.InWishlist)
	assert.Empty(t, removed.Wishlist)
}

func TestReconcilerService_Apply_ToggleWishlist_TwiceRestoresExistingWishlist(t *testing.T) {
	fx := createTestReconcilerService(t)
	ctx := context.Background()
	fx.store.Seed(testDevice, map[string]any{
		"wishlist": []any{
			map[string]any{"id": "p9", "name": "Strip", "watt": "5", "price": 3, "oldprice": 0},
			map[string]any{"id": "p1", "name": "Panel Light", "watt": "18", "price": 140, "oldprice": 0},
			map[string]any{"id": "p3", "name": "Spot", "price": 7, "oldprice": 9},
		},
	})

	before, err := fx.store.FindUserRecord(ctx, testDevice)
	require.NoError(t, err)
	require.Len(t, before.Wishlist, 3)

	added, err := fx.service.Apply(ctx, testDevice, newPanelLight(), nil, entity.OperationToggleWishlist)
	require.NoError(t, err)
	assert.True(t, added.InWishlist)
	assert.Len(t, added.Wishlist, 4)

	removed, err := fx.service.Apply(ctx, testDevice, newPanelLight(), nil, entity.OperationToggleWishlist)
	require.NoError(t, err)
	assert.False(t, removed.InWishlist)
	assert.Equal(t, before.Wishlist, removed.Wishlist)

	after, err := fx.store.FindUserRecord(ctx, testDevice)
	require.NoError(t, err)
	assert.Equal(t, before.Wishlist, after.Wishlist)
}

func TestReconcilerService_Apply_AddToCart_KeepsUndecodableLines(t *testing.T) {
	fx := createTestReconcilerService(t)
	foreign := map[string]any{"id": "p9", "quantity": "2 pcs"}
	fx.store.Seed(testDevice, map[string]any{
		"cart": []any{foreign, map[string]any{"id": "p8", "quantity": 1, "price": 3}},
	})

	result, err := fx.service.Apply(context.Background(), testDevice, newPlainBulb(), nil, entity.OperationAddToCart)
	require.NoError(t, err)

	assert.Equal(t, []entity.CartEntry{
		{ProductID: "p8", Quantity: 1, Price: 3},
		{ProductID: "p2", Quantity: 1, Price: 10},
	}, result.Cart)
	assert.Contains(t, fx.store.Raw(testDevice)["cart"], foreign)
}

func TestReconcilerService_Apply_ToggleWishlist_KeyIncludesVariant(t *testing.T) {
	fx := createTestReconcilerService(t)
	ctx := context.Background()
	product := newPanelLight()

	_, err := fx.service.Apply(ctx, testDevice, product, &product.Variants[0], entity.OperationToggleWishlist)
	require.NoError(t, err)
	result, err := fx.service.Apply(ctx, testDevice, product, &product.Variants[1], entity.OperationToggleWishlist)
	require.NoError(t, err)

	require.Len(t, result.Wishlist, 2)
	assert.Equal(t, "12", result.Wishlist[0].Variant)
	assert.Equal(t, "18", result.Wishlist[1].Variant)
}

func TestReconcilerService_Apply_ToggleWishlist_RemovesDuplicates(t *testing.T) {
	fx := createTestReconcilerService(t)
	duplicate := map[string]any{"id": "p1", "name": "Panel Light", "watt": "12", "price": 100, "oldprice": 130}
	other := map[string]any{"id": "p1", "name": "Panel Light", "watt": "18", "price": 140, "oldprice": 0}
	fx.store.Seed(testDevice, map[string]any{"wishlist": []any{duplicate, other, duplicate}})

	result, err := fx.service.Apply(context.Background(), testDevice, newPanelLight(), nil, entity.OperationToggleWishlist)
	require.NoError(t, err)

	assert.False(t, result.InWishlist)
	require.Len(t, result.Wishlist, 1)
	assert.Equal(t, "18", result.Wishlist[0].Variant)
}

func TestReconcilerService_Apply_ToggleWishlist_DefaultsMissingFields(t *testing.T) {
	fx := createTestReconcilerService(t)
	product := &entity.Product{ID: "p7"}

	result, err := fx.service.Apply(context.Background(), testDevice, product, nil, entity.OperationToggleWishlist)
	require.NoError(t, err)

	assert.Equal(t, []entity.WishlistEntry{
		{ProductID: "p7", Name: entity.UnknownProductName, Variant: entity.UnknownVariant, Price: 0, OldPrice: 0},
	}, result.Wishlist)
	assert.True(t, result.InWishlist)

	// Toggling again finds the entry by its defaulted key.
	result, err = fx.service.Apply(context.Background(), testDevice, product, nil, entity.OperationToggleWishlist)
	require.NoError(t, err)
	assert.Empty(t, result.Wishlist)
}

func TestReconcilerService_Apply_PreconditionMissing(t *testing.T) {
	tests := []struct {
		name     string
		deviceID entity.DeviceID
		product  *entity.Product
	}{
		{"no device", entity.NoDevice, newPanelLight()},
		{"no product", testDevice, nil},
		{"product without id", testDevice, &entity.Product{Name: entity.LocalizedName{EN: "x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mockRepo.NewMockUserProductRepository(t)
			publisher := mockSvc.NewMockEventPublisher(t)
			srv := NewReconcilerService(ReconcilerServiceParams{
				UserProductRepo: store,
				Publisher:       publisher,
				Logger:          newDiscardLogger(),
			})

			result, err := srv.Apply(context.Background(), tt.deviceID, tt.product, nil, entity.OperationAddToCart)
			require.NoError(t, err)
			assert.False(t, result.Applied)
			assert.Equal(t, entity.OperationAddToCart, result.Operation)
		})
	}
}

func TestReconcilerService_Apply_InvalidOperation(t *testing.T) {
	fx := createTestReconcilerService(t)

	_, err := fx.service.Apply(context.Background(), testDevice, newPanelLight(), nil, entity.Operation("checkout"))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOperation))
}

func TestReconcilerService_Apply_StoreError(t *testing.T) {
	store := mockRepo.NewMockUserProductRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	srv := NewReconcilerService(ReconcilerServiceParams{
		UserProductRepo: store,
		Publisher:       publisher,
		Logger:          newDiscardLogger(),
	})

	cause := domainerrors.NewStoreExecuteError(errors.New("connection reset"), "users/x")
	store.EXPECT().
		MutateRecord(mock.Anything, testDevice, mock.AnythingOfType("repository.MutateFunc")).
		Return(nil, cause)

	_, err := srv.Apply(context.Background(), testDevice, newPanelLight(), nil, entity.OperationAddToCart)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "STORE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestReconcilerService_Apply_TooManyConflicts(t *testing.T) {
	store := mockRepo.NewMockUserProductRepository(t)
	srv := NewReconcilerService(ReconcilerServiceParams{
		UserProductRepo: store,
		Publisher:       mockSvc.NewMockEventPublisher(t),
		Logger:          newDiscardLogger(),
	})

	store.EXPECT().
		MutateRecord(mock.Anything, testDevice, mock.Anything).
		Return(nil, repository.ErrTooManyConflicts)

	_, err := srv.Apply(context.Background(), testDevice, newPanelLight(), nil, entity.OperationToggleWishlist)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
}

func TestReconcilerService_Apply_PublishesEvent(t *testing.T) {
	store := memory.NewUserProductRepository(newDiscardLogger())
	publisher := mockSvc.NewMockEventPublisher(t)
	srv := NewReconcilerService(ReconcilerServiceParams{
		UserProductRepo: store,
		Publisher:       publisher,
		Logger:          newDiscardLogger(),
	})

	var published *service.CollectionChangedEvent
	publisher.EXPECT().
		PublishCollectionChanged(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.CollectionChangedEvent) {
			published = event
		}).
		Return(errors.New("broker down"))

	result, err := srv.Apply(context.Background(), testDevice, newPanelLight(), nil, entity.OperationToggleWishlist)
	require.NoError(t, err, "publish failures must not fail the mutation")
	assert.True(t, result.Applied)

	require.NotNil(t, published)
	assert.Equal(t, testDevice.String(), published.DeviceID)
	assert.Equal(t, "wishlist", published.Collection)
	assert.Equal(t, "p1", published.ProductID)
	assert.Equal(t, "12", published.Variant)
	assert.True(t, published.InWishlist)
	assert.NotEmpty(t, published.EventID)
}

func TestReconcilerService_Apply_ConcurrentAddsAreNotLost(t *testing.T) {
	fx := createTestReconcilerService(t)
	const writers = 20

	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fx.service.Apply(context.Background(), testDevice, newPanelLight(), nil, entity.OperationAddToCart)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	record, err := fx.service.GetUserRecord(context.Background(), testDevice)
	require.NoError(t, err)
	require.Len(t, record.Cart, 1)
	assert.Equal(t, writers, record.Cart[0].Quantity)
}

func TestReconcilerService_IsInWishlist(t *testing.T) {
	fx := createTestReconcilerService(t)
	ctx := context.Background()

	in, err := fx.service.IsInWishlist(ctx, testDevice, "p1", "12")
	require.NoError(t, err)
	assert.False(t, in, "unknown device has an empty wishlist")

	_, err = fx.service.Apply(ctx, testDevice, newPanelLight(), nil, entity.OperationToggleWishlist)
	require.NoError(t, err)
	_, err = fx.service.Apply(ctx, testDevice, newPlainBulb(), nil, entity.OperationToggleWishlist)
	require.NoError(t, err)

	tests := []struct {
		productID string
		variant   string
		want      bool
	}{
		{"p1", "12", true},
		{"p1", "18", false},
		{"p2", "", true},
		{"p2", entity.UnknownVariant, true},
		{"p3", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.productID+"/"+tt.variant, func(t *testing.T) {
			in, err := fx.service.IsInWishlist(ctx, testDevice, tt.productID, tt.variant)
			require.NoError(t, err)
			assert.Equal(t, tt.want, in)
		})
	}

	in, err = fx.service.IsInWishlist(ctx, entity.NoDevice, "p1", "12")
	require.NoError(t, err)
	assert.False(t, in)
}

func TestReconcilerService_GetUserRecord(t *testing.T) {
	t.Run("absent record is empty", func(t *testing.T) {
		fx := createTestReconcilerService(t)

		record, err := fx.service.GetUserRecord(context.Background(), testDevice)
		require.NoError(t, err)
		assert.Empty(t, record.Cart)
		assert.Empty(t, record.Wishlist)
	})

	t.Run("store error propagates", func(t *testing.T) {
		store := mockRepo.NewMockUserProductRepository(t)
		srv := NewReconcilerService(ReconcilerServiceParams{
			UserProductRepo: store,
			Publisher:       mockSvc.NewMockEventPublisher(t),
			Logger:          newDiscardLogger(),
		})
		cause := errors.New("timeout")
		store.EXPECT().FindUserRecord(mock.Anything, testDevice).Return(nil, cause)

		_, err := srv.GetUserRecord(context.Background(), testDevice)
		assert.True(t, errors.Is(err, cause))
	})
}
