package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testDevice = entity.DeviceID("3f1c2d4e-5a6b-4c7d-8e9f-0a1b2c3d4e5f")

type testEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
		DeviceID  string `json:"device_id"`
	} `json:"meta"`
}

type testServer struct {
	echo         *echo.Echo
	catalogUC    *mockUsecase.MockCatalogUsecase
	reconcilerUC *mockUsecase.MockReconcilerUsecase
	invoiceUC    *mockUsecase.MockInvoiceUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	reconcilerUC := mockUsecase.NewMockReconcilerUsecase(t)
	invoiceUC := mockUsecase.NewMockInvoiceUsecase(t)

	routerParams := router.RouterParams{
		ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{
			CatalogUC: catalogUC,
			Logger:    logger,
		}),
		DeviceHandler: handler.NewDeviceHandler(handler.DeviceHandlerParams{
			ReconcilerUC: reconcilerUC,
			Logger:       logger,
		}),
		CollectionHandler: handler.NewCollectionHandler(handler.CollectionHandlerParams{
			CatalogUC:    catalogUC,
			ReconcilerUC: reconcilerUC,
			Logger:       logger,
		}),
		InvoiceHandler: handler.NewInvoiceHandler(handler.InvoiceHandlerParams{
			InvoiceUC: invoiceUC,
			Logger:    logger,
		}),
		DeviceMiddleware: apimiddleware.NewDeviceMiddleware(),
	}

	return &testServer{
		echo:         NewEcho(cfg, logger, routerParams),
		catalogUC:    catalogUC,
		reconcilerUC: reconcilerUC,
		invoiceUC:    invoiceUC,
	}
}

func (s *testServer) do(t *testing.T, method, target, body string, device entity.DeviceID) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if device != entity.NoDevice {
		req.Header.Set("X-Device-Id", device.String())
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()

	var envelope testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func newTestProduct() *entity.Product {
	return &entity.Product{
		ID:     "p1",
		Name:   entity.LocalizedName{EN: "Panel Light", AR: "لوحة إضاءة"},
		Images: []string{"https://cdn.example.com/p1.jpg"},
		Variants: []entity.ProductVariant{
			{Watts: "12", Price: 100, OldPrice: 130},
			{Watts: "18", Price: 140},
		},
		Tags: []string{"sale"},
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/health", "", entity.NoDevice)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestListProducts(t *testing.T) {
	srv := newTestServer(t)
	product := newTestProduct()
	srv.catalogUC.EXPECT().ListProducts(mock.Anything, "sale", "ar").Return([]*usecase.ProductView{
		{Product: product, Name: product.Name.AR, Display: product.Display()},
	}, nil)

	rec := srv.do(t, http.MethodGet, "/api/v1/products?tag=sale&locale=ar", "", entity.NoDevice)

	require.Equal(t, http.StatusOK, rec.Code)
	var listing handler.ListProductsResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &listing))
	assert.Equal(t, "sale", listing.Tag)
	assert.Equal(t, 1, listing.Count)
	assert.Equal(t, "لوحة إضاءة", listing.Products[0].Name)
	assert.Equal(t, 100.0, listing.Products[0].Display.Price)
}

func TestListProducts_DefaultsToAll(t *testing.T) {
	srv := newTestServer(t)
	srv.catalogUC.EXPECT().ListProducts(mock.Anything, "", "").Return([]*usecase.ProductView{}, nil)

	rec := srv.do(t, http.MethodGet, "/api/v1/products", "", entity.NoDevice)

	require.Equal(t, http.StatusOK, rec.Code)
	var listing handler.ListProductsResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &listing))
	assert.Equal(t, "all", listing.Tag)
	assert.Zero(t, listing.Count)
}

func TestListProducts_UnknownTag(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/v1/products?tag=clearance", "", entity.NoDevice)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestListProducts_UnexpectedError(t *testing.T) {
	srv := newTestServer(t)
	srv.catalogUC.EXPECT().ListProducts(mock.Anything, "", "").Return(nil, errors.New("boom"))

	rec := srv.do(t, http.MethodGet, "/api/v1/products", "", entity.NoDevice)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	envelope := decode(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", envelope.Error.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestGetProduct_NotFound(t *testing.T) {
	srv := newTestServer(t)
	srv.catalogUC.EXPECT().GetProduct(mock.Anything, "missing", "").
		Return(nil, domainerrors.ErrProductNotFound.WithDetails("missing"))

	rec := srv.do(t, http.MethodGet, "/api/v1/products/missing", "", entity.NoDevice)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decode(t, rec)
	assert.Equal(t, "PRODUCT_NOT_FOUND", envelope.Error.Code)
	assert.Equal(t, "missing", envelope.Error.Details)
}

func TestMalformedDeviceID(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"p1"}`, entity.DeviceID("NOT-A-UUID"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_DEVICE_ID", decode(t, rec).Error.Code)
}

func TestAddToCart(t *testing.T) {
	srv := newTestServer(t)
	product := newTestProduct()
	variant := &product.Variants[1]
	srv.catalogUC.EXPECT().ResolveVariant(mock.Anything, "p1", "18").Return(product, variant, nil)
	srv.reconcilerUC.EXPECT().Apply(mock.Anything, testDevice, product, variant, entity.OperationAddToCart).
		Return(&usecase.ApplyResult{
			Applied:   true,
			Operation: entity.OperationAddToCart,
			Cart:      []entity.CartEntry{{ProductID: "p1", Quantity: 2, Price: 140}},
			CartCount: 2,
		}, nil)

	rec := srv.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"p1","watts":"18"}`, testDevice)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decode(t, rec)
	assert.Equal(t, testDevice.String(), envelope.Meta.DeviceID)
	var result usecase.ApplyResult
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	assert.True(t, result.Applied)
	assert.Equal(t, 2, result.CartCount)
}

func TestAddToCart_WithoutDeviceIsNoOp(t *testing.T) {
	srv := newTestServer(t)
	srv.reconcilerUC.EXPECT().
		Apply(mock.Anything, entity.NoDevice, (*entity.Product)(nil), (*entity.ProductVariant)(nil), entity.OperationAddToCart).
		Return(&usecase.ApplyResult{Operation: entity.OperationAddToCart}, nil)

	rec := srv.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"p1"}`, entity.NoDevice)

	require.Equal(t, http.StatusAccepted, rec.Code)
	var result usecase.ApplyResult
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &result))
	assert.False(t, result.Applied)
	srv.catalogUC.AssertNotCalled(t, "ResolveVariant", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddToCart_StoreUnavailable(t *testing.T) {
	srv := newTestServer(t)
	product := newTestProduct()
	srv.catalogUC.EXPECT().ResolveVariant(mock.Anything, "p1", "").Return(product, &product.Variants[0], nil)
	srv.reconcilerUC.EXPECT().Apply(mock.Anything, testDevice, product, &product.Variants[0], entity.OperationAddToCart).
		Return(nil, domainerrors.ErrStoreUnavailable.WithDetails("too many conflicting writes"))

	rec := srv.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"p1"}`, testDevice)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	envelope := decode(t, rec)
	assert.Equal(t, "STORE_UNAVAILABLE", envelope.Error.Code)
	assert.Empty(t, envelope.Error.Details)
}

func TestAddToCart_UnknownVariant(t *testing.T) {
	srv := newTestServer(t)
	srv.catalogUC.EXPECT().ResolveVariant(mock.Anything, "p1", "99").
		Return(nil, nil, domainerrors.ErrVariantNotFound.WithDetails("p1/99"))

	rec := srv.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"p1","watts":"99"}`, testDevice)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VARIANT_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestToggleWishlist_MissingProduct(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/v1/wishlist/toggle", `{}`, testDevice)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestToggleWishlist(t *testing.T) {
	srv := newTestServer(t)
	product := newTestProduct()
	srv.catalogUC.EXPECT().ResolveVariant(mock.Anything, "p1", "").Return(product, &product.Variants[0], nil)
	srv.reconcilerUC.EXPECT().Apply(mock.Anything, testDevice, product, &product.Variants[0], entity.OperationToggleWishlist).
		Return(&usecase.ApplyResult{
			Applied:    true,
			Operation:  entity.OperationToggleWishlist,
			Wishlist:   []entity.WishlistEntry{entity.NewWishlistEntry(product, &product.Variants[0])},
			InWishlist: true,
		}, nil)

	rec := srv.do(t, http.MethodPost, "/api/v1/wishlist/toggle", `{"product_id":"p1"}`, testDevice)

	require.Equal(t, http.StatusOK, rec.Code)
	var result usecase.ApplyResult
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &result))
	assert.True(t, result.InWishlist)
	require.Len(t, result.Wishlist, 1)
	assert.Equal(t, "12", result.Wishlist[0].Variant)
}

func TestWishlistStatus(t *testing.T) {
	srv := newTestServer(t)
	product := newTestProduct()
	srv.catalogUC.EXPECT().ResolveVariant(mock.Anything, "p1", "").Return(product, &product.Variants[0], nil)
	srv.reconcilerUC.EXPECT().IsInWishlist(mock.Anything, testDevice, "p1", "12").Return(true, nil)

	rec := srv.do(t, http.MethodGet, "/api/v1/wishlist/status?product_id=p1", "", testDevice)

	require.Equal(t, http.StatusOK, rec.Code)
	var status handler.WishlistStatusResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &status))
	assert.True(t, status.InWishlist)
	assert.Equal(t, "12", status.Watts)
}

func TestWishlistStatus_ExplicitVariant(t *testing.T) {
	srv := newTestServer(t)
	srv.reconcilerUC.EXPECT().IsInWishlist(mock.Anything, testDevice, "p1", "18").Return(false, nil)

	rec := srv.do(t, http.MethodGet, "/api/v1/wishlist/status?product_id=p1&watts=18", "", testDevice)

	require.Equal(t, http.StatusOK, rec.Code)
	var status handler.WishlistStatusResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &status))
	assert.False(t, status.InWishlist)
	assert.Equal(t, "18", status.Watts)
}

func TestWishlistStatus_NoDevice(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "default variant", target: "/api/v1/wishlist/status?product_id=p1"},
		{name: "explicit variant", target: "/api/v1/wishlist/status?product_id=p1&watts=18"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)

			rec := srv.do(t, http.MethodGet, tt.target, "", entity.NoDevice)

			require.Equal(t, http.StatusOK, rec.Code)
			var status handler.WishlistStatusResponse
			require.NoError(t, json.Unmarshal(decode(t, rec).Data, &status))
			assert.False(t, status.InWishlist)
			assert.Equal(t, "p1", status.ProductID)
			srv.catalogUC.AssertNotCalled(t, "ResolveVariant", mock.Anything, mock.Anything, mock.Anything)
			srv.reconcilerUC.AssertNotCalled(t, "IsInWishlist", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestIssueDevice(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/v1/devices", "", entity.NoDevice)

	require.Equal(t, http.StatusCreated, rec.Code)
	var issued handler.DeviceResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &issued))
	_, ok := entity.ParseDeviceID(issued.DeviceID.String())
	assert.True(t, ok)
}

func TestIssueDevice_EchoesExisting(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/v1/devices", "", testDevice)

	require.Equal(t, http.StatusOK, rec.Code)
	var issued handler.DeviceResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &issued))
	assert.Equal(t, testDevice, issued.DeviceID)
}

func TestGetMe(t *testing.T) {
	srv := newTestServer(t)
	srv.reconcilerUC.EXPECT().GetUserRecord(mock.Anything, testDevice).Return(&entity.UserRecord{
		Cart: []entity.CartEntry{{ProductID: "p1", Quantity: 3, Price: 100}, {ProductID: "p2", Quantity: 1, Price: 10}},
	}, nil)

	rec := srv.do(t, http.MethodGet, "/api/v1/me", "", testDevice)

	require.Equal(t, http.StatusOK, rec.Code)
	var me handler.MeResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &me))
	assert.Equal(t, 4, me.CartCount)
	assert.NotNil(t, me.Wishlist)
	assert.Empty(t, me.Wishlist)
}

func TestSummarizeInvoice(t *testing.T) {
	srv := newTestServer(t)
	srv.invoiceUC.EXPECT().Summarize(mock.Anything, mock.MatchedBy(func(order *entity.Order) bool {
		return order.OrderID == "A1" && len(order.Data) == 1
	})).Return(&entity.InvoiceSummary{OrderID: "A1", Currency: "₹", Subtotal: 200, Total: 200}, nil)

	rec := srv.do(t, http.MethodPost, "/api/v1/invoices/summary",
		`{"orderId":"A1","data":[{"label":"12W","productTitle":"Panel Light","quantity":2,"price":200}]}`, entity.NoDevice)

	require.Equal(t, http.StatusOK, rec.Code)
	var summary entity.InvoiceSummary
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &summary))
	assert.Equal(t, 200.0, summary.Total)
}

func TestSummarizeInvoice_Invalid(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/v1/invoices/summary", `{"orderId":"A1","data":[]}`, entity.NoDevice)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestSummarizeInvoice_MalformedBody(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/v1/invoices/summary", `{"orderId":`, entity.NoDevice)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BINDING_FAILED", decode(t, rec).Error.Code)
}

func TestGetInvoice_NotFound(t *testing.T) {
	srv := newTestServer(t)
	srv.invoiceUC.EXPECT().GetInvoice(mock.Anything, "A9").Return(nil, domainerrors.ErrInvoiceNotFound.WithDetails("A9"))

	rec := srv.do(t, http.MethodGet, "/api/v1/invoices/A9", "", entity.NoDevice)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "INVOICE_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestShareQR(t *testing.T) {
	srv := newTestServer(t)
	png := []byte("\x89PNG")
	srv.invoiceUC.EXPECT().ShareLinkQR("A1").Return(png, nil)
	srv.invoiceUC.EXPECT().ShareLink("A1").Return("https://wa.me/+919074430171?text=hi")

	rec := srv.do(t, http.MethodPost, "/api/v1/invoices/share-qr", `{"orderId":"A1"}`, entity.NoDevice)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "https://wa.me/+919074430171?text=hi", rec.Header().Get("X-Share-Link"))
	assert.Equal(t, png, rec.Body.Bytes())
}
