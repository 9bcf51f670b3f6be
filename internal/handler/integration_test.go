package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shortshop/internal/domain/model"
	"shortshop/internal/handler"
	infraRepo "shortshop/internal/infra/repository"
	"shortshop/internal/server"
	"shortshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// テストごとに独立したin-memory DBで全レイヤを組み上げる
func setupAPI(t *testing.T) *echo.Echo {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Product{},
		&model.ProductVariant{},
		&model.ProductImage{},
		&model.ProductRecommendation{},
		&model.ProductReview{},
		&model.Cart{},
		&model.CartItem{},
	))

	productRepo := infraRepo.NewProductGormRepository(db)
	variantRepo := infraRepo.NewVariantGormRepository(db)
	imageRepo := infraRepo.NewImageGormRepository(db)
	recRepo := infraRepo.NewRecommendationGormRepository(db)
	reviewRepo := infraRepo.NewReviewGormRepository(db)
	cartRepo := infraRepo.NewCartGormRepository(db)
	txm := infraRepo.NewTxManagerGorm(db)

	e := server.New()
	server.RegisterRoutes(e, server.Handlers{
		Product:        handler.NewProductHandler(usecase.NewProductUsecase(productRepo, txm, nil)),
		Variant:        handler.NewVariantHandler(usecase.NewVariantUsecase(productRepo, variantRepo, txm)),
		Image:          handler.NewImageHandler(usecase.NewImageUsecase(productRepo, imageRepo)),
		Recommendation: handler.NewRecommendationHandler(usecase.NewRecommendationUsecase(productRepo, recRepo)),
		Review:         handler.NewReviewHandler(usecase.NewReviewUsecase(productRepo, reviewRepo)),
		Cart:           handler.NewCartHandler(usecase.NewCartUsecase(cartRepo, cartRepo, variantRepo, txm)),
	})
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func sampleProductBody() map[string]any {
	return map[string]any{
		"name":        "Leather Wallet",
		"price":       49.99,
		"description": "Hand-stitched leather wallet",
		"variants": []map[string]any{
			{"color": "brown", "size": "M", "in_stock": true},
			{"color": "black", "size": "L", "in_stock": false},
		},
		"images": []map[string]any{
			{"color": "brown", "image_url": "https://img.example.com/w1.jpg"},
		},
	}
}

func createProduct(t *testing.T, e *echo.Echo) usecase.ProductResponse {
	t.Helper()
	rec := doJSON(t, e, http.MethodPost, "/api/v1/product", sampleProductBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[usecase.ProductResponse](t, rec)
}

func TestProductCRUDFlow(t *testing.T) {
	e := setupAPI(t)

	created := createProduct(t, e)
	assert.True(t, created.ID > 0)
	assert.Equal(t, 49.99, created.Price)
	assert.True(t, created.LifetimeGuarantee)
	assert.Len(t, created.Variants, 2)
	assert.Len(t, created.Images, 1)

	// Get
	rec := doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/v1/product/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[usecase.ProductResponse](t, rec)
	assert.Equal(t, "Leather Wallet", got.Name)

	// List
	rec = doJSON(t, e, http.MethodGet, "/api/v1/product", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]usecase.ProductResponse](t, rec)
	assert.Len(t, list, 1)

	// Partial update
	rec = doJSON(t, e, http.MethodPut, fmt.Sprintf("/api/v1/product/%d", created.ID), map[string]any{
		"price": 59.99,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[usecase.ProductResponse](t, rec)
	assert.Equal(t, 59.99, updated.Price)
	assert.Equal(t, "Leather Wallet", updated.Name)

	// Delete
	rec = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/v1/product/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	msg := decode[usecase.MessageResponse](t, rec)
	assert.Equal(t, "Product deleted", msg.Message)

	rec = doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/v1/product/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductCreate_InvalidSizeRejected(t *testing.T) {
	e := setupAPI(t)

	body := sampleProductBody()
	body["variants"] = []map[string]any{
		{"color": "brown", "size": "XXXL", "in_stock": true},
	}
	rec := doJSON(t, e, http.MethodPost, "/api/v1/product", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	//弾いた時は何も残らない
	rec = doJSON(t, e, http.MethodGet, "/api/v1/product", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]usecase.ProductResponse](t, rec)
	assert.Len(t, list, 0)
}

// 50文字・150バイトの名前が通ること（文字数でバリデーションする）
func TestProductCreate_MultibyteName(t *testing.T) {
	e := setupAPI(t)

	name := strings.Repeat("あ", 50)
	body := sampleProductBody()
	body["name"] = name
	rec := doJSON(t, e, http.MethodPost, "/api/v1/product", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[usecase.ProductResponse](t, rec)
	assert.Equal(t, name, created.Name)

	// 121文字は422
	body["name"] = strings.Repeat("あ", 121)
	rec = doJSON(t, e, http.MethodPost, "/api/v1/product", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestProductCreate_MissingNameRejected(t *testing.T) {
	e := setupAPI(t)

	body := sampleProductBody()
	delete(body, "name")
	rec := doJSON(t, e, http.MethodPost, "/api/v1/product", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestProductGet_UnknownID(t *testing.T) {
	e := setupAPI(t)
	rec := doJSON(t, e, http.MethodGet, "/api/v1/product/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductDelete_CascadesToCart(t *testing.T) {
	e := setupAPI(t)

	created := createProduct(t, e)
	variantID := created.Variants[0].ID

	// カートに入れてから商品を消す
	rec := doJSON(t, e, http.MethodPost, "/api/v1/cart/sess-cascade/items", map[string]any{
		"variant_id": variantID,
		"quantity":   2,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/v1/product/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// カートは残るが明細は消えている
	rec = doJSON(t, e, http.MethodGet, "/api/v1/cart/sess-cascade", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decode[usecase.CartResponse](t, rec)
	assert.Len(t, cart.Items, 0)
}

func TestVariantAddUpdateDelete(t *testing.T) {
	e := setupAPI(t)
	created := createProduct(t, e)

	rec := doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/v1/product/%d/variants", created.ID), map[string]any{
		"color": "red", "size": "XL", "in_stock": true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	v := decode[usecase.VariantResponse](t, rec)
	assert.Equal(t, "XL", v.Size)

	rec = doJSON(t, e, http.MethodPut, fmt.Sprintf("/api/v1/product/variant/%d", v.ID), map[string]any{
		"color": "red", "size": "XL", "in_stock": false,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	v = decode[usecase.VariantResponse](t, rec)
	assert.Equal(t, "red", v.Color)
	assert.False(t, v.InStock)

	rec = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/v1/product/variant/%d", v.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/v1/product/variant/%d", v.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestImageAddAndDelete(t *testing.T) {
	e := setupAPI(t)
	created := createProduct(t, e)

	rec := doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/v1/product/%d/images", created.ID), []map[string]any{
		{"color": "red", "image_url": "https://img.example.com/r1.jpg"},
		{"color": "red", "image_url": "https://img.example.com/r2.jpg"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	msg := decode[usecase.MessageResponse](t, rec)
	assert.Equal(t, "2 image(s) added successfully", msg.Message)

	// 空リストは400
	rec = doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/v1/product/%d/images", created.ID), []map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/v1/product/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[usecase.ProductResponse](t, rec)
	require.Len(t, got.Images, 3)

	imageID := got.Images[0].ID
	rec = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/v1/product/%d/images/%d", created.ID, imageID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// 他商品のIDでは消せない
	other := doJSON(t, e, http.MethodPost, "/api/v1/product", sampleProductBody())
	require.Equal(t, http.StatusCreated, other.Code)
	otherProduct := decode[usecase.ProductResponse](t, other)
	rec = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/v1/product/%d/images/%d", otherProduct.ID, got.Images[1].ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecommendationRules(t *testing.T) {
	e := setupAPI(t)
	p1 := createProduct(t, e)
	p2 := createProduct(t, e)

	// 自己参照は400
	rec := doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/v1/product/%d/recommendations/%d", p1.ID, p1.ID), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/v1/product/%d/recommendations/%d", p1.ID, p2.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	msg := decode[usecase.MessageResponse](t, rec)
	assert.Equal(t, "Recommendation added", msg.Message)

	// 重複は400
	rec = doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/v1/product/%d/recommendations/%d", p1.ID, p2.ID), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// 存在しない商品は404
	rec = doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/v1/product/%d/recommendations/999", p1.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/v1/product/%d/recommendations", p1.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	recs := decode[[]usecase.RecommendationResponse](t, rec)
	require.Len(t, recs, 1)
	assert.Equal(t, p1.ID, recs[0].BaseProductID)
	assert.Equal(t, p2.ID, recs[0].RecommendedProductID)

	// エッジIDで削除
	rec = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/v1/product/recommendations/%d", recs[0].ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/v1/product/recommendations/%d", recs[0].ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartLifecycle(t *testing.T) {
	e := setupAPI(t)
	p := createProduct(t, e)
	variantID := p.Variants[0].ID

	// 明示的に作成
	rec := doJSON(t, e, http.MethodPost, "/api/v1/cart", map[string]any{"session_id": "sess-1"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	cart := decode[usecase.CartResponse](t, rec)
	assert.Equal(t, "sess-1", cart.SessionID)
	assert.Len(t, cart.Items, 0)

	// 同じsession_idで再作成しても同じカート
	rec = doJSON(t, e, http.MethodPost, "/api/v1/cart", map[string]any{"session_id": "sess-1"})
	require.Equal(t, http.StatusCreated, rec.Code)
	again := decode[usecase.CartResponse](t, rec)
	assert.Equal(t, cart.ID, again.ID)

	// 追加
	rec = doJSON(t, e, http.MethodPost, "/api/v1/cart/sess-1/items", map[string]any{
		"variant_id": variantID, "quantity": 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	item := decode[usecase.CartItemResponse](t, rec)
	assert.Equal(t, int64(2), item.Quantity)

	// 同じvariantを追加すると数量が加算される
	rec = doJSON(t, e, http.MethodPost, "/api/v1/cart/sess-1/items", map[string]any{
		"variant_id": variantID, "quantity": 3,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	item = decode[usecase.CartItemResponse](t, rec)
	assert.Equal(t, int64(5), item.Quantity)

	// 数量の直接更新
	rec = doJSON(t, e, http.MethodPut, fmt.Sprintf("/api/v1/cart/sess-1/items/%d", item.ID), map[string]any{
		"quantity": 1,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	item = decode[usecase.CartItemResponse](t, rec)
	assert.Equal(t, int64(1), item.Quantity)

	// 明細削除
	rec = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/v1/cart/sess-1/items/%d", item.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	msg := decode[usecase.MessageResponse](t, rec)
	assert.Equal(t, "Cart item deleted", msg.Message)

	rec = doJSON(t, e, http.MethodGet, "/api/v1/cart/sess-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cart = decode[usecase.CartResponse](t, rec)
	assert.Len(t, cart.Items, 0)
}

func TestCartAutoCreatedOnFirstItem(t *testing.T) {
	e := setupAPI(t)
	p := createProduct(t, e)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/cart/sess-auto/items", map[string]any{
		"variant_id": p.Variants[0].ID, "quantity": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, e, http.MethodGet, "/api/v1/cart/sess-auto", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decode[usecase.CartResponse](t, rec)
	assert.Len(t, cart.Items, 1)
}

func TestCartUnknownVariantDoesNotCreateCart(t *testing.T) {
	e := setupAPI(t)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/cart/sess-ghost/items", map[string]any{
		"variant_id": 999, "quantity": 1,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// 空カートは作られていない
	rec = doJSON(t, e, http.MethodGet, "/api/v1/cart/sess-ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartItemRejectsNonPositiveQuantity(t *testing.T) {
	e := setupAPI(t)
	p := createProduct(t, e)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/cart/sess-q/items", map[string]any{
		"variant_id": p.Variants[0].ID, "quantity": 0,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/cart/sess-q/items", map[string]any{
		"variant_id": p.Variants[0].ID, "quantity": -3,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCartClear(t *testing.T) {
	e := setupAPI(t)
	p := createProduct(t, e)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/cart/sess-clear/items", map[string]any{
		"variant_id": p.Variants[0].ID, "quantity": 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, e, http.MethodDelete, "/api/v1/cart/sess-clear", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	msg := decode[usecase.MessageResponse](t, rec)
	assert.Equal(t, "Cart cleared", msg.Message)

	// カート自体は残る
	rec = doJSON(t, e, http.MethodGet, "/api/v1/cart/sess-clear", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decode[usecase.CartResponse](t, rec)
	assert.Len(t, cart.Items, 0)
}

func TestReviewEndpoints(t *testing.T) {
	e := setupAPI(t)
	p := createProduct(t, e)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/review", map[string]any{
		"product_id":  p.ID,
		"title":       "Great quality wallet",
		"description": "Bought this a month ago and it still looks brand new.",
		"author_name": "Taro",
		"score":       5,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	review := decode[usecase.ReviewResponse](t, rec)
	assert.Equal(t, 5, review.Score)

	// scoreが範囲外は422
	rec = doJSON(t, e, http.MethodPost, "/api/v1/review", map[string]any{
		"product_id":  p.ID,
		"title":       "Great quality wallet",
		"description": "Bought this a month ago and it still looks brand new.",
		"author_name": "Taro",
		"score":       6,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/api/v1/review", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	reviews := decode[[]usecase.ReviewResponse](t, rec)
	assert.Len(t, reviews, 1)
}

func TestRootAndHealth(t *testing.T) {
	e := setupAPI(t)

	rec := doJSON(t, e, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	root := decode[map[string]string](t, rec)
	assert.Equal(t, "OK", root["status"])

	rec = doJSON(t, e, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[map[string]string](t, rec)
	assert.Equal(t, "healthy", health["status"])
	assert.NotEmpty(t, health["timestamp"])
}

func TestPaginationParams(t *testing.T) {
	e := setupAPI(t)
	for i := 0; i < 3; i++ {
		createProduct(t, e)
	}

	rec := doJSON(t, e, http.MethodGet, "/api/v1/product?skip=1&limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]usecase.ProductResponse](t, rec)
	assert.Len(t, list, 1)

	rec = doJSON(t, e, http.MethodGet, "/api/v1/product?skip=-1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/api/v1/product?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
