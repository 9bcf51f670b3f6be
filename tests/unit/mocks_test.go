package unit

import (
	"context"
	"strings"
	"testing"

	"shortshop/internal/domain/model"
	repo "shortshop/internal/repository"
	"shortshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	products        repo.ProductRepository
	variants        repo.VariantRepository
	images          repo.ImageRepository
	recommendations repo.RecommendationRepository
	reviews         repo.ReviewRepository
	carts           repo.CartRepository
	cartItems       repo.CartItemRepository
}

func (r *TxReposMock) Products() repo.ProductRepository               { return r.products }
func (r *TxReposMock) Variants() repo.VariantRepository               { return r.variants }
func (r *TxReposMock) Images() repo.ImageRepository                   { return r.images }
func (r *TxReposMock) Recommendations() repo.RecommendationRepository { return r.recommendations }
func (r *TxReposMock) Reviews() repo.ReviewRepository                 { return r.reviews }
func (r *TxReposMock) Carts() repo.CartRepository                     { return r.carts }
func (r *TxReposMock) CartItems() repo.CartItemRepository             { return r.cartItems }

// =====================
// Repository mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, skip int, limit int) ([]model.Product, error) {
	args := m.Called(ctx, skip, limit)
	ps, _ := args.Get(0).([]model.Product)
	return ps, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type VariantRepoMock struct{ mock.Mock }

func (m *VariantRepoMock) FindByID(ctx context.Context, variantID int64) (model.ProductVariant, error) {
	args := m.Called(ctx, variantID)
	v, _ := args.Get(0).(model.ProductVariant)
	return v, args.Error(1)
}

func (m *VariantRepoMock) ListByProductID(ctx context.Context, productID int64) ([]model.ProductVariant, error) {
	args := m.Called(ctx, productID)
	vs, _ := args.Get(0).([]model.ProductVariant)
	return vs, args.Error(1)
}

func (m *VariantRepoMock) Create(ctx context.Context, v model.ProductVariant) (model.ProductVariant, error) {
	args := m.Called(ctx, v)
	created, _ := args.Get(0).(model.ProductVariant)
	return created, args.Error(1)
}

func (m *VariantRepoMock) Update(ctx context.Context, v model.ProductVariant) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *VariantRepoMock) DeleteByID(ctx context.Context, variantID int64) error {
	args := m.Called(ctx, variantID)
	return args.Error(0)
}

func (m *VariantRepoMock) DeleteByProductID(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type ImageRepoMock struct{ mock.Mock }

func (m *ImageRepoMock) FindByIDForProduct(ctx context.Context, imageID int64, productID int64) (model.ProductImage, error) {
	args := m.Called(ctx, imageID, productID)
	img, _ := args.Get(0).(model.ProductImage)
	return img, args.Error(1)
}

func (m *ImageRepoMock) CreateBulk(ctx context.Context, images []model.ProductImage) error {
	args := m.Called(ctx, images)
	return args.Error(0)
}

func (m *ImageRepoMock) DeleteByID(ctx context.Context, imageID int64) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

func (m *ImageRepoMock) DeleteByProductID(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type RecommendationRepoMock struct{ mock.Mock }

func (m *RecommendationRepoMock) ExistsByPair(ctx context.Context, baseProductID int64, recommendedProductID int64) (bool, error) {
	args := m.Called(ctx, baseProductID, recommendedProductID)
	return args.Bool(0), args.Error(1)
}

func (m *RecommendationRepoMock) ListByBaseProductID(ctx context.Context, baseProductID int64) ([]model.ProductRecommendation, error) {
	args := m.Called(ctx, baseProductID)
	recs, _ := args.Get(0).([]model.ProductRecommendation)
	return recs, args.Error(1)
}

func (m *RecommendationRepoMock) Create(ctx context.Context, rec model.ProductRecommendation) (model.ProductRecommendation, error) {
	args := m.Called(ctx, rec)
	created, _ := args.Get(0).(model.ProductRecommendation)
	return created, args.Error(1)
}

func (m *RecommendationRepoMock) DeleteByID(ctx context.Context, recID int64) error {
	args := m.Called(ctx, recID)
	return args.Error(0)
}

func (m *RecommendationRepoMock) DeleteByProductID(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type ReviewRepoMock struct{ mock.Mock }

func (m *ReviewRepoMock) List(ctx context.Context, skip int, limit int) ([]model.ProductReview, error) {
	args := m.Called(ctx, skip, limit)
	rs, _ := args.Get(0).([]model.ProductReview)
	return rs, args.Error(1)
}

func (m *ReviewRepoMock) Create(ctx context.Context, r model.ProductReview) (model.ProductReview, error) {
	args := m.Called(ctx, r)
	created, _ := args.Get(0).(model.ProductReview)
	return created, args.Error(1)
}

func (m *ReviewRepoMock) DeleteByProductID(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) FindBySessionID(ctx context.Context, sessionID string) (model.Cart, error) {
	args := m.Called(ctx, sessionID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) GetOrCreateBySessionID(ctx context.Context, sessionID string) (model.Cart, error) {
	args := m.Called(ctx, sessionID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) Clear(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) FindByIDInCart(ctx context.Context, cartItemID int64, cartID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartItemID, cartID)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

func (m *CartItemRepoMock) FindByCartAndVariant(ctx context.Context, cartID int64, variantID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartID, variantID)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

func (m *CartItemRepoMock) Create(ctx context.Context, item model.CartItem) (model.CartItem, error) {
	args := m.Called(ctx, item)
	created, _ := args.Get(0).(model.CartItem)
	return created, args.Error(1)
}

func (m *CartItemRepoMock) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	args := m.Called(ctx, cartItemID, qty)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByID(ctx context.Context, cartItemID int64) error {
	args := m.Called(ctx, cartItemID)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByVariantIDs(ctx context.Context, variantIDs []int64) error {
	args := m.Called(ctx, variantIDs)
	return args.Error(0)
}

// =====================
// Event publisher mock
// =====================

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) PublishProductEvent(event string, productID int64) error {
	args := m.Called(event, productID)
	return args.Error(0)
}

// =====================
// helpers
// =====================

func assertHTTPError(t *testing.T, err error, status int, contains string) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok, "expected HTTPError, got %v", err) {
		assert.Equal(t, status, he.Status)
		assert.True(t, strings.Contains(he.Message, contains),
			"message %q does not contain %q", he.Message, contains)
	}
}
