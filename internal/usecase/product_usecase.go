package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"shortshop/internal/domain/model"
	repo "shortshop/internal/repository"

	"github.com/shopspring/decimal"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type MessageResponse struct {
	Message string `json:"message"`
}

// 商品イベントの発行先（RabbitMQ）。nilなら発行しない。
// 配信はベストエフォートで、業務ロジックは配信結果に依存しない。
type EventPublisher interface {
	PublishProductEvent(event string, productID int64) error
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
	txm         repo.TransactionManager
	publisher   EventPublisher
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	txm repo.TransactionManager,
	publisher EventPublisher,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		txm:         txm,
		publisher:   publisher,
	}
}

// =====================
// DTO
// =====================

type VariantResponse struct {
	ID      int64  `json:"id"`
	Color   string `json:"color"`
	Size    string `json:"size"`
	InStock bool   `json:"in_stock"`
}

type ImageResponse struct {
	ID       int64  `json:"id"`
	Color    string `json:"color"`
	ImageURL string `json:"image_url"`
}

type ProductResponse struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	Price             float64           `json:"price"`
	Description       string            `json:"description"`
	LifetimeGuarantee bool              `json:"lifetime_guarantee"`
	Variants          []VariantResponse `json:"variants"`
	Images            []ImageResponse   `json:"images"`
}

type CreateVariantInput struct {
	Color   string
	Size    string
	InStock bool
}

type CreateImageInput struct {
	Color    string
	ImageURL string
}

type CreateProductInput struct {
	Name              string
	Price             float64
	Description       string
	LifetimeGuarantee bool
	Variants          []CreateVariantInput
	Images            []CreateImageInput
}

type UpdateProductInput struct {
	Name              *string
	Price             *float64
	Description       *string
	LifetimeGuarantee *bool
}

// =====================
// 商品CRUD
// =====================

func (u *ProductUsecase) List(ctx context.Context, skip int, limit int) ([]ProductResponse, error) {
	if skip < 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid skip")
	}
	if limit < 1 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	products, err := u.productRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}
	return resp, nil
}

func (u *ProductUsecase) Get(ctx context.Context, productID int64) (ProductResponse, error) {
	if productID <= 0 {
		return ProductResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return ProductResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return ProductResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toProductResponse(p), nil
}

// 商品＋ネストしたvariants/imagesを1トランザクションで作成
func (u *ProductUsecase) Create(ctx context.Context, in CreateProductInput) (ProductResponse, error) {
	if err := validateProductFields(in.Name, in.Price, in.Description); err != nil {
		return ProductResponse{}, err
	}
	for _, v := range in.Variants {
		if err := validateVariantInput(v); err != nil {
			return ProductResponse{}, err
		}
	}
	for _, img := range in.Images {
		if err := validateImageInput(img); err != nil {
			return ProductResponse{}, err
		}
	}

	var productID int64
	err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		created, err := r.Products().Create(ctx, model.Product{
			Name:              strings.TrimSpace(in.Name),
			Price:             decimal.NewFromFloat(in.Price),
			Description:       in.Description,
			LifetimeGuarantee: in.LifetimeGuarantee,
		})
		if err != nil {
			return err
		}
		productID = created.ID

		images := make([]model.ProductImage, 0, len(in.Images))
		for _, img := range in.Images {
			images = append(images, model.ProductImage{
				ProductID: created.ID,
				Color:     img.Color,
				ImageURL:  img.ImageURL,
			})
		}
		if err := r.Images().CreateBulk(ctx, images); err != nil {
			return err
		}

		for _, v := range in.Variants {
			if _, err := r.Variants().Create(ctx, model.ProductVariant{
				ProductID: created.ID,
				Color:     v.Color,
				Size:      model.Size(v.Size),
				InStock:   v.InStock,
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return ProductResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//関連込みで読み直して返す
	p, err := u.productRepo.FindByID(ctx, productID)
	if err != nil {
		return ProductResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.publish("product.created", p.ID)
	return toProductResponse(p), nil
}

// 部分更新。渡されたフィールドだけ反映する。
func (u *ProductUsecase) Update(ctx context.Context, productID int64, in UpdateProductInput) (ProductResponse, error) {
	if productID <= 0 {
		return ProductResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return ProductResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return ProductResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" || utf8.RuneCountInString(name) > 120 {
			return ProductResponse{}, NewHTTPError(http.StatusUnprocessableEntity, "name must be 1-120 characters")
		}
		p.Name = name
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return ProductResponse{}, NewHTTPError(http.StatusUnprocessableEntity, "price must be greater than 0")
		}
		p.Price = decimal.NewFromFloat(*in.Price)
	}
	if in.Description != nil {
		if *in.Description == "" {
			return ProductResponse{}, NewHTTPError(http.StatusUnprocessableEntity, "description must not be empty")
		}
		p.Description = *in.Description
	}
	if in.LifetimeGuarantee != nil {
		p.LifetimeGuarantee = *in.LifetimeGuarantee
	}

	if err := u.productRepo.Update(ctx, p); err != nil {
		if err == repo.ErrNotFound {
			return ProductResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return ProductResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.publish("product.updated", p.ID)
	return toProductResponse(p), nil
}

// 依存行（cart明細→variants→images→recommendations→reviews）を
// サービス層で明示的に消してから商品を消す。全体で1トランザクション。
func (u *ProductUsecase) Delete(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Products().FindByID(ctx, productID); err != nil {
			return err
		}

		variants, err := r.Variants().ListByProductID(ctx, productID)
		if err != nil {
			return err
		}
		variantIDs := make([]int64, 0, len(variants))
		for _, v := range variants {
			variantIDs = append(variantIDs, v.ID)
		}

		if err := r.CartItems().DeleteByVariantIDs(ctx, variantIDs); err != nil {
			return err
		}
		if err := r.Variants().DeleteByProductID(ctx, productID); err != nil {
			return err
		}
		if err := r.Images().DeleteByProductID(ctx, productID); err != nil {
			return err
		}
		if err := r.Recommendations().DeleteByProductID(ctx, productID); err != nil {
			return err
		}
		if err := r.Reviews().DeleteByProductID(ctx, productID); err != nil {
			return err
		}

		return r.Products().DeleteByID(ctx, productID)
	})

	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.publish("product.deleted", productID)
	return nil
}

// 配信失敗は無視する（クライアント側でログされる）
func (u *ProductUsecase) publish(event string, productID int64) {
	if u.publisher == nil {
		return
	}
	_ = u.publisher.PublishProductEvent(event, productID)
}

// =====================
// 共通バリデーション・変換
// =====================

// 文字数はバイト長ではなくルーン数で数える
func validateProductFields(name string, price float64, description string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > 120 {
		return NewHTTPError(http.StatusUnprocessableEntity, "name must be 1-120 characters")
	}
	if price <= 0 {
		return NewHTTPError(http.StatusUnprocessableEntity, "price must be greater than 0")
	}
	if description == "" {
		return NewHTTPError(http.StatusUnprocessableEntity, "description must not be empty")
	}
	return nil
}

func validateVariantInput(in CreateVariantInput) error {
	if in.Color == "" || utf8.RuneCountInString(in.Color) > 50 {
		return NewHTTPError(http.StatusUnprocessableEntity, "color must be 1-50 characters")
	}
	if !model.IsValidSize(model.Size(in.Size)) {
		return NewHTTPError(http.StatusUnprocessableEntity, "invalid size")
	}
	return nil
}

func validateImageInput(in CreateImageInput) error {
	if in.ImageURL == "" || utf8.RuneCountInString(in.ImageURL) > 255 {
		return NewHTTPError(http.StatusUnprocessableEntity, "image_url must be 1-255 characters")
	}
	return nil
}

func toVariantResponse(v model.ProductVariant) VariantResponse {
	return VariantResponse{
		ID:      v.ID,
		Color:   v.Color,
		Size:    string(v.Size),
		InStock: v.InStock,
	}
}

func toProductResponse(p model.Product) ProductResponse {
	variants := make([]VariantResponse, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, toVariantResponse(v))
	}

	images := make([]ImageResponse, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ImageResponse{
			ID:       img.ID,
			Color:    img.Color,
			ImageURL: img.ImageURL,
		})
	}

	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Price:             p.Price.InexactFloat64(),
		Description:       p.Description,
		LifetimeGuarantee: p.LifetimeGuarantee,
		Variants:          variants,
		Images:            images,
	}
}
