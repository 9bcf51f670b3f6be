package repository

import (
	"context"

	repo "shortshop/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	products        repo.ProductRepository
	variants        repo.VariantRepository
	images          repo.ImageRepository
	recommendations repo.RecommendationRepository
	reviews         repo.ReviewRepository
	carts           repo.CartRepository
	cartItems       repo.CartItemRepository
}

func (r *txReposGorm) Products() repo.ProductRepository               { return r.products }
func (r *txReposGorm) Variants() repo.VariantRepository               { return r.variants }
func (r *txReposGorm) Images() repo.ImageRepository                   { return r.images }
func (r *txReposGorm) Recommendations() repo.RecommendationRepository { return r.recommendations }
func (r *txReposGorm) Reviews() repo.ReviewRepository                 { return r.reviews }
func (r *txReposGorm) Carts() repo.CartRepository                     { return r.carts }
func (r *txReposGorm) CartItems() repo.CartItemRepository             { return r.cartItems }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			products:        NewProductGormRepository(tx),
			variants:        NewVariantGormRepository(tx),
			images:          NewImageGormRepository(tx),
			recommendations: NewRecommendationGormRepository(tx),
			reviews:         NewReviewGormRepository(tx),
			carts:           NewCartGormRepository(tx),
			cartItems:       NewCartGormRepository(tx),
		}
		return fn(r)
	})
}
