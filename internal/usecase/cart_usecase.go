package usecase

import (
	"context"
	"net/http"
	"unicode/utf8"

	"shortshop/internal/domain/model"
	repo "shortshop/internal/repository"
)

type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	variantRepo  repo.VariantRepository
	txm          repo.TransactionManager
}

// DI
func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	variantRepo repo.VariantRepository,
	txm repo.TransactionManager,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		variantRepo:  variantRepo,
		txm:          txm,
	}
}

type CartItemResponse struct {
	ID        int64 `json:"id"`
	CartID    int64 `json:"cart_id"`
	VariantID int64 `json:"variant_id"`
	Quantity  int64 `json:"quantity"`
}

type CartResponse struct {
	ID        int64              `json:"id"`
	SessionID string             `json:"session_id"`
	Items     []CartItemResponse `json:"items"`
}

// varchar(128)に収まるかは文字数で判定する
func validateSessionID(sessionID string) error {
	if sessionID == "" || utf8.RuneCountInString(sessionID) > 128 {
		return NewHTTPError(http.StatusUnprocessableEntity, "session_id must be 1-128 characters")
	}
	return nil
}

// 同じsession_idなら既存のカートをそのまま返す
func (u *CartUsecase) Create(ctx context.Context, sessionID string) (CartResponse, error) {
	if err := validateSessionID(sessionID); err != nil {
		return CartResponse{}, err
	}

	if _, err := u.cartRepo.GetOrCreateBySessionID(ctx, sessionID); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//明細込みで読み直す
	cart, err := u.cartRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toCartResponse(cart), nil
}

func (u *CartUsecase) Get(ctx context.Context, sessionID string) (CartResponse, error) {
	if sessionID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid session id")
	}

	cart, err := u.cartRepo.FindBySessionID(ctx, sessionID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "cart not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toCartResponse(cart), nil
}

// カート本体は残して明細だけ消す
func (u *CartUsecase) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid session id")
	}

	cart, err := u.cartRepo.FindBySessionID(ctx, sessionID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "cart not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartRepo.Clear(ctx, cart.ID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// variantの存在確認をカート作成より先に行う。
// 存在しないvariantへの追加で空カートを作らないため。
func (u *CartUsecase) AddItem(ctx context.Context, sessionID string, variantID int64, quantity int64) (CartItemResponse, error) {
	//自動作成の経路でもCreateと同じ制約をかける
	if err := validateSessionID(sessionID); err != nil {
		return CartItemResponse{}, err
	}
	if quantity <= 0 {
		return CartItemResponse{}, NewHTTPError(http.StatusUnprocessableEntity, "quantity must be greater than 0")
	}

	if _, err := u.variantRepo.FindByID(ctx, variantID); err != nil {
		if err == repo.ErrNotFound {
			return CartItemResponse{}, NewHTTPError(http.StatusNotFound, "variant not found")
		}
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var result model.CartItem
	err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().GetOrCreateBySessionID(ctx, sessionID)
		if err != nil {
			return err
		}

		existing, err := r.CartItems().FindByCartAndVariant(ctx, cart.ID, variantID)
		if err == nil {
			//同一variantは数量を加算
			existing.Quantity += quantity
			if err := r.CartItems().UpdateQuantity(ctx, existing.ID, existing.Quantity); err != nil {
				return err
			}
			result = existing
			return nil
		}
		if err != repo.ErrNotFound {
			return err
		}

		created, err := r.CartItems().Create(ctx, model.CartItem{
			CartID:    cart.ID,
			VariantID: variantID,
			Quantity:  quantity,
		})
		if err != nil {
			return err
		}
		result = created
		return nil
	})
	if err != nil {
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toCartItemResponse(result), nil
}

func (u *CartUsecase) UpdateItem(ctx context.Context, sessionID string, itemID int64, quantity int64) (CartItemResponse, error) {
	if sessionID == "" || itemID <= 0 {
		return CartItemResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if quantity <= 0 {
		return CartItemResponse{}, NewHTTPError(http.StatusUnprocessableEntity, "quantity must be greater than 0")
	}

	cart, err := u.cartRepo.FindBySessionID(ctx, sessionID)
	if err == repo.ErrNotFound {
		return CartItemResponse{}, NewHTTPError(http.StatusNotFound, "cart not found")
	}
	if err != nil {
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item, err := u.cartItemRepo.FindByIDInCart(ctx, itemID, cart.ID)
	if err == repo.ErrNotFound {
		return CartItemResponse{}, NewHTTPError(http.StatusNotFound, "item not found in this cart")
	}
	if err != nil {
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, item.ID, quantity); err != nil {
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	item.Quantity = quantity

	return toCartItemResponse(item), nil
}

func (u *CartUsecase) DeleteItem(ctx context.Context, sessionID string, itemID int64) error {
	if sessionID == "" || itemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	cart, err := u.cartRepo.FindBySessionID(ctx, sessionID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "cart not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item, err := u.cartItemRepo.FindByIDInCart(ctx, itemID, cart.ID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "item not found in this cart")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartItemRepo.DeleteByID(ctx, item.ID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func toCartItemResponse(item model.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:        item.ID,
		CartID:    item.CartID,
		VariantID: item.VariantID,
		Quantity:  item.Quantity,
	}
}

func toCartResponse(c model.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, toCartItemResponse(item))
	}
	return CartResponse{
		ID:        c.ID,
		SessionID: c.SessionID,
		Items:     items,
	}
}
