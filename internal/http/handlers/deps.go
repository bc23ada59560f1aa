package handlers

import (
	"shopfront/internal/catalog"
	"shopfront/internal/services"
	"shopfront/internal/store"
)

type Deps struct {
	ShopHandler     *ShopHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	OrderHandler    *OrderHandler
}

func NewDeps(st *store.Store, cat *catalog.Catalog, auth *services.AuthService) *Deps {
	cartSvc := services.NewCartService(st, cat)
	orderSvc := services.NewOrderService(st, auth)
	tokens := services.NewTokenIssuer()
	checkoutSvc := services.NewCheckoutService(auth, cartSvc, orderSvc, tokens)

	return &Deps{
		ShopHandler:     &ShopHandler{Catalog: cat},
		CartHandler:     &CartHandler{Cart: cartSvc},
		CheckoutHandler: &CheckoutHandler{Cart: cartSvc, Checkout: checkoutSvc, Tokens: tokens},
		OrderHandler:    &OrderHandler{Orders: orderSvc},
	}
}
