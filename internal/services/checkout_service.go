package services

import (
	"github.com/go-playground/validator/v10"

	"shopfront/internal/domain"
	"shopfront/internal/validate"
)

// ShippingForm carries the raw checkout form fields. Each field is
// sanitized before validation, so control characters can never pass
// a rule and never reach a stored order.
type ShippingForm struct {
	Name    string `validate:"required,max=100"`
	Address string `validate:"required,max=200"`
	City    string `validate:"required,max=100"`
	Zip     string `validate:"required,min=3,max=10"`
	Phone   string `validate:"required,min=7,max=20"`
}

func (f ShippingForm) sanitized() ShippingForm {
	return ShippingForm{
		Name:    validate.Clean(f.Name),
		Address: validate.Clean(f.Address),
		City:    validate.Clean(f.City),
		Zip:     validate.Clean(f.Zip),
		Phone:   validate.Clean(f.Phone),
	}
}

// CheckoutService orchestrates order placement: identity, token,
// shipping validation, cart snapshot, record, clear. Any failure
// leaves the cart and order history untouched.
type CheckoutService struct {
	Auth   *AuthService
	Cart   *CartService
	Orders *OrderService
	Tokens *TokenIssuer

	v *validator.Validate
}

func NewCheckoutService(auth *AuthService, cart *CartService, orders *OrderService, tokens *TokenIssuer) *CheckoutService {
	return &CheckoutService{
		Auth:   auth,
		Cart:   cart,
		Orders: orders,
		Tokens: tokens,
		v:      validator.New(),
	}
}

// Place attempts to turn the current cart into an order. A fresh token
// is issued before returning, success or not, so every submission
// consumes the token it carried.
func (s *CheckoutService) Place(token string, form ShippingForm) (domain.Order, error) {
	defer s.Tokens.Issue()

	if _, ok := s.Auth.Current(); !ok {
		return domain.Order{}, ErrNotLoggedIn
	}
	if !s.Tokens.Validate(token) {
		return domain.Order{}, ErrInvalidToken
	}

	form = form.sanitized()
	if err := s.v.Struct(form); err != nil {
		return domain.Order{}, ErrValidationFailed
	}

	lines, _ := s.Cart.Totals()
	if len(lines) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.OrderItem{
			ID:    l.Product.ID,
			Name:  l.Product.Name,
			Qty:   l.Qty,
			Price: l.Product.Price,
		})
	}
	order, err := domain.NewOrder(items, domain.ShippingInfo{
		Name:    form.Name,
		Address: form.Address,
		City:    form.City,
		Zip:     form.Zip,
		Phone:   form.Phone,
	})
	if err != nil {
		return domain.Order{}, ErrEmptyCart
	}

	if err := s.Orders.Record(order); err != nil {
		return domain.Order{}, err
	}
	if err := s.Cart.Clear(); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}
