package cart

import (
	"context"
	"errors"

	"storefront-api/internal/core/session"
	"storefront-api/internal/domain"
)

// SessionKey is where the cart lives inside a session.
const SessionKey = "cart"

var (
	ErrUnknownProduct = errors.New("product does not exist")
	ErrInvalidQty     = errors.New("quantity must be at least 1")
	ErrBadPayment     = errors.New("payment method not accepted")
	ErrEmptyCart      = errors.New("cart is empty")
)

type Service struct {
	products domain.ProductRepository
	sessions session.Store
}

func New(products domain.ProductRepository, sessions session.Store) *Service {
	return &Service{products: products, sessions: sessions}
}

func (s *Service) load(ctx context.Context, sid string) (Cart, error) {
	c := Cart{}
	if _, err := s.sessions.Get(ctx, sid, SessionKey, &c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) save(ctx context.Context, sid string, c Cart) error {
	return s.sessions.Put(ctx, sid, SessionKey, c)
}

// Add puts quantity units of a product into the session cart. Adding a product
// already in the cart accumulates its quantity; the line keeps the price it
// was first added at and its total is recomputed from that snapshot.
func (s *Service) Add(ctx context.Context, sid string, productID uint, quantity int) (Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQty
	}
	product, err := s.products.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrUnknownProduct
	}

	c, err := s.load(ctx, sid)
	if err != nil {
		return nil, err
	}

	if item, ok := c[productID]; ok {
		item.Quantity += quantity
		item.Total = item.Price * float64(item.Quantity)
		c[productID] = item
	} else {
		c[productID] = LineItem{
			Name:     product.Description,
			Price:    product.Price,
			Quantity: quantity,
			Total:    product.Price * float64(quantity),
		}
	}

	if err := s.save(ctx, sid, c); err != nil {
		return nil, err
	}
	return c, nil
}

// View returns the cart and its grand total without mutating anything.
func (s *Service) View(ctx context.Context, sid string) (Cart, float64, error) {
	c, err := s.load(ctx, sid)
	if err != nil {
		return nil, 0, err
	}
	return c, c.GrandTotal(), nil
}

// Update sets the quantity of a line already in the cart. Quantity zero deletes
// the line. A product that exists in the catalog but not in the cart is left
// alone on purpose; only /cart/add creates lines.
func (s *Service) Update(ctx context.Context, sid string, productID uint, quantity int) (Cart, error) {
	if quantity < 0 {
		return nil, ErrInvalidQty
	}
	product, err := s.products.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrUnknownProduct
	}

	c, err := s.load(ctx, sid)
	if err != nil {
		return nil, err
	}

	if item, ok := c[productID]; ok {
		if quantity == 0 {
			delete(c, productID)
		} else {
			item.Quantity = quantity
			item.Total = item.Price * float64(quantity)
			c[productID] = item
		}
	}

	if err := s.save(ctx, sid, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Remove deletes a line from the cart. Removing a product that is not in the
// cart is a no-op; an id unknown to the catalog is still rejected.
func (s *Service) Remove(ctx context.Context, sid string, productID uint) (Cart, error) {
	product, err := s.products.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrUnknownProduct
	}

	c, err := s.load(ctx, sid)
	if err != nil {
		return nil, err
	}

	if _, ok := c[productID]; ok {
		delete(c, productID)
		if err := s.save(ctx, sid, c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// CheckoutCart validates the submitted details, rejects an empty cart and
// clears the session cart in one step. There is no separate submitted state.
func (s *Service) CheckoutCart(ctx context.Context, sid string, co Checkout) (*Checkout, error) {
	if _, ok := PaymentMethods[co.PaymentMethod]; !ok {
		return nil, ErrBadPayment
	}

	c, err := s.load(ctx, sid)
	if err != nil {
		return nil, err
	}
	if len(c) == 0 {
		return nil, ErrEmptyCart
	}

	if err := s.sessions.Forget(ctx, sid, SessionKey); err != nil {
		return nil, err
	}
	return &co, nil
}
