package cart

// Cart maps product id to its line item. One cart per session, kept in the
// session store under SessionKey; it never outlives the session.
type Cart map[uint]LineItem

// LineItem snapshots the product's description and price at add time. Later
// price changes in the catalog do not touch lines already in a cart.
// Total is always Price * Quantity and Quantity is never stored as zero.
type LineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// Checkout carries the submitted shipping and payment details. Nothing is
// written to a durable order table; the cart is cleared and that is the order.
type Checkout struct {
	ShippingDetails string `json:"shipping_details"`
	PaymentMethod   string `json:"payment_method"`
}

// PaymentMethods is the allowed payment set. Cash on delivery only for now.
var PaymentMethods = map[string]struct{}{
	"cash_on_delivery": {},
}

// GrandTotal sums all line totals. Empty cart totals zero.
func (c Cart) GrandTotal() float64 {
	var sum float64
	for _, item := range c {
		sum += item.Total
	}
	return sum
}
