package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is a user's in-progress selection of products from a single store.
type Cart struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"userId"`
	StoreID   uuid.UUID   `json:"storeId"`
	Items     []*CartItem `json:"items"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// CartItem is one line of a cart. Product is joined at read time.
type CartItem struct {
	ID        uuid.UUID `json:"id"`
	CartID    uuid.UUID `json:"cartId"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	Product   *Product  `json:"product,omitempty"`
}

// CartView is a cart with totals computed from current product prices.
type CartView struct {
	ID                uuid.UUID       `json:"id"`
	StoreID           uuid.UUID       `json:"storeId"`
	Store             *Store          `json:"store"`
	Items             []*CartLine     `json:"items"`
	ItemCount         int             `json:"itemCount"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	DeliveryFee       decimal.Decimal `json:"deliveryFee"`
	Total             decimal.Decimal `json:"total"`
	MeetsMinimumOrder bool            `json:"meetsMinimumOrder"`
}

// CartLine is a cart item with its live product data.
type CartLine struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Available bool            `json:"available"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// NewCartView computes the read-time totals of cart against store.
// Items whose product is missing are skipped.
func NewCartView(cart *Cart, store *Store) *CartView {
	view := &CartView{
		ID:      cart.ID,
		StoreID: cart.StoreID,
		Store:   store,
		Items:   make([]*CartLine, 0, len(cart.Items)),
	}

	subtotal := decimal.Zero
	for _, item := range cart.Items {
		if item.Product == nil {
			continue
		}

		lineTotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		view.ItemCount += item.Quantity
		view.Items = append(view.Items, &CartLine{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Image:     item.Product.MainImage(),
			Available: item.Product.Available,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})
	}

	view.Subtotal = subtotal
	view.DeliveryFee = decimal.Zero
	view.MeetsMinimumOrder = true
	if store != nil {
		view.DeliveryFee = store.DeliveryFeeFor(subtotal)
		view.MeetsMinimumOrder = subtotal.GreaterThanOrEqual(store.MinimumOrder)
	}
	view.Total = subtotal.Add(view.DeliveryFee)

	return view
}
