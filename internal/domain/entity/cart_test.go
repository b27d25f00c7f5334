package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestStore_DeliveryFeeFor(t *testing.T) {
	tests := []struct {
		name      string
		fee       string
		threshold string
		subtotal  string
		want      string
	}{
		{name: "no threshold", fee: "7.50", threshold: "0", subtotal: "500", want: "7.50"},
		{name: "below threshold", fee: "7.50", threshold: "100", subtotal: "99.99", want: "7.50"},
		{name: "at threshold", fee: "7.50", threshold: "100", subtotal: "100", want: "0"},
		{name: "above threshold", fee: "7.50", threshold: "100", subtotal: "150", want: "0"},
		{name: "free delivery store", fee: "0", threshold: "0", subtotal: "10", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &Store{DeliveryFee: dec(tt.fee), FreeShippingThreshold: dec(tt.threshold)}

			got := store.DeliveryFeeFor(dec(tt.subtotal))
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("padaria123"))
	assert.False(t, IsValidSlug(""))
	assert.False(t, IsValidSlug("Padaria"))
	assert.False(t, IsValidSlug("padaria-central"))
	assert.False(t, IsValidSlug("padaria central"))
}

func TestNewCartView(t *testing.T) {
	bread := &Product{ID: uuid.New(), Name: "Pão", Price: dec("0.80"), Images: []string{"bread.jpg"}, Available: true}
	cake := &Product{ID: uuid.New(), Name: "Bolo", Price: dec("25"), Available: false}

	cart := &Cart{
		ID:      uuid.New(),
		StoreID: uuid.New(),
		Items: []*CartItem{
			{ID: uuid.New(), ProductID: bread.ID, Quantity: 10, Product: bread},
			{ID: uuid.New(), ProductID: cake.ID, Quantity: 1, Product: cake},
			{ID: uuid.New(), ProductID: uuid.New(), Quantity: 3},
		},
	}
	store := &Store{MinimumOrder: dec("40"), DeliveryFee: dec("5"), FreeShippingThreshold: dec("100")}

	view := NewCartView(cart, store)

	require.Len(t, view.Items, 2)
	assert.Equal(t, 11, view.ItemCount)
	assert.True(t, dec("33").Equal(view.Subtotal))
	assert.True(t, dec("5").Equal(view.DeliveryFee))
	assert.True(t, dec("38").Equal(view.Total))
	assert.False(t, view.MeetsMinimumOrder)

	assert.Equal(t, "bread.jpg", view.Items[0].Image)
	assert.True(t, dec("8").Equal(view.Items[0].LineTotal))
	assert.False(t, view.Items[1].Available)
}

func TestNewCartView_WithoutStore(t *testing.T) {
	product := &Product{ID: uuid.New(), Price: dec("12.5")}
	cart := &Cart{Items: []*CartItem{{ProductID: product.ID, Quantity: 2, Product: product}}}

	view := NewCartView(cart, nil)

	assert.True(t, dec("25").Equal(view.Total))
	assert.True(t, view.DeliveryFee.IsZero())
	assert.True(t, view.MeetsMinimumOrder)
}

func TestCallerIdentity(t *testing.T) {
	var anonymous *CallerIdentity
	assert.True(t, anonymous.IsAnonymous())
	assert.False(t, anonymous.Owns(uuid.Nil))
	assert.False(t, anonymous.IsAdmin())

	caller := &CallerIdentity{UserID: uuid.New(), Role: RoleAdmin}
	assert.False(t, caller.IsAnonymous())
	assert.True(t, caller.Owns(caller.UserID))
	assert.False(t, caller.Owns(uuid.New()))
	assert.True(t, caller.IsAdmin())
}
