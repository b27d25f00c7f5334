package mail

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jordan-wright/email"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent    []*email.Email
	timeout time.Duration
	err     error
}

func (f *fakeSender) Send(e *email.Email, timeout time.Duration) error {
	f.sent = append(f.sent, e)
	f.timeout = timeout

	return f.err
}

func newTestOrder() *entity.Order {
	change := decimal.RequireFromString("50")

	return &entity.Order{
		ID:            uuid.MustParse("0b7c5a1e-1111-4222-8333-444455556666"),
		StoreName:     "Doces da Ana",
		CustomerName:  "Maria <Silva>",
		CustomerPhone: "11999990000",
		PaymentMethod: "dinheiro",
		NeedsChange:   true,
		ChangeAmount:  &change,
		Items: []entity.OrderItem{
			{Name: "Brigadeiro", Price: decimal.RequireFromString("10.00"), Quantity: 2},
		},
		Subtotal:    decimal.RequireFromString("20.00"),
		DeliveryFee: decimal.RequireFromString("5.00"),
		Total:       decimal.RequireFromString("25.00"),
	}
}

func TestRenderNewOrder(t *testing.T) {
	subject, body, err := renderNewOrder(newTestOrder())
	require.NoError(t, err)

	assert.Equal(t, "Novo pedido #0B7C5A1E - Doces da Ana", subject)
	assert.Contains(t, body, "Brigadeiro")
	assert.Contains(t, body, "R$ 20,00")
	assert.Contains(t, body, "R$ 25,00")
	assert.Contains(t, body, "troco para R$ 50,00")
	// customer input is escaped
	assert.Contains(t, body, "Maria &lt;Silva&gt;")
}

func TestSMTPMailer_SendNewOrder(t *testing.T) {
	sender := &fakeSender{}
	mailer := newSMTPMailer(sender, "Loja <no-reply@loja.test>", 3*time.Second)

	err := mailer.SendNewOrder(context.Background(), "ana@loja.test", newTestOrder())
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"ana@loja.test"}, sender.sent[0].To)
	assert.Equal(t, "Loja <no-reply@loja.test>", sender.sent[0].From)
	assert.Equal(t, "Novo pedido #0B7C5A1E - Doces da Ana", sender.sent[0].Subject)
	assert.Contains(t, string(sender.sent[0].HTML), "Brigadeiro")
	assert.Contains(t, string(sender.sent[0].HTML), "R$ 25,00")
	assert.Equal(t, 3*time.Second, sender.timeout)
}

func TestSMTPMailer_SendFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("connection refused")}
	mailer := newSMTPMailer(sender, "no-reply@loja.test", time.Second)

	err := mailer.SendNewOrder(context.Background(), "ana@loja.test", newTestOrder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSMTPMailer_CancelledContext(t *testing.T) {
	sender := &fakeSender{}
	mailer := newSMTPMailer(sender, "no-reply@loja.test", time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := mailer.SendNewOrder(ctx, "ana@loja.test", newTestOrder())
	require.Error(t, err)
	assert.Empty(t, sender.sent)
}
