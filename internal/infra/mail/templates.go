package mail

import (
	"bytes"
	"html/template"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/shopspring/decimal"
)

type newOrderLine struct {
	Name      string
	Quantity  int
	Price     string
	LineTotal string
}

type newOrderData struct {
	ShortID         string
	StoreName       string
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	PaymentMethod   string
	ChangeFor       string
	Lines           []newOrderLine
	Subtotal        string
	DeliveryFee     string
	Total           string
}

var newOrderTemplate = template.Must(template.New("newOrder").Parse(newOrderHTML))

// formatBRL renders a value as Brazilian currency.
func formatBRL(value decimal.Decimal) string {
	return "R$ " + strings.Replace(value.StringFixed(2), ".", ",", 1)
}

func shortOrderID(order *entity.Order) string {
	id := order.ID.String()

	return strings.ToUpper(id[:8])
}

func renderNewOrder(order *entity.Order) (subject, body string, err error) {
	data := newOrderData{
		ShortID:         shortOrderID(order),
		StoreName:       order.StoreName,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		DeliveryAddress: order.DeliveryAddress,
		PaymentMethod:   order.PaymentMethod,
		Subtotal:        formatBRL(order.Subtotal),
		DeliveryFee:     formatBRL(order.DeliveryFee),
		Total:           formatBRL(order.Total),
		Lines:           make([]newOrderLine, 0, len(order.Items)),
	}
	if order.NeedsChange && order.ChangeAmount != nil {
		data.ChangeFor = formatBRL(*order.ChangeAmount)
	}
	for _, item := range order.Items {
		data.Lines = append(data.Lines, newOrderLine{
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     formatBRL(item.Price),
			LineTotal: formatBRL(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))),
		})
	}

	var buf bytes.Buffer
	if err := newOrderTemplate.Execute(&buf, data); err != nil {
		return "", "", errors.Wrap(err, "failed to render order email")
	}

	return "Novo pedido #" + data.ShortID + " - " + order.StoreName, buf.String(), nil
}

const newOrderHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Novo pedido</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #e85d04; color: white; padding: 20px; text-align: center; }
        .content { padding: 30px; background-color: #f9f9f9; }
        table { width: 100%; border-collapse: collapse; }
        td, th { padding: 6px; border-bottom: 1px solid #ddd; text-align: left; }
        .total { font-weight: bold; }
        .footer { padding: 20px; text-align: center; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Novo pedido #{{.ShortID}}</h1>
            <p>{{.StoreName}}</p>
        </div>
        <div class="content">
            <p><strong>Cliente:</strong> {{.CustomerName}}</p>
            {{if .CustomerPhone}}<p><strong>Telefone:</strong> {{.CustomerPhone}}</p>{{end}}
            {{if .DeliveryAddress}}<p><strong>Entrega:</strong> {{.DeliveryAddress}}</p>{{end}}
            <p><strong>Pagamento:</strong> {{.PaymentMethod}}{{if .ChangeFor}} (troco para {{.ChangeFor}}){{end}}</p>
            <table>
                <tr><th>Produto</th><th>Qtd</th><th>Preço</th><th>Total</th></tr>
                {{range .Lines}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{.Price}}</td><td>{{.LineTotal}}</td></tr>
                {{end}}
            </table>
            <p>Subtotal: {{.Subtotal}}</p>
            <p>Taxa de entrega: {{.DeliveryFee}}</p>
            <p class="total">Total: {{.Total}}</p>
        </div>
        <div class="footer">
            <p>Este e-mail foi enviado automaticamente, não responda.</p>
        </div>
    </div>
</body>
</html>
`
