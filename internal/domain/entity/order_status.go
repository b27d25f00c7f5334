package entity

// OrderStatus is a state of the order fulfillment workflow.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type orderTransition struct {
	to    OrderStatus
	label string
}

// forwardTransitions is the whole fulfillment path. Every non-terminal state has
// exactly one outgoing edge.
var forwardTransitions = map[OrderStatus]orderTransition{
	OrderStatusPending:    {to: OrderStatusConfirmed, label: "Receive Order"},
	OrderStatusConfirmed:  {to: OrderStatusPreparing, label: "Confirm Payment Method"},
	OrderStatusPreparing:  {to: OrderStatusDelivering, label: "Confirm Out-for-Delivery"},
	OrderStatusDelivering: {to: OrderStatusCompleted, label: "Finalize Order"},
}

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusDelivering, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition can leave the status.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Next returns the only status reachable from s and the label of the action that reaches it.
func (s OrderStatus) Next() (OrderStatus, string, bool) {
	t, ok := forwardTransitions[s]
	if !ok {
		return "", "", false
	}

	return t.to, t.label, true
}

// CanTransitionTo reports whether target is the outgoing edge of s.
//
// Cancellation is not reachable from here: the cancelled state is modelled as
// terminal but no action leads to it. A cancel action would be added as a
// separate edge from every non-terminal status.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	next, _, ok := s.Next()

	return ok && next == target
}

// Label returns the pt-BR label shown to customers for the status.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusPending:
		return "Pendente"
	case OrderStatusConfirmed:
		return "Confirmado"
	case OrderStatusPreparing:
		return "Em preparo"
	case OrderStatusDelivering:
		return "Saiu para entrega"
	case OrderStatusCompleted:
		return "Finalizado"
	case OrderStatusCancelled:
		return "Cancelado"
	default:
		return string(s)
	}
}
