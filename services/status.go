package services

import "github.com/nearbasket/nearbasket-api/models"

// statusTransitions is the forward-only order lifecycle. Delivered and
// cancelled are terminal.
var statusTransitions = map[string][]string{
	models.OrderStatusProcessing: {models.OrderStatusShipped, models.OrderStatusDelivered, models.OrderStatusCancelled},
	models.OrderStatusShipped:    {models.OrderStatusDelivered, models.OrderStatusCancelled},
	models.OrderStatusDelivered:  {},
	models.OrderStatusCancelled:  {},
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

// TransitionStatus validates a status change and applies it to the order.
func TransitionStatus(order *models.Order, to string) error {
	if !ValidStatus(to) {
		return ErrInvalidStatus
	}
	for _, next := range statusTransitions[order.Status] {
		if next == to {
			order.Status = to
			return nil
		}
	}
	return ErrIllegalTransition
}
