package pubsub

import "storefront/internal/domain/service"

const orderPaidEventType = "order.paid"

// orderPaidAttributes are the message attributes subscribers filter and trace on.
func orderPaidAttributes(event *service.OrderPaidEvent) map[string]string {
	attributes := map[string]string{
		"event_type":  orderPaidEventType,
		"event_id":    event.EventID,
		"business_id": event.BusinessID,
		"order_id":    event.OrderID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
