package models

import "time"

// OrderStatus tracks an order through the kitchen.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderPreparing OrderStatus = "PREPARING"
	OrderReady     OrderStatus = "READY"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// OrderItemInput is the wire shape the order-creation endpoint expects.
type OrderItemInput struct {
	MenuItemID string `bson:"menu_item_id" json:"menuItemId"`
	Quantity   int    `bson:"quantity" json:"quantity"`
}

// Order is a persisted customer order. TotalCents is the authoritative
// server-computed total; any client-side figure is advisory only.
type Order struct {
	ID               string           `bson:"id" json:"id"`
	OrderNumber      string           `bson:"order_number" json:"orderNumber"`
	TenantID         string           `bson:"tenant_id" json:"tenantId"`
	LocationID       string           `bson:"location_id" json:"locationId"`
	UserID           string           `bson:"user_id,omitempty" json:"userId,omitempty"`
	PodID            string           `bson:"pod_id,omitempty" json:"podId,omitempty"`
	Items            []OrderItemInput `bson:"items" json:"items"`
	TotalCents       int64            `bson:"total_cents" json:"totalCents"`
	Currency         string           `bson:"currency" json:"currency"`
	FulfillmentType  string           `bson:"fulfillment_type" json:"fulfillmentType"`
	EstimatedArrival time.Time        `bson:"estimated_arrival" json:"estimatedArrival"`
	PaymentIntentID  string           `bson:"payment_intent_id,omitempty" json:"paymentIntentId,omitempty"`
	Status           OrderStatus      `bson:"status" json:"status"`
	CreatedAt        time.Time        `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time        `bson:"updated_at" json:"updatedAt"`
}
