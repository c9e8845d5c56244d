package models

import "time"

// PodStatus is the lifecycle state of a physical seating pod.
type PodStatus string

const (
	PodAvailable PodStatus = "AVAILABLE"
	PodReserved  PodStatus = "RESERVED"
	PodOccupied  PodStatus = "OCCUPIED"
	PodCleaning  PodStatus = "CLEANING"
)

// Pod is a physical seat/booth on the operations board.
type Pod struct {
	ID         string    `bson:"id" json:"id"`
	TenantID   string    `bson:"tenant_id" json:"tenantId"`
	LocationID string    `bson:"location_id" json:"locationId"`
	Label      string    `bson:"label" json:"label"`
	Status     PodStatus `bson:"status" json:"status"`
	OrderID    string    `bson:"order_id,omitempty" json:"orderId,omitempty"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}
