package domain

import "time"

// OrderStatus represents the lifecycle state of a delivery order.
type OrderStatus string

const (
	StatusCreated  OrderStatus = "created"
	StatusAssigned OrderStatus = "assigned"
	StatusPickedUp OrderStatus = "picked_up"
	StatusComplete OrderStatus = "completed"
	StatusCanceled OrderStatus = "canceled"
)

// ValidStatus reports whether s is one of the enumerated order statuses.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusCreated, StatusAssigned, StatusPickedUp, StatusComplete, StatusCanceled:
		return true
	}
	return false
}

// typicalTransitions is the expected state machine. Status updates are not
// rejected when they fall outside it (couriers and admins may set any
// enumerated status, matching the legacy behavior); out-of-order transitions
// are logged so operators can spot them.
var typicalTransitions = map[OrderStatus][]OrderStatus{
	StatusCreated:  {StatusAssigned, StatusCanceled},
	StatusAssigned: {StatusPickedUp, StatusCanceled},
	StatusPickedUp: {StatusComplete, StatusCanceled},
}

// TypicalTransition reports whether moving from current to next follows the
// expected ordering.
func (s OrderStatus) TypicalTransition(next OrderStatus) bool {
	for _, allowed := range typicalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// StatusChange records a single status transition on an order.
type StatusChange struct {
	Status    OrderStatus `json:"status" bson:"status"`
	Timestamp time.Time   `json:"timestamp" bson:"timestamp"`
	ActorID   string      `json:"actor_id,omitempty" bson:"actor_id,omitempty"`
}

// Order is a delivery order placed by a user and worked by a courier.
type Order struct {
	ID            string         `json:"id" bson:"_id"`
	UserID        string         `json:"user_id" bson:"user_id"`
	CourierID     string         `json:"courier_id,omitempty" bson:"courier_id,omitempty"`
	Status        OrderStatus    `json:"status" bson:"status"`
	Description   string         `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt     time.Time      `json:"created_at" bson:"created_at"`
	StatusHistory []StatusChange `json:"status_history" bson:"status_history"`
}
