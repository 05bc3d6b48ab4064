package entity

// OrderStatus is a closed enum. Orders only move one step forward:
// pending -> out_for_delivery -> delivered.
type OrderStatus int

const (
	StatusPending OrderStatus = iota
	StatusOutForDelivery
	StatusDelivered
)

func (s OrderStatus) Valid() bool {
	return s >= StatusPending && s <= StatusDelivered
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return next.Valid() && next == s+1
}

func (s OrderStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusOutForDelivery:
		return "out_for_delivery"
	case StatusDelivered:
		return "delivered"
	}
	return "unknown"
}
