package domain

import (
	"time"

	"github.com/google/uuid"
)

type RentStatus string

const (
	RentStatusCreated        RentStatus = "CREATED"
	RentStatusWaitingDropoff RentStatus = "WAITING_DROPOFF"
	RentStatusWaitingPickup  RentStatus = "WAITING_PICKUP"
	RentStatusDelivered      RentStatus = "DELIVERED"
)

// statusOrder defines the linear lifecycle. DELIVERED is terminal.
var statusOrder = map[RentStatus]int{
	RentStatusCreated:        0,
	RentStatusWaitingDropoff: 1,
	RentStatusWaitingPickup:  2,
	RentStatusDelivered:      3,
}

// ValidRentStatus reports whether s names a defined rent status.
func ValidRentStatus(s string) bool {
	_, ok := statusOrder[RentStatus(s)]
	return ok
}

// CanTransitionTo reports whether next is the immediate successor of s in the
// lifecycle. No transition leaves DELIVERED.
func (s RentStatus) CanTransitionTo(next RentStatus) bool {
	from, ok := statusOrder[s]
	if !ok {
		return false
	}
	to, ok := statusOrder[next]
	if !ok {
		return false
	}
	return to == from+1
}

// Terminal reports whether s is the final lifecycle state.
func (s RentStatus) Terminal() bool {
	return s == RentStatusDelivered
}

type RentSize string

const (
	RentSizeXS RentSize = "XS"
	RentSizeS  RentSize = "S"
	RentSizeM  RentSize = "M"
	RentSizeL  RentSize = "L"
	RentSizeXL RentSize = "XL"
)

var rentSizes = map[RentSize]struct{}{
	RentSizeXS: {},
	RentSizeS:  {},
	RentSizeM:  {},
	RentSizeL:  {},
	RentSizeXL: {},
}

// ValidRentSize reports whether s names a defined parcel size.
func ValidRentSize(s string) bool {
	_, ok := rentSizes[RentSize(s)]
	return ok
}

type Rent struct {
	ID        string     `json:"id"`
	LockerID  string     `json:"locker_id"`
	Weight    float64    `json:"weight"`
	Size      RentSize   `json:"size"`
	Status    RentStatus `json:"status"`
	CreatedOn time.Time  `json:"created_on"`
	UpdatedOn time.Time  `json:"updated_on"`
}

// Active reports whether the rent still binds its locker.
func (r *Rent) Active() bool {
	return !r.Status.Terminal()
}

// NewRent builds a rent with a generated ID. Rents always enter the lifecycle
// in CREATED; there is no other entry state.
func NewRent(lockerID string, weight float64, size RentSize) *Rent {
	return &Rent{
		ID:       uuid.NewString(),
		LockerID: lockerID,
		Weight:   weight,
		Size:     size,
		Status:   RentStatusCreated,
	}
}
