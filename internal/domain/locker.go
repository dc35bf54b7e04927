package domain

import (
	"time"

	"github.com/google/uuid"
)

type DoorState string

const (
	DoorStateOpen   DoorState = "OPEN"
	DoorStateClosed DoorState = "CLOSED"
)

// Toggled returns the opposite door state.
func (d DoorState) Toggled() DoorState {
	if d == DoorStateOpen {
		return DoorStateClosed
	}
	return DoorStateOpen
}

// Locker is a storage unit inside a bloq. Occupied is derived state: it must
// equal "a non-delivered rent references this locker" at all times. Only the
// claim/release repository operations may write it.
type Locker struct {
	ID        string    `json:"id"`
	BloqID    string    `json:"bloq_id"`
	DoorState DoorState `json:"door_state"`
	Occupied  bool      `json:"occupied"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// NewLocker builds a locker with a generated ID, door closed and unoccupied.
func NewLocker(bloqID string) *Locker {
	return &Locker{
		ID:        uuid.NewString(),
		BloqID:    bloqID,
		DoorState: DoorStateClosed,
		Occupied:  false,
	}
}
