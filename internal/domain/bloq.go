package domain

import (
	"time"

	"github.com/google/uuid"
)

type Bloq struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Address   string    `json:"address"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// NewBloq builds a bloq with a generated ID. Timestamps are set by the
// repository on insert.
func NewBloq(title, address string) *Bloq {
	return &Bloq{
		ID:      uuid.NewString(),
		Title:   title,
		Address: address,
	}
}
