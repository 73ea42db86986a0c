package entity

import (
	"time"
)

// Card is a shared photo post. Likes is a set of user ids; Owner is the
// canonical id of the creating user and gates deletion.
type Card struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}
