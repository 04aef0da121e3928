package models

import "time"

// Contact is the person/company identity shared by a Lead or Sponsor.
// Its lifetime is bound to the owning record: deleting the owner deletes
// the contact.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Company   *string   `json:"company"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
