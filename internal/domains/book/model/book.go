package model

import (
	"github.com/google/uuid"
)

// Book là read-only view của một book record; lifecycle thuộc domain khác
type Book struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Summary     string    `json:"summary" db:"summary"`
	PublisherID uuid.UUID `json:"publisher_id" db:"publisher_id"`
}

// URL of the book detail page
func (b *Book) URL() string {
	return "/catalog/book/" + b.ID.String()
}
