package model

import (
	"time"

	bookModel "catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/shared/validation"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// ListURL is the publisher list page
const ListURL = "/catalog/publisher"

// NameConstraint là bound duy nhất cho Publisher.Name, dùng chung cho
// form pipeline và Validate() trước khi ghi xuống store
var NameConstraint = validation.LengthConstraint{
	Min:        10,
	Max:        60,
	MinMessage: "Publisher name must contain at least 10 characters",
	MaxMessage: "Publisher name must not exceed 60 characters",
}

// Publisher is the persisted record. ID is assigned by the store.
type Publisher struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// URL trả về canonical path, không lưu trong DB
func (p *Publisher) URL() string {
	return ListURL + "/" + p.ID.String()
}

// Validate kiểm tra schema constraints trước khi persist.
// Mọi store gọi hàm này trước khi ghi; lỗi trả về là INVALID_PUBLISHER_NAME
func (p *Publisher) Validate() error {
	err := ozzo.ValidateStruct(p,
		ozzo.Field(&p.Name,
			ozzo.Required.Error(NameConstraint.MinMessage),
			NameConstraint.OzzoRule(),
		),
	)
	if err != nil {
		return NewInvalidPublisherName(err)
	}
	return nil
}

// PublisherDetail combines a publisher with the books referencing it
type PublisherDetail struct {
	Publisher *Publisher
	Books     []*bookModel.Book
}

// HasBooks reports whether deletion must be refused
func (d *PublisherDetail) HasBooks() bool {
	return len(d.Books) > 0
}
