package service

import (
	"context"

	"catalog-backend/internal/domains/publisher/model"
	"catalog-backend/internal/shared/validation"
)

// FormInput is the raw, untrusted publisher form body
type FormInput struct {
	Name string `form:"name"`
}

// FormResult is the outcome of a create/update submission. When Errors is
// non-empty nothing was written and Publisher carries the sanitized values
// to redisplay.
type FormResult struct {
	Publisher *model.Publisher
	Errors    validation.Errors
	// Existing is set when create matched a publisher with the same name
	Existing bool
}

func (r *FormResult) Valid() bool {
	return len(r.Errors) == 0
}

// DeleteResult reports whether the publisher was removed. When books still
// reference it, Deleted is false and Detail lists them.
type DeleteResult struct {
	Deleted bool
	Detail  *model.PublisherDetail
}

// ServiceInterface defines the publisher resource operations.
// IDs come straight from the URL; malformed IDs behave like absent records.
type ServiceInterface interface {
	// List returns all publishers sorted by name
	List(ctx context.Context) ([]*model.Publisher, error)

	// Detail loads the publisher and its books, PUBLISHER_NOT_FOUND when absent
	Detail(ctx context.Context, id string) (*model.PublisherDetail, error)

	// Get loads one publisher for the update form, PUBLISHER_NOT_FOUND when absent
	Get(ctx context.Context, id string) (*model.Publisher, error)

	// Create validates and persists, or returns the existing same-name publisher
	Create(ctx context.Context, in FormInput) (*FormResult, error)

	// Update validates and replaces the name of publisher id
	Update(ctx context.Context, id string, in FormInput) (*FormResult, error)

	// DeleteInfo loads the confirmation data, nil when the publisher is absent
	DeleteInfo(ctx context.Context, id string) (*model.PublisherDetail, error)

	// Delete removes the publisher unless books still reference it
	Delete(ctx context.Context, id string) (*DeleteResult, error)

	// Ping checks the underlying store
	Ping(ctx context.Context) error
}
