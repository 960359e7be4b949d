package service

import (
	"context"

	bookModel "catalog-backend/internal/domains/book/model"
	bookRepo "catalog-backend/internal/domains/book/repository"
	"catalog-backend/internal/domains/publisher/model"
	"catalog-backend/internal/domains/publisher/repository"
	"catalog-backend/internal/infrastructure/telemetry"
	"catalog-backend/internal/shared/utils"
	"catalog-backend/internal/shared/validation"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const fieldName = "name"

// publisherService implements ServiceInterface
type publisherService struct {
	repo  repository.RepositoryInterface
	books bookRepo.RepositoryInterface
	form  *validation.Pipeline
}

// NewPublisherService creates a new publisher service instance
func NewPublisherService(repo repository.RepositoryInterface, books bookRepo.RepositoryInterface) ServiceInterface {
	return &publisherService{
		repo:  repo,
		books: books,
		form: validation.New(
			validation.Field(fieldName,
				validation.Trim(),
				validation.Length(model.NameConstraint),
				validation.Escape(),
			),
		),
	}
}

// List retrieves all publishers ordered by name
func (s *publisherService) List(ctx context.Context) ([]*model.Publisher, error) {
	pubs, err := s.repo.Find(ctx)
	if err != nil {
		record("list", err)
		return nil, model.NewListPublisherError(err)
	}
	return pubs, nil
}

// Detail retrieves a publisher with the books referencing it
func (s *publisherService) Detail(ctx context.Context, id string) (*model.PublisherDetail, error) {
	pubID, ok := parseID(id)
	if !ok {
		return nil, model.NewPublisherNotFound()
	}

	detail, err := s.loadWithBooks(ctx, pubID)
	if err != nil {
		record("detail", err)
		return nil, model.NewGetPublisherError(err)
	}
	if detail.Publisher == nil {
		return nil, model.NewPublisherNotFound()
	}

	return detail, nil
}

// Get retrieves a publisher by ID
func (s *publisherService) Get(ctx context.Context, id string) (*model.Publisher, error) {
	pubID, ok := parseID(id)
	if !ok {
		return nil, model.NewPublisherNotFound()
	}

	pub, err := s.repo.FindByID(ctx, pubID)
	if err != nil {
		record("get", err)
		return nil, model.NewGetPublisherError(err)
	}
	if pub == nil {
		return nil, model.NewPublisherNotFound()
	}

	return pub, nil
}

// Create validates the form and persists a new publisher. A publisher with
// the exact same name is returned instead of inserting a duplicate.
// The lookup and the insert are separate statements, so two identical
// submissions racing each other can still both insert.
func (s *publisherService) Create(ctx context.Context, in FormInput) (*FormResult, error) {
	result := s.sanitize(in)
	if !result.Valid() {
		return result, nil
	}

	existing, err := s.repo.FindOneByName(ctx, result.Publisher.Name)
	if err != nil {
		record("create", err)
		return nil, model.NewCreatePublisherError(err)
	}
	if existing != nil {
		record("create", nil)
		log.Info().Str("publisher_id", existing.ID.String()).Msg("publisher already exists, reusing")
		return &FormResult{Publisher: existing, Existing: true}, nil
	}

	created, err := s.repo.Save(ctx, result.Publisher)
	if err != nil {
		record("create", err)
		return nil, wrapWrite(err, model.NewCreatePublisherError)
	}

	record("create", nil)
	log.Info().Str("publisher_id", created.ID.String()).Msg("publisher created")
	return &FormResult{Publisher: created}, nil
}

// Update validates the form and replaces the publisher name in place.
// Unlike Create there is no name collision check.
func (s *publisherService) Update(ctx context.Context, id string, in FormInput) (*FormResult, error) {
	pubID, _ := parseID(id)

	result := s.sanitize(in)
	result.Publisher.ID = pubID
	if !result.Valid() {
		return result, nil
	}
	if pubID == uuid.Nil {
		return nil, model.NewPublisherNotFound()
	}

	updated, err := s.repo.FindByIDAndUpdate(ctx, pubID, result.Publisher)
	if err != nil {
		record("update", err)
		return nil, wrapWrite(err, model.NewUpdatePublisherError)
	}
	if updated == nil {
		return nil, model.NewPublisherNotFound()
	}

	record("update", nil)
	log.Info().Str("publisher_id", updated.ID.String()).Msg("publisher updated")
	return &FormResult{Publisher: updated}, nil
}

// DeleteInfo loads the publisher and its books for the confirmation page
func (s *publisherService) DeleteInfo(ctx context.Context, id string) (*model.PublisherDetail, error) {
	pubID, ok := parseID(id)
	if !ok {
		return nil, nil
	}

	detail, err := s.loadWithBooks(ctx, pubID)
	if err != nil {
		record("delete_info", err)
		return nil, model.NewGetPublisherError(err)
	}
	if detail.Publisher == nil {
		return nil, nil
	}

	return detail, nil
}

// Delete removes the publisher when no book references it
func (s *publisherService) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	pubID, ok := parseID(id)
	if !ok {
		return &DeleteResult{Deleted: true}, nil
	}

	detail, err := s.loadWithBooks(ctx, pubID)
	if err != nil {
		record("delete", err)
		return nil, model.NewDeletePublisherError(err)
	}

	if detail.HasBooks() {
		telemetry.PublisherOperationsTotal.With("delete", "refused").Inc()
		log.Info().
			Str("publisher_id", pubID.String()).
			Int("books", len(detail.Books)).
			Msg("delete refused: publisher has books")
		return &DeleteResult{Deleted: false, Detail: detail}, nil
	}

	if err := s.repo.FindByIDAndRemove(ctx, pubID); err != nil {
		record("delete", err)
		return nil, model.NewDeletePublisherError(err)
	}

	record("delete", nil)
	log.Info().Str("publisher_id", pubID.String()).Msg("publisher deleted")
	return &DeleteResult{Deleted: true, Detail: detail}, nil
}

func (s *publisherService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// loadWithBooks runs the publisher and book lookups concurrently.
// The first error wins and no partial result is returned.
func (s *publisherService) loadWithBooks(ctx context.Context, id uuid.UUID) (*model.PublisherDetail, error) {
	var (
		pub   *model.Publisher
		books []*bookModel.Book
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.repo.FindByID(gctx, id)
		if err != nil {
			return err
		}
		pub = p
		return nil
	})
	g.Go(func() error {
		b, err := s.books.FindByPublisher(gctx, id)
		if err != nil {
			return err
		}
		books = b
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.PublisherDetail{Publisher: pub, Books: books}, nil
}

// sanitize runs the form pipeline and then the record constraints, so a
// value that only breaks the bound once escaped is reported on the form too.
func (s *publisherService) sanitize(in FormInput) *FormResult {
	res := s.form.Run(map[string]string{fieldName: in.Name})
	pub := &model.Publisher{Name: res.Value(fieldName)}

	result := &FormResult{Publisher: pub, Errors: res.Errors}
	if result.Valid() {
		if err := model.NameConstraint.Check(pub.Name); err != nil {
			result.Errors = append(result.Errors, validation.FieldError{
				Field:   fieldName,
				Rule:    validation.RuleLength,
				Message: err.Error(),
				Value:   pub.Name,
			})
		}
	}
	return result
}

// wrapWrite keeps domain errors (INVALID_PUBLISHER_NAME from the store)
// and wraps anything else as a persistence failure
func wrapWrite(err error, wrap func(error) *model.PublisherError) error {
	if model.IsDomainError(err) {
		return err
	}
	return wrap(err)
}

// parseID treats malformed ids like absent records
func parseID(id string) (uuid.UUID, bool) {
	parsed := utils.ParseStringToUUID(id)
	return parsed, parsed != uuid.Nil
}

func record(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
		log.Error().Err(err).Str("op", op).Msg("publisher operation failed")
	}
	telemetry.PublisherOperationsTotal.With(op, result).Inc()
}
