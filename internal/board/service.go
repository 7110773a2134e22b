package board

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"whisperboard/internal/config"
	"whisperboard/internal/constants"
	"whisperboard/internal/logger"
	"whisperboard/internal/recordstore"
	pkgerrors "whisperboard/pkg/errors"
	"whisperboard/pkg/metrics"
)

// Store is the record store surface the service needs.
type Store interface {
	Query(ctx context.Context, collectionID string, sorts []recordstore.SortSpec) ([]recordstore.DecodedRecord, error)
	CreateRecord(ctx context.Context, collectionID string, properties recordstore.Properties) (*recordstore.CreateResult, error)
}

// Service orchestrates the submission pipeline at the HTTP boundary:
// required-field validation, record mapping, and the store round trip.
// Configuration is injected at construction rather than read from
// ambient state, and requests are stateless with respect to each
// other (no cache, no in-memory buffer).
type Service struct {
	store      Store
	cfg        config.StoreConfig
	production bool
	log        logger.Logger
}

func NewService(store Store, cfg config.StoreConfig, production bool, log logger.Logger) *Service {
	return &Service{
		store:      store,
		cfg:        cfg,
		production: production,
		log:        log,
	}
}

// Ready reports whether the store credential and collection id are
// present. Checked before anything else on every request, so a
// misconfigured deployment never leaks partial error detail from a
// doomed store call.
func (s *Service) Ready() error {
	if s.cfg.APIKey == "" || s.cfg.CollectionID == "" {
		return pkgerrors.ErrMisconfigured
	}
	return nil
}

// List returns all messages, newest first. The store's created_time
// descending sort is load-bearing: it directly determines feed order
// and nothing re-sorts downstream.
func (s *Service) List(ctx context.Context) ([]Message, error) {
	if err := s.Ready(); err != nil {
		metrics.IncFeedFetch("misconfigured")
		return nil, err
	}

	records, err := s.store.Query(ctx, s.cfg.CollectionID, recordstore.CreatedTimeDescending())
	if err != nil {
		metrics.IncFeedFetch("store_error")
		return nil, s.storeFailure(ctx, "Failed to fetch messages", err)
	}

	messages := make([]Message, 0, len(records))
	for _, rec := range records {
		messages = append(messages, MessageFromRecord(rec))
	}

	metrics.IncFeedFetch("success")
	return messages, nil
}

// Create validates the submission, maps it to the store schema and
// issues a single write.
func (s *Service) Create(ctx context.Context, sub Submission) (*CreateResult, error) {
	if err := s.Ready(); err != nil {
		metrics.IncSubmission("misconfigured")
		return nil, err
	}

	if err := validateSubmission(&sub); err != nil {
		metrics.IncSubmission("invalid")
		return nil, err
	}

	created, err := s.store.CreateRecord(ctx, s.cfg.CollectionID, SubmissionProperties(sub))
	if err != nil {
		metrics.IncSubmission("store_error")
		return nil, s.storeFailure(ctx, "Failed to create message", err)
	}

	metrics.IncSubmission("success")
	s.log.InfowCtx(ctx, "Message created", "record_id", created.ID, "username", sub.Username)

	return &CreateResult{ID: created.ID, URL: created.URL}, nil
}

// validateSubmission checks the three required fields in a fixed
// order, failing fast on the first violation with a field-specific
// message. Trimming is applied in place so the stored values match
// what was validated.
func validateSubmission(sub *Submission) error {
	sub.Content = strings.TrimSpace(sub.Content)
	if sub.Content == "" {
		return pkgerrors.ErrValidation.WithMessage("'content' is required")
	}
	if utf8.RuneCountInString(sub.Content) > constants.MaxContentLength {
		return pkgerrors.ErrValidation.WithMessage(
			fmt.Sprintf("'content' must be at most %d characters", constants.MaxContentLength))
	}

	if sub.Fingerprint == "" {
		return pkgerrors.ErrValidation.WithMessage("'fingerprint' is required")
	}

	sub.Username = strings.TrimSpace(sub.Username)
	if sub.Username == "" {
		return pkgerrors.ErrValidation.WithMessage("'username' is required")
	}

	return nil
}

// storeFailure logs the store's full diagnostic and translates the
// error for the client. Outside production the diagnostic rides along
// as details; production clients get the generic message only.
func (s *Service) storeFailure(ctx context.Context, message string, err error) error {
	appErr := pkgerrors.ErrStore.WithCause(err).WithMessage(message)

	var storeErr *recordstore.StoreError
	if errors.As(err, &storeErr) {
		s.log.ErrorwCtx(ctx, message,
			"status", storeErr.Status,
			"code", storeErr.Code,
			"message", storeErr.Message,
		)
		if !s.production {
			appErr = appErr.WithDetail("status", storeErr.Status).
				WithDetail("code", storeErr.Code).
				WithDetail("message", storeErr.Message)
		}
		return appErr
	}

	s.log.ErrorwCtx(ctx, message, "error", err)
	if !s.production {
		appErr = appErr.WithDetail("message", err.Error())
	}
	return appErr
}
