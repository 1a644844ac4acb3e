// Package website implements the website domain service: cached reads
// (global and per-publisher), upsert with owner validation and delete,
// both with cross-entity cache invalidation.
package website

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KOMKZ/go-pubsite-service/cache"
	"github.com/KOMKZ/go-pubsite-service/database"
	"github.com/KOMKZ/go-pubsite-service/logger"
	"github.com/KOMKZ/go-pubsite-service/model"
)

// Service website domain service
type Service struct {
	repo          *database.BaseRepository[model.Website]
	publisherRepo *database.BaseRepository[model.Publisher]
	cache         *cache.Service
	logger        *logger.CtxZapLogger
}

// NewService creates the website service
func NewService(db *gorm.DB, cacheSvc *cache.Service, log *logger.CtxZapLogger) *Service {
	return &Service{
		repo:          database.NewBaseRepository[model.Website](db),
		publisherRepo: database.NewBaseRepository[model.Publisher](db),
		cache:         cacheSvc,
		logger:        log,
	}
}

// List returns all websites ordered by name
func (s *Service) List(ctx context.Context, includePublisher bool) ([]Response, error) {
	key := cache.ListKey(cache.NamespaceWebsite, includePublisher)
	return cache.ReadThrough(ctx, s.cache, key, 0, func(ctx context.Context) ([]Response, error) {
		entities, err := s.repo.Find(ctx, nil, s.relations(includePublisher), "name ASC")
		if err != nil {
			return nil, ErrWebsiteStore.Wrap(err)
		}
		return newResponseList(entities, includePublisher), nil
	})
}

// ListByPublisher returns one publisher's websites ordered by name
func (s *Service) ListByPublisher(ctx context.Context, publisherID int64, includePublisher bool) ([]Response, error) {
	key := cache.WebsitesByPublisherKey(publisherID, includePublisher)
	return cache.ReadThrough(ctx, s.cache, key, 0, func(ctx context.Context) ([]Response, error) {
		entities, err := s.repo.Find(ctx,
			database.Filter{"publisher_id": publisherID}, s.relations(includePublisher), "name ASC")
		if err != nil {
			return nil, ErrWebsiteStore.Wrap(err)
		}
		return newResponseList(entities, includePublisher), nil
	})
}

// GetByID returns one website by id
func (s *Service) GetByID(ctx context.Context, id int64, includePublisher bool) (*Response, error) {
	key := cache.DetailKey(cache.NamespaceWebsite, id, includePublisher)
	return cache.ReadThrough(ctx, s.cache, key, 0, func(ctx context.Context) (*Response, error) {
		entity, err := s.repo.FindOne(ctx, database.Filter{"id": id}, s.relations(includePublisher)...)
		if err != nil {
			if errors.Is(err, database.ErrRecordNotFound) {
				return nil, ErrWebsiteNotFound.WithData("id", id)
			}
			return nil, ErrWebsiteStore.Wrap(err)
		}
		return newResponse(entity, includePublisher), nil
	})
}

// Upsert creates or updates a website.
// The referenced publisher must exist before anything else happens: no
// lookup, no save and no invalidation otherwise. When an update moves
// the website to another publisher, the previous owner's views are
// invalidated together with the new owner's.
func (s *Service) Upsert(ctx context.Context, input *UpsertInput) (*Response, error) {
	exists, err := s.publisherRepo.Exists(ctx, database.Filter{"id": input.PublisherID})
	if err != nil {
		return nil, ErrWebsiteStore.Wrap(err)
	}
	if !exists {
		return nil, ErrWebsitePublisherNotFound.WithData("publisherId", input.PublisherID)
	}

	filter := database.Filter{"name": input.Name, "publisher_id": input.PublisherID}
	if input.ID > 0 {
		filter = database.Filter{"id": input.ID}
	}

	isNew := false
	var previousPublisherID int64
	entity, err := s.repo.FindOne(ctx, filter)
	switch {
	case err == nil:
		previousPublisherID = entity.PublisherID
	case errors.Is(err, database.ErrRecordNotFound):
		entity = &model.Website{ID: input.ID}
		isNew = true
	default:
		return nil, ErrWebsiteStore.Wrap(err)
	}

	entity.Name = input.Name
	entity.PublisherID = input.PublisherID

	persist := s.repo.Save
	if isNew {
		persist = s.repo.Create
	}
	if err := persist(ctx, entity); err != nil {
		return nil, ErrWebsiteStore.Wrap(err)
	}
	s.logger.DebugCtx(ctx, "website upserted",
		zap.Int64("id", entity.ID),
		zap.Bool("created", isNew))

	relatedIDs := []int64{input.PublisherID}
	if previousPublisherID != 0 && previousPublisherID != input.PublisherID {
		relatedIDs = append(relatedIDs, previousPublisherID)
	}
	s.cache.Invalidate(ctx, cache.InvalidationSet(cache.NamespaceWebsite, entity.ID, relatedIDs))

	return newResponse(entity, false), nil
}

// Delete removes a website
func (s *Service) Delete(ctx context.Context, id int64) error {
	entity, err := s.repo.FindOne(ctx, database.Filter{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrRecordNotFound) {
			return ErrWebsiteNotFound.WithData("id", id)
		}
		return ErrWebsiteStore.Wrap(err)
	}

	if _, err := s.repo.Delete(ctx, id); err != nil {
		return ErrWebsiteStore.Wrap(err)
	}

	s.cache.Invalidate(ctx, cache.InvalidationSet(
		cache.NamespaceWebsite, id, []int64{entity.PublisherID}))
	return nil
}

// relations returns the preload list for the relation flag
func (s *Service) relations(includePublisher bool) []string {
	if includePublisher {
		return []string{"Publisher"}
	}
	return nil
}
