// Package publisher implements the publisher domain service: cached reads,
// upsert and cascading delete with cache invalidation.
package publisher

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KOMKZ/go-pubsite-service/cache"
	"github.com/KOMKZ/go-pubsite-service/database"
	"github.com/KOMKZ/go-pubsite-service/httpx/types"
	"github.com/KOMKZ/go-pubsite-service/logger"
	"github.com/KOMKZ/go-pubsite-service/model"
)

// Service publisher domain service
// Reads go through the cache, writes invalidate every affected view
type Service struct {
	repo        *database.BaseRepository[model.Publisher]
	websiteRepo *database.BaseRepository[model.Website]
	cache       *cache.Service
	logger      *logger.CtxZapLogger
}

// NewService creates the publisher service
func NewService(db *gorm.DB, cacheSvc *cache.Service, log *logger.CtxZapLogger) *Service {
	return &Service{
		repo:        database.NewBaseRepository[model.Publisher](db),
		websiteRepo: database.NewBaseRepository[model.Website](db),
		cache:       cacheSvc,
		logger:      log,
	}
}

// List returns all publishers ordered by name
func (s *Service) List(ctx context.Context, includeWebsites bool) ([]Response, error) {
	key := cache.ListKey(cache.NamespacePublisher, includeWebsites)
	return cache.ReadThrough(ctx, s.cache, key, 0, func(ctx context.Context) ([]Response, error) {
		var relations []string
		if includeWebsites {
			relations = []string{"Websites"}
		}
		entities, err := s.repo.Find(ctx, nil, relations, "name ASC")
		if err != nil {
			return nil, ErrPublisherStore.Wrap(err)
		}
		return newResponseList(entities, includeWebsites), nil
	})
}

// GetByID returns one publisher by id
func (s *Service) GetByID(ctx context.Context, id int64, includeWebsites bool) (*Response, error) {
	key := cache.DetailKey(cache.NamespacePublisher, id, includeWebsites)
	return cache.ReadThrough(ctx, s.cache, key, 0, func(ctx context.Context) (*Response, error) {
		entity, err := s.findEntity(ctx, id, includeWebsites)
		if err != nil {
			return nil, err
		}
		return newResponse(entity, includeWebsites), nil
	})
}

// Upsert creates or updates a publisher.
// A positive input id targets that record, otherwise the name is the
// lookup key. An unknown id creates the record under that id.
func (s *Service) Upsert(ctx context.Context, input *UpsertInput) (*Response, error) {
	filter := database.Filter{"name": input.Name}
	if input.ID > 0 {
		filter = database.Filter{"id": input.ID}
	}

	isNew := false
	entity, err := s.repo.FindOne(ctx, filter)
	switch {
	case err == nil:
	case errors.Is(err, database.ErrRecordNotFound):
		entity = &model.Publisher{}
		isNew = true
	default:
		return nil, ErrPublisherStore.Wrap(err)
	}

	if err := types.CopyWithOption(entity, input, types.CopyOption{IgnoreEmpty: true}); err != nil {
		return nil, ErrPublisherStore.Wrap(err)
	}

	persist := s.repo.Save
	if isNew {
		// Create honors an explicitly requested id, Save would not insert
		persist = s.repo.Create
	}
	if err := persist(ctx, entity); err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			return nil, ErrPublisherDuplicateName.WithData("name", input.Name)
		}
		return nil, ErrPublisherStore.Wrap(err)
	}

	s.cache.Invalidate(ctx, cache.InvalidationSet(
		cache.NamespacePublisher, entity.ID, s.ownedWebsiteIDs(ctx, entity.ID)))

	return newResponse(entity, false), nil
}

// Delete removes a publisher and all its websites.
// The cascade is explicit so every removed website id lands in the
// invalidation set.
func (s *Service) Delete(ctx context.Context, id int64) error {
	entity, err := s.repo.FindOne(ctx, database.Filter{"id": id}, "Websites")
	if err != nil {
		if errors.Is(err, database.ErrRecordNotFound) {
			return ErrPublisherNotFound.WithData("id", id)
		}
		return ErrPublisherStore.Wrap(err)
	}

	websiteIDs := make([]int64, 0, len(entity.Websites))
	for _, w := range entity.Websites {
		websiteIDs = append(websiteIDs, w.ID)
	}

	err = s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("publisher_id = ?", id).Delete(&model.Website{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Publisher{}, id).Error
	})
	if err != nil {
		return ErrPublisherStore.Wrap(err)
	}

	s.cache.Invalidate(ctx, cache.InvalidationSet(cache.NamespacePublisher, id, websiteIDs))
	return nil
}

// findEntity loads one publisher, mapping absence to the domain error
func (s *Service) findEntity(ctx context.Context, id int64, includeWebsites bool) (*model.Publisher, error) {
	var relations []string
	if includeWebsites {
		relations = []string{"Websites"}
	}
	entity, err := s.repo.FindOne(ctx, database.Filter{"id": id}, relations...)
	if err != nil {
		if errors.Is(err, database.ErrRecordNotFound) {
			return nil, ErrPublisherNotFound.WithData("id", id)
		}
		return nil, ErrPublisherStore.Wrap(err)
	}
	return entity, nil
}

// ownedWebsiteIDs collects the ids of the publisher's websites for
// invalidation breadth. A lookup failure degrades to list-level
// invalidation only and is logged, never failing the committed write.
func (s *Service) ownedWebsiteIDs(ctx context.Context, publisherID int64) []int64 {
	websites, err := s.websiteRepo.Find(ctx, database.Filter{"publisher_id": publisherID}, nil, "")
	if err != nil {
		s.logger.WarnCtx(ctx, "owned website lookup failed, narrowing invalidation",
			zap.Int64("publisher_id", publisherID),
			zap.Error(err))
		return nil
	}
	ids := make([]int64, 0, len(websites))
	for _, w := range websites {
		ids = append(ids, w.ID)
	}
	return ids
}
