package field

import (
	"context"
	"encoding/json"
	"time"

	"meydancha/models"
	"meydancha/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create registers a new venue for an approved owner.
func (s *DefaultFieldService) Create(ctx context.Context, ownerID string, req models.FieldCreateRequest) (*models.Field, error) {
	owner, err := s.UserRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !owner.IsApprovedOwner() {
		return nil, ErrOwnerNotApproved
	}
	if req.PricePerHour <= 0 {
		return nil, ErrInvalidPrice
	}

	now := time.Now()
	f := &models.Field{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		Name:         req.Name,
		Sport:        req.Sport,
		City:         req.City,
		Address:      req.Address,
		Description:  req.Description,
		PricePerHour: req.PricePerHour,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, f); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx, f)
	utils.GetLogger().Info("field created",
		zap.String("fieldID", f.ID), zap.String("ownerID", ownerID))
	return f, nil
}

func (s *DefaultFieldService) GetByID(ctx context.Context, id string) (*models.Field, error) {
	return s.Repo.GetByID(ctx, id)
}

// Update applies the provided fields. Only the venue's owner or an admin
// may modify it.
func (s *DefaultFieldService) Update(ctx context.Context, id, actorID, actorRole string, req models.FieldUpdateRequest) (*models.Field, error) {
	f, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorRole != models.RoleAdmin && f.OwnerID != actorID {
		return nil, ErrNotAllowed
	}

	set := map[string]interface{}{"updatedAt": time.Now()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Sport != nil {
		set["sport"] = *req.Sport
	}
	if req.City != nil {
		set["city"] = *req.City
	}
	if req.Address != nil {
		set["address"] = *req.Address
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.PricePerHour != nil {
		if *req.PricePerHour <= 0 {
			return nil, ErrInvalidPrice
		}
		set["pricePerHour"] = *req.PricePerHour
	}

	updated, err := s.Repo.Update(ctx, id, set)
	if err != nil {
		return nil, err
	}
	s.invalidateListCache(ctx, updated)
	return updated, nil
}

func (s *DefaultFieldService) Delete(ctx context.Context, id, actorID, actorRole string) error {
	f, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if actorRole != models.RoleAdmin && f.OwnerID != actorID {
		return ErrNotAllowed
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListCache(ctx, f)
	utils.GetLogger().Info("field deleted",
		zap.String("fieldID", id), zap.String("by", actorID))
	return nil
}

// List serves public searches from the Redis cache when fresh, falling
// back to Mongo on a miss. A cache failure degrades to an uncached read.
func (s *DefaultFieldService) List(ctx context.Context, filter models.FieldFilter) ([]models.Field, error) {
	cacheKey := listCacheKey(filter)
	cache := utils.GetCacheClient()

	cached, err := cache.Get(ctx, cacheKey).Result()
	if err == nil {
		var fields []models.Field
		if jsonErr := json.Unmarshal([]byte(cached), &fields); jsonErr == nil {
			return fields, nil
		}
	} else if err != redis.Nil {
		utils.GetLogger().Warn("field list cache read failed", zap.Error(err))
	}

	fields, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if data, jsonErr := json.Marshal(fields); jsonErr == nil {
		if setErr := cache.Set(ctx, cacheKey, data, utils.FieldListCacheTTL).Err(); setErr != nil {
			utils.GetLogger().Warn("field list cache write failed", zap.Error(setErr))
		}
	}
	return fields, nil
}

func (s *DefaultFieldService) ListByOwner(ctx context.Context, ownerID string) ([]models.Field, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

func listCacheKey(filter models.FieldFilter) string {
	return utils.FieldListCachePrefix + filter.City + ":" + filter.Sport
}

// invalidateListCache drops the cached listings a venue change can affect:
// its own filter combination plus the unfiltered variants.
func (s *DefaultFieldService) invalidateListCache(ctx context.Context, f *models.Field) {
	keys := []string{
		listCacheKey(models.FieldFilter{}),
		listCacheKey(models.FieldFilter{City: f.City}),
		listCacheKey(models.FieldFilter{Sport: f.Sport}),
		listCacheKey(models.FieldFilter{City: f.City, Sport: f.Sport}),
	}
	if err := utils.GetCacheClient().Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("field list cache invalidation failed", zap.Error(err))
	}
}
