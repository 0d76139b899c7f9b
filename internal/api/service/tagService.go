package service

import (
	"context"
	"errors"

	"foodgram/internal/api/cache"
	"foodgram/internal/api/models"
	"foodgram/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrTagNotFound  = errors.New("tag not found")
	ErrDuplicateTag = errors.New("tag already exists")
)

type TagService interface {
	GetAllTags(ctx context.Context) ([]models.Tag, error)
	GetTagByID(ctx context.Context, id int64) (*models.Tag, error)
	CreateTag(ctx context.Context, tag *models.Tag) error
}

type tagService struct {
	repo  repository.TagRepository
	cache *cache.ReferenceCache
}

func NewTagService(repo repository.TagRepository, refCache *cache.ReferenceCache) TagService {
	return &tagService{repo: repo, cache: refCache}
}

func (s *tagService) GetAllTags(ctx context.Context) ([]models.Tag, error) {
	if tags, ok := s.cache.GetTags(ctx); ok {
		return tags, nil
	}
	tags, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetTags(ctx, tags)
	return tags, nil
}

func (s *tagService) GetTagByID(ctx context.Context, id int64) (*models.Tag, error) {
	tag, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return tag, nil
}

// CreateTag is admin-only (enforced in the handler). Writes drop the cached
// list so readers never see a stale catalog past the next request.
func (s *tagService) CreateTag(ctx context.Context, tag *models.Tag) error {
	if err := s.repo.Create(ctx, tag); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return ErrDuplicateTag
		}
		return err
	}
	s.cache.InvalidateTags(ctx)
	return nil
}
