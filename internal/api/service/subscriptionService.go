package service

import (
	"context"
	"errors"

	"foodgram/internal/api/models"
	"foodgram/internal/api/repository"
)

var ErrSelfSubscription = errors.New("cannot subscribe to yourself")

// SubscribedAuthor is the subscription projection: the author plus their
// newest recipes (optionally capped) and total recipe count.
type SubscribedAuthor struct {
	User         models.User
	Recipes      []models.Recipe
	RecipesCount int64
}

type SubscriptionService interface {
	Subscribe(ctx context.Context, followerID, authorID string, recipesLimit int) (*SubscribedAuthor, error)
	Unsubscribe(ctx context.Context, followerID, authorID string) error
	IsSubscribed(ctx context.Context, followerID, authorID string) (bool, error)
	SubscribedSet(ctx context.Context, followerID string) (map[string]bool, error)
	Subscriptions(ctx context.Context, followerID string, page, pageSize, recipesLimit int) ([]SubscribedAuthor, int64, error)
}

type subscriptionService struct {
	relation   *RelationService[models.User, string]
	userRepo   repository.UserRepository
	recipeRepo repository.RecipeRepository
}

// NewSubscriptionService builds the user-to-user toggle on the shared
// relation engine, with the self-subscribe guard injected.
func NewSubscriptionService(
	edges repository.EdgeStore[string],
	userRepo repository.UserRepository,
	recipeRepo repository.RecipeRepository,
) SubscriptionService {
	lookup := func(ctx context.Context, id string) (*models.User, error) {
		return userRepo.FindByID(ctx, id)
	}
	guard := func(ctx context.Context, followerID, authorID string) error {
		if followerID == authorID {
			return ErrSelfSubscription
		}
		return nil
	}
	return &subscriptionService{
		relation:   NewRelationService(edges, lookup, guard),
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
	}
}

func (s *subscriptionService) Subscribe(ctx context.Context, followerID, authorID string, recipesLimit int) (*SubscribedAuthor, error) {
	author, err := s.relation.Add(ctx, followerID, authorID)
	if err != nil {
		return nil, err
	}
	return s.project(ctx, *author, recipesLimit)
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, followerID, authorID string) error {
	return s.relation.Remove(ctx, followerID, authorID)
}

func (s *subscriptionService) IsSubscribed(ctx context.Context, followerID, authorID string) (bool, error) {
	if followerID == "" {
		return false, nil
	}
	return s.relation.Has(ctx, followerID, authorID)
}

// SubscribedSet loads all followed author ids at once so list endpoints can
// stamp is_subscribed without a query per row.
func (s *subscriptionService) SubscribedSet(ctx context.Context, followerID string) (map[string]bool, error) {
	set := map[string]bool{}
	if followerID == "" {
		return set, nil
	}
	ids, err := s.relation.TargetIDs(ctx, followerID)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// Subscriptions pages through the followed authors, newest subscription
// first, each with the recipe projection.
func (s *subscriptionService) Subscriptions(ctx context.Context, followerID string, page, pageSize, recipesLimit int) ([]SubscribedAuthor, int64, error) {
	ids, err := s.relation.TargetIDs(ctx, followerID)
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(ids))

	start := (page - 1) * pageSize
	if start >= len(ids) {
		return []SubscribedAuthor{}, total, nil
	}
	end := start + pageSize
	if end > len(ids) {
		end = len(ids)
	}
	pageIDs := ids[start:end]

	users, err := s.userRepo.FindByIDs(ctx, pageIDs)
	if err != nil {
		return nil, 0, err
	}
	// FindByIDs gives no order guarantee; restore the edge order
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	out := make([]SubscribedAuthor, 0, len(pageIDs))
	for _, id := range pageIDs {
		u, ok := byID[id]
		if !ok {
			continue
		}
		projected, err := s.project(ctx, u, recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *projected)
	}
	return out, total, nil
}

func (s *subscriptionService) project(ctx context.Context, author models.User, recipesLimit int) (*SubscribedAuthor, error) {
	recipes, err := s.recipeRepo.RecentByAuthor(ctx, author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}
	count, err := s.recipeRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	return &SubscribedAuthor{
		User:         author,
		Recipes:      recipes,
		RecipesCount: count,
	}, nil
}
