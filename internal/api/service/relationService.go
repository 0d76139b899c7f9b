package service

import (
	"context"
	"errors"

	"foodgram/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrTargetNotFound   = errors.New("relation target not found")
	ErrRelationExists   = errors.New("relation already exists")
	ErrRelationNotFound = errors.New("relation not found")
)

// RelationService is the shared toggle engine behind favorites, shopping
// carts and subscriptions. It is parametrized by the target model T and its
// key type K; the differences between the three relations live entirely in
// the injected lookup and guard, not in subtypes.
//
// The edge store's unique index is the arbiter under concurrency: Add never
// pre-checks existence, it creates and maps the constraint violation.
type RelationService[T any, K comparable] struct {
	edges  repository.EdgeStore[K]
	lookup func(ctx context.Context, id K) (*T, error)
	guard  func(ctx context.Context, userID string, targetID K) error
}

// NewRelationService wires a toggle relation. guard may be nil; when set it
// runs after the target lookup and can veto the add (e.g. self-subscribe).
func NewRelationService[T any, K comparable](
	edges repository.EdgeStore[K],
	lookup func(ctx context.Context, id K) (*T, error),
	guard func(ctx context.Context, userID string, targetID K) error,
) *RelationService[T, K] {
	return &RelationService[T, K]{
		edges:  edges,
		lookup: lookup,
		guard:  guard,
	}
}

// Add creates the edge and returns the target so handlers can render their
// projection without a second fetch.
func (s *RelationService[T, K]) Add(ctx context.Context, userID string, targetID K) (*T, error) {
	target, err := s.lookup(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, err
	}

	if s.guard != nil {
		if err := s.guard(ctx, userID, targetID); err != nil {
			return nil, err
		}
	}

	if err := s.edges.Add(ctx, userID, targetID); err != nil {
		if errors.Is(err, repository.ErrEdgeExists) {
			return nil, ErrRelationExists
		}
		return nil, err
	}
	return target, nil
}

// Remove deletes the edge; removing an edge that was never added is an error,
// not a no-op.
func (s *RelationService[T, K]) Remove(ctx context.Context, userID string, targetID K) error {
	if _, err := s.lookup(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTargetNotFound
		}
		return err
	}

	if err := s.edges.Remove(ctx, userID, targetID); err != nil {
		if errors.Is(err, repository.ErrEdgeNotFound) {
			return ErrRelationNotFound
		}
		return err
	}
	return nil
}

func (s *RelationService[T, K]) Has(ctx context.Context, userID string, targetID K) (bool, error) {
	return s.edges.Exists(ctx, userID, targetID)
}

// TargetIDs returns the ids of everything the user has related to, newest
// edge first.
func (s *RelationService[T, K]) TargetIDs(ctx context.Context, userID string) ([]K, error) {
	return s.edges.TargetIDs(ctx, userID)
}
