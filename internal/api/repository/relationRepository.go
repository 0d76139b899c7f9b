package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrEdgeExists   = errors.New("edge already exists")
	ErrEdgeNotFound = errors.New("edge not found")
)

// EdgeStore is the storage contract the toggle-relation service works against.
// An edge is a single (user, target) membership row: favorite, shopping cart
// item or subscription.
type EdgeStore[K comparable] interface {
	Add(ctx context.Context, userID string, targetID K) error
	Remove(ctx context.Context, userID string, targetID K) error
	Exists(ctx context.Context, userID string, targetID K) (bool, error)
	TargetIDs(ctx context.Context, userID string) ([]K, error)
}

// EdgeRepo is the GORM implementation of EdgeStore for one edge table.
// It is parametrized by the edge model and the target key type, so the same
// code serves favorites (recipe ids), shopping carts (recipe ids) and
// subscriptions (author uuids).
type EdgeRepo[E any, K comparable] struct {
	db        *gorm.DB
	userCol   string
	targetCol string
	newEdge   func(userID string, targetID K) E
}

// NewEdgeRepo creates an edge repository over the table of E.
// userCol/targetCol name the pair columns of the unique index.
func NewEdgeRepo[E any, K comparable](db *gorm.DB, userCol, targetCol string, newEdge func(string, K) E) *EdgeRepo[E, K] {
	return &EdgeRepo[E, K]{
		db:        db,
		userCol:   userCol,
		targetCol: targetCol,
		newEdge:   newEdge,
	}
}

// Add inserts the edge row. The unique pair index is the arbiter under
// concurrent duplicate adds: of two racing inserts exactly one commits and
// the other surfaces here as ErrEdgeExists. No read-then-write pre-check
// can give that guarantee, so none is done.
func (r *EdgeRepo[E, K]) Add(ctx context.Context, userID string, targetID K) error {
	edge := r.newEdge(userID, targetID)
	if err := r.db.WithContext(ctx).Create(&edge).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrEdgeExists
		}
		return fmt.Errorf("add edge: %w", err)
	}
	return nil
}

// Remove deletes the edge row if present, ErrEdgeNotFound otherwise.
func (r *EdgeRepo[E, K]) Remove(ctx context.Context, userID string, targetID K) error {
	var edge E
	result := r.db.WithContext(ctx).
		Where(fmt.Sprintf("%s = ? AND %s = ?", r.userCol, r.targetCol), userID, targetID).
		Delete(&edge)

	if result.Error != nil {
		return fmt.Errorf("remove edge: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEdgeNotFound
	}
	return nil
}

func (r *EdgeRepo[E, K]) Exists(ctx context.Context, userID string, targetID K) (bool, error) {
	var edge E
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&edge).
		Where(fmt.Sprintf("%s = ? AND %s = ?", r.userCol, r.targetCol), userID, targetID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("edge exists: %w", err)
	}
	return count > 0, nil
}

// TargetIDs returns the ids of every target the user holds an edge to,
// newest edge first.
func (r *EdgeRepo[E, K]) TargetIDs(ctx context.Context, userID string) ([]K, error) {
	var edge E
	var ids []K
	if err := r.db.WithContext(ctx).
		Model(&edge).
		Where(r.userCol+" = ?", userID).
		Order("id desc").
		Pluck(r.targetCol, &ids).Error; err != nil {
		return nil, fmt.Errorf("list edge targets: %w", err)
	}
	return ids, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
