package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/db"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/swipe"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/utils/pagination"
)

// DecisionRepository provides data access methods for the Decision model.
// It encapsulates all queries related to passes/likes/superlikes between users.
type DecisionRepository struct {
	db *gorm.DB
}

// NewDecisionRepository creates a new repository bound to the given DB connection.
func NewDecisionRepository(database *gorm.DB) *DecisionRepository {
	return &DecisionRepository{db: database}
}

// CreateOrUpdateDecision inserts or updates a decision made by actor -> recipient.
//
// Behavior:
//   - If (actor_id, recipient_id) pair exists → the row is updated with the new kind.
//   - If it doesn’t exist → a new row is inserted.
//   - Like and superlike both set liked = true.
//
// Example:
//
//	repo.CreateOrUpdateDecision(ctx, 1, 2, swipe.SuperLike, 7) // user 1 superliked user 2
func (r *DecisionRepository) CreateOrUpdateDecision(
	ctx context.Context,
	actorID, recipientID uint64,
	kind swipe.DecisionKind,
	sequence uint64,
) error {
	decision := db.Decision{
		ActorID:     actorID,
		RecipientID: recipientID,
		Kind:        kind.String(),
		Liked:       kind.Liked(),
		Sequence:    sequence,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "actor_id"}, {Name: "recipient_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"kind", "liked", "sequence", "updated_at"}),
		}).
		Create(&decision).Error
}

// DeleteDecision removes the actor's decision on recipient. Used when a swipe
// is rewound. Deleting a missing row is not an error.
func (r *DecisionRepository) DeleteDecision(ctx context.Context, actorID, recipientID uint64) error {
	return r.db.WithContext(ctx).
		Where("actor_id = ? AND recipient_id = ?", actorID, recipientID).
		Delete(&db.Decision{}).Error
}

// DecidedIDs returns every recipient the actor has already decided on.
func (r *DecisionRepository) DecidedIDs(ctx context.Context, actorID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&db.Decision{}).
		Where("actor_id = ?", actorID).
		Pluck("recipient_id", &ids).Error
	return ids, err
}

// Get returns a single decision row.
func (r *DecisionRepository) Get(ctx context.Context, actorID, recipientID uint64) (*db.Decision, error) {
	var d db.Decision
	err := r.db.WithContext(ctx).
		Where("actor_id = ? AND recipient_id = ?", actorID, recipientID).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// notPassedByRecipient excludes actors the recipient explicitly passed.
const notPassedByRecipient = `
	NOT EXISTS (
		SELECT 1 FROM decisions d2
		WHERE d2.actor_id = ?
		  AND d2.recipient_id = d.actor_id
		  AND d2.liked = false
	)`

// GetLikers returns all users who liked or superliked the given recipient.
//
// Behavior:
//   - Only decisions where recipient_id = X and liked = true are returned.
//   - Excludes users that the recipient explicitly passed.
//   - Ordered by updated_at DESC, actor_id DESC.
//   - Supports cursor-based pagination via paginationToken.
//
// Example:
//
//	repo.GetLikers(ctx, 42, nil, 20) // list first 20 people who liked user 42
func (r *DecisionRepository) GetLikers(
	ctx context.Context,
	recipientID uint64,
	paginationToken *string,
	limit int,
) ([]db.Decision, *string, error) {
	query := r.db.WithContext(ctx).
		Table("decisions d").
		Where("d.recipient_id = ? AND d.liked = true", recipientID).
		Where(notPassedByRecipient, recipientID)
	return r.page(query, paginationToken, limit)
}

// GetNewLikers returns users who liked the recipient but have not been liked back.
//
// Behavior:
//   - Same as GetLikers, minus mutual likes (recipient already liked them back).
//
// Example:
//
//	repo.GetNewLikers(ctx, 42, nil, 20) // list first 20 one-way likes for user 42
func (r *DecisionRepository) GetNewLikers(
	ctx context.Context,
	recipientID uint64,
	paginationToken *string,
	limit int,
) ([]db.Decision, *string, error) {
	mutual := r.db.
		Table("decisions").
		Select("1").
		Where("actor_id = d.recipient_id AND recipient_id = d.actor_id AND liked = true")

	query := r.db.WithContext(ctx).
		Table("decisions d").
		Where("d.recipient_id = ? AND d.liked = true AND NOT EXISTS (?)", recipientID, mutual).
		Where(notPassedByRecipient, recipientID)
	return r.page(query, paginationToken, limit)
}

// page applies cursor pagination on (updated_at DESC, actor_id DESC) and
// returns the next token when more rows exist.
func (r *DecisionRepository) page(query *gorm.DB, paginationToken *string, limit int) ([]db.Decision, *string, error) {
	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	query = query.Order("d.updated_at DESC, d.actor_id DESC").Limit(limit + 1)
	if !cursor.IsZero() {
		ts := time.UnixMilli(cursor.UpdatedUnix).UTC()
		query = query.Where(
			"(d.updated_at < ? OR (d.updated_at = ? AND d.actor_id < ?))",
			ts, ts, cursor.ActorID,
		)
	}

	var decisions []db.Decision
	if err := query.Find(&decisions).Error; err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(decisions) > limit {
		last := decisions[limit-1]
		token, err := pagination.Encode(pagination.Cursor{
			ActorID:     last.ActorID,
			UpdatedUnix: last.UpdatedAt.UnixMilli(),
		})
		if err != nil {
			return nil, nil, err
		}
		nextToken = &token
		decisions = decisions[:limit]
	}
	return decisions, nextToken, nil
}

// CountLikers returns how many users liked or superliked the given recipient.
//
// Behavior:
//   - Counts only decisions where recipient_id = X and liked = true.
//   - Excludes users that recipient explicitly passed.
//   - Used in conjunction with Redis cache (DB is fallback).
//
// Example:
//
//	repo.CountLikers(ctx, 42) // -> 123
func (r *DecisionRepository) CountLikers(
	ctx context.Context,
	recipientID uint64,
) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("decisions d").
		Where("d.recipient_id = ? AND d.liked = true", recipientID).
		Where(notPassedByRecipient, recipientID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// HasLiked checks whether an actor has liked (or superliked) a recipient.
//
// Behavior:
//   - Returns true if there exists a decision row where actor_id = X,
//     recipient_id = Y, and liked = true.
//   - Used for mutual like checks when a swipe is committed.
//
// Example:
//
//	repo.HasLiked(ctx, 1, 2) // -> true if user 1 liked user 2
func (r *DecisionRepository) HasLiked(
	ctx context.Context,
	actorID, recipientID uint64,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("decisions d").
		Where("d.actor_id = ? AND d.recipient_id = ? AND d.liked = true", actorID, recipientID).
		Count(&count).Error
	return count > 0, err
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
