package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/db"
)

// ProfileRepository reads and writes matrimony profiles.
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

// GetByUserID returns gorm.ErrRecordNotFound when the user has no profile yet.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uint64) (*db.Profile, error) {
	var p db.Profile
	if err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Save inserts the profile or overwrites every column of an existing one.
func (r *ProfileRepository) Save(ctx context.Context, p *db.Profile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(p).Error
}

// Candidates lists profiles the viewer may be shown.
//
// Behavior:
//   - Only profiles whose gender differs from viewerGender.
//   - Never the viewer, nobody in exclude, nobody the viewer already decided on.
//   - Ordered by user_id; scoring and ranking happen in the caller.
func (r *ProfileRepository) Candidates(
	ctx context.Context,
	viewerID uint64,
	viewerGender string,
	exclude []uint64,
	limit int,
) ([]db.Profile, error) {
	decided := r.db.
		Table("decisions d").
		Select("1").
		Where("d.actor_id = ? AND d.recipient_id = p.user_id", viewerID)

	query := r.db.WithContext(ctx).
		Table("profiles p").
		Where("p.user_id <> ?", viewerID).
		Where("NOT EXISTS (?)", decided).
		Order("p.user_id ASC")
	if viewerGender != "" {
		query = query.Where("LOWER(p.gender) <> LOWER(?)", viewerGender)
	}
	if len(exclude) > 0 {
		query = query.Where("p.user_id NOT IN ?", exclude)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var out []db.Profile
	if err := query.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
