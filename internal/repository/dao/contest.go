package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrContestNotFound = errors.New("contest not found")
)

type Contest struct {
	ID uint `gorm:"primaryKey"`

	Title        string `gorm:"not null"`
	Image        string
	Description  string
	Tags         string
	Price        float64
	PrizeMoney   float64
	Deadline     time.Time
	CreatorEmail string `gorm:"index;not null"`

	Status             string `gorm:"not null;default:pending"` // "pending" or "approved"
	ParticipationCount int    `gorm:"not null;default:0"`

	Result      string `gorm:"not null;default:''"`
	WinnerName  string
	WinnerEmail string
	WinnerImage string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ContestDAO struct {
	db *gorm.DB
}

func NewContestDAO(db *gorm.DB) *ContestDAO {
	return &ContestDAO{
		db: db,
	}
}

func (d *ContestDAO) Insert(ctx context.Context, contest Contest) (Contest, error) {
	result := d.db.WithContext(ctx).Create(&contest)
	if result.Error != nil {
		return Contest{}, result.Error
	}

	return contest, nil
}

func (d *ContestDAO) FindByID(ctx context.Context, id uint) (Contest, error) {
	var contest Contest

	result := d.db.WithContext(ctx).First(&contest, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Contest{}, ErrContestNotFound
		}

		return Contest{}, result.Error
	}

	return contest, nil
}

// FindPage returns one page ordered by id so that consecutive pages are
// disjoint slices of the full set.
func (d *ContestDAO) FindPage(ctx context.Context, offset, limit int) ([]Contest, error) {
	var contests []Contest

	result := d.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&contests)
	if result.Error != nil {
		return nil, result.Error
	}

	return contests, nil
}

func (d *ContestDAO) CountAll(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Contest{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// SearchByTags matches a case-insensitive substring against the tags field.
func (d *ContestDAO) SearchByTags(ctx context.Context, value string) ([]Contest, error) {
	var contests []Contest

	result := d.db.WithContext(ctx).
		Where("tags ILIKE ?", "%"+value+"%").
		Order("id").
		Find(&contests)
	if result.Error != nil {
		return nil, result.Error
	}

	return contests, nil
}

func (d *ContestDAO) FindPopular(ctx context.Context) ([]Contest, error) {
	var contests []Contest

	result := d.db.WithContext(ctx).
		Where("status = ?", "approved").
		Order("participation_count DESC").
		Find(&contests)
	if result.Error != nil {
		return nil, result.Error
	}

	return contests, nil
}

func (d *ContestDAO) FindByCreator(ctx context.Context, email string) ([]Contest, error) {
	var contests []Contest

	result := d.db.WithContext(ctx).
		Where("creator_email = ?", email).
		Order("created_at DESC").
		Find(&contests)
	if result.Error != nil {
		return nil, result.Error
	}

	return contests, nil
}

func (d *ContestDAO) Update(ctx context.Context, id uint, fields map[string]interface{}) (Contest, error) {
	result := d.db.WithContext(ctx).
		Model(&Contest{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return Contest{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Contest{}, ErrContestNotFound
	}

	return d.FindByID(ctx, id)
}

func (d *ContestDAO) DeleteByID(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Contest{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContestNotFound
	}

	return nil
}

// DeclareWinner propagates the same result fields to the contest, its
// submissions and its payments in one transaction, so a partial failure
// rolls back instead of leaving stale copies. Re-declaring the same
// winner rewrites identical values, which makes the operation idempotent.
func (d *ContestDAO) DeclareWinner(ctx context.Context, contestID uint, result, winnerName, winnerEmail, winnerImage string) error {
	winnerFields := map[string]interface{}{
		"result":       result,
		"winner_name":  winnerName,
		"winner_email": winnerEmail,
		"winner_image": winnerImage,
	}

	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Contest{}).Where("id = ?", contestID).Updates(winnerFields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrContestNotFound
		}

		if err := tx.Model(&Submission{}).Where("contest_id = ?", contestID).Updates(winnerFields).Error; err != nil {
			return err
		}

		if err := tx.Model(&Payment{}).Where("contest_id = ?", contestID).Updates(winnerFields).Error; err != nil {
			return err
		}

		return nil
	})
}

// FindLatestWinner returns the most recently created contest with a
// declared result.
func (d *ContestDAO) FindLatestWinner(ctx context.Context) (Contest, error) {
	var contest Contest

	result := d.db.WithContext(ctx).
		Where("result <> ''").
		Order("created_at DESC").
		First(&contest)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Contest{}, ErrContestNotFound
		}

		return Contest{}, result.Error
	}

	return contest, nil
}

func (d *ContestDAO) FindTopCreators(ctx context.Context, limit int) ([]Contest, error) {
	var contests []Contest

	result := d.db.WithContext(ctx).
		Where("participation_count > 0").
		Order("participation_count DESC").
		Limit(limit).
		Find(&contests)
	if result.Error != nil {
		return nil, result.Error
	}

	return contests, nil
}

func (d *ContestDAO) FindWonByEmail(ctx context.Context, email string) ([]Contest, error) {
	var contests []Contest

	result := d.db.WithContext(ctx).
		Where("result <> '' AND winner_email = ?", email).
		Order("created_at DESC").
		Find(&contests)
	if result.Error != nil {
		return nil, result.Error
	}

	return contests, nil
}
