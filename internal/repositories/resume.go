package repositories

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"seekr/backend/internal/models"
)

type ResumeRepository interface {
	Create(resume *models.Resume) error
	FindByID(id uint) (*models.Resume, error)
	List(filter ResumeFilter) ([]models.Resume, error)
	Update(id uint, data *ResumeUpdateData) (*models.Resume, error)
	Delete(id uint) error
	DeleteExpired(now time.Time) (int64, error)
}

type ResumeFilter struct {
	CompanyName string
	Page        Page
}

// ResumeUpdateData holds the fields to change; nil fields are left as is.
type ResumeUpdateData struct {
	CompanyName  *string
	PositionName *string
	ResumeJSON   datatypes.JSON
}

type resumeRepository struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// NewResumeRepository returns a repository that stamps every write with a TTL
// of ttl from now.
func NewResumeRepository(db *gorm.DB, ttl time.Duration) ResumeRepository {
	if ttl <= 0 {
		ttl = models.DefaultResumeTTL
	}
	return &resumeRepository{db: db, ttl: ttl, now: func() time.Time { return time.Now().UTC() }}
}

func (r *resumeRepository) Create(resume *models.Resume) error {
	resume.TTL = r.now().Add(r.ttl)
	if err := r.db.Create(resume).Error; err != nil {
		return fmt.Errorf("failed to create resume: %w", translate(err))
	}
	return nil
}

func (r *resumeRepository) FindByID(id uint) (*models.Resume, error) {
	var resume models.Resume
	if err := r.db.Where("id = ?", id).First(&resume).Error; err != nil {
		return nil, fmt.Errorf("failed to find resume %d: %w", id, translate(err))
	}
	return &resume, nil
}

func (r *resumeRepository) List(filter ResumeFilter) ([]models.Resume, error) {
	query := r.db.Model(&models.Resume{})
	if filter.CompanyName != "" {
		query = query.Where("LOWER(company_name) LIKE ?", "%"+strings.ToLower(filter.CompanyName)+"%")
	}

	resumes := []models.Resume{}
	err := query.
		Order("id ASC").
		Offset(filter.Page.offset()).
		Limit(filter.Page.Size).
		Find(&resumes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	return resumes, nil
}

func (r *resumeRepository) Update(id uint, data *ResumeUpdateData) (*models.Resume, error) {
	resume, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"ttl":        r.now().Add(r.ttl),
		"updated_at": r.now(),
	}
	if data.CompanyName != nil {
		updates["company_name"] = *data.CompanyName
	}
	if data.PositionName != nil {
		updates["position_name"] = *data.PositionName
	}
	if data.ResumeJSON != nil {
		updates["resume_json"] = data.ResumeJSON
	}

	if err := r.db.Model(resume).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update resume %d: %w", id, translate(err))
	}

	return r.FindByID(id)
}

func (r *resumeRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Resume{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete resume %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete resume %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteExpired removes resumes whose TTL is before now.
func (r *resumeRepository) DeleteExpired(now time.Time) (int64, error) {
	result := r.db.Where("ttl < ?", now.UTC()).Delete(&models.Resume{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired resumes: %w", result.Error)
	}
	return result.RowsAffected, nil
}
