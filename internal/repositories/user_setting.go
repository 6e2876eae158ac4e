package repositories

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"seekr/backend/internal/models"
)

type UserSettingRepository interface {
	Create(setting *models.UserSetting) error
	FindByID(id uint) (*models.UserSetting, error)
	FindByName(name string) (*models.UserSetting, error)
	List(filter UserSettingFilter) ([]models.UserSetting, error)
	Update(id uint, value *string) (*models.UserSetting, error)
	Delete(id uint) error
}

type UserSettingFilter struct {
	Name string
	Page Page
}

type userSettingRepository struct {
	db *gorm.DB
}

func NewUserSettingRepository(db *gorm.DB) UserSettingRepository {
	return &userSettingRepository{db: db}
}

func (r *userSettingRepository) Create(setting *models.UserSetting) error {
	// settings never expire
	setting.TTL = nil
	if err := r.db.Create(setting).Error; err != nil {
		return fmt.Errorf("failed to create setting: %w", translate(err))
	}
	return nil
}

func (r *userSettingRepository) FindByID(id uint) (*models.UserSetting, error) {
	var setting models.UserSetting
	if err := r.db.Where("id = ?", id).First(&setting).Error; err != nil {
		return nil, fmt.Errorf("failed to find setting %d: %w", id, translate(err))
	}
	return &setting, nil
}

func (r *userSettingRepository) FindByName(name string) (*models.UserSetting, error) {
	var setting models.UserSetting
	if err := r.db.Where("name = ?", name).First(&setting).Error; err != nil {
		return nil, fmt.Errorf("failed to find setting %q: %w", name, translate(err))
	}
	return &setting, nil
}

func (r *userSettingRepository) List(filter UserSettingFilter) ([]models.UserSetting, error) {
	query := r.db.Model(&models.UserSetting{})
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}

	settings := []models.UserSetting{}
	err := query.
		Order("id ASC").
		Offset(filter.Page.offset()).
		Limit(filter.Page.Size).
		Find(&settings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

func (r *userSettingRepository) Update(id uint, value *string) (*models.UserSetting, error) {
	setting, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if value != nil {
		updates["value"] = *value
	}

	if err := r.db.Model(setting).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update setting %d: %w", id, err)
	}

	return r.FindByID(id)
}

func (r *userSettingRepository) Delete(id uint) error {
	result := r.db.Delete(&models.UserSetting{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete setting %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete setting %d: %w", id, ErrNotFound)
	}
	return nil
}
