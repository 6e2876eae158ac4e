package models

import (
	"time"

	"gorm.io/datatypes"
)

// DefaultResumeTTL is how long a stored resume lives after its last write.
const DefaultResumeTTL = 60 * 24 * time.Hour

type Resume struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyName  string         `gorm:"type:varchar(255);not null;uniqueIndex:uix_resume_company_position" json:"company_name"`
	PositionName string         `gorm:"type:varchar(255);not null;uniqueIndex:uix_resume_company_position" json:"position_name"`
	ResumeJSON   datatypes.JSON `gorm:"not null" json:"resume_json"`
	TTL          time.Time      `gorm:"index;not null" json:"ttl"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Resume) TableName() string {
	return "resumes"
}

type UserSetting struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Value     string     `gorm:"type:text;not null" json:"value"`
	TTL       *time.Time `json:"ttl"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserSetting) TableName() string {
	return "user_settings"
}
