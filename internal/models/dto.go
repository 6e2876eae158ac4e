package models

import "encoding/json"

type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ResumeCreateRequest struct {
	CompanyName  string          `json:"company_name" validate:"required,min=1,max=255"`
	PositionName string          `json:"position_name" validate:"required,min=1,max=255"`
	ResumeJSON   json.RawMessage `json:"resume_json" validate:"required"`
}

// ResumeUpdateRequest only changes the fields that are present.
type ResumeUpdateRequest struct {
	CompanyName  *string         `json:"company_name" validate:"omitempty,min=1,max=255"`
	PositionName *string         `json:"position_name" validate:"omitempty,min=1,max=255"`
	ResumeJSON   json.RawMessage `json:"resume_json"`
}

type ResumesListResponse struct {
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
	Resumes  []Resume `json:"resumes"`
}

// UserSettingCreateRequest requires value to be present; an empty string is allowed.
type UserSettingCreateRequest struct {
	Name  string  `json:"name" validate:"required,min=1,max=255"`
	Value *string `json:"value" validate:"required"`
}

type UserSettingUpdateRequest struct {
	Value *string `json:"value"`
}

type UserSettingsListResponse struct {
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Settings []UserSetting `json:"settings"`
}

type ChatRequest struct {
	Messages    []ChatTurn `json:"messages" validate:"dive"`
	FileContent string     `json:"file_content"`
}

type ChatResponse struct {
	ResumeJSON ResumeDocument `json:"resume_json"`
	Response   *string        `json:"response"`
	Message    string         `json:"message"`
}
