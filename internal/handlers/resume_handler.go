package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"seekr/backend/internal/logger"
	"seekr/backend/internal/models"
	"seekr/backend/internal/repositories"
)

type ResumeHandler struct {
	resumeRepo repositories.ResumeRepository
}

func NewResumeHandler(resumeRepo repositories.ResumeRepository) *ResumeHandler {
	return &ResumeHandler{
		resumeRepo: resumeRepo,
	}
}

func (h *ResumeHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.ResumeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.PositionName = strings.TrimSpace(req.PositionName)
	if ok, err := validateBody(c, &req); !ok {
		return err
	}
	if !isJSONObject(req.ResumeJSON) {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "resume_json must be a JSON object")
	}

	resume := models.Resume{
		CompanyName:  req.CompanyName,
		PositionName: req.PositionName,
		ResumeJSON:   datatypes.JSON(req.ResumeJSON),
	}

	if err := h.resumeRepo.Create(&resume); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return errorJSON(c, fiber.StatusBadRequest, "Resume for this company and position already exists")
		}
		logger.Error().Err(err).Msg("Failed to create resume")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to create resume")
	}

	logger.Info().Uint("resume_id", resume.ID).Str("company", resume.CompanyName).Msg("Resume created")

	return c.Status(fiber.StatusCreated).JSON(resume)
}

func (h *ResumeHandler) HandleList(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	resumes, err := h.resumeRepo.List(repositories.ResumeFilter{
		CompanyName: c.Query("company_name"),
		Page:        page,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list resumes")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to list resumes")
	}

	return c.JSON(models.ResumesListResponse{
		Page:     page.Number,
		PageSize: page.Size,
		Resumes:  resumes,
	})
}

func (h *ResumeHandler) HandleGet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid resume ID format")
	}

	resume, err := h.resumeRepo.FindByID(id)
	if err != nil {
		return h.lookupError(c, err)
	}

	return c.JSON(resume)
}

func (h *ResumeHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid resume ID format")
	}

	var req models.ResumeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.CompanyName = trimmed(req.CompanyName)
	req.PositionName = trimmed(req.PositionName)
	if ok, err := validateBody(c, &req); !ok {
		return err
	}

	data := &repositories.ResumeUpdateData{
		CompanyName:  req.CompanyName,
		PositionName: req.PositionName,
	}
	if len(req.ResumeJSON) > 0 && string(req.ResumeJSON) != "null" {
		if !isJSONObject(req.ResumeJSON) {
			return errorJSON(c, fiber.StatusUnprocessableEntity, "resume_json must be a JSON object")
		}
		data.ResumeJSON = datatypes.JSON(req.ResumeJSON)
	}

	resume, err := h.resumeRepo.Update(id, data)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return errorJSON(c, fiber.StatusBadRequest, "Resume for this company and position already exists")
		}
		return h.lookupError(c, err)
	}

	return c.JSON(resume)
}

func (h *ResumeHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid resume ID format")
	}

	if err := h.resumeRepo.Delete(id); err != nil {
		return h.lookupError(c, err)
	}

	logger.Info().Uint("resume_id", id).Msg("Resume deleted")

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ResumeHandler) lookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return errorJSON(c, fiber.StatusNotFound, "Resume not found")
	}
	logger.Error().Err(err).Msg("Resume query failed")
	return errorJSON(c, fiber.StatusInternalServerError, "Failed to load resume")
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
