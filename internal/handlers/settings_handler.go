package handlers

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"seekr/backend/internal/logger"
	"seekr/backend/internal/models"
	"seekr/backend/internal/repositories"
)

type SettingsHandler struct {
	settingRepo repositories.UserSettingRepository
}

func NewSettingsHandler(settingRepo repositories.UserSettingRepository) *SettingsHandler {
	return &SettingsHandler{
		settingRepo: settingRepo,
	}
}

func (h *SettingsHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.UserSettingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if ok, err := validateBody(c, &req); !ok {
		return err
	}

	setting := models.UserSetting{
		Name:  req.Name,
		Value: *req.Value,
	}

	if err := h.settingRepo.Create(&setting); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return errorJSON(c, fiber.StatusBadRequest, "Setting with this name already exists")
		}
		logger.Error().Err(err).Msg("Failed to create setting")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to create setting")
	}

	return c.Status(fiber.StatusCreated).JSON(setting)
}

func (h *SettingsHandler) HandleList(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	settings, err := h.settingRepo.List(repositories.UserSettingFilter{
		Name: c.Query("name"),
		Page: page,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list settings")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to list settings")
	}

	return c.JSON(models.UserSettingsListResponse{
		Page:     page.Number,
		PageSize: page.Size,
		Settings: settings,
	})
}

func (h *SettingsHandler) HandleGet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid setting ID format")
	}

	setting, err := h.settingRepo.FindByID(id)
	if err != nil {
		return h.lookupError(c, err)
	}

	return c.JSON(setting)
}

func (h *SettingsHandler) HandleGetByName(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid setting name")
	}

	setting, err := h.settingRepo.FindByName(name)
	if err != nil {
		return h.lookupError(c, err)
	}

	return c.JSON(setting)
}

func (h *SettingsHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid setting ID format")
	}

	var req models.UserSettingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	setting, err := h.settingRepo.Update(id, req.Value)
	if err != nil {
		return h.lookupError(c, err)
	}

	return c.JSON(setting)
}

func (h *SettingsHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid setting ID format")
	}

	if err := h.settingRepo.Delete(id); err != nil {
		return h.lookupError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SettingsHandler) lookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return errorJSON(c, fiber.StatusNotFound, "Setting not found")
	}
	logger.Error().Err(err).Msg("Setting query failed")
	return errorJSON(c, fiber.StatusInternalServerError, "Failed to load setting")
}
