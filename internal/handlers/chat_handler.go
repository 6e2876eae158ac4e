package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"seekr/backend/internal/logger"
	"seekr/backend/internal/models"
	"seekr/backend/internal/services"
)

const resumeGeneratedMessage = "Resume generated successfully"

type ChatHandler struct {
	chatService services.ChatService
	parser      services.DocumentParser
	maxFileSize int64
}

func NewChatHandler(
	chatService services.ChatService,
	parser services.DocumentParser,
	maxFileSize int64,
) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		parser:      parser,
		maxFileSize: maxFileSize,
	}
}

// HandleChat runs one chat round. When file_content is empty the last user
// message is used as the source text.
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ok, err := validateBody(c, &req); !ok {
		return err
	}

	text := req.FileContent
	if text == "" {
		text = lastUserContent(req.Messages)
	}
	if text == "" {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "Either file_content or user messages must be provided")
	}

	return h.respond(c, req.Messages, text)
}

// HandleUpload extracts text from an uploaded pdf, docx or txt file and runs a
// chat round with it. An optional "messages" form field carries the
// conversation as JSON.
func (h *ChatHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "file is required")
	}

	if file.Size > h.maxFileSize {
		return errorJSON(c, fiber.StatusBadRequest, fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize))
	}

	var turns []models.ChatTurn
	if raw := c.FormValue("messages"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &turns); err != nil {
			return errorJSON(c, fiber.StatusBadRequest, "messages must be a JSON array of chat turns")
		}
		if err := validate.Var(turns, "dive"); err != nil {
			return errorJSON(c, fiber.StatusUnprocessableEntity, "messages contain an invalid chat turn")
		}
	}

	src, err := file.Open()
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "failed to read uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "failed to read uploaded file")
	}

	text, err := h.parser.ExtractText(file.Filename, file.Header.Get("Content-Type"), data)
	if err != nil {
		var unsupported *services.UnsupportedDocumentError
		if errors.As(err, &unsupported) {
			return errorJSON(c, fiber.StatusBadRequest, unsupported.Error())
		}
		logger.Ctx(c.UserContext()).Warn().Err(err).Str("filename", file.Filename).Msg("Failed to extract text from upload")
		return errorJSON(c, fiber.StatusUnprocessableEntity, "Could not extract text from the uploaded file")
	}

	logger.Ctx(c.UserContext()).Info().
		Str("filename", file.Filename).
		Int64("size", file.Size).
		Int("text_length", len(text)).
		Msg("Upload parsed")

	return h.respond(c, turns, text)
}

func (h *ChatHandler) respond(c *fiber.Ctx, turns []models.ChatTurn, text string) error {
	outcome, err := h.chatService.Process(c.UserContext(), turns, text)
	if err != nil {
		return chatError(c, err)
	}

	return c.JSON(models.ChatResponse{
		ResumeJSON: outcome.Resume,
		Response:   outcome.AdvisoryMessage,
		Message:    resumeGeneratedMessage,
	})
}

func chatError(c *fiber.Ctx, err error) error {
	var (
		inputErr     *services.InputError
		upstreamErr  *services.UpstreamError
		malformedErr *services.MalformedResponseError
	)

	switch {
	case errors.As(err, &inputErr):
		return errorJSON(c, fiber.StatusUnprocessableEntity, inputErr.Message)
	case errors.As(err, &upstreamErr):
		return errorJSON(c, fiber.StatusServiceUnavailable, "Resume generation service is unavailable, please try again")
	case errors.As(err, &malformedErr):
		return errorJSON(c, fiber.StatusServiceUnavailable, "Resume generation returned an invalid response, please try again")
	case errors.Is(err, services.ErrGeneratorNotConfigured):
		return errorJSON(c, fiber.StatusInternalServerError, "Resume generation is not configured")
	default:
		logger.Ctx(c.UserContext()).Error().Err(err).Msg("Chat request failed")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to generate resume")
	}
}

func lastUserContent(turns []models.ChatTurn) string {
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role == models.RoleUser {
			return turns[i].Content
		}
	}
	return ""
}
