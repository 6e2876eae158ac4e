package services

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"seekr/backend/internal/models"
)

//go:embed prompts/resume_writer.md
var resumeWriterPrompt string

const (
	baseStateInstruction = "CURRENT RESUME STATE (use this as the base and apply the user's requested changes):"
	userRequestLabel     = "User's request:"
	uploadedContentLabel = "Uploaded file content:"
	extractInstruction   = "Extract resume information from this text:"
)

// resumeSchema describes the resumeJson object to the generator.
const resumeSchema = `{
  "firstName": "string",
  "lastName": "string",
  "email": "string",
  "phone": "string",
  "github": "string",
  "website": "string",
  "linkedin": "string",
  "visaStatus": "string (optional)",
  "careerLevel": "string (Junior, Mid-level, Senior, Staff, Principal, Lead)",
  "careerGoal": "string (optional, e.g. 'Get Staff promotion')",
  "preferredLocations": ["string"],
  "openToRemote": "boolean (optional)",
  "experience": [
    {
      "company": "string",
      "companyDescription": "string (stage, size, ARR)",
      "productDescription": "string",
      "location": "string",
      "position": "string",
      "startDate": "string (YYYY-MM)",
      "endDate": "string (YYYY-MM or 'Present')",
      "achievements": ["string (STAR format with metrics)"],
      "roleContext": "string (optional, scope/focus in this role)"
    }
  ],
  "skills": {
    "[category]": ["string"]
  },
  "education": [
    {
      "institution": "string",
      "degree": "string",
      "field": "string (optional)",
      "startDate": "string (YYYY-MM)",
      "endDate": "string (YYYY-MM or 'Present')"
    }
  ],
  "certifications": ["string"],
  "openSource": ["string"],
  "publications": ["string"],
  "awards": ["string"],
  "summary": "string (2-3 sentences)"
}`

// PromptSegment is one role-tagged message handed to the generator.
type PromptSegment struct {
	Role models.Role
	Text string
}

type PromptBuilder struct {
	systemInstructions string
}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		systemInstructions: strings.ReplaceAll(resumeWriterPrompt, "{{.Schema}}", resumeSchema),
	}
}

// SystemInstructions returns the fixed instructions attached once per request.
func (pb *PromptBuilder) SystemInstructions() string {
	return pb.systemInstructions
}

// BuildConversation turns the chat history and optional uploaded text into the
// ordered segments sent to the generator.
func (pb *PromptBuilder) BuildConversation(turns []models.ChatTurn, uploadedText string) ([]PromptSegment, error) {
	if len(turns) == 0 {
		if uploadedText == "" {
			return nil, &InputError{Message: "either file content or chat messages must be provided"}
		}
		return []PromptSegment{{
			Role: models.RoleUser,
			Text: fmt.Sprintf("%s\n\n%s", extractInstruction, uploadedText),
		}}, nil
	}

	segments := make([]PromptSegment, 0, len(turns))
	for i, turn := range turns {
		var parts []string

		if turn.HasResume() {
			snapshot, err := json.MarshalIndent(turn.Resume, "", "  ")
			if err != nil {
				// decoded from JSON, so this only fails on values injected by Go callers
				return nil, &InputError{Message: fmt.Sprintf("resume snapshot in message %d cannot be serialized: %v", i, err)}
			}
			parts = append(parts, fmt.Sprintf("%s\n%s\n\n%s", baseStateInstruction, snapshot, userRequestLabel))
		}

		parts = append(parts, turn.Content)

		isLast := i == len(turns)-1
		if isLast && turn.Role == models.RoleUser && uploadedText != "" && uploadedText != turn.Content {
			parts = append(parts, fmt.Sprintf("\n\n%s\n%s", uploadedContentLabel, uploadedText))
		}

		segments = append(segments, PromptSegment{
			Role: turn.Role,
			Text: strings.Join(parts, "\n"),
		})
	}

	return segments, nil
}
