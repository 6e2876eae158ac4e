package services

import (
	"encoding/json"
	"strings"

	"seekr/backend/internal/logger"
)

const (
	advisoryKey = "response"
	resumeKey   = "resumeJson"
	codeFence   = "```"
)

// NormalizedResponse is the generator output after envelope extraction and
// container-kind repair. Resume is still an untyped JSON object.
type NormalizedResponse struct {
	AdvisoryMessage *string
	Resume          map[string]any
	LegacyShape     bool
}

// StripCodeFence removes a leading ``` (with an optional language tag) and a
// trailing ``` from text.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, codeFence) {
		text = strings.TrimPrefix(text, codeFence)
		if idx := strings.IndexByte(text, '\n'); idx >= 0 {
			tag := strings.TrimSpace(text[:idx])
			if isLanguageTag(tag) {
				text = text[idx+1:]
			}
		} else if tag := leadingWord(text); isLanguageTag(tag) && tag != "" {
			text = strings.TrimPrefix(text, tag)
		}
	}

	text = strings.TrimSuffix(strings.TrimSpace(text), codeFence)

	return strings.TrimSpace(text)
}

func isLanguageTag(s string) bool {
	return len(s) < 20 && !strings.ContainsAny(s, " {}[]\"")
}

func leadingWord(s string) string {
	end := strings.IndexAny(s, " \t{[")
	if end < 0 {
		return ""
	}
	return s[:end]
}

// NormalizeResponse parses raw generator text into an advisory message and a
// resume payload whose experience, skills and education fields are guaranteed
// to be a list, an object and a list.
func NormalizeResponse(raw string) (*NormalizedResponse, error) {
	cleaned := StripCodeFence(raw)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, &MalformedResponseError{Raw: cleaned, Cause: err}
	}
	if parsed == nil {
		return nil, &MalformedResponseError{Raw: cleaned}
	}

	out := &NormalizedResponse{}

	if payload, ok := parsed[resumeKey]; ok {
		out.AdvisoryMessage = advisoryMessage(parsed[advisoryKey])
		resume, isObject := payload.(map[string]any)
		if !isObject {
			logger.Warn().Str("type", jsonKind(payload)).Msg("resumeJson is not an object, using an empty resume")
			resume = map[string]any{}
		}
		out.Resume = resume
	} else {
		logger.Warn().Msg("Generator returned the legacy shape without resumeJson, using the whole object as resume data")
		out.Resume = parsed
		out.LegacyShape = true
	}

	repairContainers(out.Resume)

	return out, nil
}

func advisoryMessage(v any) *string {
	switch msg := v.(type) {
	case nil:
		return nil
	case string:
		if msg == "" {
			return nil
		}
		return &msg
	default:
		logger.Warn().Str("type", jsonKind(v)).Msg("Advisory message is not a string, dropping it")
		return nil
	}
}

// repairContainers replaces missing or wrongly typed collection fields with
// empty containers of the right kind.
func repairContainers(resume map[string]any) {
	if _, ok := resume["experience"].([]any); !ok {
		if _, present := resume["experience"]; present {
			logger.Warn().Msg("experience field is not an array, defaulting to empty array")
		}
		resume["experience"] = []any{}
	}
	if _, ok := resume["skills"].(map[string]any); !ok {
		if _, present := resume["skills"]; present {
			logger.Warn().Msg("skills field is not an object, defaulting to empty object")
		}
		resume["skills"] = map[string]any{}
	}
	if _, ok := resume["education"].([]any); !ok {
		if _, present := resume["education"]; present {
			logger.Warn().Msg("education field is not an array, defaulting to empty array")
		}
		resume["education"] = []any{}
	}
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}
