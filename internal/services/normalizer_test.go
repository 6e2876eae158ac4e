package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json tag", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"no tag", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```\n  ", `{"a":1}`},
		{"single line", "```json {\"a\":1}```", `{"a":1}`},
		{"only closing fence", "{\"a\":1}\n```", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.input))
		})
	}
}

func TestNormalizeResponse_FencedEqualsUnfenced(t *testing.T) {
	fenced, err := NormalizeResponse("```json\n{\"resumeJson\":{}}\n```")
	require.NoError(t, err)

	plain, err := NormalizeResponse(`{"resumeJson":{}}`)
	require.NoError(t, err)

	assert.Equal(t, plain, fenced)
}

func TestNormalizeResponse_Envelope(t *testing.T) {
	out, err := NormalizeResponse(`{"response":"What is your career level?","resumeJson":{"firstName":"Ann","experience":[{"company":"Acme"}]}}`)
	require.NoError(t, err)

	require.NotNil(t, out.AdvisoryMessage)
	assert.Equal(t, "What is your career level?", *out.AdvisoryMessage)
	assert.False(t, out.LegacyShape)
	assert.Equal(t, "Ann", out.Resume["firstName"])
	assert.Len(t, out.Resume["experience"], 1)
	assert.Equal(t, map[string]any{}, out.Resume["skills"])
	assert.Equal(t, []any{}, out.Resume["education"])
}

func TestNormalizeResponse_AdvisoryMessage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *string
	}{
		{"null", `{"response":null,"resumeJson":{}}`, nil},
		{"missing", `{"resumeJson":{}}`, nil},
		{"empty string", `{"response":"","resumeJson":{}}`, nil},
		{"not a string", `{"response":42,"resumeJson":{}}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NormalizeResponse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.AdvisoryMessage)
		})
	}
}

func TestNormalizeResponse_LegacyShape(t *testing.T) {
	out, err := NormalizeResponse(`{"firstName":"Ann"}`)
	require.NoError(t, err)

	assert.True(t, out.LegacyShape)
	assert.Nil(t, out.AdvisoryMessage)
	assert.Equal(t, "Ann", out.Resume["firstName"])
	assert.Equal(t, []any{}, out.Resume["experience"])
}

func TestNormalizeResponse_ResumeNotAnObject(t *testing.T) {
	out, err := NormalizeResponse(`{"response":"hi","resumeJson":"oops"}`)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"experience": []any{},
		"skills":     map[string]any{},
		"education":  []any{},
	}, out.Resume)
}

func TestNormalizeResponse_Malformed(t *testing.T) {
	for _, raw := range []string{"not json", "", "[1,2,3]", "null", "```json\n{\"resumeJson\":\n```"} {
		t.Run(raw, func(t *testing.T) {
			out, err := NormalizeResponse(raw)
			require.Error(t, err)
			assert.Nil(t, out)

			var malformed *MalformedResponseError
			assert.True(t, errors.As(err, &malformed))
		})
	}
}

func TestNormalizeResponse_RepairsContainerKinds(t *testing.T) {
	inputs := []string{
		`{"resumeJson":{"experience":"none","skills":[],"education":{}}}`,
		`{"resumeJson":{"experience":null,"skills":"go","education":7}}`,
		`{"resumeJson":{"experience":{"a":1},"skills":null,"education":"x"}}`,
		`{"experience":true,"skills":1.5,"education":null}`,
		`{"resumeJson":{"experience":[],"skills":{"lang":["Go"]},"education":[]}}`,
	}

	for _, raw := range inputs {
		t.Run(raw, func(t *testing.T) {
			out, err := NormalizeResponse(raw)
			require.NoError(t, err)

			assert.IsType(t, []any{}, out.Resume["experience"])
			assert.IsType(t, map[string]any{}, out.Resume["skills"])
			assert.IsType(t, []any{}, out.Resume["education"])
		})
	}
}
