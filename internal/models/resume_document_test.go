package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeObject(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestCoerceResumeDocument_Nil(t *testing.T) {
	doc := CoerceResumeDocument(nil)
	assert.Equal(t, NewResumeDocument(), doc)
}

func TestCoerceResumeDocument_EmptyDocumentSerializesEveryKey(t *testing.T) {
	data, err := json.Marshal(CoerceResumeDocument(map[string]any{}))
	require.NoError(t, err)

	m := decodeObject(t, string(data))
	for _, key := range []string{
		"firstName", "lastName", "email", "phone", "github", "website", "linkedin",
		"visaStatus", "careerLevel", "careerGoal", "preferredLocations", "openToRemote",
		"experience", "skills", "education", "certifications", "openSource",
		"publications", "awards", "summary",
	} {
		assert.Contains(t, m, key)
	}
	assert.Equal(t, []any{}, m["experience"])
	assert.Equal(t, map[string]any{}, m["skills"])
	assert.Equal(t, []any{}, m["education"])
	assert.Nil(t, m["openToRemote"])
}

func TestCoerceResumeDocument_FullPayload(t *testing.T) {
	payload := decodeObject(t, `{
		"firstName": "Ann",
		"email": "ann@example.com",
		"careerLevel": "Senior",
		"preferredLocations": ["Remote", "NYC"],
		"openToRemote": true,
		"experience": [{
			"company": "Acme",
			"position": "Engineer",
			"startDate": "2021-03",
			"endDate": "Present",
			"achievements": ["Cut p99 latency by 40%"]
		}],
		"skills": {"Backend": ["Go", "PostgreSQL"]},
		"education": [{"institution": "MIT", "degree": "BSc", "field": "CS"}],
		"awards": ["Hackathon winner"],
		"summary": "Senior engineer."
	}`)

	doc := CoerceResumeDocument(payload)

	assert.Equal(t, "Ann", doc.FirstName)
	assert.Equal(t, "ann@example.com", doc.Email)
	assert.Equal(t, []string{"Remote", "NYC"}, doc.PreferredLocations)
	require.NotNil(t, doc.OpenToRemote)
	assert.True(t, *doc.OpenToRemote)
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "Acme", doc.Experience[0].Company)
	assert.Equal(t, "Present", doc.Experience[0].EndDate)
	assert.Equal(t, []string{"Cut p99 latency by 40%"}, doc.Experience[0].Achievements)
	assert.Equal(t, map[string][]string{"Backend": {"Go", "PostgreSQL"}}, doc.Skills)
	require.Len(t, doc.Education, 1)
	assert.Equal(t, "CS", doc.Education[0].Field)
	assert.Equal(t, []string{"Hackathon winner"}, doc.Awards)
	assert.Equal(t, []string{}, doc.Certifications)
}

func TestCoerceResumeDocument_WrongKindsFallBackToDefaults(t *testing.T) {
	payload := decodeObject(t, `{
		"firstName": 42,
		"lastName": null,
		"preferredLocations": "Remote",
		"openToRemote": "yes",
		"experience": [{"company": "Acme", "achievements": ["ok", 3, null]}, "not an object", 7],
		"skills": {"Backend": ["Go", {"x": 1}], "Cloud": "AWS"},
		"education": {"institution": "MIT"},
		"certifications": [true, "CKA"]
	}`)

	doc := CoerceResumeDocument(payload)

	assert.Equal(t, "", doc.FirstName)
	assert.Equal(t, "", doc.LastName)
	assert.Equal(t, []string{}, doc.PreferredLocations)
	assert.Nil(t, doc.OpenToRemote)
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, []string{"ok"}, doc.Experience[0].Achievements)
	assert.Equal(t, map[string][]string{"Backend": {"Go"}, "Cloud": {}}, doc.Skills)
	assert.Equal(t, []EducationEntry{}, doc.Education)
	assert.Equal(t, []string{"CKA"}, doc.Certifications)
}

func TestCoerceResumeDocument_RoundTripIsStable(t *testing.T) {
	first := CoerceResumeDocument(decodeObject(t, `{
		"firstName": "Ann",
		"experience": [{"company": "Acme"}],
		"skills": {"Go": ["generics"]},
		"openToRemote": false
	}`))

	data, err := json.Marshal(first)
	require.NoError(t, err)

	second := CoerceResumeDocument(decodeObject(t, string(data)))
	assert.Equal(t, first, second)
}
