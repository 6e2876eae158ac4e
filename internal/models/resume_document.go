package models

// ResumeDocument is the structured resume exchanged with the generator and the
// frontend. Every field is always serialized; absence is an empty value.
type ResumeDocument struct {
	FirstName          string              `json:"firstName"`
	LastName           string              `json:"lastName"`
	Email              string              `json:"email"`
	Phone              string              `json:"phone"`
	Github             string              `json:"github"`
	Website            string              `json:"website"`
	Linkedin           string              `json:"linkedin"`
	VisaStatus         string              `json:"visaStatus"`
	CareerLevel        string              `json:"careerLevel"`
	CareerGoal         string              `json:"careerGoal"`
	PreferredLocations []string            `json:"preferredLocations"`
	OpenToRemote       *bool               `json:"openToRemote"`
	Experience         []ExperienceEntry   `json:"experience"`
	Skills             map[string][]string `json:"skills"`
	Education          []EducationEntry    `json:"education"`
	Certifications     []string            `json:"certifications"`
	OpenSource         []string            `json:"openSource"`
	Publications       []string            `json:"publications"`
	Awards             []string            `json:"awards"`
	Summary            string              `json:"summary"`
}

type ExperienceEntry struct {
	Company            string   `json:"company"`
	CompanyDescription string   `json:"companyDescription"`
	ProductDescription string   `json:"productDescription"`
	Location           string   `json:"location"`
	Position           string   `json:"position"`
	StartDate          string   `json:"startDate"` // YYYY-MM
	EndDate            string   `json:"endDate"`   // YYYY-MM or "Present"
	Achievements       []string `json:"achievements"`
	RoleContext        string   `json:"roleContext"`
}

type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// NewResumeDocument returns an empty document with all containers allocated.
func NewResumeDocument() ResumeDocument {
	return ResumeDocument{
		PreferredLocations: []string{},
		Experience:         []ExperienceEntry{},
		Skills:             map[string][]string{},
		Education:          []EducationEntry{},
		Certifications:     []string{},
		OpenSource:         []string{},
		Publications:       []string{},
		Awards:             []string{},
	}
}

// CoerceResumeDocument builds a ResumeDocument from a decoded JSON object.
// Each field is checked on its own: a value of the wrong kind becomes the
// field's empty value, list elements of the wrong kind are dropped, and
// experience/education items that are not objects are skipped. It never fails.
func CoerceResumeDocument(payload map[string]any) ResumeDocument {
	doc := NewResumeDocument()
	if payload == nil {
		return doc
	}

	doc.FirstName = stringField(payload, "firstName")
	doc.LastName = stringField(payload, "lastName")
	doc.Email = stringField(payload, "email")
	doc.Phone = stringField(payload, "phone")
	doc.Github = stringField(payload, "github")
	doc.Website = stringField(payload, "website")
	doc.Linkedin = stringField(payload, "linkedin")
	doc.VisaStatus = stringField(payload, "visaStatus")
	doc.CareerLevel = stringField(payload, "careerLevel")
	doc.CareerGoal = stringField(payload, "careerGoal")
	doc.PreferredLocations = stringList(payload["preferredLocations"])
	if b, ok := payload["openToRemote"].(bool); ok {
		doc.OpenToRemote = &b
	}
	doc.Summary = stringField(payload, "summary")
	doc.Certifications = stringList(payload["certifications"])
	doc.OpenSource = stringList(payload["openSource"])
	doc.Publications = stringList(payload["publications"])
	doc.Awards = stringList(payload["awards"])

	if items, ok := payload["experience"].([]any); ok {
		for _, item := range items {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			doc.Experience = append(doc.Experience, ExperienceEntry{
				Company:            stringField(m, "company"),
				CompanyDescription: stringField(m, "companyDescription"),
				ProductDescription: stringField(m, "productDescription"),
				Location:           stringField(m, "location"),
				Position:           stringField(m, "position"),
				StartDate:          stringField(m, "startDate"),
				EndDate:            stringField(m, "endDate"),
				Achievements:       stringList(m["achievements"]),
				RoleContext:        stringField(m, "roleContext"),
			})
		}
	}

	if skills, ok := payload["skills"].(map[string]any); ok {
		for category, v := range skills {
			doc.Skills[category] = stringList(v)
		}
	}

	if items, ok := payload["education"].([]any); ok {
		for _, item := range items {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			doc.Education = append(doc.Education, EducationEntry{
				Institution: stringField(m, "institution"),
				Degree:      stringField(m, "degree"),
				Field:       stringField(m, "field"),
				StartDate:   stringField(m, "startDate"),
				EndDate:     stringField(m, "endDate"),
			})
		}
	}

	return doc
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func stringList(v any) []string {
	out := []string{}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
