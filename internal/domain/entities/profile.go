package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Profile is the student-specific record owned 1:1 by an Account.
// The four child collections are wholly owned: every save replaces them.
type Profile struct {
	ID                 uuid.UUID    `json:"id"`
	AccountID          uuid.UUID    `json:"accountId"`
	Phone              null.String  `json:"phone,omitempty"`
	City               null.String  `json:"city,omitempty"`
	Linkedin           null.String  `json:"linkedin,omitempty"`
	Presentation       null.String  `json:"presentation,omitempty"`
	ExpectedGraduation null.String  `json:"expectedGraduation,omitempty"`
	ClassProjects      null.String  `json:"classProjects,omitempty"`
	IsComplete         bool         `json:"isComplete"`
	IsAvailableForWork bool         `json:"isAvailableForWork"`
	IsProfileApproved  bool         `json:"isProfileApproved"`
	IsProfileRejected  bool         `json:"isProfileRejected"`
	Courses            []Course     `json:"courses"`
	Skills             []Skill      `json:"skills"`
	Languages          []Language   `json:"languages"`
	Experiences        []Experience `json:"experiences"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

// Course is a followed course, optionally with a grade note.
type Course struct {
	ID   uuid.UUID   `json:"id"`
	Name string      `json:"name"`
	Note null.String `json:"note,omitempty"`
}

// Skill is a declared skill, optionally backed by a certificate URL.
type Skill struct {
	ID                 uuid.UUID   `json:"id"`
	Name               string      `json:"name"`
	Level              string      `json:"level"`
	CertificateURL     null.String `json:"certificateUrl,omitempty"`
	IsCertificateValid bool        `json:"isCertificateValid"`
}

// Language is a spoken language with an optional level.
type Language struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Level string    `json:"level"`
}

// Experience is a past internship or job.
type Experience struct {
	ID              uuid.UUID   `json:"id"`
	Title           string      `json:"title"`
	Company         string      `json:"company"`
	Period          string      `json:"period"`
	SupervisorName  null.String `json:"supervisorName,omitempty"`
	SupervisorEmail null.String `json:"supervisorEmail,omitempty"`
}

// SaveProfileInput is the full form payload for a profile save.
// Validation happens server-side with per-field messages, so no
// binding tags beyond JSON names.
type SaveProfileInput struct {
	FirstName          string            `json:"firstName"`
	LastName           string            `json:"lastName"`
	StudentNumber      string            `json:"studentNumber"`
	Establishment      string            `json:"establishment"`
	Diploma            string            `json:"diploma"`
	Phone              string            `json:"phone"`
	City               string            `json:"city"`
	Linkedin           string            `json:"linkedin"`
	Presentation       string            `json:"presentation"`
	ExpectedGraduation string            `json:"expectedGraduation"`
	ClassProjects      string            `json:"classProjects"`
	IsAvailableForWork *bool             `json:"isAvailableForWork"`
	Courses            []CourseInput     `json:"courses"`
	Skills             []SkillInput      `json:"skills"`
	Languages          []LanguageInput   `json:"languages"`
	Experiences        []ExperienceInput `json:"experiences"`
}

// CourseInput is a submitted course entry
type CourseInput struct {
	Name string `json:"name"`
	Note string `json:"note"`
}

// SkillInput is a submitted skill entry
type SkillInput struct {
	Name           string `json:"name"`
	Level          string `json:"level"`
	CertificateURL string `json:"certificateUrl"`
}

// LanguageInput is a submitted language entry
type LanguageInput struct {
	Name string `json:"name"`
	Level string `json:"level"`
}

// ExperienceInput is a submitted experience entry
type ExperienceInput struct {
	Title           string `json:"title"`
	Company         string `json:"company"`
	Period          string `json:"period"`
	SupervisorName  string `json:"supervisorName"`
	SupervisorEmail string `json:"supervisorEmail"`
}

// NormalizedChildren converts the submitted child entries into owned
// collections: values trimmed, entries without their required name or
// title silently dropped, skill certificate validity derived from the
// URL scheme.
func (in *SaveProfileInput) NormalizedChildren() (courses []Course, skills []Skill, languages []Language, experiences []Experience) {
	for _, c := range in.Courses {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		courses = append(courses, Course{
			Name: name,
			Note: nullFromTrimmed(c.Note),
		})
	}
	for _, s := range in.Skills {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		url := strings.TrimSpace(s.CertificateURL)
		skills = append(skills, Skill{
			Name:               name,
			Level:              strings.TrimSpace(s.Level),
			CertificateURL:     nullFromTrimmed(url),
			IsCertificateValid: strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://"),
		})
	}
	for _, l := range in.Languages {
		name := strings.TrimSpace(l.Name)
		if name == "" {
			continue
		}
		languages = append(languages, Language{
			Name:  name,
			Level: strings.TrimSpace(l.Level),
		})
	}
	for _, ex := range in.Experiences {
		title := strings.TrimSpace(ex.Title)
		if title == "" {
			continue
		}
		experiences = append(experiences, Experience{
			Title:           title,
			Company:         strings.TrimSpace(ex.Company),
			Period:          strings.TrimSpace(ex.Period),
			SupervisorName:  nullFromTrimmed(ex.SupervisorName),
			SupervisorEmail: nullFromTrimmed(ex.SupervisorEmail),
		})
	}
	return courses, skills, languages, experiences
}

func nullFromTrimmed(s string) null.String {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return null.String{}
	}
	return null.StringFrom(trimmed)
}
