package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"intern-hub.backend/internal/domain/entities"
)

// safeAccount is the minimal identity returned by auth endpoints
func safeAccount(a *entities.Account) gin.H {
	return gin.H{
		"id":    a.ID,
		"name":  a.Name.Ptr(),
		"email": a.Email,
		"role":  a.Role,
	}
}

// reviewedAccount adds the approval flags for admin review responses
func reviewedAccount(a *entities.Account) gin.H {
	h := safeAccount(a)
	h["isApproved"] = a.IsApproved
	h["isRejected"] = a.IsRejected
	h["status"] = entities.ResolveAccountStatus(a)
	return h
}

// profileData flattens account identity, profile scalars and children
// into the form shape the profile page edits. Absent values render as
// empty strings, never null.
func profileData(a *entities.Account) gin.H {
	p := a.Profile

	data := gin.H{
		"id":            a.ID,
		"firstName":     a.FirstName.String,
		"lastName":      a.LastName.String,
		"email":         a.Email,
		"role":          a.Role,
		"studentNumber": a.StudentNumber.String,
		"establishment": a.Establishment.String,
		"diploma":       a.Diploma.String,
		"isApproved":    a.IsApproved,
		"isRejected":    a.IsRejected,
	}

	if p != nil {
		data["phone"] = p.Phone.String
		data["city"] = p.City.String
		data["linkedin"] = p.Linkedin.String
		data["presentation"] = p.Presentation.String
		data["expectedGraduation"] = p.ExpectedGraduation.String
		data["classProjects"] = p.ClassProjects.String
		data["isProfileComplete"] = p.IsComplete
		data["isAvailableForWork"] = p.IsAvailableForWork
	} else {
		data["phone"] = ""
		data["city"] = ""
		data["linkedin"] = ""
		data["presentation"] = ""
		data["expectedGraduation"] = ""
		data["classProjects"] = ""
		data["isProfileComplete"] = false
		data["isAvailableForWork"] = true
	}

	data["courses"] = coursesData(p)
	data["skills"] = skillsData(p)
	data["languages"] = languagesData(p)
	data["experiences"] = experiencesData(p)
	return data
}

// summaryData is the light dashboard card
func summaryData(a *entities.Account) gin.H {
	p := a.Profile

	data := gin.H{
		"id":            a.ID,
		"name":          displayName(a),
		"firstName":     a.FirstName.String,
		"lastName":      a.LastName.String,
		"email":         a.Email,
		"role":          a.Role,
		"studentNumber": a.StudentNumber.String,
		"establishment": a.Establishment.String,
		"diploma":       a.Diploma.String,
		"isApproved":    a.IsApproved,
		"isRejected":    a.IsRejected,
	}

	if p != nil {
		data["city"] = p.City.String
		data["phone"] = p.Phone.String
		data["linkedin"] = p.Linkedin.String
		data["isProfileComplete"] = p.IsComplete
		data["isAvailableForWork"] = p.IsAvailableForWork
	} else {
		data["city"] = ""
		data["phone"] = ""
		data["linkedin"] = ""
		data["isProfileComplete"] = false
		data["isAvailableForWork"] = true
	}
	return data
}

// internData is one public directory card: identity plus profile and
// children, without any review flags
func internData(a *entities.Account) gin.H {
	p := a.Profile

	data := gin.H{
		"id":            a.ID,
		"firstName":     a.FirstName.Ptr(),
		"lastName":      a.LastName.Ptr(),
		"email":         a.Email,
		"studentNumber": a.StudentNumber.Ptr(),
		"establishment": a.Establishment.Ptr(),
		"diploma":       a.Diploma.Ptr(),
	}

	if p != nil {
		data["city"] = p.City.Ptr()
		data["phone"] = p.Phone.Ptr()
		data["linkedin"] = p.Linkedin.Ptr()
		data["presentation"] = p.Presentation.Ptr()
		data["expectedGraduation"] = p.ExpectedGraduation.Ptr()
		data["classProjects"] = p.ClassProjects.Ptr()
	}

	data["courses"] = coursesData(p)
	data["skills"] = skillsData(p)
	data["languages"] = languagesData(p)
	data["experiences"] = experiencesData(p)
	return data
}

// studentData is the admin review row: the reviewed account plus the
// full profile with its derived profile-track status
func studentData(a *entities.Account) gin.H {
	data := reviewedAccount(a)
	data["firstName"] = a.FirstName.Ptr()
	data["lastName"] = a.LastName.Ptr()
	data["studentNumber"] = a.StudentNumber.Ptr()
	data["establishment"] = a.Establishment.Ptr()
	data["diploma"] = a.Diploma.Ptr()
	data["createdAt"] = a.CreatedAt
	data["profile"] = a.Profile
	data["profileStatus"] = entities.ResolveProfileStatus(a.Profile)
	return data
}

func displayName(a *entities.Account) string {
	if a.Name.Valid && a.Name.String != "" {
		return a.Name.String
	}
	full := strings.TrimSpace(strings.TrimSpace(a.FirstName.String) + " " + strings.TrimSpace(a.LastName.String))
	if full != "" {
		return full
	}
	return a.Email
}

func coursesData(p *entities.Profile) []gin.H {
	out := make([]gin.H, 0)
	if p == nil {
		return out
	}
	for _, c := range p.Courses {
		out = append(out, gin.H{
			"id":   c.ID,
			"name": c.Name,
			"note": c.Note.String,
		})
	}
	return out
}

func skillsData(p *entities.Profile) []gin.H {
	out := make([]gin.H, 0)
	if p == nil {
		return out
	}
	for _, s := range p.Skills {
		out = append(out, gin.H{
			"id":                 s.ID,
			"name":               s.Name,
			"level":              s.Level,
			"certificateUrl":     s.CertificateURL.String,
			"isCertificateValid": s.IsCertificateValid,
		})
	}
	return out
}

func languagesData(p *entities.Profile) []gin.H {
	out := make([]gin.H, 0)
	if p == nil {
		return out
	}
	for _, l := range p.Languages {
		out = append(out, gin.H{
			"id":    l.ID,
			"name":  l.Name,
			"level": l.Level,
		})
	}
	return out
}

func experiencesData(p *entities.Profile) []gin.H {
	out := make([]gin.H, 0)
	if p == nil {
		return out
	}
	for _, ex := range p.Experiences {
		out = append(out, gin.H{
			"id":              ex.ID,
			"title":           ex.Title,
			"company":         ex.Company,
			"period":          ex.Period,
			"supervisorName":  ex.SupervisorName.String,
			"supervisorEmail": ex.SupervisorEmail.String,
		})
	}
	return out
}
