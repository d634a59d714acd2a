package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AccountRole represents account roles
type AccountRole string

const (
	AccountRoleAdmin AccountRole = "ADMIN"
	AccountRoleUser  AccountRole = "USER"
)

// Account represents an authenticable identity with approval state.
// FirstName..Diploma are legacy descriptive fields usable before a
// Profile exists; they stay on the account row.
type Account struct {
	ID            uuid.UUID   `json:"id"`
	Email         string      `json:"email"`
	Name          null.String `json:"name,omitempty"`
	PasswordHash  string      `json:"-"`
	Role          AccountRole `json:"role"`
	FirstName     null.String `json:"firstName,omitempty"`
	LastName      null.String `json:"lastName,omitempty"`
	StudentNumber null.String `json:"studentNumber,omitempty"`
	Establishment null.String `json:"establishment,omitempty"`
	Diploma       null.String `json:"diploma,omitempty"`
	IsApproved    bool        `json:"isApproved"`
	IsRejected    bool        `json:"isRejected"`
	Profile       *Profile    `json:"profile,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// IdentityUpdate holds the account scalar fields written by a profile save.
// Empty strings have already been normalized to invalid null.Strings.
type IdentityUpdate struct {
	FirstName     null.String
	LastName      null.String
	Name          null.String
	StudentNumber null.String
	Establishment null.String
	Diploma       null.String
}

// SignupInput represents input for account signup
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginInput represents input for account login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
