package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"intern-hub.backend/internal/domain/entities"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createAccountTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE accounts (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		first_name TEXT,
		last_name TEXT,
		student_number TEXT,
		establishment TEXT,
		diploma TEXT,
		is_approved BOOLEAN NOT NULL DEFAULT 0,
		is_rejected BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createProfileTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE profiles (
		id TEXT PRIMARY KEY,
		account_id TEXT UNIQUE NOT NULL,
		phone TEXT,
		city TEXT,
		linkedin TEXT,
		presentation TEXT,
		expected_graduation TEXT,
		class_projects TEXT,
		is_complete BOOLEAN NOT NULL DEFAULT 0,
		is_available_for_work BOOLEAN NOT NULL DEFAULT 1,
		is_profile_approved BOOLEAN NOT NULL DEFAULT 0,
		is_profile_rejected BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE courses (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		name TEXT NOT NULL,
		note TEXT,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE skills (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		name TEXT NOT NULL,
		level TEXT,
		certificate_url TEXT,
		is_certificate_valid BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE languages (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		name TEXT NOT NULL,
		level TEXT,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE experiences (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		title TEXT NOT NULL,
		company TEXT,
		period TEXT,
		supervisor_name TEXT,
		supervisor_email TEXT,
		created_at DATETIME
	);`)
}

func seedAccount(t *testing.T, db *gorm.DB, email string, approved, rejected bool) *entities.Account {
	t.Helper()
	repo := NewAccountRepository(db)
	a := &entities.Account{
		ID:           uuid.New(),
		Email:        email,
		Name:         null.StringFrom("Student " + email),
		PasswordHash: "hash",
		Role:         entities.AccountRoleUser,
		IsApproved:   approved,
		IsRejected:   rejected,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}

func completeProfile(accountID uuid.UUID) *entities.Profile {
	return &entities.Profile{
		AccountID:          accountID,
		Phone:              null.StringFrom("0601020304"),
		City:               null.StringFrom("Paris"),
		Presentation:       null.StringFrom("A presentation long enough to pass the minimum length check."),
		IsComplete:         true,
		IsAvailableForWork: true,
		Courses:            []entities.Course{{Name: "Distributed Systems", Note: null.StringFrom("A")}},
		Skills:             []entities.Skill{{Name: "Go", Level: "expert"}},
		Languages:          []entities.Language{{Name: "French", Level: "native"}},
		Experiences:        []entities.Experience{{Title: "Backend intern", Company: "Acme"}},
	}
}
