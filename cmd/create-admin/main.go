package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/volatiletech/null/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"intern-hub.backend/internal/config"
	"intern-hub.backend/internal/domain/entities"
	domainerrors "intern-hub.backend/internal/domain/errors"
	domainrepo "intern-hub.backend/internal/domain/repositories"
	"intern-hub.backend/internal/infrastructure/repositories"
	"intern-hub.backend/pkg/crypto"
)

var openCreateAdminDB = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{PrepareStmt: false})
}

var openCreateAdminSQLDB = func(db *gorm.DB) (io.Closer, error) {
	return db.DB()
}

type createAdminDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (domainrepo.AccountRepository, io.Closer, error)
	out     io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultCreateAdminDeps() createAdminDeps {
	return createAdminDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (domainrepo.AccountRepository, io.Closer, error) {
			db, err := openCreateAdminDB(cfg.Database.URL())
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}
			sqlDB, err := openCreateAdminSQLDB(db)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}
			return repositories.NewAccountRepository(db), sqlDB, nil
		},
		out: os.Stdout,
	}
}

func resolveCredential(flagValue, envKey, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return fallback
}

func runCreateAdmin(args []string, deps createAdminDeps) error {
	if deps.loadEnv == nil {
		deps.loadEnv = func() error { return godotenv.Load() }
	}
	if deps.loadCfg == nil {
		deps.loadCfg = config.Load
	}
	if deps.prepare == nil {
		def := defaultCreateAdminDeps()
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = os.Stdout
	}

	fs := flag.NewFlagSet("create-admin", flag.ContinueOnError)
	emailFlag := fs.String("email", "", "admin email (defaults to ADMIN_EMAIL)")
	passwordFlag := fs.String("password", "", "admin password (defaults to ADMIN_PASSWORD)")
	nameFlag := fs.String("name", "Administrator", "admin display name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	email := resolveCredential(*emailFlag, "ADMIN_EMAIL", "admin@school.com")
	password := resolveCredential(*passwordFlag, "ADMIN_PASSWORD", "AdminPass!")

	cfg := deps.loadCfg()
	accountRepo, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	ctx := context.Background()
	if existing, err := accountRepo.GetByEmail(ctx, email); err == nil {
		if existing.Role != entities.AccountRoleAdmin {
			return fmt.Errorf("account %s exists with role %s, refusing to overwrite", email, existing.Role)
		}
		_, _ = fmt.Fprintf(deps.out, "Admin %s already exists, nothing to do\n", email)
		return nil
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return fmt.Errorf("failed to look up %s: %w", email, err)
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &entities.Account{
		ID:           uuid.New(),
		Email:        email,
		Name:         null.StringFrom(*nameFlag),
		PasswordHash: hash,
		Role:         entities.AccountRoleAdmin,
		IsApproved:   true,
	}
	if err := accountRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	_, _ = fmt.Fprintln(deps.out, "Created ADMIN account")
	_, _ = fmt.Fprintf(deps.out, "id=%s\n", admin.ID.String())
	_, _ = fmt.Fprintf(deps.out, "email=%s\n", email)
	return nil
}

func main() {
	if err := runCreateAdmin(os.Args[1:], defaultCreateAdminDeps()); err != nil {
		log.Fatal(err)
	}
}
