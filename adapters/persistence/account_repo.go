package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/account"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

type postgresAccountRepo struct {
	db *pgxpool.Pool
}

func NewPostgresAccountRepo(db *pgxpool.Pool) account.Repository {
	return &postgresAccountRepo{db: db}
}

const accountColumns = `id, username, email, password_hash, role, is_active, last_login_at, created_at, updated_at`

func scanAccount(row pgx.Row) (*account.Account, error) {
	a := &account.Account{}
	err := row.Scan(
		&a.ID,
		&a.Username,
		&a.Email,
		&a.PasswordHash,
		&a.Role,
		&a.IsActive,
		&a.LastLoginAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("account", "")
		}
		return nil, apperror.NewInternal("failed to scan account row", err)
	}
	return a, nil
}

func (r *postgresAccountRepo) Save(ctx context.Context, a *account.Account) error {
	query := `
		INSERT INTO accounts (id, username, email, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		a.ID, a.Username, a.Email, a.PasswordHash,
		a.Role, a.IsActive, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			field := "username"
			if strings.Contains(pgErr.ConstraintName, "email") {
				field = "email"
			}
			value := a.Username
			if field == "email" {
				value = a.Email
			}
			return apperror.NewConflict("account", field, value)
		}
		return apperror.NewInternal("failed to save account", err)
	}
	return nil
}

func (r *postgresAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(r.db.QueryRow(ctx, query, id))
}

func (r *postgresAccountRepo) FindByUsername(ctx context.Context, username string) (*account.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE username = $1`
	return scanAccount(r.db.QueryRow(ctx, query, username))
}

func (r *postgresAccountRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `UPDATE accounts SET last_login_at = $2, updated_at = NOW() WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id, at); err != nil {
		return apperror.NewInternal("failed to update last login", err)
	}
	return nil
}
