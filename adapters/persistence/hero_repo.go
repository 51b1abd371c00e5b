package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/domain/hero"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresHeroRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresHeroRepo(db *pgxpool.Pool, logger logger.Logger) hero.Repository {
	return &postgresHeroRepo{db: db, logger: logger}
}

const heroColumns = `id, name, title, summary, email, phone, location, socials, image_url, resume_url, is_active, created_at, updated_at`

func (r *postgresHeroRepo) scanHero(row pgx.Row) (*hero.Hero, error) {
	h := &hero.Hero{}
	var socialsBytes []byte

	err := row.Scan(
		&h.ID,
		&h.Name,
		&h.Title,
		&h.Summary,
		&h.Email,
		&h.Phone,
		&h.Location,
		&socialsBytes,
		&h.ImageURL,
		&h.ResumeURL,
		&h.IsActive,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("hero", "active")
		}
		return nil, apperror.NewInternal("failed to scan hero row", err)
	}

	if err := json.Unmarshal(socialsBytes, &h.Socials); err != nil {
		r.logger.Warn("Failed to unmarshal hero socials", zap.String("hero_id", h.ID.String()), zap.Error(err))
		h.Socials = hero.SocialLinks{}
	}
	return h, nil
}

func (r *postgresHeroRepo) Save(ctx context.Context, h *hero.Hero) error {
	socialsBytes, err := json.Marshal(h.Socials)
	if err != nil {
		return apperror.NewInternal("failed to marshal hero socials", err)
	}

	query := `
		INSERT INTO heroes (id, name, title, summary, email, phone, location, socials, image_url, resume_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = r.db.Exec(ctx, query,
		h.ID, h.Name, h.Title, h.Summary, h.Email, h.Phone, h.Location,
		socialsBytes, h.ImageURL, h.ResumeURL, h.IsActive, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		// The partial unique index on is_active catches the concurrent
		// first-creation race: the loser gets a clean conflict.
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("hero", "active profile", "true")
		}
		return apperror.NewInternal("failed to save hero", err)
	}
	return nil
}

func (r *postgresHeroRepo) Update(ctx context.Context, h *hero.Hero) error {
	socialsBytes, err := json.Marshal(h.Socials)
	if err != nil {
		return apperror.NewInternal("failed to marshal hero socials", err)
	}

	query := `
		UPDATE heroes SET
			name = $2, title = $3, summary = $4, email = $5, phone = $6, location = $7,
			socials = $8, image_url = $9, resume_url = $10, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		h.ID, h.Name, h.Title, h.Summary, h.Email, h.Phone, h.Location,
		socialsBytes, h.ImageURL, h.ResumeURL,
	)
	if err != nil {
		return apperror.NewInternal("failed to update hero", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("hero", h.ID.String())
	}
	return nil
}

func (r *postgresHeroRepo) FindActive(ctx context.Context) (*hero.Hero, error) {
	query := `SELECT ` + heroColumns + ` FROM heroes WHERE is_active = true`
	return r.scanHero(r.db.QueryRow(ctx, query))
}
