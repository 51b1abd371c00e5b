package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresExperienceRepo(db *pgxpool.Pool, logger logger.Logger) experience.Repository {
	return &postgresExperienceRepo{db: db, logger: logger}
}

const experienceColumns = `id, company, position, start_date, end_date, current, description, achievements, technologies, location, display_order, is_active, created_at, updated_at`

func scanExperience(row pgx.Row) (*experience.Experience, error) {
	e := &experience.Experience{}

	err := row.Scan(
		&e.ID,
		&e.Company,
		&e.Position,
		&e.StartDate,
		&e.EndDate,
		&e.Current,
		&e.Description,
		&e.Achievements,
		&e.Technologies,
		&e.Location,
		&e.DisplayOrder,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("experience", "")
		}
		return nil, apperror.NewInternal("failed to scan experience row", err)
	}
	return e, nil
}

func (r *postgresExperienceRepo) Save(ctx context.Context, e *experience.Experience) error {
	query := `
		INSERT INTO experiences (` + experienceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.Company, e.Position, e.StartDate, e.EndDate, e.Current,
		e.Description, e.Achievements, e.Technologies, e.Location,
		e.DisplayOrder, e.IsActive, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save experience", err)
	}
	return nil
}

func (r *postgresExperienceRepo) Update(ctx context.Context, e *experience.Experience) error {
	query := `
		UPDATE experiences SET
			company = $2, position = $3, start_date = $4, end_date = $5, current = $6,
			description = $7, achievements = $8, technologies = $9, location = $10,
			display_order = $11, is_active = $12, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		e.ID, e.Company, e.Position, e.StartDate, e.EndDate, e.Current,
		e.Description, e.Achievements, e.Technologies, e.Location,
		e.DisplayOrder, e.IsActive,
	)
	if err != nil {
		return apperror.NewInternal("failed to update experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("experience", e.ID.String())
	}
	return nil
}

func (r *postgresExperienceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("experience", id.String())
	}
	return nil
}

func (r *postgresExperienceRepo) FindByID(ctx context.Context, id uuid.UUID) (*experience.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = $1`
	return scanExperience(r.db.QueryRow(ctx, query, id))
}

func (r *postgresExperienceRepo) ListActive(ctx context.Context) ([]*experience.Experience, error) {
	builder := psql.Select(experienceColumns).
		From("experiences").
		Where(sq.Eq{"is_active": true}).
		OrderBy("display_order ASC", "start_date DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list experiences query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query active experiences", err)
	}
	defer rows.Close()

	out := make([]*experience.Experience, 0)
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating experience rows", err)
	}
	return out, nil
}
