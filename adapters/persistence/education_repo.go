package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresEducationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresEducationRepo(db *pgxpool.Pool, logger logger.Logger) education.Repository {
	return &postgresEducationRepo{db: db, logger: logger}
}

const educationColumns = `id, institution, degree, field, start_date, end_date, gpa, percentage, description, location, achievements, display_order, is_active, created_at, updated_at`

func scanEducation(row pgx.Row) (*education.Education, error) {
	e := &education.Education{}

	err := row.Scan(
		&e.ID,
		&e.Institution,
		&e.Degree,
		&e.Field,
		&e.StartDate,
		&e.EndDate,
		&e.GPA,
		&e.Percentage,
		&e.Description,
		&e.Location,
		&e.Achievements,
		&e.DisplayOrder,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("education", "")
		}
		return nil, apperror.NewInternal("failed to scan education row", err)
	}
	return e, nil
}

func (r *postgresEducationRepo) Save(ctx context.Context, e *education.Education) error {
	query := `
		INSERT INTO educations (` + educationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.Institution, e.Degree, e.Field, e.StartDate, e.EndDate,
		e.GPA, e.Percentage, e.Description, e.Location, e.Achievements,
		e.DisplayOrder, e.IsActive, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save education", err)
	}
	return nil
}

func (r *postgresEducationRepo) Update(ctx context.Context, e *education.Education) error {
	query := `
		UPDATE educations SET
			institution = $2, degree = $3, field = $4, start_date = $5, end_date = $6,
			gpa = $7, percentage = $8, description = $9, location = $10, achievements = $11,
			display_order = $12, is_active = $13, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		e.ID, e.Institution, e.Degree, e.Field, e.StartDate, e.EndDate,
		e.GPA, e.Percentage, e.Description, e.Location, e.Achievements,
		e.DisplayOrder, e.IsActive,
	)
	if err != nil {
		return apperror.NewInternal("failed to update education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", e.ID.String())
	}
	return nil
}

func (r *postgresEducationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM educations WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", id.String())
	}
	return nil
}

func (r *postgresEducationRepo) FindByID(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM educations WHERE id = $1`
	return scanEducation(r.db.QueryRow(ctx, query, id))
}

func (r *postgresEducationRepo) ListActive(ctx context.Context) ([]*education.Education, error) {
	builder := psql.Select(educationColumns).
		From("educations").
		Where(sq.Eq{"is_active": true}).
		OrderBy("display_order ASC", "start_date DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list educations query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query active educations", err)
	}
	defer rows.Close()

	out := make([]*education.Education, 0)
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating education rows", err)
	}
	return out, nil
}
