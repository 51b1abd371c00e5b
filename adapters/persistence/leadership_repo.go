package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/leadership"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresLeadershipRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresLeadershipRepo(db *pgxpool.Pool, logger logger.Logger) leadership.Repository {
	return &postgresLeadershipRepo{db: db, logger: logger}
}

const leadershipColumns = `id, role, organization, start_date, end_date, current, description, contributions, team_size, impact, skills, display_order, is_active, created_at, updated_at`

func scanLeadership(row pgx.Row) (*leadership.Leadership, error) {
	l := &leadership.Leadership{}

	err := row.Scan(
		&l.ID,
		&l.Role,
		&l.Organization,
		&l.StartDate,
		&l.EndDate,
		&l.Current,
		&l.Description,
		&l.Contributions,
		&l.TeamSize,
		&l.Impact,
		&l.Skills,
		&l.DisplayOrder,
		&l.IsActive,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("leadership", "")
		}
		return nil, apperror.NewInternal("failed to scan leadership row", err)
	}
	return l, nil
}

func (r *postgresLeadershipRepo) Save(ctx context.Context, l *leadership.Leadership) error {
	query := `
		INSERT INTO leaderships (` + leadershipColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.db.Exec(ctx, query,
		l.ID, l.Role, l.Organization, l.StartDate, l.EndDate, l.Current,
		l.Description, l.Contributions, l.TeamSize, l.Impact, l.Skills,
		l.DisplayOrder, l.IsActive, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save leadership", err)
	}
	return nil
}

func (r *postgresLeadershipRepo) Update(ctx context.Context, l *leadership.Leadership) error {
	query := `
		UPDATE leaderships SET
			role = $2, organization = $3, start_date = $4, end_date = $5, current = $6,
			description = $7, contributions = $8, team_size = $9, impact = $10, skills = $11,
			display_order = $12, is_active = $13, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		l.ID, l.Role, l.Organization, l.StartDate, l.EndDate, l.Current,
		l.Description, l.Contributions, l.TeamSize, l.Impact, l.Skills,
		l.DisplayOrder, l.IsActive,
	)
	if err != nil {
		return apperror.NewInternal("failed to update leadership", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("leadership", l.ID.String())
	}
	return nil
}

func (r *postgresLeadershipRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM leaderships WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete leadership", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("leadership", id.String())
	}
	return nil
}

func (r *postgresLeadershipRepo) FindByID(ctx context.Context, id uuid.UUID) (*leadership.Leadership, error) {
	query := `SELECT ` + leadershipColumns + ` FROM leaderships WHERE id = $1`
	return scanLeadership(r.db.QueryRow(ctx, query, id))
}

func (r *postgresLeadershipRepo) ListActive(ctx context.Context) ([]*leadership.Leadership, error) {
	builder := psql.Select(leadershipColumns).
		From("leaderships").
		Where(sq.Eq{"is_active": true}).
		OrderBy("display_order ASC", "start_date DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list leaderships query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query active leaderships", err)
	}
	defer rows.Close()

	out := make([]*leadership.Leadership, 0)
	for rows.Next() {
		l, err := scanLeadership(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating leadership rows", err)
	}
	return out, nil
}
