package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const projectColumns = `id, title, description, summary, technologies, image_url, live_url, source_url, featured, display_order, category, team_size, duration, achievements, is_active, priority, created_at, updated_at`

func scanProject(row pgx.Row) (*project.Project, error) {
	p := &project.Project{}

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Summary,
		&p.Technologies,
		&p.ImageURL,
		&p.LiveURL,
		&p.SourceURL,
		&p.Featured,
		&p.DisplayOrder,
		&p.Category,
		&p.TeamSize,
		&p.Duration,
		&p.Achievements,
		&p.IsActive,
		&p.Priority,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("project", "")
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}
	return p, nil
}

func scanProjects(rows pgx.Rows) ([]*project.Project, error) {
	defer rows.Close()
	projects := make([]*project.Project, 0)

	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProjectRepo) Save(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.Summary, p.Technologies,
		p.ImageURL, p.LiveURL, p.SourceURL, p.Featured, p.DisplayOrder,
		p.Category, p.TeamSize, p.Duration, p.Achievements,
		p.IsActive, p.Priority, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save project", err)
	}
	return nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects SET
			title = $2, description = $3, summary = $4, technologies = $5, image_url = $6,
			live_url = $7, source_url = $8, featured = $9, display_order = $10, category = $11,
			team_size = $12, duration = $13, achievements = $14, is_active = $15, priority = $16,
			updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.Summary, p.Technologies, p.ImageURL,
		p.LiveURL, p.SourceURL, p.Featured, p.DisplayOrder, p.Category,
		p.TeamSize, p.Duration, p.Achievements, p.IsActive, p.Priority,
	)
	if err != nil {
		return apperror.NewInternal("failed to update project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", p.ID.String())
	}
	return nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return apperror.NewInternal("failed to delete project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", id.String())
	}
	return nil
}

func (r *postgresProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return scanProject(r.db.QueryRow(ctx, query, id))
}

func (r *postgresProjectRepo) ListActive(ctx context.Context) ([]*project.Project, error) {
	builder := psql.Select(projectColumns).
		From("projects").
		Where(sq.Eq{"is_active": true}).
		OrderBy("display_order ASC", "priority DESC", "created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list projects query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query active projects", err)
	}

	return scanProjects(rows)
}
