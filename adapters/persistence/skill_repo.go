package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresSkillRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillRepo(db *pgxpool.Pool, logger logger.Logger) skill.Repository {
	return &postgresSkillRepo{db: db, logger: logger}
}

const skillCategoryColumns = `id, name, description, skills, display_order, is_active, created_at, updated_at`

func (r *postgresSkillRepo) scanCategory(row pgx.Row) (*skill.Category, error) {
	c := &skill.Category{}
	var skillsBytes []byte

	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&skillsBytes,
		&c.DisplayOrder,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("skill category", "")
		}
		return nil, apperror.NewInternal("failed to scan skill category row", err)
	}

	if err := json.Unmarshal(skillsBytes, &c.Skills); err != nil {
		r.logger.Warn("Failed to unmarshal category skills", zap.String("category_id", c.ID.String()), zap.Error(err))
		c.Skills = []skill.Skill{}
	}
	return c, nil
}

func (r *postgresSkillRepo) Save(ctx context.Context, c *skill.Category) error {
	skillsBytes, err := json.Marshal(c.Skills)
	if err != nil {
		return apperror.NewInternal("failed to marshal category skills", err)
	}

	query := `
		INSERT INTO skill_categories (` + skillCategoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.Exec(ctx, query,
		c.ID, c.Name, c.Description, skillsBytes,
		c.DisplayOrder, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("skill category", "name", c.Name)
		}
		return apperror.NewInternal("failed to save skill category", err)
	}
	return nil
}

func (r *postgresSkillRepo) Update(ctx context.Context, c *skill.Category) error {
	skillsBytes, err := json.Marshal(c.Skills)
	if err != nil {
		return apperror.NewInternal("failed to marshal category skills", err)
	}

	query := `
		UPDATE skill_categories SET
			name = $2, description = $3, skills = $4, display_order = $5, is_active = $6,
			updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Description, skillsBytes, c.DisplayOrder, c.IsActive,
	)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("skill category", "name", c.Name)
		}
		return apperror.NewInternal("failed to update skill category", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill category", c.ID.String())
	}
	return nil
}

func (r *postgresSkillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM skill_categories WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete skill category", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill category", id.String())
	}
	return nil
}

func (r *postgresSkillRepo) FindByID(ctx context.Context, id uuid.UUID) (*skill.Category, error) {
	query := `SELECT ` + skillCategoryColumns + ` FROM skill_categories WHERE id = $1`
	return r.scanCategory(r.db.QueryRow(ctx, query, id))
}

func (r *postgresSkillRepo) ListActive(ctx context.Context) ([]*skill.Category, error) {
	builder := psql.Select(skillCategoryColumns).
		From("skill_categories").
		Where(sq.Eq{"is_active": true}).
		OrderBy("display_order ASC", "name ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list skill categories query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query active skill categories", err)
	}
	defer rows.Close()

	out := make([]*skill.Category, 0)
	for rows.Next() {
		c, err := r.scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill category rows", err)
	}
	return out, nil
}
