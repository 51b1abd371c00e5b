package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/domain/achievement"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresAchievementRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresAchievementRepo(db *pgxpool.Pool, logger logger.Logger) achievement.Repository {
	return &postgresAchievementRepo{db: db, logger: logger}
}

const achievementColumns = `id, title, description, category, date, organization, participants, rank, prize, display_order, is_active, created_at, updated_at`

func (r *postgresAchievementRepo) scanAchievement(row pgx.Row) (*achievement.Achievement, error) {
	a := &achievement.Achievement{}
	var prizeBytes []byte

	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Description,
		&a.Category,
		&a.Date,
		&a.Organization,
		&a.Participants,
		&a.Rank,
		&prizeBytes,
		&a.DisplayOrder,
		&a.IsActive,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("achievement", "")
		}
		return nil, apperror.NewInternal("failed to scan achievement row", err)
	}

	if len(prizeBytes) > 0 {
		if err := json.Unmarshal(prizeBytes, &a.Prize); err != nil {
			r.logger.Warn("Failed to unmarshal achievement prize", zap.String("achievement_id", a.ID.String()), zap.Error(err))
			a.Prize = nil
		}
	}
	return a, nil
}

func marshalPrize(a *achievement.Achievement) ([]byte, error) {
	if a.Prize == nil {
		return nil, nil
	}
	return json.Marshal(a.Prize)
}

func (r *postgresAchievementRepo) Save(ctx context.Context, a *achievement.Achievement) error {
	prizeBytes, err := marshalPrize(a)
	if err != nil {
		return apperror.NewInternal("failed to marshal achievement prize", err)
	}

	query := `
		INSERT INTO achievements (` + achievementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = r.db.Exec(ctx, query,
		a.ID, a.Title, a.Description, a.Category, a.Date, a.Organization,
		a.Participants, a.Rank, prizeBytes, a.DisplayOrder, a.IsActive,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save achievement", err)
	}
	return nil
}

func (r *postgresAchievementRepo) Update(ctx context.Context, a *achievement.Achievement) error {
	prizeBytes, err := marshalPrize(a)
	if err != nil {
		return apperror.NewInternal("failed to marshal achievement prize", err)
	}

	query := `
		UPDATE achievements SET
			title = $2, description = $3, category = $4, date = $5, organization = $6,
			participants = $7, rank = $8, prize = $9, display_order = $10, is_active = $11,
			updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		a.ID, a.Title, a.Description, a.Category, a.Date, a.Organization,
		a.Participants, a.Rank, prizeBytes, a.DisplayOrder, a.IsActive,
	)
	if err != nil {
		return apperror.NewInternal("failed to update achievement", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("achievement", a.ID.String())
	}
	return nil
}

func (r *postgresAchievementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM achievements WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete achievement", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("achievement", id.String())
	}
	return nil
}

func (r *postgresAchievementRepo) FindByID(ctx context.Context, id uuid.UUID) (*achievement.Achievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM achievements WHERE id = $1`
	return r.scanAchievement(r.db.QueryRow(ctx, query, id))
}

func (r *postgresAchievementRepo) ListActive(ctx context.Context) ([]*achievement.Achievement, error) {
	builder := psql.Select(achievementColumns).
		From("achievements").
		Where(sq.Eq{"is_active": true}).
		OrderBy("display_order ASC", "date DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list achievements query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query active achievements", err)
	}
	defer rows.Close()

	out := make([]*achievement.Achievement, 0)
	for rows.Next() {
		a, err := r.scanAchievement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating achievement rows", err)
	}
	return out, nil
}
