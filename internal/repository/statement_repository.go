package repository

import (
	"context"

	"finsight/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type StatementRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewStatementRepository(db *pgxpool.Pool, logger *zap.Logger) *StatementRepository {
	return &StatementRepository{
		db:     db,
		logger: logger,
	}
}

func (r *StatementRepository) Create(ctx context.Context, stmt *models.Statement) error {
	query := squirrel.Insert("statements").
		Columns("id", "user_id", "file_name", "start_date", "end_date", "created_at").
		Values(stmt.ID, stmt.UserID, stmt.FileName, stmt.StartDate, stmt.EndDate, stmt.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *StatementRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Statement, error) {
	query := squirrel.Select("id", "user_id", "file_name", "start_date", "end_date", "created_at").
		From("statements").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var stmt models.Statement
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&stmt.ID, &stmt.UserID, &stmt.FileName, &stmt.StartDate, &stmt.EndDate, &stmt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &stmt, nil
}

func (r *StatementRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Statement, error) {
	query := squirrel.Select("id", "user_id", "file_name", "start_date", "end_date", "created_at").
		From("statements").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statements []*models.Statement
	for rows.Next() {
		var stmt models.Statement
		if err := rows.Scan(
			&stmt.ID, &stmt.UserID, &stmt.FileName, &stmt.StartDate, &stmt.EndDate, &stmt.CreatedAt,
		); err != nil {
			return nil, err
		}
		statements = append(statements, &stmt)
	}

	return statements, rows.Err()
}

// Delete removes a statement and, in the same transaction, every transaction
// that belongs to it. The statement is the sole owner of its transactions'
// lifecycle.
func (r *StatementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	delTxs := squirrel.Delete("transactions").
		Where(squirrel.Eq{"statement_id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := delTxs.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return err
	}

	delStmt := squirrel.Delete("statements").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err = delStmt.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
