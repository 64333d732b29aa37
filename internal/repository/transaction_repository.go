package repository

import (
	"context"
	"time"

	"finsight/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// TransactionFilters narrows transaction listings. Nil/empty fields are
// ignored.
type TransactionFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      models.TransactionType
	Category  models.TransactionCategory
}

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) CreateBatch(ctx context.Context, transactions []*models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	builder := squirrel.Insert("transactions").
		Columns("id", "statement_id", "user_id", "date", "description", "type", "amount", "category", "created_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, tx := range transactions {
		builder = builder.Values(tx.ID, tx.StatementID, tx.UserID, tx.Date, tx.Description, tx.Type, tx.Amount, tx.Category, tx.CreatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// List returns the user's transactions matching the filters, newest first.
func (r *TransactionRepository) List(ctx context.Context, userID uuid.UUID, filters TransactionFilters) ([]*models.Transaction, error) {
	query := squirrel.Select("id", "statement_id", "user_id", "date", "description", "type", "amount", "category", "created_at").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.StartDate != nil {
		query = query.Where(squirrel.GtOrEq{"date": *filters.StartDate})
	}
	if filters.EndDate != nil {
		query = query.Where(squirrel.LtOrEq{"date": *filters.EndDate})
	}
	if filters.Type != "" {
		query = query.Where(squirrel.Eq{"type": filters.Type})
	}
	if filters.Category != "" {
		query = query.Where(squirrel.Eq{"category": filters.Category})
	}

	return r.queryTransactions(ctx, query)
}

// ListByDateRange returns the user's transactions inside [from, to],
// oldest first. Summary computations consume this ordering.
func (r *TransactionRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*models.Transaction, error) {
	query := squirrel.Select("id", "statement_id", "user_id", "date", "description", "type", "amount", "category", "created_at").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryTransactions(ctx, query)
}

func (r *TransactionRepository) GetByStatementID(ctx context.Context, statementID uuid.UUID) ([]*models.Transaction, error) {
	query := squirrel.Select("id", "statement_id", "user_id", "date", "description", "type", "amount", "category", "created_at").
		From("transactions").
		Where(squirrel.Eq{"statement_id": statementID}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryTransactions(ctx, query)
}

func (r *TransactionRepository) queryTransactions(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Transaction, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.StatementID, &tx.UserID, &tx.Date, &tx.Description, &tx.Type, &tx.Amount, &tx.Category, &tx.CreatedAt,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, &tx)
	}

	return transactions, rows.Err()
}
