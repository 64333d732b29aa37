package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finsight/internal/dto"
	"finsight/internal/models"
	"finsight/internal/parser"
	"finsight/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrStatementNotFound = errors.New("statement not found")

// DocumentDecoder yields decrypted plain text for a document blob. A wrong
// or missing password fails with ErrDocumentDecrypt.
type DocumentDecoder interface {
	ExtractText(ctx context.Context, blob []byte, password string) (string, error)
}

type StatementService struct {
	stmtRepo  *repository.StatementRepository
	txRepo    *repository.TransactionRepository
	decoder   DocumentDecoder
	extractor *parser.Extractor
	logger    *zap.Logger
}

func NewStatementService(
	stmtRepo *repository.StatementRepository,
	txRepo *repository.TransactionRepository,
	decoder DocumentDecoder,
	extractor *parser.Extractor,
	logger *zap.Logger,
) *StatementService {
	return &StatementService{
		stmtRepo:  stmtRepo,
		txRepo:    txRepo,
		decoder:   decoder,
		extractor: extractor,
		logger:    logger,
	}
}

// UploadStatement decodes the document, extracts its transactions and
// persists the statement record before its transactions. A decode failure
// surfaces unchanged and nothing is persisted. Unparseable lines never fail
// the upload; the reported count may be lower than the number of
// transaction-bearing lines in the source document.
func (s *StatementService) UploadStatement(ctx context.Context, userID uuid.UUID, blob []byte, fileName, password string) (*dto.UploadStatementResponse, error) {
	text, err := s.decoder.ExtractText(ctx, blob, password)
	if err != nil {
		return nil, err
	}

	result := s.extractor.Extract(text)
	for _, dropped := range result.Dropped {
		s.logger.Warn("Dropped unparseable transaction line",
			zap.String("file", fileName),
			zap.Int("line", dropped.LineNo),
			zap.String("reason", dropped.Reason),
		)
	}

	now := time.Now()
	stmt := &models.Statement{
		ID:        uuid.New(),
		UserID:    userID,
		FileName:  fileName,
		StartDate: result.StartDate,
		EndDate:   result.EndDate,
		CreatedAt: now,
	}

	if err := s.stmtRepo.Create(ctx, stmt); err != nil {
		return nil, fmt.Errorf("failed to create statement: %w", err)
	}

	transactions := make([]*models.Transaction, len(result.Transactions))
	for i, ptx := range result.Transactions {
		transactions[i] = &models.Transaction{
			ID:          uuid.New(),
			StatementID: stmt.ID,
			UserID:      userID,
			Date:        ptx.Date,
			Description: ptx.Description,
			Type:        ptx.Type,
			Amount:      ptx.Amount,
			Category:    ptx.Category,
			CreatedAt:   now,
		}
	}

	// The statement row already exists at this point; a failed batch write
	// leaves an orphan statement and is reported, not rolled back.
	if err := s.txRepo.CreateBatch(ctx, transactions); err != nil {
		return nil, fmt.Errorf("failed to save transactions: %w", err)
	}

	s.logger.Info("Statement parsed",
		zap.String("file", fileName),
		zap.Int("transactions", len(transactions)),
		zap.Int("dropped_lines", len(result.Dropped)),
	)

	return &dto.UploadStatementResponse{
		Message:          "Statement uploaded and parsed successfully",
		Statement:        toStatementResponse(stmt),
		TransactionCount: len(transactions),
		Transactions:     toTransactionResponses(transactions),
	}, nil
}

func (s *StatementService) ListStatements(ctx context.Context, userID uuid.UUID) ([]dto.StatementResponse, error) {
	statements, err := s.stmtRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.StatementResponse, len(statements))
	for i, stmt := range statements {
		responses[i] = toStatementResponse(stmt)
	}
	return responses, nil
}

// DeleteStatement removes a statement together with all of its transactions.
// Statements owned by other users are reported as not found.
func (s *StatementService) DeleteStatement(ctx context.Context, userID, statementID uuid.UUID) error {
	stmt, err := s.stmtRepo.GetByID(ctx, statementID)
	if err != nil {
		return ErrStatementNotFound
	}
	if stmt.UserID != userID {
		return ErrStatementNotFound
	}

	return s.stmtRepo.Delete(ctx, statementID)
}

func (s *StatementService) ListTransactions(ctx context.Context, userID uuid.UUID, filters repository.TransactionFilters) ([]dto.TransactionResponse, error) {
	transactions, err := s.txRepo.List(ctx, userID, filters)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(transactions), nil
}

func toStatementResponse(stmt *models.Statement) dto.StatementResponse {
	return dto.StatementResponse{
		ID:        stmt.ID.String(),
		FileName:  stmt.FileName,
		StartDate: stmt.StartDate.Format("2006-01-02"),
		EndDate:   stmt.EndDate.Format("2006-01-02"),
		CreatedAt: stmt.CreatedAt.Format(time.RFC3339),
	}
}

func toTransactionResponses(transactions []*models.Transaction) []dto.TransactionResponse {
	responses := make([]dto.TransactionResponse, len(transactions))
	for i, tx := range transactions {
		responses[i] = dto.TransactionResponse{
			ID:          tx.ID.String(),
			Date:        tx.Date.Format("2006-01-02"),
			Description: tx.Description,
			Type:        string(tx.Type),
			Amount:      tx.Amount,
			Category:    string(tx.Category),
			CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
		}
	}
	return responses
}
