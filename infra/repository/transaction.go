package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
	repo "github.com/jhaabhiiishek/finmanBackend/pkg/repository/transaction"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) repo.Repository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, create dto.TransactionCreate) error {
	row := Transaction{
		ID:            create.ID,
		SenderEmail:   create.SenderEmail,
		ReceiverEmail: create.ReceiverEmail,
		Amount:        int64(create.Amount),
		Category:      create.Category,
		Description:   create.Description,
		Date:          create.Date,
		CreatedAt:     create.CreatedAt,
	}
	return WrapError(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	})
}

func (r *transactionRepository) Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	var row Transaction
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapTransactionToDTO(&row), nil
}

func (r *transactionRepository) ListByEmail(ctx context.Context, email string) ([]*dto.TransactionRead, error) {
	var rows []Transaction
	if err := r.db.WithContext(ctx).
		Where("sender_email = ? OR receiver_email = ?", email, email).
		Order("date desc").
		Order("created_at desc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.TransactionRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapTransactionToDTO(&rows[i]))
	}
	return result, nil
}

func mapTransactionToDTO(row *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:            row.ID,
		SenderEmail:   row.SenderEmail,
		ReceiverEmail: row.ReceiverEmail,
		Amount:        money.Amount(row.Amount),
		Category:      row.Category,
		Description:   row.Description,
		Date:          row.Date,
		CreatedAt:     row.CreatedAt,
	}
}
