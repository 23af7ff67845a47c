package repository

import (
	"context"

	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
	repo "github.com/jhaabhiiishek/finmanBackend/pkg/repository/expense"
	"gorm.io/gorm"
)

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) repo.Repository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, create dto.ExpenseCreate) error {
	row := Expense{
		ID:          create.ID,
		UserEmail:   create.UserEmail,
		ExpenseType: create.ExpenseType,
		Recipient:   create.Recipient,
		Amount:      int64(create.Amount),
		Remarks:     create.Remarks,
		Date:        create.Date,
		CreatedAt:   create.CreatedAt,
	}
	return WrapError(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	})
}

func (r *expenseRepository) ListByUser(ctx context.Context, email string) ([]*dto.ExpenseRead, error) {
	var rows []Expense
	if err := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("date desc").
		Order("created_at desc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.ExpenseRead, 0, len(rows))
	for _, row := range rows {
		result = append(result, &dto.ExpenseRead{
			ID:          row.ID,
			UserEmail:   row.UserEmail,
			ExpenseType: row.ExpenseType,
			Recipient:   row.Recipient,
			Amount:      money.Amount(row.Amount),
			Remarks:     row.Remarks,
			Date:        row.Date,
			CreatedAt:   row.CreatedAt,
		})
	}
	return result, nil
}
