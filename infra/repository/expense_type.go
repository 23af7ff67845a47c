package repository

import (
	"context"

	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
	repo "github.com/jhaabhiiishek/finmanBackend/pkg/repository/expensetype"
	"gorm.io/gorm"
)

type expenseTypeRepository struct {
	db *gorm.DB
}

func NewExpenseTypeRepository(db *gorm.DB) repo.Repository {
	return &expenseTypeRepository{db: db}
}

func (r *expenseTypeRepository) Create(ctx context.Context, create dto.ExpenseTypeCreate) error {
	row := ExpenseType{ID: create.ID, Name: create.Name}
	return WrapError(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	})
}

func (r *expenseTypeRepository) List(ctx context.Context) ([]*dto.ExpenseTypeRead, error) {
	var rows []ExpenseType
	if err := r.db.WithContext(ctx).Order("name asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.ExpenseTypeRead, 0, len(rows))
	for _, row := range rows {
		result = append(result, &dto.ExpenseTypeRead{ID: row.ID, Name: row.Name})
	}
	return result, nil
}

func (r *expenseTypeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&ExpenseType{}).Count(&n).Error
	return n, err
}
