package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/account"
	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
	repo "github.com/jhaabhiiishek/finmanBackend/pkg/repository/account"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository bound to db, which may
// be a transaction.
func NewAccountRepository(db *gorm.DB) repo.Repository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, create dto.AccountCreate) error {
	row := Account{
		ID:          create.ID,
		Name:        create.Name,
		Email:       create.Email,
		Password:    create.HashedPassword,
		Balance:     int64(create.Balance),
		Role:        string(create.Role),
		NotifyEmail: create.Notifications.Email,
		NotifyPush:  create.Notifications.Push,
		NotifySMS:   create.Notifications.SMS,
	}
	return WrapError(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	})
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*dto.AccountRead, error) {
	var row Account
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapAccountToDTO(&row), nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*dto.AccountRead, error) {
	read, err := r.FindByEmail(ctx, email)
	if err != nil || read == nil {
		return read, err
	}

	var txIDs []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&AccountTransaction{}).
		Where("account_id = ?", read.ID).
		Order("created_at asc").
		Pluck("transaction_id", &txIDs).Error; err != nil {
		return nil, err
	}
	read.TransactionIDs = txIDs
	return read, nil
}

// LockByEmails takes the row locks in email order so two transfers between
// the same pair always queue instead of deadlocking. SQLite has no row locks
// and serializes writers on its own.
func (r *accountRepository) LockByEmails(ctx context.Context, emails ...string) ([]*dto.AccountRead, error) {
	if len(emails) == 0 {
		return nil, nil
	}
	var rows []Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("email IN ?", emails).
		Order("email asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AccountRead, 0, len(rows))
	for i := range rows {
		out = append(out, mapAccountToDTO(&rows[i]))
	}
	return out, nil
}

func (r *accountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Account{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *accountRepository) Update(ctx context.Context, email string, update dto.AccountUpdate) error {
	updates := map[string]any{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.HashedPassword != nil {
		updates["password"] = *update.HashedPassword
	}
	if update.Role != nil {
		updates["role"] = string(*update.Role)
	}
	if update.Notifications != nil {
		updates["notify_email"] = update.Notifications.Email
		updates["notify_push"] = update.Notifications.Push
		updates["notify_sms"] = update.Notifications.SMS
	}

	res := r.db.WithContext(ctx).Model(&Account{}).Where("email = ?", email).Updates(updates)
	if res.Error != nil {
		return MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Debit runs a single conditional UPDATE so two concurrent debits can never
// both pass the balance check.
func (r *accountRepository) Debit(ctx context.Context, email string, amount money.Amount) (bool, error) {
	res := r.db.WithContext(ctx).Model(&Account{}).
		Where("email = ? AND balance >= ?", email, int64(amount)).
		UpdateColumns(map[string]any{
			"balance":    gorm.Expr("balance - ?", int64(amount)),
			"updated_at": time.Now().UTC(),
		})
	return res.RowsAffected == 1, res.Error
}

func (r *accountRepository) Credit(ctx context.Context, email string, amount money.Amount) (bool, error) {
	res := r.db.WithContext(ctx).Model(&Account{}).
		Where("email = ?", email).
		UpdateColumns(map[string]any{
			"balance":    gorm.Expr("balance + ?", int64(amount)),
			"updated_at": time.Now().UTC(),
		})
	return res.RowsAffected == 1, res.Error
}

func (r *accountRepository) SetBalance(ctx context.Context, email string, balance money.Amount) (bool, error) {
	res := r.db.WithContext(ctx).Model(&Account{}).
		Where("email = ?", email).
		UpdateColumns(map[string]any{
			"balance":    int64(balance),
			"updated_at": time.Now().UTC(),
		})
	return res.RowsAffected == 1, res.Error
}

func (r *accountRepository) LinkTransaction(ctx context.Context, accountID, transactionID uuid.UUID) error {
	link := AccountTransaction{AccountID: accountID, TransactionID: transactionID}
	return WrapError(func() error {
		return r.db.WithContext(ctx).Create(&link).Error
	})
}

func (r *accountRepository) Delete(ctx context.Context, email string) (bool, error) {
	var row Account
	err := r.db.WithContext(ctx).Select("id").Where("email = ?", email).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := r.db.WithContext(ctx).
		Where("account_id = ?", row.ID).
		Delete(&AccountTransaction{}).Error; err != nil {
		return false, err
	}
	res := r.db.WithContext(ctx).Where("id = ?", row.ID).Delete(&Account{})
	return res.RowsAffected == 1, res.Error
}

func mapAccountToDTO(row *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:             row.ID,
		Name:           row.Name,
		Email:          row.Email,
		HashedPassword: row.Password,
		Balance:        money.Amount(row.Balance),
		Role:           account.Role(row.Role),
		Notifications: account.Notifications{
			Email: row.NotifyEmail,
			Push:  row.NotifyPush,
			SMS:   row.NotifySMS,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
