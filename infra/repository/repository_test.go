package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/account"
	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(Models()...))
	return db
}

func seedAccount(t *testing.T, db *gorm.DB, email string, balance money.Amount) uuid.UUID {
	t.Helper()
	id := uuid.New()
	err := NewAccountRepository(db).Create(context.Background(), dto.AccountCreate{
		ID:             id,
		Name:           "Test",
		Email:          email,
		HashedPassword: "hash",
		Balance:        balance,
		Role:           account.RoleUser,
		Notifications:  account.DefaultNotifications,
	})
	require.NoError(t, err)
	return id
}

func TestAccountRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	id := seedAccount(t, db, "a@example.com", 100000)

	got, err := repo.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, money.Amount(100000), got.Balance)
	assert.Equal(t, account.RoleUser, got.Role)
	assert.True(t, got.Notifications.Email)
	assert.False(t, got.Notifications.SMS)
	assert.Empty(t, got.TransactionIDs)

	missing, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	exists, err := repo.ExistsByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAccountRepository_LockByEmailsOrdersAndSkipsUnknown(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	seedAccount(t, db, "b@example.com", 200)
	seedAccount(t, db, "a@example.com", 100)

	var got []*dto.AccountRead
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		got, err = NewAccountRepository(tx).LockByEmails(ctx, "b@example.com", "ghost@example.com", "a@example.com")
		return err
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a@example.com", got[0].Email)
	assert.Equal(t, money.Amount(100), got[0].Balance)
	assert.Equal(t, "b@example.com", got[1].Email)

	none, err := repo.LockByEmails(ctx)
	require.NoError(t, err)
	assert.Empty(t, none)

	lean, err := repo.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.NotNil(t, lean)
	assert.Nil(t, lean.TransactionIDs)
	missing, err := repo.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAccountRepository_CreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	seedAccount(t, db, "a@example.com", 0)

	err := NewAccountRepository(db).Create(context.Background(), dto.AccountCreate{
		ID:    uuid.New(),
		Email: "a@example.com",
		Role:  account.RoleUser,
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestAccountRepository_DebitIsConditional(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()
	seedAccount(t, db, "a@example.com", 1000)

	ok, err := repo.Debit(ctx, "a@example.com", 1001)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Debit(ctx, "a@example.com", 1000)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Debit(ctx, "ghost@example.com", 1)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, money.Amount(0), got.Balance)
}

func TestAccountRepository_CreditAndSetBalance(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()
	seedAccount(t, db, "a@example.com", 500)

	ok, err := repo.Credit(ctx, "a@example.com", 250)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Credit(ctx, "ghost@example.com", 250)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.SetBalance(ctx, "a@example.com", 42)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, money.Amount(42), got.Balance)
}

func TestAccountRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()
	seedAccount(t, db, "a@example.com", 0)

	name := "Alice"
	role := account.RoleAdmin
	notif := account.Notifications{Email: false, Push: true, SMS: true}
	require.NoError(t, repo.Update(ctx, "a@example.com", dto.AccountUpdate{
		Name:          &name,
		Role:          &role,
		Notifications: &notif,
	}))

	got, err := repo.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, account.RoleAdmin, got.Role)
	assert.Equal(t, notif, got.Notifications)

	err = repo.Update(ctx, "ghost@example.com", dto.AccountUpdate{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccountRepository_LinkAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()
	id := seedAccount(t, db, "a@example.com", 0)

	tx1, tx2 := uuid.New(), uuid.New()
	require.NoError(t, repo.LinkTransaction(ctx, id, tx1))
	require.NoError(t, repo.LinkTransaction(ctx, id, tx2))

	got, err := repo.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{tx1, tx2}, got.TransactionIDs)

	ok, err := repo.Delete(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	var links int64
	require.NoError(t, db.Model(&AccountTransaction{}).Where("account_id = ?", id).Count(&links).Error)
	assert.Zero(t, links)

	ok, err = repo.Delete(ctx, "a@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTransactionRepository_ListByEmailNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	mk := func(sender, receiver string, date time.Time) uuid.UUID {
		id := uuid.New()
		require.NoError(t, repo.Create(ctx, dto.TransactionCreate{
			ID:            id,
			SenderEmail:   sender,
			ReceiverEmail: receiver,
			Amount:        100,
			Date:          date,
			CreatedAt:     time.Now().UTC(),
		}))
		return id
	}
	older := mk("a@example.com", "b@example.com", day(1))
	newer := mk("b@example.com", "a@example.com", day(3))
	mk("b@example.com", "c@example.com", day(2))

	list, err := repo.ListByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer, list[0].ID)
	assert.Equal(t, older, list[1].ID)

	got, err := repo.Get(ctx, older)
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", got.ReceiverEmail)

	missing, err := repo.Get(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestExpenseRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	for i, email := range []string{"a@example.com", "a@example.com", "b@example.com"} {
		require.NoError(t, repo.Create(ctx, dto.ExpenseCreate{
			ID:          uuid.New(),
			UserEmail:   email,
			ExpenseType: "Food",
			Recipient:   "Cafe",
			Amount:      money.Amount(100 * (i + 1)),
			Date:        time.Date(2024, 2, i+1, 0, 0, 0, 0, time.UTC),
			CreatedAt:   time.Now().UTC(),
		}))
	}

	list, err := repo.ListByUser(ctx, "a@example.com")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, money.Amount(200), list[0].Amount)

	list, err = repo.ListByUser(ctx, "b@example.com")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestExpenseTypeRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseTypeRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, dto.ExpenseTypeCreate{ID: uuid.New(), Name: "Travel"}))
	require.NoError(t, repo.Create(ctx, dto.ExpenseTypeCreate{ID: uuid.New(), Name: "Food"}))

	err := repo.Create(ctx, dto.ExpenseTypeCreate{ID: uuid.New(), Name: "Food"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Food", list[0].Name)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
