package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/account"
	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
	pkgrepo "github.com/jhaabhiiishek/finmanBackend/pkg/repository"
	accountrepo "github.com/jhaabhiiishek/finmanBackend/pkg/repository/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestAccountRepository_DebitSQL(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectExec(`UPDATE "accounts" SET .*balance - .* WHERE email = .* AND balance >= .*`).
		WithArgs(int64(500), sqlmock.AnyArg(), "a@example.com", int64(500)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.Debit(context.Background(), "a@example.com", 500)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(`UPDATE "accounts" SET .*balance - .* WHERE email = .* AND balance >= .*`).
		WithArgs(int64(900), sqlmock.AnyArg(), "a@example.com", int64(900)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = repo.Debit(context.Background(), "a@example.com", 900)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_LockByEmailsSQL(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	rows := sqlmock.NewRows([]string{"id", "email", "balance"}).
		AddRow(uuid.NewString(), "a@example.com", 100).
		AddRow(uuid.NewString(), "b@example.com", 200)
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE email IN \(\$1,\$2\).* ORDER BY email asc FOR UPDATE`).
		WithArgs("b@example.com", "a@example.com").
		WillReturnRows(rows)

	got, err := repo.LockByEmails(context.Background(), "b@example.com", "a@example.com")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a@example.com", got[0].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_CreateSQL(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	create := dto.AccountCreate{
		ID:             uuid.New(),
		Email:          "a@example.com",
		HashedPassword: "hash",
		Balance:        100000,
		Role:           account.RoleUser,
	}

	mock.ExpectExec(`INSERT INTO "accounts" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.Create(context.Background(), create))

	mock.ExpectExec(`INSERT INTO "accounts" (.+) VALUES (.+)`).
		WillReturnError(errors.New("create error"))
	assert.Error(t, repo.Create(context.Background(), create))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_ListByEmailSQL(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	rows := sqlmock.NewRows([]string{"id", "sender_email", "receiver_email", "amount", "category"}).
		AddRow(uuid.NewString(), "a@example.com", "b@example.com", 20000, "food")
	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE \(?sender_email = \$1 OR receiver_email = \$2\)? ORDER BY date desc,created_at desc`).
		WithArgs("a@example.com", "a@example.com").
		WillReturnRows(rows)

	list, err := repo.ListByEmail(context.Background(), "a@example.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "food", list[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_DoRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := uow.Do(context.Background(), func(txUow pkgrepo.UnitOfWork) error {
		repo, err := txUow.AccountRepository()
		require.NoError(t, err)
		assert.NotNil(t, repo)
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_GetRepository(t *testing.T) {
	db, _ := newMockDB(t)
	uow := NewUoW(db)

	repoAny, err := uow.GetRepository((*accountrepo.Repository)(nil))
	require.NoError(t, err)
	_, ok := repoAny.(*accountRepository)
	assert.True(t, ok)

	_, err = uow.GetRepository((*string)(nil))
	assert.Error(t, err)

	for _, get := range []func() (any, error){
		func() (any, error) { return uow.TransactionRepository() },
		func() (any, error) { return uow.ExpenseRepository() },
		func() (any, error) { return uow.ExpenseTypeRepository() },
	} {
		repo, err := get()
		require.NoError(t, err)
		assert.NotNil(t, repo)
	}
}
