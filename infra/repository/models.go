package repository

import (
	"time"

	"github.com/google/uuid"
)

// Account is the accounts table row.
type Account struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:100"`
	Email       string    `gorm:"uniqueIndex;not null;size:255"`
	Password    string    `gorm:"not null"`
	Balance     int64     `gorm:"not null"`
	Role        string    `gorm:"size:16;not null"`
	NotifyEmail bool      `gorm:"not null"`
	NotifyPush  bool      `gorm:"not null"`
	NotifySMS   bool      `gorm:"column:notify_sms;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Account) TableName() string { return "accounts" }

// AccountTransaction links an account to a transfer it took part in.
type AccountTransaction struct {
	AccountID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	TransactionID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt     time.Time
}

func (AccountTransaction) TableName() string { return "account_transactions" }

// Transaction is an immutable transfer record.
type Transaction struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	SenderEmail   string    `gorm:"size:255;not null;index"`
	ReceiverEmail string    `gorm:"size:255;not null;index"`
	Amount        int64     `gorm:"not null"`
	Category      string    `gorm:"size:50"`
	Description   string    `gorm:"type:text"`
	Date          time.Time `gorm:"not null;index"`
	CreatedAt     time.Time
}

func (Transaction) TableName() string { return "transactions" }

type Expense struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserEmail   string    `gorm:"size:255;not null;index"`
	ExpenseType string    `gorm:"size:200;not null"`
	Recipient   string    `gorm:"size:200;not null"`
	Amount      int64     `gorm:"not null"`
	Remarks     string    `gorm:"type:text"`
	Date        time.Time `gorm:"not null"`
	CreatedAt   time.Time
}

func (Expense) TableName() string { return "expenses" }

type ExpenseType struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"size:200;not null;uniqueIndex"`
}

func (ExpenseType) TableName() string { return "expense_types" }

// Models lists every table, in dependency order, for AutoMigrate.
func Models() []any {
	return []any{&Account{}, &Transaction{}, &AccountTransaction{}, &Expense{}, &ExpenseType{}}
}
