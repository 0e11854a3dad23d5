package domain

import "time"

// Account 帳戶。AccountNumber 建立後不可變更，餘額永不為負。
type Account struct {
	ID            int64
	Name          string
	AccountNumber string
	Balance       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewAccount 建立餘額為零的新帳戶 (ID 由儲存層分配)
func NewAccount(name, accountNumber string) *Account {
	return &Account{
		Name:          name,
		AccountNumber: accountNumber,
	}
}

// Deposit 存款
func (a *Account) Deposit(amount int64) error {
	if amount <= 0 {
		return ErrAmountMustBePositive
	}

	a.Balance = a.Balance + amount
	return nil
}

// Withdraw 提款，餘額不足時不改變狀態
func (a *Account) Withdraw(amount int64) error {
	if amount <= 0 {
		return ErrAmountMustBePositive
	}

	if a.Balance < amount {
		return ErrInsufficientBalance
	}

	a.Balance = a.Balance - amount
	return nil
}

// Apply 依交易類型調整餘額
func (a *Account) Apply(t TransactionType, amount int64) error {
	switch t {
	case TransactionTypeDeposit:
		return a.Deposit(amount)
	case TransactionTypeWithdrawal:
		return a.Withdraw(amount)
	default:
		return ErrInvalidTransactionType
	}
}
