package usecase

import (
	"context"

	"github.com/JoeShih716/go-bank-ledger/internal/app/core/domain"
)

// LedgerStore 是帳務持久層的介面
// 只提供點查詢與原子 commit，限額規則由 CoreUseCase 持有
type LedgerStore interface {
	// FindAccountByNumber 依帳號查詢帳戶，不存在回傳 domain.ErrAccountNotFound
	FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
	// AccountExists 檢查帳號是否已存在
	AccountExists(ctx context.Context, accountNumber string) (bool, error)
	// CreateAccount 建立餘額為零的新帳戶，帳號重複回傳 domain.ErrAccountAlreadyExists
	CreateAccount(ctx context.Context, name, accountNumber string) (*domain.Account, error)
	// CountTransactionsToday 統計該帳戶當日指定類型的已 commit 筆數
	CountTransactionsToday(ctx context.Context, accountID int64, txType domain.TransactionType) (int64, error)
	// SumTransactionAmountsToday 加總該帳戶當日指定類型的已 commit 金額，無紀錄回傳 0
	SumTransactionAmountsToday(ctx context.Context, accountID int64, txType domain.TransactionType) (int64, error)
	// CommitTransaction 原子地寫入交易紀錄並更新帳戶餘額
	// 兩者必須同時成功或同時回滾，不允許部分 commit
	CommitTransaction(ctx context.Context, account *domain.Account, txType domain.TransactionType, amount int64) (*domain.Transaction, error)
}
