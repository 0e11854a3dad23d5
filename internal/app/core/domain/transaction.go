package domain

import (
	"time"

	"github.com/google/uuid"
)

// amount 使用 int64 最小貨幣單位 (如分)，避免浮點誤差

// TransactionType 交易類型
type TransactionType uint8

const (
	// 存款
	TransactionTypeDeposit TransactionType = 1
	// 提款
	TransactionTypeWithdrawal TransactionType = 2
)

// String 回傳交易類型的文字表示，用於錯誤訊息與 Log
func (t TransactionType) String() string {
	switch t {
	case TransactionTypeDeposit:
		return "deposit"
	case TransactionTypeWithdrawal:
		return "withdrawal"
	default:
		return "unknown"
	}
}

// Valid 檢查交易類型是否為已定義的值
func (t TransactionType) Valid() bool {
	return t == TransactionTypeDeposit || t == TransactionTypeWithdrawal
}

// Transaction 交易紀錄，commit 後不可變更 (無 update/delete 路徑)
type Transaction struct {
	// ID: 儲存層分配的流水號
	ID int64
	// AccountID: 所屬帳戶
	AccountID int64
	// Amount: 金額
	Amount int64
	// CreatedAt: 交易時間，當日額度統計以此分組
	CreatedAt time.Time
	// RefID: 外部追蹤號 (UUID)，commit 時分配
	RefID uuid.UUID
	// Type: 放到最後面，利用 Padding 空間
	Type TransactionType
}
