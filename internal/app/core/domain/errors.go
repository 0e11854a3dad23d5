package domain

import "errors"

var (
	// ErrAmountMustBePositive 金額必須為正數 (合約違反，正常流程不應發生)
	ErrAmountMustBePositive = errors.New("amount must be positive")

	// ErrInvalidTransactionType 未定義的交易類型 (合約違反)
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists 帳戶號碼已存在
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrDepositLimitExceeded 超過單筆存款上限
	ErrDepositLimitExceeded = errors.New("maximum deposit amount exceeded")

	// ErrWithdrawalLimitExceeded 超過單筆提款上限
	ErrWithdrawalLimitExceeded = errors.New("maximum withdrawal amount exceeded")

	// ErrDailyFrequencyExceeded 已達當日交易次數上限
	ErrDailyFrequencyExceeded = errors.New("maximum number of transactions for today reached")

	// ErrDailyAmountExceeded 超過當日累計金額上限
	ErrDailyAmountExceeded = errors.New("maximum daily amount exceeded")

	// ErrInsufficientBalance 餘額不足
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrStorage 儲存層錯誤，不可自動重試 (commit 非冪等)
	ErrStorage = errors.New("ledger store failure")

	// ErrWALWriteFailed WAL 寫入失敗
	ErrWALWriteFailed = errors.New("wal write failed")
)

// IsRejection 判斷是否為「請求被拒絕」類錯誤
// 這類錯誤帶固定訊息、永遠是呼叫端的問題、不需重試
// 邊界層以 Success=false 回應，而非 gRPC error status
func IsRejection(err error) bool {
	return errors.Is(err, ErrDepositLimitExceeded) ||
		errors.Is(err, ErrWithdrawalLimitExceeded) ||
		errors.Is(err, ErrDailyFrequencyExceeded) ||
		errors.Is(err, ErrDailyAmountExceeded) ||
		errors.Is(err, ErrInsufficientBalance)
}
