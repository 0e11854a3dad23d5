package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/now"

	"github.com/JoeShih716/go-bank-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-bank-ledger/pkg/wal"
)

// walRecord WAL 紀錄：帳戶建立或交易 commit 擇一
type walRecord struct {
	Kind    string              `json:"kind"` // "account" | "transaction"
	Account *domain.Account     `json:"account,omitempty"`
	Tx      *domain.Transaction `json:"tx,omitempty"`
}

const (
	walKindAccount     = "account"
	walKindTransaction = "transaction"
)

// MutexStore 是 LedgerStore 的 in-memory 參考實作
//
// 結構:
//
//	accounts: 帳號 → 帳戶
//	byID: 帳戶 ID → 帳戶 (當日統計查詢用)
//	txs: 帳戶 ID → 已 commit 交易
//	mu: 保護以上全部狀態
//	wal: Write-Ahead Log，nil 表示純記憶體模式 (測試用)
//	clock: 時間來源，正式環境為 time.Now
type MutexStore struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	byID     map[int64]*domain.Account
	txs      map[int64][]*domain.Transaction

	nextAccountID int64
	nextTxID      int64

	wal   *wal.WAL
	clock func() time.Time
}

// NewMutexStore 建立一個新的 MutexStore 實例
//
// 參數:
//
//	w: Write-Ahead Log 實例，可為 nil (不持久化)
//
// 回傳:
//
//	*MutexStore: MutexStore 實例
//	error: 初始化錯誤 (如 WAL 恢復失敗)
func NewMutexStore(w *wal.WAL) (*MutexStore, error) {
	s := &MutexStore{
		accounts: make(map[string]*domain.Account),
		byID:     make(map[int64]*domain.Account),
		txs:      make(map[int64][]*domain.Transaction),
		wal:      w,
		clock:    time.Now,
	}
	if w != nil {
		if err := s.recoverFromWAL(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// recoverFromWAL 從 WAL 檔案恢復帳本狀態
// 只有 NewMutexStore 呼叫，無需 Lock (單執行緒)
func (s *MutexStore) recoverFromWAL() error {
	return s.wal.ReadAll(func(jsonRaw []byte) error {
		var rec walRecord
		if err := json.Unmarshal(jsonRaw, &rec); err != nil {
			return err
		}
		switch rec.Kind {
		case walKindAccount:
			a := *rec.Account
			s.accounts[a.AccountNumber] = &a
			s.byID[a.ID] = &a
			if a.ID > s.nextAccountID {
				s.nextAccountID = a.ID
			}
		case walKindTransaction:
			tx := *rec.Tx
			a, ok := s.byID[tx.AccountID]
			if !ok {
				return domain.ErrAccountNotFound
			}
			if err := a.Apply(tx.Type, tx.Amount); err != nil {
				return err
			}
			a.UpdatedAt = tx.CreatedAt
			s.txs[tx.AccountID] = append(s.txs[tx.AccountID], &tx)
			if tx.ID > s.nextTxID {
				s.nextTxID = tx.ID
			}
		}
		return nil
	})
}

// FindAccountByNumber 依帳號查詢帳戶
// 回傳值拷貝，避免呼叫端越權修改內部狀態
func (s *MutexStore) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[accountNumber]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	cp := *a
	return &cp, nil
}

// AccountExists 檢查帳號是否已存在
func (s *MutexStore) AccountExists(ctx context.Context, accountNumber string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.accounts[accountNumber]
	return ok, nil
}

// CreateAccount 建立餘額為零的新帳戶
func (s *MutexStore) CreateAccount(ctx context.Context, name, accountNumber string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[accountNumber]; ok {
		return nil, domain.ErrAccountAlreadyExists
	}

	s.nextAccountID++
	nowTime := s.clock()
	a := &domain.Account{
		ID:            s.nextAccountID,
		Name:          name,
		AccountNumber: accountNumber,
		CreatedAt:     nowTime,
		UpdatedAt:     nowTime,
	}

	if s.wal != nil {
		if err := s.wal.Write(walRecord{Kind: walKindAccount, Account: a}); err != nil {
			s.nextAccountID--
			return nil, domain.ErrWALWriteFailed
		}
	}

	s.accounts[accountNumber] = a
	s.byID[a.ID] = a
	cp := *a
	return &cp, nil
}

// CountTransactionsToday 統計該帳戶當日指定類型的已 commit 筆數
func (s *MutexStore) CountTransactionsToday(ctx context.Context, accountID int64, txType domain.TransactionType) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start, end := s.dayBounds()
	var count int64
	for _, tx := range s.txs[accountID] {
		if tx.Type == txType && inWindow(tx.CreatedAt, start, end) {
			count++
		}
	}
	return count, nil
}

// SumTransactionAmountsToday 加總該帳戶當日指定類型的已 commit 金額
func (s *MutexStore) SumTransactionAmountsToday(ctx context.Context, accountID int64, txType domain.TransactionType) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start, end := s.dayBounds()
	var sum int64
	for _, tx := range s.txs[accountID] {
		if tx.Type == txType && inWindow(tx.CreatedAt, start, end) {
			sum += tx.Amount
		}
	}
	return sum, nil
}

// CommitTransaction 原子地寫入交易紀錄並更新帳戶餘額
// 先變更記憶體狀態、再寫 WAL；WAL 失敗時回滾，不留部分 commit
func (s *MutexStore) CommitTransaction(ctx context.Context, account *domain.Account, txType domain.TransactionType, amount int64) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[account.AccountNumber]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	if err := a.Apply(txType, amount); err != nil {
		return nil, err
	}

	s.nextTxID++
	tx := &domain.Transaction{
		ID:        s.nextTxID,
		RefID:     uuid.New(),
		AccountID: a.ID,
		Type:      txType,
		Amount:    amount,
		CreatedAt: s.clock(),
	}
	a.UpdatedAt = tx.CreatedAt

	if s.wal != nil {
		if err := s.wal.Write(walRecord{Kind: walKindTransaction, Tx: tx}); err != nil {
			// 回滾餘額變更
			revert := domain.TransactionTypeWithdrawal
			if txType == domain.TransactionTypeWithdrawal {
				revert = domain.TransactionTypeDeposit
			}
			_ = a.Apply(revert, amount)
			s.nextTxID--
			return nil, domain.ErrWALWriteFailed
		}
	}

	s.txs[a.ID] = append(s.txs[a.ID], tx)
	cp := *tx
	return &cp, nil
}

// dayBounds 回傳「今日」的起迄時間 [start, end)，以本地時區的日曆日為準
func (s *MutexStore) dayBounds() (time.Time, time.Time) {
	start := now.New(s.clock()).BeginningOfDay()
	return start, start.AddDate(0, 0, 1)
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

var _ usecase.LedgerStore = (*MutexStore)(nil)
