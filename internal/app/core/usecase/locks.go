package usecase

import "sync"

// accountLocks 以帳號為 key 的互斥鎖
// 同帳戶的 查詢-驗證-commit 流程必須序列化，跨帳戶操作互不等待
// 帳戶不會被刪除，鎖不需回收
type accountLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

// lock 取得指定帳號的鎖，回傳對應的 unlock 函式
func (l *accountLocks) lock(accountNumber string) (unlock func()) {
	l.mu.Lock()
	if l.m == nil {
		l.m = make(map[string]*sync.Mutex)
	}
	am, ok := l.m[accountNumber]
	if !ok {
		am = &sync.Mutex{}
		l.m[accountNumber] = am
	}
	l.mu.Unlock()

	am.Lock()
	return am.Unlock
}
