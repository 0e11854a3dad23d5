package grpc

import (
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

// Pool 管理通往多個目標的 gRPC 客戶端連線。
// 執行緒安全，每個目標地址只維護一個連線實例。
type Pool struct {
	conns       sync.Map // map[string]*grpc.ClientConn
	mu          sync.Mutex
	interceptor grpc.UnaryClientInterceptor // 全局的單一請求攔截器 (Optional)
}

// PoolOption 定義了 Pool 的配置選項函數
type PoolOption func(*Pool)

// WithInterceptor 設定 Pool 的全局 UnaryClientInterceptor
// 用於統一處理 Logging, Metrics, 或 Auth Token 注入。
func WithInterceptor(interceptor grpc.UnaryClientInterceptor) PoolOption {
	return func(p *Pool) {
		p.interceptor = interceptor
	}
}

// NewPool 建立並回傳一個新的 gRPC 連線池。
func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetConnection 獲取現有的連線，或為指定目標建立新連線。
// 預設帶 keepalive 與不加密連線 (內部服務通訊)。
//
// 參數:
//
//	target: string - 目標伺服器地址 (e.g., "localhost:50051" 或 K8s DNS)
//	opts: ...grpc.DialOption - 可選的額外 gRPC 連線選項
//
// 回傳值:
//
//	*grpc.ClientConn: gRPC 客戶端連線物件
//	error: 若建立連線失敗則回傳錯誤
func (p *Pool) GetConnection(target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	// 1. 嘗試讀取現有連線 (Fast path)
	if v, ok := p.conns.Load(target); ok {
		conn := v.(*grpc.ClientConn)
		// Shutdown 狀態的連線無法復用，移除後重建
		if conn.GetState() != connectivity.Shutdown {
			return conn, nil
		}
		p.conns.Delete(target)
	}

	// 2. 加鎖以防止並發時的重複建立 (Double-check locking)
	p.mu.Lock()
	defer p.mu.Unlock()

	if v, ok := p.conns.Load(target); ok {
		conn := v.(*grpc.ClientConn)
		if conn.GetState() != connectivity.Shutdown {
			return conn, nil
		}
		p.conns.Delete(target)
	}

	// 3. 建立新連線
	defaultOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                10 * time.Second, // 若無活動，每 10 秒發送一次 Ping
			Timeout:             time.Second,      // 等待 Ping 回應的超時時間為 1 秒
			PermitWithoutStream: true,             // 沒有活躍 Stream 也發送 Ping 保持連線
		}),
	}

	if p.interceptor != nil {
		defaultOpts = append(defaultOpts, grpc.WithUnaryInterceptor(p.interceptor))
	}

	finalOpts := append(defaultOpts, opts...)

	// grpc.NewClient 建立的是虛擬連線，真正的網路連線在第一次呼叫時才建立 (Lazy connection)
	conn, err := grpc.NewClient(target, finalOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create grpc client for target %s: %w", target, err)
	}

	p.conns.Store(target, conn)
	return conn, nil
}

// Close 關閉連線池中的所有連線。
// 通常在應用程式關閉時呼叫。
func (p *Pool) Close() error {
	var firstErr error
	p.conns.Range(func(key, value any) bool {
		conn := value.(*grpc.ClientConn)
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err // 記錄第一個發生的錯誤
		}
		p.conns.Delete(key)
		return true
	})
	return firstErr
}
