package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
	"gopkg.in/yaml.v3"

	grpc_adapter "github.com/JoeShih716/go-bank-ledger/internal/app/core/adapter/in/grpc"
	memory_adapter "github.com/JoeShih716/go-bank-ledger/internal/app/core/adapter/out/memory"
	mysql_adapter "github.com/JoeShih716/go-bank-ledger/internal/app/core/adapter/out/mysql"
	"github.com/JoeShih716/go-bank-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-bank-ledger/pkg/mysql"
	"github.com/JoeShih716/go-bank-ledger/pkg/wal"
	pb "github.com/JoeShih716/go-bank-ledger/proto"
)

type Config struct {
	Server struct {
		Listen string `yaml:"listen"` // gRPC 監聽位址，預設 ":50051"
	} `yaml:"server"`

	// Store 選擇儲存後端: "memory" (WAL 持久化) 或 "mysql"
	Store string `yaml:"store"`

	WALPath string             `yaml:"wal_path"` // memory 模式的 WAL 檔案路徑
	MySQL   mysql.Config       `yaml:"mysql"`
	Limits  domain.LimitPolicy `yaml:"limits"`
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bank-ledger",
	})

	// .env 不存在不算錯誤，僅提供本機開發覆寫
	_ = godotenv.Load()

	// 1. 載入設定
	cfg := loadConfig(logger)

	if err := cfg.Limits.Validate(); err != nil {
		logger.Fatal("invalid limit policy", "err", err)
	}

	// 2. 建構 LedgerStore (Driven Adapter)
	var store usecase.LedgerStore
	switch cfg.Store {
	case "mysql":
		dbClient, err := mysql.NewClient(cfg.MySQL)
		if err != nil {
			logger.Fatal("failed to connect to mysql", "err", err)
		}
		defer dbClient.Close()
		logger.Info("connected to mysql", "host", cfg.MySQL.Host, "db", cfg.MySQL.DBName)

		sqlStore := mysql_adapter.NewStore(dbClient)
		if err := sqlStore.AutoMigrate(); err != nil {
			logger.Fatal("failed to migrate schema", "err", err)
		}
		store = sqlStore
	case "memory":
		walFile, err := wal.NewWAL(cfg.WALPath)
		if err != nil {
			logger.Fatal("failed to init wal", "path", cfg.WALPath, "err", err)
		}
		defer walFile.Close()

		memStore, err := memory_adapter.NewMutexStore(walFile)
		if err != nil {
			logger.Fatal("failed to recover ledger from wal", "path", cfg.WALPath, "err", err)
		}
		logger.Info("ledger recovered from wal", "path", cfg.WALPath)
		store = memStore
	default:
		logger.Fatal("invalid store type", "store", cfg.Store)
	}

	// 3. 初始化 UseCase
	coreUseCase := usecase.NewCoreUseCase(store, cfg.Limits)

	// 4. 初始化 gRPC Adapter (Driving Adapter)
	grpcServer := grpc_adapter.NewGrpcServer(coreUseCase, logger)

	// 5. 啟動 gRPC Server
	lis, err := net.Listen("tcp", cfg.Server.Listen)
	if err != nil {
		logger.Fatal("failed to listen", "addr", cfg.Server.Listen, "err", err)
	}

	s := grpc.NewServer()
	pb.RegisterBankServiceServer(s, grpcServer)
	reflection.Register(s) // 方便 gRPC Client 測試 (如 Postman/grpcurl)

	// Graceful Shutdown
	go func() {
		logger.Info("starting gRPC server", "addr", cfg.Server.Listen, "store", cfg.Store)
		if err := s.Serve(lis); err != nil {
			logger.Fatal("failed to serve", "err", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	s.GracefulStop()
	logger.Info("server exited")
}

func loadConfig(logger *log.Logger) Config {
	cfgData, err := os.ReadFile("config/config.yaml")
	if err != nil {
		logger.Fatal("failed to read config file", "err", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		logger.Fatal("failed to parse config", "err", err)
	}

	// 補全預設配置 (如果 yaml 沒寫)
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":50051"
	}
	if cfg.Store == "" {
		cfg.Store = "memory"
	}
	if cfg.WALPath == "" {
		cfg.WALPath = "wal.log"
	}
	if cfg.MySQL.MaxOpenConns == 0 {
		cfg.MySQL.MaxOpenConns = 100
	}
	if cfg.MySQL.MaxIdleConns == 0 {
		cfg.MySQL.MaxIdleConns = 10
	}
	if cfg.MySQL.ConnMaxLifetime == 0 {
		cfg.MySQL.ConnMaxLifetime = 30 * time.Minute
	}
	// 密碼可由環境變數覆寫，避免寫死在 yaml
	if pw := os.Getenv("MYSQL_PASSWORD"); pw != "" {
		cfg.MySQL.Password = pw
	}
	if cfg.Limits.IsZero() {
		cfg.Limits = domain.DefaultLimitPolicy()
	}
	return cfg
}
