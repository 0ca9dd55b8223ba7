package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（3000）

	GoEnv    string // dev/prod
	LogLevel string // debug/info/warn/error

	NthOrder  int64 // 何件ごとに報酬コードを出すか（5）
	UnitPrice int64 // 一律単価（100）

	ShutdownTimeout time.Duration // 終了待ち（10s）

	StoreDriver string // sqlite（gorm + メモリSQLite）/ memory（map）
}

const (
	StoreDriverSQLite = "sqlite"
	StoreDriverMemory = "memory"
)

// LoadDotEnv は .env があれば読む。無いのはエラーにしない。
// 既に設定済みの環境変数は上書きしない。
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Loadは環境変数から読む。未設定はデフォルト。
func Load() (Config, error) {
	nth, err := intOr("NTH_ORDER", 5)
	if err != nil {
		return Config{}, err
	}
	price, err := intOr("UNIT_PRICE", 100)
	if err != nil {
		return Config{}, err
	}
	timeout, err := durationOr("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:            normalizePort(getenv("PORT", "3000")),
		GoEnv:           getenv("GO_ENV", "dev"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		NthOrder:        nth,
		UnitPrice:       price,
		ShutdownTimeout: timeout,
		StoreDriver:     strings.ToLower(getenv("STORE_DRIVER", StoreDriverSQLite)),
	}

	//値チェック
	if cfg.NthOrder <= 0 {
		return Config{}, fmt.Errorf("NTH_ORDER must be positive")
	}
	if cfg.UnitPrice <= 0 {
		return Config{}, fmt.Errorf("UNIT_PRICE must be positive")
	}
	if cfg.StoreDriver != StoreDriverSQLite && cfg.StoreDriver != StoreDriverMemory {
		return Config{}, fmt.Errorf("STORE_DRIVER must be %s or %s", StoreDriverSQLite, StoreDriverMemory)
	}

	return cfg, nil
}

// Addr は listen 用のアドレス（":3000"）
func (c Config) Addr() string {
	return ":" + c.Port
}

func getenv(key string, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func intOr(key string, def int64) (int64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func durationOr(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}

// ":8080" でも "8080" でも受ける
func normalizePort(v string) string {
	return strings.TrimPrefix(v, ":")
}
