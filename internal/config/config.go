package config

import "os"

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（default 3000）

	DatabaseURL string // 接続文字列。あれば個別設定より優先

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
}

// Loadは環境変数から設定を読む。未設定はデフォルトで埋める
func Load() Config {
	return Config{
		Port: getenv("PORT", "3000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "homeofficecart"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),
	}
}

// Addr は ":3000" 形式のリッスンアドレスを返す。
func (c Config) Addr() string {
	if c.Port != "" && c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
