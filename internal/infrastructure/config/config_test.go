package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
database:
  driver: sqlite
  dbname: ./data/bookstore.db
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "./data/bookstore.db", cfg.Database.DSN())
	assert.Equal(t, 24*time.Hour, cfg.JWT.TokenTTL)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, "./uploads", cfg.Storage.RootDir)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, uint32(5), cfg.Storage.Breaker.MaxFailures)
	assert.Equal(t, 30*time.Second, cfg.Storage.Breaker.OpenTimeout)
	assert.False(t, cfg.MQ.Enabled)
	assert.Equal(t, "bookstore.catalog", cfg.MQ.Exchange)
}

func TestLoadFile_EnvOverride(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: mysql
  password: from-file
`)
	t.Setenv("BOOKSTORE_DATABASE_PASSWORD", "from-env")
	t.Setenv("BOOKSTORE_STORAGE_ROOT_DIR", "/var/lib/bookstore/images")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "/var/lib/bookstore/images", cfg.Storage.RootDir)
}

func TestLoadFile_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"未知数据库驱动", "database:\n  driver: oracle\n"},
		{"端口越界", "server:\n  port: 70000\n"},
		{"release模式使用默认密钥", "server:\n  mode: release\n"},
		{"未知存储驱动", "storage:\n  driver: s3\n"},
		{"minio缺少bucket", "storage:\n  driver: minio\n  minio:\n    bucket: \"\"\n"},
		{"采样率越界", "tracing:\n  sample_ratio: 2\n"},
		{"启用事件发布但缺少url", "mq:\n  enabled: true\n  url: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	mysqlCfg := DatabaseConfig{
		Driver: "mysql", User: "root", Password: "pw", Host: "db", Port: 3306,
		DBName: "bookstore", Charset: "utf8mb4", ParseTime: true, Loc: "Asia/Shanghai",
	}
	assert.Equal(t,
		"root:pw@tcp(db:3306)/bookstore?charset=utf8mb4&parseTime=true&loc=Asia%2FShanghai",
		mysqlCfg.DSN())

	pgCfg := DatabaseConfig{
		Driver: "postgres", User: "postgres", Password: "pw", Host: "db", Port: 5432,
		DBName: "bookstore", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=db port=5432 user=postgres password=pw dbname=bookstore sslmode=disable",
		pgCfg.DSN())
}
