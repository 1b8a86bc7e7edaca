// Package storage 封面图存储
//
// 两种实现都以文件名为key，同名写入会覆盖：
//   - local: 写入storage.root_dir目录（afero文件系统，测试用内存FS）
//   - minio: 写入对象存储桶，外层包一层熔断（storage.breaker）
package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/config"
)

// New 按storage.driver创建存储实现
func New(cfg *config.Config) (book.ImageStore, error) {
	switch cfg.Storage.Driver {
	case "local", "":
		store, err := NewOSLocalStore(cfg.Storage.RootDir)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "minio":
		store, err := NewMinIOStore(cfg.Storage.MinIO)
		if err != nil {
			return nil, err
		}
		return NewGuardedStore("minio", store, cfg.Storage.Breaker), nil
	default:
		return nil, fmt.Errorf("不支持的存储驱动: %s", cfg.Storage.Driver)
	}
}

// objectName 只保留文件名部分，去掉客户端带来的目录
func objectName(name string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == ".." || strings.TrimSpace(base) == "" {
		return "", fmt.Errorf("无效的文件名: %q", name)
	}
	return base, nil
}
