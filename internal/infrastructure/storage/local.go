package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// LocalStore 本地目录存储
type LocalStore struct {
	fs   afero.Fs
	root string
}

// NewLocalStore 在给定文件系统的root目录下存储
func NewLocalStore(fs afero.Fs, root string) (*LocalStore, error) {
	if err := fs.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("创建存储目录失败: %w", err)
	}
	return &LocalStore{fs: fs, root: root}, nil
}

// NewOSLocalStore 使用操作系统文件系统，root在启动时解析为绝对路径
func NewOSLocalStore(root string) (*LocalStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("解析存储目录失败: %w", err)
	}
	return NewLocalStore(afero.NewOsFs(), abs)
}

// Root 存储根目录
func (s *LocalStore) Root() string {
	return s.root
}

// Save 写入文件，同名覆盖
func (s *LocalStore) Save(_ context.Context, name string, content []byte) (string, error) {
	stored, err := objectName(name)
	if err != nil {
		return "", err
	}
	if err := afero.WriteFile(s.fs, filepath.Join(s.root, stored), content, 0o644); err != nil {
		return "", fmt.Errorf("写入图片失败: %w", err)
	}
	return stored, nil
}
