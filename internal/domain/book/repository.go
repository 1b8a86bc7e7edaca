package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层用GORM实现
// 2. "Active"前缀的方法只返回未软删除的记录
// 3. 记录不存在时返回ErrBookNotFound
type Repository interface {
	// FindActiveByID 查询未软删除的图书,同时加载主分类与子分类
	FindActiveByID(ctx context.Context, id string) (*Book, error)

	// List 按参数分页查询未软删除的图书,同时加载主分类
	List(ctx context.Context, params ListParams) ([]*Book, error)

	// CountActive 统计未软删除的图书数量(不区分分类)
	CountActive(ctx context.Context) (int64, error)

	// Create 创建图书,回填ID与时间戳
	Create(ctx context.Context, b *Book) error

	// Update 按ID部分更新并返回更新后的记录
	Update(ctx context.Context, id string, patch Patch) (*Book, error)

	// SoftDelete 设置deleted_at并返回记录
	SoftDelete(ctx context.Context, id string) (*Book, error)

	// HardDelete 物理删除并返回被删除的记录
	HardDelete(ctx context.Context, id string) (*Book, error)
}

// CategoryLookup 分类存在性查询
// 由分类仓储实现;已软删除的分类也算存在
type CategoryLookup interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// ImageStore 封面图存储
// Save以文件名为key写入(同名覆盖),返回写入后的文件名
type ImageStore interface {
	Save(ctx context.Context, name string, content []byte) (string, error)
}
