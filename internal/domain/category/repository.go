package category

import (
	"context"
)

// Repository 分类仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层用GORM实现
// 2. "Active"前缀的方法只返回未软删除的记录
// 3. 记录不存在时返回ErrCategoryNotFound,其余错误由实现方包装
type Repository interface {
	// FindActiveByID 查询未软删除的分类
	FindActiveByID(ctx context.Context, id string) (*Category, error)

	// ExistsByID 分类是否存在(包含已软删除的记录)
	// 图书创建时的引用校验只要求"存在",不要求"有效"
	ExistsByID(ctx context.Context, id string) (bool, error)

	// List 分页查询未软删除的分类(offset/limit由调用方计算)
	List(ctx context.Context, offset, limit int) ([]*Category, error)

	// CountActive 统计未软删除的分类数量
	CountActive(ctx context.Context) (int64, error)

	// Create 创建分类,回填ID与时间戳
	Create(ctx context.Context, c *Category) error

	// Update 按ID部分更新并返回更新后的记录
	Update(ctx context.Context, id string, patch Patch) (*Category, error)

	// SoftDelete 设置deleted_at并返回记录
	SoftDelete(ctx context.Context, id string) (*Category, error)

	// HardDelete 物理删除并返回被删除的记录
	HardDelete(ctx context.Context, id string) (*Category, error)
}
