package category

import (
	"time"
)

// Category 图书分类实体
// 在图书聚合中只作为被引用的查询实体（主分类/子分类），
// 自身的增删改查与图书写路径结构一致，但没有交叉引用校验
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // nil表示有效，非nil表示已软删除
}

// IsDeleted 是否已软删除
func (c *Category) IsDeleted() bool {
	return c.DeletedAt != nil
}

// CreateInput 创建分类的输入（调用方已完成字段校验）
type CreateInput struct {
	Name        string
	Description string
}

// Patch 部分更新字段，nil表示不修改
type Patch struct {
	Name        *string
	Description *string
}

// IsEmpty 没有任何需要修改的字段
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil
}

// ListResult 分页查询结果
type ListResult struct {
	Items      []*Category
	TotalCount int64
	TotalPages int
}
