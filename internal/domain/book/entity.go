package book

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookstore-inventory/internal/domain/category"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. 价格使用decimal.Decimal,避免浮点数精度问题
// 2. Price为标价,FinalPrice为实际售价(列表按售价排序)
// 3. 主分类必填,子分类可选;分类只做创建时的存在性校验,不建外键
type Book struct {
	ID             string
	Title          string
	Author         string
	Description    string
	Price          decimal.Decimal
	FinalPrice     decimal.Decimal
	Image          *string // 封面图在对象存储中的文件名,nil表示没有封面
	MainCategoryID string
	SubCategoryID  *string
	MainCategory   *category.Category // GetByID与List时加载
	SubCategory    *category.Category // 仅GetByID时加载
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// IsDeleted 是否已软删除
func (b *Book) IsDeleted() bool {
	return b.DeletedAt != nil
}

// HasSubCategory 是否设置了子分类
func (b *Book) HasSubCategory() bool {
	return b.SubCategoryID != nil && *b.SubCategoryID != ""
}

// CreateInput 创建图书的输入
// 字段格式校验在HTTP层完成,这里只做跨实体的引用校验
type CreateInput struct {
	Title          string
	Author         string
	Description    string
	Price          decimal.Decimal
	FinalPrice     decimal.Decimal
	MainCategoryID string
	SubCategoryID  *string
}

// Image 上传的封面图
type Image struct {
	Name    string // 原始文件名
	Content []byte
}

// Patch 部分更新字段,nil表示不修改
type Patch struct {
	Title          *string
	Author         *string
	Description    *string
	Price          *decimal.Decimal
	FinalPrice     *decimal.Decimal
	Image          *string
	MainCategoryID *string
	SubCategoryID  *string
}

// IsEmpty 没有任何需要修改的字段
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.Description == nil &&
		p.Price == nil && p.FinalPrice == nil && p.Image == nil &&
		p.MainCategoryID == nil && p.SubCategoryID == nil
}

// ListResult 分页查询结果
type ListResult struct {
	Items      []*Book
	TotalCount int64
	TotalPages int
}
