package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
	"github.com/xiebiao/bookstore-inventory/internal/domain/category"
)

// CategoryModel GORM分类模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/category/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type CategoryModel struct {
	ID          string         `gorm:"primaryKey;size:36"`
	Name        string         `gorm:"size:100;not null;comment:分类名称"`
	Description string         `gorm:"type:text;comment:分类描述"`
	CreatedAt   time.Time      `gorm:"comment:创建时间"`
	UpdatedAt   time.Time      `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "book_categories"
}

// BeforeCreate 生成UUID主键
func (m *CategoryModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// BookModel GORM图书模型
// 设计说明:
// 1. 价格使用decimal(10,2)，final_price有索引用于排序
// 2. 主分类、子分类按ID关联，迁移时不创建外键
// 3. MainCategory/SubCategory只在Preload时填充
type BookModel struct {
	ID             string          `gorm:"primaryKey;size:36"`
	Title          string          `gorm:"size:200;not null;comment:书名"`
	Author         string          `gorm:"size:100;not null;comment:作者"`
	Description    string          `gorm:"type:text;comment:图书描述"`
	Price          decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:标价"`
	FinalPrice     decimal.Decimal `gorm:"type:decimal(10,2);index;not null;comment:售价"`
	Image          *string         `gorm:"size:255;comment:封面图文件名"`
	MainCategoryID string          `gorm:"size:36;index;not null;comment:主分类ID"`
	SubCategoryID  *string         `gorm:"size:36;index;comment:子分类ID"`
	MainCategory   *CategoryModel  `gorm:"foreignKey:MainCategoryID"`
	SubCategory    *CategoryModel  `gorm:"foreignKey:SubCategoryID"`
	CreatedAt      time.Time       `gorm:"comment:创建时间"`
	UpdatedAt      time.Time       `gorm:"comment:更新时间"`
	DeletedAt      gorm.DeletedAt  `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// BeforeCreate 生成UUID主键
func (m *BookModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func deletedAtPtr(d gorm.DeletedAt) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

// toCategoryEntity GORM模型 → 领域实体
func toCategoryEntity(m *CategoryModel) *category.Category {
	if m == nil {
		return nil
	}
	return &category.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAtPtr(m.DeletedAt),
	}
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(m *BookModel) *book.Book {
	return &book.Book{
		ID:             m.ID,
		Title:          m.Title,
		Author:         m.Author,
		Description:    m.Description,
		Price:          m.Price,
		FinalPrice:     m.FinalPrice,
		Image:          m.Image,
		MainCategoryID: m.MainCategoryID,
		SubCategoryID:  m.SubCategoryID,
		MainCategory:   toCategoryEntity(m.MainCategory),
		SubCategory:    toCategoryEntity(m.SubCategory),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      deletedAtPtr(m.DeletedAt),
	}
}
