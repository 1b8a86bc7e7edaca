package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
	"github.com/xiebiao/bookstore-inventory/pkg/pagination"
)

// bookRepository 图书仓储实现(GORM)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 软删除依赖gorm.DeletedAt:默认作用域自动追加deleted_at IS NULL
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// sortColumns 排序字段 → 列名
var sortColumns = map[book.SortKey]string{
	book.SortName:     "title",
	book.SortPrice:    "final_price",
	book.SortCategory: "main_category_id",
}

// FindActiveByID 查询有效图书并加载分类(分类不过滤软删除)
func (r *bookRepository) FindActiveByID(ctx context.Context, id string) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).
		Preload("MainCategory", unscoped).
		Preload("SubCategory", unscoped).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// List 分页查询,每条记录加载主分类(分类不过滤软删除)
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, error) {
	query := r.db.WithContext(ctx).Model(&BookModel{}).Preload("MainCategory", unscoped)

	if params.FilterByCategory() {
		query = query.Where("main_category_id = ?", params.CategoryID)
	}

	// SortNone不加ORDER BY,使用存储默认顺序
	if column, ok := sortColumns[params.SortBy]; ok {
		query = query.Order(clause.OrderByColumn{
			Column: clause.Column{Name: column},
			Desc:   params.Order.Desc(),
		})
	}

	var models []BookModel
	err := query.
		Offset(pagination.Offset(params.Page, params.PerPage)).
		Limit(params.PerPage).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// CountActive 统计有效图书
func (r *bookRepository) CountActive(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&BookModel{}).Count(&total).Error; err != nil {
		return 0, apperrors.Wrap(err, "统计图书总数失败")
	}
	return total, nil
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		Title:          b.Title,
		Author:         b.Author,
		Description:    b.Description,
		Price:          b.Price,
		FinalPrice:     b.FinalPrice,
		Image:          b.Image,
		MainCategoryID: b.MainCategoryID,
		SubCategoryID:  b.SubCategoryID,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 回填主键与时间戳
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Update 部分更新有效图书
// 只更新patch中非nil的字段;已软删除或不存在的记录返回ErrBookNotFound
func (r *bookRepository) Update(ctx context.Context, id string, patch book.Patch) (*book.Book, error) {
	db := r.db.WithContext(ctx)

	if updates := bookUpdates(patch); len(updates) > 0 {
		err := db.Model(&BookModel{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			return nil, apperrors.Wrap(err, "更新图书失败")
		}
	}

	var model BookModel
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

func bookUpdates(p book.Patch) map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Author != nil {
		updates["author"] = *p.Author
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.Price != nil {
		updates["price"] = *p.Price
	}
	if p.FinalPrice != nil {
		updates["final_price"] = *p.FinalPrice
	}
	if p.Image != nil {
		updates["image"] = *p.Image
	}
	if p.MainCategoryID != nil {
		updates["main_category_id"] = *p.MainCategoryID
	}
	if p.SubCategoryID != nil {
		// 空字符串表示清除子分类,与创建时一致存为NULL
		if *p.SubCategoryID == "" {
			updates["sub_category_id"] = nil
		} else {
			updates["sub_category_id"] = *p.SubCategoryID
		}
	}
	return updates
}

// SoftDelete 软删除并返回记录(包含deleted_at)
func (r *bookRepository) SoftDelete(ctx context.Context, id string) (*book.Book, error) {
	db := r.db.WithContext(ctx)

	result := db.Where("id = ?", id).Delete(&BookModel{})
	if result.Error != nil {
		return nil, apperrors.Wrap(result.Error, "软删除图书失败")
	}
	if result.RowsAffected == 0 {
		return nil, book.ErrBookNotFound
	}

	var model BookModel
	if err := db.Unscoped().Where("id = ?", id).First(&model).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// HardDelete 物理删除(包括已软删除的记录)
func (r *bookRepository) HardDelete(ctx context.Context, id string) (*book.Book, error) {
	db := r.db.WithContext(ctx).Unscoped()

	var model BookModel
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	if err := db.Where("id = ?", id).Delete(&BookModel{}).Error; err != nil {
		return nil, apperrors.Wrap(err, "删除图书失败")
	}
	return toBookEntity(&model), nil
}
