package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-inventory/internal/domain/category"
	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
)

// categoryRepository 分类仓储实现(GORM)
// 同时实现book.CategoryLookup,供创建图书时校验分类引用
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &categoryRepository{db: db}
}

// FindActiveByID 查询有效分类
func (r *categoryRepository) FindActiveByID(ctx context.Context, id string) (*category.Category, error) {
	var model CategoryModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}
	return toCategoryEntity(&model), nil
}

// ExistsByID 包含已软删除的记录
func (r *categoryRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().
		Model(&CategoryModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询分类失败")
	}
	return count > 0, nil
}

// List 分页查询有效分类(存储默认顺序)
func (r *categoryRepository) List(ctx context.Context, offset, limit int) ([]*category.Category, error) {
	var models []CategoryModel
	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询分类列表失败")
	}

	items := make([]*category.Category, len(models))
	for i := range models {
		items[i] = toCategoryEntity(&models[i])
	}
	return items, nil
}

// CountActive 统计有效分类
func (r *categoryRepository) CountActive(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&CategoryModel{}).Count(&total).Error; err != nil {
		return 0, apperrors.Wrap(err, "统计分类总数失败")
	}
	return total, nil
}

// Create 创建分类
func (r *categoryRepository) Create(ctx context.Context, c *category.Category) error {
	model := &CategoryModel{
		Name:        c.Name,
		Description: c.Description,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建分类失败")
	}

	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt
	return nil
}

// Update 部分更新有效分类
func (r *categoryRepository) Update(ctx context.Context, id string, patch category.Patch) (*category.Category, error) {
	db := r.db.WithContext(ctx)

	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if len(updates) > 0 {
		if err := db.Model(&CategoryModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(err, "更新分类失败")
		}
	}

	return r.FindActiveByID(ctx, id)
}

// SoftDelete 软删除并返回记录
func (r *categoryRepository) SoftDelete(ctx context.Context, id string) (*category.Category, error) {
	db := r.db.WithContext(ctx)

	result := db.Where("id = ?", id).Delete(&CategoryModel{})
	if result.Error != nil {
		return nil, apperrors.Wrap(result.Error, "软删除分类失败")
	}
	if result.RowsAffected == 0 {
		return nil, category.ErrCategoryNotFound
	}

	var model CategoryModel
	if err := db.Unscoped().Where("id = ?", id).First(&model).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询分类失败")
	}
	return toCategoryEntity(&model), nil
}

// HardDelete 物理删除
// 引用该分类的图书保持原样(没有外键,也不级联)
func (r *categoryRepository) HardDelete(ctx context.Context, id string) (*category.Category, error) {
	db := r.db.WithContext(ctx).Unscoped()

	var model CategoryModel
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}

	if err := db.Where("id = ?", id).Delete(&CategoryModel{}).Error; err != nil {
		return nil, apperrors.Wrap(err, "删除分类失败")
	}
	return toCategoryEntity(&model), nil
}
