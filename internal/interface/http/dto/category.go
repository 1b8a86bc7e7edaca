package dto

import (
	"strings"

	"github.com/xiebiao/bookstore-inventory/internal/domain/category"
)

// CreateCategoryRequest 创建分类
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"科幻"`
	Description string `json:"description" binding:"max=2000" example:"科学幻想小说"`
}

// ToInput 转换为领域输入
func (r *CreateCategoryRequest) ToInput() category.CreateInput {
	return category.CreateInput{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
	}
}

// UpdateCategoryRequest 部分更新分类
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100" example:"硬科幻"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// ToPatch 转换为领域Patch
func (r *UpdateCategoryRequest) ToPatch() category.Patch {
	return category.Patch{
		Name:        r.Name,
		Description: r.Description,
	}
}

// ListCategoriesRequest 分类列表查询参数
type ListCategoriesRequest struct {
	PageRequest
}

// CategoryResponse 分类
type CategoryResponse struct {
	ID          string  `json:"id" example:"5f0c6a1e-8d1b-4c53-9a34-0a3d2b1c9e7f"`
	Name        string  `json:"name" example:"科幻"`
	Description string  `json:"description" example:"科学幻想小说"`
	CreatedAt   string  `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt   string  `json:"updated_at" example:"2024-01-15 10:30:00"`
	DeletedAt   *string `json:"deleted_at"`
}

// NewCategoryResponse 领域实体 → 响应
func NewCategoryResponse(c *category.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   formatTime(c.CreatedAt),
		UpdatedAt:   formatTime(c.UpdatedAt),
		DeletedAt:   formatTimePtr(c.DeletedAt),
	}
}

// NewCategoryListResponse 批量转换
func NewCategoryListResponse(items []*category.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, len(items))
	for i, c := range items {
		out[i] = NewCategoryResponse(c)
	}
	return out
}

// RevokeTokenResponse 吊销Token响应
type RevokeTokenResponse struct {
	Revoked bool `json:"revoked" example:"true"`
}
