package category

import (
	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
)

// 分类领域错误定义
// NotFound类错误原样返回给调用方，其余失败统一包装为Internal并使用固定提示
var (
	// ErrCategoryNotFound 分类不存在（或已软删除）
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")

	// ErrNoCategoriesFound 当前页没有任何分类
	ErrNoCategoriesFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "未找到分类")
)

// Internal错误的固定提示
const (
	msgGetFailed        = "获取分类失败"
	msgListFailed       = "查询分类列表失败"
	msgCountFailed      = "统计分类总数失败"
	msgCreateFailed     = "创建分类失败"
	msgUpdateFailed     = "更新分类失败"
	msgSoftDeleteFailed = "软删除分类失败"
	msgDeleteFailed     = "删除分类失败"
)
