package book

import (
	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在(或已软删除)
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrNoBooksFound 当前页没有任何图书
	ErrNoBooksFound = apperrors.New(apperrors.ErrCodeBookNotFound, "未找到图书")

	// ErrMainCategoryNotFound 创建时引用的主分类不存在
	ErrMainCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "主分类不存在")

	// ErrSubCategoryNotFound 创建时引用的子分类不存在
	ErrSubCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "子分类不存在")
)

const (
	msgGetFailed        = "获取图书失败"
	msgListFailed       = "查询图书列表失败"
	msgCountFailed      = "统计图书总数失败"
	msgCreateFailed     = "创建图书失败"
	msgUpdateFailed     = "更新图书失败"
	msgSoftDeleteFailed = "软删除图书失败"
	msgDeleteFailed     = "删除图书失败"
)
