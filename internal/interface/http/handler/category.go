package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookstore-inventory/internal/domain/category"
	"github.com/xiebiao/bookstore-inventory/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
	"github.com/xiebiao/bookstore-inventory/pkg/response"
)

// CategoryHandler 分类HTTP处理器
type CategoryHandler struct {
	svc category.Service
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(svc category.Service) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// List 分类列表
// @Summary      分类列表
// @Tags         分类
// @Produce      json
// @Param        page     query int false "页码(从1开始)" default(1)
// @Param        per_page query int false "每页数量(<=100)" default(10)
// @Success      200 {object} response.Response{data=response.PageData{list=[]dto.CategoryResponse}}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "当前页没有分类"
// @Failure      500 {object} response.Response "系统错误"
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	var req dto.ListCategoriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}
	req.Normalize()

	result, err := h.svc.List(c.Request.Context(), req.Page, req.PerPage)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c,
		dto.NewCategoryListResponse(result.Items),
		result.TotalCount, req.Page, req.PerPage, result.TotalPages)
}

// Count 分类总数
// @Summary      分类总数
// @Tags         分类
// @Produce      json
// @Success      200 {object} response.Response{data=dto.CountResponse}
// @Failure      500 {object} response.Response "系统错误"
// @Router       /api/v1/categories/count [get]
func (h *CategoryHandler) Count(c *gin.Context) {
	n, err := h.svc.Count(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.CountResponse{Count: n})
}

// Get 分类详情
// @Summary      分类详情
// @Tags         分类
// @Produce      json
// @Param        id path string true "分类ID"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      404 {object} response.Response "分类不存在"
// @Failure      500 {object} response.Response "系统错误"
// @Router       /api/v1/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	cat, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewCategoryResponse(cat))
}

// Create 创建分类
// @Summary      创建分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCategoryRequest true "分类信息"
// @Success      201 {object} response.Response{data=dto.CategoryResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未认证"
// @Failure      500 {object} response.Response "系统错误"
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	cat, err := h.svc.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewCategoryResponse(cat))
}

// Update 部分更新分类
// @Summary      更新分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                    true "分类ID"
// @Param        request body dto.UpdateCategoryRequest true "需要修改的字段"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      500 {object} response.Response "更新失败(包括分类不存在)"
// @Router       /api/v1/categories/{id} [patch]
func (h *CategoryHandler) Update(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	cat, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.ToPatch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewCategoryResponse(cat))
}

// SoftDelete 软删除分类
// @Summary      软删除分类
// @Description  引用该分类的图书不受影响
// @Tags         分类
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "分类ID"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      500 {object} response.Response "删除失败(包括分类不存在)"
// @Router       /api/v1/categories/{id}/soft-delete [patch]
func (h *CategoryHandler) SoftDelete(c *gin.Context) {
	cat, err := h.svc.SoftDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewCategoryResponse(cat))
}

// HardDelete 物理删除分类
// @Summary      物理删除分类
// @Tags         分类
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "分类ID"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      500 {object} response.Response "删除失败(包括分类不存在)"
// @Router       /api/v1/categories/{id} [delete]
func (h *CategoryHandler) HardDelete(c *gin.Context) {
	cat, err := h.svc.HardDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewCategoryResponse(cat))
}
