package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
	"github.com/xiebiao/bookstore-inventory/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
	"github.com/xiebiao/bookstore-inventory/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	svc            book.Service
	imageURLPrefix string
	maxUploadSize  int64
}

// NewBookHandler 创建图书处理器
// imageURLPrefix用于拼接封面图访问地址，maxUploadSize为封面图大小上限(字节)
func NewBookHandler(svc book.Service, imageURLPrefix string, maxUploadSize int64) *BookHandler {
	return &BookHandler{
		svc:            svc,
		imageURLPrefix: imageURLPrefix,
		maxUploadSize:  maxUploadSize,
	}
}

// List 图书列表
// @Summary      图书列表
// @Description  分页查询未删除的图书，支持按主分类过滤与排序
// @Tags         图书
// @Produce      json
// @Param        page        query int    false "页码(从1开始)" default(1)
// @Param        per_page    query int    false "每页数量(<=100)" default(10)
// @Param        sort_by     query string false "排序字段" Enums(none, name, price, category) default(none)
// @Param        order       query string false "排序方向" Enums(asc, desc) default(asc)
// @Param        category_id query string false "主分类ID，none表示全部" default(none)
// @Success      200 {object} response.Response{data=response.PageData{list=[]dto.BookResponse}}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "当前页没有图书"
// @Failure      500 {object} response.Response "系统错误"
// @Router       /api/v1/books [get]
func (h *BookHandler) List(c *gin.Context) {
	var req dto.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}
	params, err := req.ToParams()
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	result, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c,
		dto.NewBookListResponse(result.Items, h.imageURLPrefix),
		result.TotalCount, params.Page, params.PerPage, result.TotalPages)
}

// Count 图书总数
// @Summary      图书总数
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=dto.CountResponse}
// @Failure      500 {object} response.Response "系统错误"
// @Router       /api/v1/books/count [get]
func (h *BookHandler) Count(c *gin.Context) {
	n, err := h.svc.Count(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.CountResponse{Count: n})
}

// Get 图书详情
// @Summary      图书详情
// @Description  返回图书及其主分类、子分类
// @Tags         图书
// @Produce      json
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      500 {object} response.Response "系统错误"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	b, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(b, h.imageURLPrefix))
}

// Create 创建图书
// @Summary      创建图书
// @Description  multipart表单，可选上传封面图(image字段)，同名文件会被覆盖
// @Tags         图书
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title            formData string true  "书名"
// @Param        author           formData string true  "作者"
// @Param        description      formData string false "描述"
// @Param        price            formData string true  "标价"
// @Param        final_price      formData string true  "售价"
// @Param        main_category_id formData string true  "主分类ID"
// @Param        sub_category_id  formData string false "子分类ID"
// @Param        image            formData file   false "封面图"
// @Success      201 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未认证"
// @Failure      404 {object} response.Response "分类不存在"
// @Failure      500 {object} response.Response "系统错误"
// @Router       /api/v1/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}
	in, err := req.ToInput()
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	image, err := h.readImage(c)
	if err != nil {
		if errors.Is(err, dto.ErrImageTooLarge) {
			response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, err.Error())
			return
		}
		response.Error(c, apperrors.Wrap(err, "读取上传图片失败"))
		return
	}

	b, err := h.svc.Create(c.Request.Context(), in, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewBookResponse(b, h.imageURLPrefix))
}

// readImage 读取可选的image文件字段，未上传时返回nil
func (h *BookHandler) readImage(c *gin.Context) (*book.Image, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	if h.maxUploadSize > 0 && fh.Size > h.maxUploadSize {
		return nil, dto.ErrImageTooLarge
	}

	content, err := readFileHeader(fh)
	if err != nil {
		return nil, err
	}
	return &book.Image{Name: fh.Filename, Content: content}, nil
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// Update 部分更新图书
// @Summary      更新图书
// @Description  只修改请求中出现的字段
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                true "图书ID"
// @Param        request body dto.UpdateBookRequest true "需要修改的字段"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未认证"
// @Failure      500 {object} response.Response "更新失败(包括图书不存在)"
// @Router       /api/v1/books/{id} [patch]
func (h *BookHandler) Update(c *gin.Context) {
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	b, err := h.svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(b, h.imageURLPrefix))
}

// SoftDelete 软删除图书
// @Summary      软删除图书
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      401 {object} response.Response "未认证"
// @Failure      500 {object} response.Response "删除失败(包括图书不存在)"
// @Router       /api/v1/books/{id}/soft-delete [patch]
func (h *BookHandler) SoftDelete(c *gin.Context) {
	b, err := h.svc.SoftDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(b, h.imageURLPrefix))
}

// HardDelete 物理删除图书
// @Summary      物理删除图书
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      401 {object} response.Response "未认证"
// @Failure      500 {object} response.Response "删除失败(包括图书不存在)"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) HardDelete(c *gin.Context) {
	b, err := h.svc.HardDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(b, h.imageURLPrefix))
}
