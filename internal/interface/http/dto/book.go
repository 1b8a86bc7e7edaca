package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
	"github.com/xiebiao/bookstore-inventory/internal/domain/category"
)

// CreateBookRequest 创建图书(multipart/form-data)
// 封面图通过image文件字段上传,不在此结构体中
type CreateBookRequest struct {
	Title          string `form:"title" binding:"required,max=200" example:"三体"`
	Author         string `form:"author" binding:"required,max=100" example:"刘慈欣"`
	Description    string `form:"description" binding:"max=5000" example:"地球往事三部曲第一部"`
	Price          string `form:"price" binding:"required,numeric" example:"59.00"`
	FinalPrice     string `form:"final_price" binding:"required,numeric" example:"45.50"`
	MainCategoryID string `form:"main_category_id" binding:"required,max=36" example:"5f0c6a1e-8d1b-4c53-9a34-0a3d2b1c9e7f"`
	SubCategoryID  string `form:"sub_category_id" binding:"omitempty,max=36" example:""`
}

// ToInput 转换为领域输入,价格必须是非负数
func (r *CreateBookRequest) ToInput() (book.CreateInput, error) {
	price, err := parsePrice("price", r.Price)
	if err != nil {
		return book.CreateInput{}, err
	}
	finalPrice, err := parsePrice("final_price", r.FinalPrice)
	if err != nil {
		return book.CreateInput{}, err
	}

	in := book.CreateInput{
		Title:          strings.TrimSpace(r.Title),
		Author:         strings.TrimSpace(r.Author),
		Description:    r.Description,
		Price:          price,
		FinalPrice:     finalPrice,
		MainCategoryID: r.MainCategoryID,
	}
	if r.SubCategoryID != "" {
		sub := r.SubCategoryID
		in.SubCategoryID = &sub
	}
	return in, nil
}

func parsePrice(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s格式错误", field)
	}
	return d, checkPrice(field, d)
}

func checkPrice(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return fmt.Errorf("%s不能为负数", field)
	}
	// decimal(10,2)
	if d.GreaterThanOrEqual(decimal.New(1, 8)) {
		return fmt.Errorf("%s超出范围", field)
	}
	return nil
}

// UpdateBookRequest 部分更新图书(JSON),未出现的字段不修改
type UpdateBookRequest struct {
	Title          *string          `json:"title" binding:"omitempty,min=1,max=200" example:"三体II"`
	Author         *string          `json:"author" binding:"omitempty,min=1,max=100"`
	Description    *string          `json:"description" binding:"omitempty,max=5000"`
	Price          *decimal.Decimal `json:"price" swaggertype:"string" example:"59.00"`
	FinalPrice     *decimal.Decimal `json:"final_price" swaggertype:"string" example:"39.90"`
	Image          *string          `json:"image" binding:"omitempty,max=255"`
	MainCategoryID *string          `json:"main_category_id" binding:"omitempty,min=1,max=36"`
	SubCategoryID  *string          `json:"sub_category_id" binding:"omitempty,max=36"`
}

// ToPatch 转换为领域Patch
func (r *UpdateBookRequest) ToPatch() (book.Patch, error) {
	if r.Price != nil {
		if err := checkPrice("price", *r.Price); err != nil {
			return book.Patch{}, err
		}
	}
	if r.FinalPrice != nil {
		if err := checkPrice("final_price", *r.FinalPrice); err != nil {
			return book.Patch{}, err
		}
	}
	return book.Patch{
		Title:          r.Title,
		Author:         r.Author,
		Description:    r.Description,
		Price:          r.Price,
		FinalPrice:     r.FinalPrice,
		Image:          r.Image,
		MainCategoryID: r.MainCategoryID,
		SubCategoryID:  r.SubCategoryID,
	}, nil
}

// ListBooksRequest 图书列表查询参数
type ListBooksRequest struct {
	PageRequest
	SortBy     string `form:"sort_by" binding:"omitempty,sortkey" example:"price"`
	Order      string `form:"order" binding:"omitempty,sortorder" example:"desc"`
	CategoryID string `form:"category_id" binding:"omitempty,max=36" example:"none"`
}

// ToParams 转换为领域查询参数(已通过binding校验)
func (r *ListBooksRequest) ToParams() (book.ListParams, error) {
	r.Normalize()

	sortBy, err := book.ParseSortKey(r.SortBy)
	if err != nil {
		return book.ListParams{}, err
	}
	order, err := book.ParseSortOrder(r.Order)
	if err != nil {
		return book.ListParams{}, err
	}
	categoryID := r.CategoryID
	if categoryID == "" {
		categoryID = book.CategoryAll
	}

	return book.ListParams{
		Page:       r.Page,
		PerPage:    r.PerPage,
		SortBy:     sortBy,
		Order:      order,
		CategoryID: categoryID,
	}, nil
}

// ErrImageTooLarge 封面图超过上传大小限制
var ErrImageTooLarge = errors.New("图片大小超出限制")

// BookResponse 图书详情
type BookResponse struct {
	ID             string            `json:"id" example:"0b6f3c1e-2d4a-4e8b-9c1f-3a5d7e9b1c2d"`
	Title          string            `json:"title" example:"三体"`
	Author         string            `json:"author" example:"刘慈欣"`
	Description    string            `json:"description" example:"地球往事三部曲第一部"`
	Price          string            `json:"price" example:"59.00"`       // 标价
	FinalPrice     string            `json:"final_price" example:"45.50"` // 售价
	Image          *string           `json:"image" example:"santi.png"`
	ImageURL       *string           `json:"image_url,omitempty" example:"/uploads/santi.png"`
	MainCategoryID string            `json:"main_category_id"`
	SubCategoryID  *string           `json:"sub_category_id"`
	MainCategory   *CategoryResponse `json:"main_category,omitempty"`
	SubCategory    *CategoryResponse `json:"sub_category,omitempty"`
	CreatedAt      string            `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt      string            `json:"updated_at" example:"2024-01-15 10:30:00"`
	DeletedAt      *string           `json:"deleted_at"`
}

// NewBookResponse 领域实体 → 响应
// imageURLPrefix为空时不返回image_url
func NewBookResponse(b *book.Book, imageURLPrefix string) *BookResponse {
	resp := &BookResponse{
		ID:             b.ID,
		Title:          b.Title,
		Author:         b.Author,
		Description:    b.Description,
		Price:          b.Price.StringFixed(2),
		FinalPrice:     b.FinalPrice.StringFixed(2),
		Image:          b.Image,
		MainCategoryID: b.MainCategoryID,
		SubCategoryID:  b.SubCategoryID,
		MainCategory:   newCategoryResponseOrNil(b.MainCategory),
		SubCategory:    newCategoryResponseOrNil(b.SubCategory),
		CreatedAt:      formatTime(b.CreatedAt),
		UpdatedAt:      formatTime(b.UpdatedAt),
		DeletedAt:      formatTimePtr(b.DeletedAt),
	}
	if b.Image != nil && imageURLPrefix != "" {
		url := strings.TrimRight(imageURLPrefix, "/") + "/" + *b.Image
		resp.ImageURL = &url
	}
	return resp
}

// NewBookListResponse 批量转换
func NewBookListResponse(books []*book.Book, imageURLPrefix string) []*BookResponse {
	out := make([]*BookResponse, len(books))
	for i, b := range books {
		out[i] = NewBookResponse(b, imageURLPrefix)
	}
	return out
}

func newCategoryResponseOrNil(c *category.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return NewCategoryResponse(c)
}
