package handler

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
	"github.com/xiebiao/bookstore-inventory/internal/domain/category"
	"github.com/xiebiao/bookstore-inventory/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
)

// fakeBookService 记录调用参数，返回预设结果
type fakeBookService struct {
	listParams  book.ListParams
	listResult  *book.ListResult
	createIn    book.CreateInput
	createImage *book.Image
	patch       book.Patch
	err         error
}

func sampleBook() *book.Book {
	img := "santi.png"
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local)
	return &book.Book{
		ID:             "b1",
		Title:          "三体",
		Author:         "刘慈欣",
		Price:          decimal.RequireFromString("59"),
		FinalPrice:     decimal.RequireFromString("45.5"),
		Image:          &img,
		MainCategoryID: "c1",
		MainCategory:   &category.Category{ID: "c1", Name: "小说", CreatedAt: now, UpdatedAt: now},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (f *fakeBookService) GetByID(_ context.Context, id string) (*book.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	b := sampleBook()
	b.ID = id
	return b, nil
}

func (f *fakeBookService) List(_ context.Context, p book.ListParams) (*book.ListResult, error) {
	f.listParams = p
	if f.err != nil {
		return nil, f.err
	}
	return f.listResult, nil
}

func (f *fakeBookService) Create(_ context.Context, in book.CreateInput, image *book.Image) (*book.Book, error) {
	f.createIn = in
	f.createImage = image
	if f.err != nil {
		return nil, f.err
	}
	return sampleBook(), nil
}

func (f *fakeBookService) Update(_ context.Context, _ string, patch book.Patch) (*book.Book, error) {
	f.patch = patch
	if f.err != nil {
		return nil, f.err
	}
	return sampleBook(), nil
}

func (f *fakeBookService) SoftDelete(_ context.Context, _ string) (*book.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	b := sampleBook()
	now := time.Now()
	b.DeletedAt = &now
	return b, nil
}

func (f *fakeBookService) HardDelete(_ context.Context, _ string) (*book.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	return sampleBook(), nil
}

func (f *fakeBookService) Count(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return 42, nil
}

func setupBookRouter(svc book.Service) *gin.Engine {
	h := NewBookHandler(svc, "/uploads", 1024)
	r := gin.New()
	r.GET("/books", h.List)
	r.GET("/books/count", h.Count)
	r.GET("/books/:id", h.Get)
	r.POST("/books", h.Create)
	r.PATCH("/books/:id", h.Update)
	r.PATCH("/books/:id/soft-delete", h.SoftDelete)
	r.DELETE("/books/:id", h.HardDelete)
	return r
}

func TestBookHandler_List(t *testing.T) {
	t.Run("默认参数", func(t *testing.T) {
		svc := &fakeBookService{listResult: &book.ListResult{
			Items: []*book.Book{sampleBook()}, TotalCount: 11, TotalPages: 2,
		}}
		w := httptest.NewRecorder()
		setupBookRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, book.ListParams{
			Page: 1, PerPage: 10, SortBy: book.SortNone, Order: book.OrderAsc, CategoryID: book.CategoryAll,
		}, svc.listParams)

		var page pageData[dto.BookResponse]
		decodeData(t, w, &page)
		assert.Equal(t, int64(11), page.Total)
		assert.Equal(t, 2, page.TotalPages)
		require.Len(t, page.List, 1)
		assert.Equal(t, "45.50", page.List[0].FinalPrice)
		require.NotNil(t, page.List[0].ImageURL)
		assert.Equal(t, "/uploads/santi.png", *page.List[0].ImageURL)
	})

	t.Run("排序与分类过滤", func(t *testing.T) {
		svc := &fakeBookService{listResult: &book.ListResult{Items: []*book.Book{sampleBook()}}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/books?page=2&per_page=5&sort_by=price&order=desc&category_id=c9", nil)
		setupBookRouter(svc).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, book.ListParams{
			Page: 2, PerPage: 5, SortBy: book.SortPrice, Order: book.OrderDesc, CategoryID: "c9",
		}, svc.listParams)
	})

	t.Run("非法参数", func(t *testing.T) {
		for _, query := range []string{
			"sort_by=title",
			"order=down",
			"page=0",
			"per_page=101",
			"page=abc",
		} {
			w := httptest.NewRecorder()
			setupBookRouter(&fakeBookService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books?"+query, nil))
			assert.Equal(t, http.StatusBadRequest, w.Code, query)
			assert.Equal(t, apperrors.ErrCodeInvalidParams, decode(t, w).Code, query)
		}
	})

	t.Run("当前页为空返回404", func(t *testing.T) {
		svc := &fakeBookService{err: book.ErrNoBooksFound}
		w := httptest.NewRecorder()
		setupBookRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books?page=9", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookHandler_Get(t *testing.T) {
	w := httptest.NewRecorder()
	setupBookRouter(&fakeBookService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/b42", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var b dto.BookResponse
	decodeData(t, w, &b)
	assert.Equal(t, "b42", b.ID)
	require.NotNil(t, b.MainCategory)
	assert.Equal(t, "小说", b.MainCategory.Name)
	assert.Nil(t, b.SubCategory)
	assert.Equal(t, "2024-01-15 10:30:00", b.CreatedAt)

	w = httptest.NewRecorder()
	setupBookRouter(&fakeBookService{err: book.ErrBookNotFound}).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "图书不存在", decode(t, w).Message)
}

// multipartBody 构造multipart请求体，fileContent为nil时不带image字段
func multipartBody(t *testing.T, fields map[string]string, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileContent != nil {
		fw, err := mw.CreateFormFile("image", fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func validBookFields() map[string]string {
	return map[string]string{
		"title":            "三体",
		"author":           "刘慈欣",
		"price":            "59.00",
		"final_price":      "45.50",
		"main_category_id": "c1",
		"sub_category_id":  "c2",
	}
}

func TestBookHandler_Create(t *testing.T) {
	t.Run("带封面图", func(t *testing.T) {
		svc := &fakeBookService{}
		body, contentType := multipartBody(t, validBookFields(), "santi.png", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/books", body)
		req.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		setupBookRouter(svc).ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, "三体", svc.createIn.Title)
		assert.True(t, svc.createIn.FinalPrice.Equal(decimal.RequireFromString("45.5")))
		require.NotNil(t, svc.createIn.SubCategoryID)
		assert.Equal(t, "c2", *svc.createIn.SubCategoryID)
		require.NotNil(t, svc.createImage)
		assert.Equal(t, "santi.png", svc.createImage.Name)
		assert.Equal(t, []byte("png-bytes"), svc.createImage.Content)
	})

	t.Run("不带封面图", func(t *testing.T) {
		svc := &fakeBookService{}
		fields := validBookFields()
		delete(fields, "sub_category_id")
		body, contentType := multipartBody(t, fields, "", nil)
		req := httptest.NewRequest(http.MethodPost, "/books", body)
		req.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		setupBookRouter(svc).ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Nil(t, svc.createImage)
		assert.Nil(t, svc.createIn.SubCategoryID)
	})

	t.Run("参数校验", func(t *testing.T) {
		cases := map[string]func(map[string]string){
			"缺少书名":   func(f map[string]string) { delete(f, "title") },
			"价格不是数字": func(f map[string]string) { f["price"] = "abc" },
			"售价为负数":  func(f map[string]string) { f["final_price"] = "-1" },
			"缺少主分类":  func(f map[string]string) { delete(f, "main_category_id") },
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				svc := &fakeBookService{}
				fields := validBookFields()
				mutate(fields)
				body, contentType := multipartBody(t, fields, "", nil)
				req := httptest.NewRequest(http.MethodPost, "/books", body)
				req.Header.Set("Content-Type", contentType)

				w := httptest.NewRecorder()
				setupBookRouter(svc).ServeHTTP(w, req)
				assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
				assert.Empty(t, svc.createIn.Title, "校验失败时不应调用服务")
			})
		}
	})

	t.Run("图片超过大小限制", func(t *testing.T) {
		body, contentType := multipartBody(t, validBookFields(), "big.png", bytes.Repeat([]byte("x"), 2048))
		req := httptest.NewRequest(http.MethodPost, "/books", body)
		req.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		setupBookRouter(&fakeBookService{}).ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("分类不存在返回404", func(t *testing.T) {
		svc := &fakeBookService{err: book.ErrMainCategoryNotFound}
		body, contentType := multipartBody(t, validBookFields(), "", nil)
		req := httptest.NewRequest(http.MethodPost, "/books", body)
		req.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		setupBookRouter(svc).ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "主分类不存在", decode(t, w).Message)
	})
}

func TestBookHandler_Update(t *testing.T) {
	t.Run("只传部分字段", func(t *testing.T) {
		svc := &fakeBookService{}
		req := httptest.NewRequest(http.MethodPatch, "/books/b1", strings.NewReader(`{"title":"三体II","final_price":"39.90"}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		setupBookRouter(svc).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.NotNil(t, svc.patch.Title)
		assert.Equal(t, "三体II", *svc.patch.Title)
		require.NotNil(t, svc.patch.FinalPrice)
		assert.True(t, svc.patch.FinalPrice.Equal(decimal.RequireFromString("39.9")))
		assert.Nil(t, svc.patch.Author)
		assert.Nil(t, svc.patch.Price)
	})

	t.Run("负价格", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/books/b1", strings.NewReader(`{"price":-3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		setupBookRouter(&fakeBookService{}).ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("更新失败返回500且不泄露细节", func(t *testing.T) {
		svc := &fakeBookService{err: apperrors.Wrap(errors.New("record not found"), "更新图书失败")}
		req := httptest.NewRequest(http.MethodPatch, "/books/missing", strings.NewReader(`{"title":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		setupBookRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "更新图书失败", decode(t, w).Message)
		assert.NotContains(t, w.Body.String(), "record not found")
	})
}

func TestBookHandler_Deletes(t *testing.T) {
	w := httptest.NewRecorder()
	setupBookRouter(&fakeBookService{}).ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/books/b1/soft-delete", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var b dto.BookResponse
	decodeData(t, w, &b)
	assert.NotNil(t, b.DeletedAt)

	w = httptest.NewRecorder()
	setupBookRouter(&fakeBookService{}).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/books/b1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	svc := &fakeBookService{err: apperrors.Wrap(errors.New("gone"), "删除图书失败")}
	setupBookRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/books/b1", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestBookHandler_Count(t *testing.T) {
	w := httptest.NewRecorder()
	setupBookRouter(&fakeBookService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/count", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var c dto.CountResponse
	decodeData(t, w, &c)
	assert.Equal(t, int64(42), c.Count)
}
