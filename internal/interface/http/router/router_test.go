package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
	"github.com/xiebiao/bookstore-inventory/internal/domain/category"
	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/persistence/database"
	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/storage"
	"github.com/xiebiao/bookstore-inventory/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-inventory/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
	"github.com/xiebiao/bookstore-inventory/pkg/jwt"
)

type testApp struct {
	engine *gin.Engine
	token  string
}

type apiResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setupApp 组装完整的HTTP服务：内存SQLite + miniredis + 临时目录存储
func setupApp(t *testing.T) *testApp {
	t.Helper()
	return setupAppWithRoot(t, t.TempDir())
}

func setupAppWithRoot(t *testing.T, rootDir string) *testApp {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "test", MaxUploadSize: 1 << 20},
		Database: config.DatabaseConfig{
			Driver:      "sqlite",
			DBName:      fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
			AutoMigrate: true,
		},
		JWT: config.JWTConfig{Secret: "router-test-secret", Issuer: "bookstore-test", TokenTTL: time.Hour},
		Storage: config.StorageConfig{
			Driver:    "local",
			RootDir:   rootDir,
			URLPrefix: "/uploads",
		},
	}

	db, err := database.NewDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	images, err := storage.New(cfg)
	require.NoError(t, err)

	categoryRepo := database.NewCategoryRepository(db)
	bookSvc := book.NewService(database.NewBookRepository(db), categoryRepo, images)
	categorySvc := category.NewService(categoryRepo)

	blacklist := redis.NewTokenBlacklist(client)
	manager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TokenTTL)
	token, _, err := manager.GenerateToken("ops", middleware.RoleAdmin)
	require.NoError(t, err)

	engine := NewEngine(cfg,
		handler.NewBookHandler(bookSvc, cfg.Storage.URLPrefix, cfg.Server.MaxUploadSize),
		handler.NewCategoryHandler(categorySvc),
		handler.NewAuthHandler(blacklist),
		middleware.NewAuthMiddleware(manager, blacklist),
		images,
	)
	return &testApp{engine: engine, token: token}
}

func (a *testApp) do(t *testing.T, method, path, contentType string, body *bytes.Buffer, auth bool) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if auth {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	var resp apiResponse
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func (a *testApp) doJSON(t *testing.T, method, path, body string, auth bool) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	return a.do(t, method, path, "application/json", bytes.NewBufferString(body), auth)
}

func (a *testApp) createBook(t *testing.T, fields map[string]string, imageName string, image []byte) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if image != nil {
		fw, err := mw.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return a.do(t, http.MethodPost, "/api/v1/books", mw.FormDataContentType(), body, true)
}

type idData struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	FinalPrice   string  `json:"final_price"`
	Image        *string `json:"image"`
	ImageURL     *string `json:"image_url"`
	DeletedAt    *string `json:"deleted_at"`
	MainCategory *struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"main_category"`
}

func unmarshalData(t *testing.T, resp apiResponse, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, v), string(resp.Data))
}

func TestHealthAndNoRoute(t *testing.T) {
	app := setupApp(t)

	w, resp := app.do(t, http.MethodGet, "/ping", "", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, resp.Code)

	w, resp = app.do(t, http.MethodGet, "/api/v1/nothing", "", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperrors.ErrCodeNotFound, resp.Code)
}

// 相对路径的存储目录在启动时解析一次，之后切换工作目录不影响静态文件访问
func TestUploadsServedFromResolvedRoot(t *testing.T) {
	chdir(t, t.TempDir())
	app := setupAppWithRoot(t, "uploads")
	chdir(t, t.TempDir())

	w, resp := app.doJSON(t, http.MethodPost, "/api/v1/categories", `{"name":"小说"}`, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var fiction idData
	unmarshalData(t, resp, &fiction)

	w, resp = app.createBook(t, map[string]string{
		"title":            "三体",
		"author":           "刘慈欣",
		"price":            "59.00",
		"final_price":      "45.50",
		"main_category_id": fiction.ID,
	}, "cover.png", []byte("cover-bytes"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created idData
	unmarshalData(t, resp, &created)
	require.NotNil(t, created.ImageURL)

	w, _ = app.do(t, http.MethodGet, *created.ImageURL, "", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cover-bytes", w.Body.String())
}

func TestWritesRequireAdminToken(t *testing.T) {
	app := setupApp(t)

	w, resp := app.doJSON(t, http.MethodPost, "/api/v1/categories", `{"name":"小说"}`, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperrors.ErrCodeUnauthorized, resp.Code)

	w, _ = app.do(t, http.MethodDelete, "/api/v1/books/whatever", "", nil, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 读接口无需认证
	w, _ = app.do(t, http.MethodGet, "/api/v1/categories/count", "", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBookLifecycle(t *testing.T) {
	app := setupApp(t)

	w, resp := app.doJSON(t, http.MethodPost, "/api/v1/categories", `{"name":"小说","description":"长篇小说"}`, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var fiction idData
	unmarshalData(t, resp, &fiction)
	require.NotEmpty(t, fiction.ID)

	fields := map[string]string{
		"title":            "三体",
		"author":           "刘慈欣",
		"price":            "59.00",
		"final_price":      "45.50",
		"main_category_id": fiction.ID,
	}

	// 引用不存在的分类
	missing := map[string]string{}
	for k, v := range fields {
		missing[k] = v
	}
	missing["main_category_id"] = uuid.NewString()
	w, resp = app.createBook(t, missing, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "主分类不存在", resp.Message)

	missing["main_category_id"] = fiction.ID
	missing["sub_category_id"] = uuid.NewString()
	w, resp = app.createBook(t, missing, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "子分类不存在", resp.Message)

	// 带封面图创建
	w, resp = app.createBook(t, fields, "santi.png", []byte("fake-png"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created idData
	unmarshalData(t, resp, &created)
	require.NotNil(t, created.Image)
	assert.Equal(t, "santi.png", *created.Image)
	require.NotNil(t, created.ImageURL)
	assert.Equal(t, "/uploads/santi.png", *created.ImageURL)

	w, _ = app.do(t, http.MethodGet, *created.ImageURL, "", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fake-png", w.Body.String())

	// 详情带主分类
	w, resp = app.do(t, http.MethodGet, "/api/v1/books/"+created.ID, "", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	var detail idData
	unmarshalData(t, resp, &detail)
	require.NotNil(t, detail.MainCategory)
	assert.Equal(t, "小说", detail.MainCategory.Name)
	assert.Equal(t, "45.50", detail.FinalPrice)

	// 列表
	w, resp = app.do(t, http.MethodGet, "/api/v1/books?sort_by=price&order=desc", "", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		List  []idData `json:"list"`
		Total int64    `json:"total"`
	}
	unmarshalData(t, resp, &page)
	require.Len(t, page.List, 1)
	assert.Equal(t, int64(1), page.Total)
	require.NotNil(t, page.List[0].MainCategory, "列表项带主分类")
	assert.Equal(t, fiction.ID, page.List[0].MainCategory.ID)
	assert.Equal(t, "小说", page.List[0].MainCategory.Name)

	w, _ = app.do(t, http.MethodGet, "/api/v1/books?category_id="+uuid.NewString(), "", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = app.do(t, http.MethodGet, "/api/v1/books?sort_by=author", "", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 部分更新
	w, resp = app.doJSON(t, http.MethodPatch, "/api/v1/books/"+created.ID, `{"title":"三体 地球往事"}`, true)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated idData
	unmarshalData(t, resp, &updated)
	assert.Equal(t, "三体 地球往事", updated.Title)
	assert.Equal(t, "45.50", updated.FinalPrice)

	// 软删除后不可见
	w, resp = app.do(t, http.MethodPatch, "/api/v1/books/"+created.ID+"/soft-delete", "", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var softDeleted idData
	unmarshalData(t, resp, &softDeleted)
	assert.NotNil(t, softDeleted.DeletedAt)

	w, _ = app.do(t, http.MethodGet, "/api/v1/books/"+created.ID, "", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = app.do(t, http.MethodGet, "/api/v1/books", "", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, resp = app.do(t, http.MethodGet, "/api/v1/books/count", "", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":0}`, string(resp.Data))

	// 已软删除的记录也能物理删除，之后再删失败
	w, _ = app.do(t, http.MethodDelete, "/api/v1/books/"+created.ID, "", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	w, resp = app.do(t, http.MethodDelete, "/api/v1/books/"+created.ID, "", nil, true)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperrors.ErrCodeInternal, resp.Code)
}

func TestCategoryLifecycle(t *testing.T) {
	app := setupApp(t)

	ids := make([]string, 0, 3)
	for _, name := range []string{"小说", "科幻", "历史"} {
		w, resp := app.doJSON(t, http.MethodPost, "/api/v1/categories", fmt.Sprintf(`{"name":%q}`, name), true)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var c idData
		unmarshalData(t, resp, &c)
		ids = append(ids, c.ID)
	}

	w, resp := app.do(t, http.MethodGet, "/api/v1/categories?page=2&per_page=2", "", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		List       []idData `json:"list"`
		Total      int64    `json:"total"`
		TotalPages int      `json:"total_pages"`
	}
	unmarshalData(t, resp, &page)
	assert.Len(t, page.List, 1)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.TotalPages)

	w, _ = app.do(t, http.MethodGet, "/api/v1/categories?page=3&per_page=2", "", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = app.do(t, http.MethodPatch, "/api/v1/categories/"+ids[0]+"/soft-delete", "", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = app.do(t, http.MethodGet, "/api/v1/categories/"+ids[0], "", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 软删除的记录不能再更新
	w, _ = app.doJSON(t, http.MethodPatch, "/api/v1/categories/"+ids[0], `{"name":"文学"}`, true)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w, resp = app.do(t, http.MethodGet, "/api/v1/categories/count", "", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":2}`, string(resp.Data))
}

func TestRevokeToken(t *testing.T) {
	app := setupApp(t)

	w, _ := app.do(t, http.MethodPost, "/api/v1/auth/revoke", "", nil, true)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, resp := app.doJSON(t, http.MethodPost, "/api/v1/categories", `{"name":"小说"}`, true)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperrors.ErrCodeTokenRevoked, resp.Code)
}

// chdir 切换工作目录并在测试结束时恢复(等价于 Go 1.24 的 t.Chdir)
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
