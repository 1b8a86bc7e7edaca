package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-inventory/internal/interface/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
	dto.RegisterValidators()
}

// apiResponse 统一响应结构(data延迟解析)
type apiResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "解析响应失败: %s", w.Body.String())
	return resp
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, v interface{}) apiResponse {
	t.Helper()
	resp := decode(t, w)
	require.NoError(t, json.Unmarshal(resp.Data, v), "解析data失败: %s", string(resp.Data))
	return resp
}

type pageData[T any] struct {
	List       []T   `json:"list"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}
