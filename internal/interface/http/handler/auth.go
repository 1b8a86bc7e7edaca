package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookstore-inventory/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-inventory/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-inventory/pkg/jwt"
	"github.com/xiebiao/bookstore-inventory/pkg/response"
)

// TokenRevoker 吊销Token(由Redis黑名单实现)
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
}

// AuthHandler 认证相关处理器
type AuthHandler struct {
	revoker TokenRevoker
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(revoker TokenRevoker) *AuthHandler {
	return &AuthHandler{revoker: revoker}
}

// Revoke 吊销当前Token
// @Summary      吊销Token
// @Description  把请求携带的Token加入黑名单，有效期内不能再使用
// @Tags         认证
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=dto.RevokeTokenResponse}
// @Failure      401 {object} response.Response "未认证"
// @Failure      500 {object} response.Response "系统错误"
// @Router       /api/v1/auth/revoke [post]
func (h *AuthHandler) Revoke(c *gin.Context) {
	token := middleware.GetToken(c)
	ttl := jwt.RemainingTTL(middleware.GetClaims(c))

	if err := h.revoker.Revoke(c.Request.Context(), token, ttl); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.RevokeTokenResponse{Revoked: true})
}
