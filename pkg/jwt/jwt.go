package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
)

// Manager JWT管理器
// 设计说明：
// 1. 只签发一种Token：维护人员调用写接口（上架、修改、删除）时携带的Access Token
// 2. Token由cmd/token离线签发，服务端只负责校验
// 3. 主动失效通过Redis黑名单实现（见persistence/redis.TokenBlacklist）
type Manager struct {
	secret   string        // JWT签名密钥
	issuer   string        // 签发方
	tokenTTL time.Duration // Token有效期
}

// NewManager 创建JWT管理器
func NewManager(secret, issuer string, tokenTTL time.Duration) *Manager {
	return &Manager{
		secret:   secret,
		issuer:   issuer,
		tokenTTL: tokenTTL,
	}
}

// Claims 自定义JWT Claims
// Subject使用RegisteredClaims.Subject（操作人标识）
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken 签发Token
// 返回Token字符串和过期时间
func (m *Manager) GenerateToken(subject, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.tokenTTL)

	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.issuer,
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.secret))
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "生成Token失败")
	}

	return signed, expiresAt, nil
}

// ParseToken 解析并验证Token
// 学习要点：
// 1. 验证签名算法必须是HMAC（防止alg=none攻击）
// 2. 验证过期时间（exp）与生效时间（nbf）
// 3. 验证签发方（iss）
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非法的签名算法: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	}, jwt.WithIssuer(m.issuer))

	if err != nil {
		// v5的错误是包装过的，必须用errors.Is判断
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

// RemainingTTL Token剩余有效期（用于设置黑名单过期时间）
func RemainingTTL(claims *Claims) time.Duration {
	if claims == nil || claims.ExpiresAt == nil {
		return 0
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 0 {
		return 0
	}
	return ttl
}
