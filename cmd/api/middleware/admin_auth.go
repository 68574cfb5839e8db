package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"xeo/cmd/api/auth"
	"xeo/internal/logger"
)

// AdminAuthMiddleware 는 요청 헤더의 JWT 를 검증하고 role 이 admin 인지 확인한다.
// 검증에 성공하면 user_code 와 role 을 gin 컨텍스트에 저장한다.
func AdminAuthMiddleware(manager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		userCode, role, err := manager.Parse(token)
		if err != nil {
			logger.Log.Warnf("token parse error: %v", err)
			auth.AbortWithUnauthorized(c, err)
			return
		}

		if role != auth.RoleAdmin {
			logger.Log.Warnf("access denied: user %s has role %s, want admin", userCode, role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden_insufficient_permissions"})
			return
		}

		c.Set("user_code", userCode)
		c.Set("role", role)

		c.Next()
	}
}
