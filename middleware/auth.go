package middleware

import (
	"errors"

	"weiblog/model"
	"weiblog/service"
	"weiblog/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookie 存放会话 token 的 cookie 名
const SessionCookie = "session_token"

const currentUserKey = "current_user"

// ResolveUser 身份解析中间件
// 从 cookie 取会话 token，解析出当前用户放进上下文
// cookie 缺失、token 过期、用户行不存在一律当作未登录，不报错
func ResolveUser(sessions *service.SessionService, users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			c.Next()
			return
		}

		userID, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, service.ErrNoSession) {
				// 会话存储故障才算错误，交给恢复中间件兜底
				_ = c.Error(err)
			}
			c.Next()
			return
		}

		user, err := users.Get(userID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser 从上下文取当前用户
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	return v.(*model.User), true
}

// RequireLogin 未登录跳转到登录页
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			utils.Redirect(c, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin 未登录或非管理员返回 401
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin() {
			utils.AbortUnauthorized(c)
			return
		}
		c.Next()
	}
}
