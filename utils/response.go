package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Render 渲染页面模板
func Render(c *gin.Context, name string, data gin.H) {
	c.HTML(http.StatusOK, name, data)
}

// Redirect 302 跳转
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// 错误状态页

// AbortNotFound 404 资源不存在
func AbortNotFound(c *gin.Context) {
	c.String(http.StatusNotFound, "404 Not Found")
	c.Abort()
}

// AbortUnauthorized 401 未授权
func AbortUnauthorized(c *gin.Context) {
	c.String(http.StatusUnauthorized, "401 Unauthorized")
	c.Abort()
}

// AbortServerError 500 服务器错误
func AbortServerError(c *gin.Context) {
	c.String(http.StatusInternalServerError, "500 Internal Server Error")
	c.Abort()
}
