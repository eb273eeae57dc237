package utils

import "github.com/gin-gonic/gin"

const flashCookie = "flash"

// SetFlash 写入一条闪现消息，随下一次页面渲染展示后即清除
func SetFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookie, message, 60, "/", "", false, true)
}

// PopFlash 读取并清除闪现消息，没有则返回空串
func PopFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return message
}
