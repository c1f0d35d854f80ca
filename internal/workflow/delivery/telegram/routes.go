package telegram

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the Telegram webhook endpoint.
func RegisterRoutes(r gin.IRoutes, h Handler) {
	r.POST("/webhook/telegram", h.HandleWebhook)
}
