package telegram

import (
	"time"

	"github.com/gin-gonic/gin"

	"solosync/internal/workflow"
	pkgLog "solosync/pkg/log"
	pkgTelegram "solosync/pkg/telegram"
)

// PlatformTelegram tags communications received through the bot.
const PlatformTelegram = "Telegram"

const processTimeout = 30 * time.Second

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l           pkgLog.Logger
	uc          workflow.UseCase
	bot         pkgTelegram.IBot
	secretToken string
}

// New creates a Telegram delivery handler. A non-empty secretToken must match
// the header Telegram sends with every update.
func New(l pkgLog.Logger, uc workflow.UseCase, bot pkgTelegram.IBot, secretToken string) Handler {
	return &handler{
		l:           l,
		uc:          uc,
		bot:         bot,
		secretToken: secretToken,
	}
}
