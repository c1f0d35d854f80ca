package telegram

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"solosync/internal/workflow"
	pkgResponse "solosync/pkg/response"
	pkgTelegram "solosync/pkg/telegram"
)

// HandleWebhook godoc
// @Summary     Telegram webhook
// @Description Accepts Bot API updates, answers immediately and syncs the message in the background.
// @Tags        Telegram
// @Accept      json
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /webhook/telegram [POST]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.verifySecret(c.GetHeader(pkgTelegram.HeaderSecretToken)) {
		h.l.Warnf(ctx, "workflow.telegram.HandleWebhook: secret token mismatch from %s", c.ClientIP())
		c.AbortWithStatusJSON(http.StatusUnauthorized, pkgResponse.Resp{
			ErrorCode: http.StatusUnauthorized,
			Message:   "Unauthorized",
		})
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "workflow.telegram.HandleWebhook: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), processTimeout)
	go func() {
		defer cancel()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "workflow.telegram.processMessage: %v", err)
			if sendErr := h.bot.SendMessage(bgCtx, msg.Chat.ID, msgFailed); sendErr != nil {
				h.l.Warnf(bgCtx, "workflow.telegram.processMessage: failed to send error reply: %v", sendErr)
			}
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) verifySecret(got string) bool {
	if h.secretToken == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.secretToken)) == 1
}

// processMessage answers commands and syncs everything else.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch msg.Command() {
	case "/start":
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgStart)
	case "/help":
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgHelp)
	}

	out, err := h.uc.Sync(ctx, workflow.SyncInput{RawText: text, Platform: PlatformTelegram})
	if err != nil {
		return err
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, syncReply(out))
}
