package controller

import (
	"io"

	"github.com/feedhub/feedhub-service/utils"
	"github.com/gin-gonic/gin"
)

// WhatsAppWebhook is the mock downstream messaging sink: it logs whatever it
// receives and acknowledges.
func (ctrl *Controller) WhatsAppWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Webhook] Failed to read payload: %v", err)
	} else {
		ctrl.Infra.Logger.InfoWithContextf(ctx, "[Webhook] WhatsApp webhook received: %s", string(body))
	}

	utils.JSON200(c, gin.H{"success": true})
}
