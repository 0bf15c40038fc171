package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/realty-crm/internal/api/shared/dto"
	"github.com/feral-file/realty-crm/internal/logger"
	"github.com/feral-file/realty-crm/internal/webhook"
)

// MaxWebhookBodySize bounds the inbound webhook body read for signature checks
// Larger bodies are rejected, never truncated
const MaxWebhookBodySize = 1 << 20

const unauthorizedWebhookMessage = "Unauthorized webhook call ignored"

// WebhookAuth checks the shared secret or body signature of inbound automation calls
// Rejected calls are acknowledged with 200 so the caller never retries them
// An empty secret leaves the endpoint open
func WebhookAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		if webhook.VerifySharedSecret(secret, c.GetHeader(webhook.HeaderSecret)) {
			c.Next()
			return
		}

		signature := c.GetHeader(webhook.HeaderSignature)
		if signature != "" {
			body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxWebhookBodySize))
			if err != nil {
				logger.WarnCtx(c.Request.Context(), "Unreadable webhook body",
					zap.Error(err),
					zap.String("path", c.Request.URL.Path),
					zap.String("client_ip", c.ClientIP()),
				)
				ackRejected(c)
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
			if webhook.VerifyBodySignature(secret, body, signature) {
				c.Next()
				return
			}
		}

		logger.WarnCtx(c.Request.Context(), "Unauthorized webhook call",
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
			zap.Bool("has_signature", signature != ""),
		)
		ackRejected(c)
	}
}

func ackRejected(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusOK, dto.WebhookAck{
		Success: true,
		Message: unauthorizedWebhookMessage,
	})
}
