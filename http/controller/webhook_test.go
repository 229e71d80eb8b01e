package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/feedhub/feedhub-service/config"
	"github.com/feedhub/feedhub-service/infra"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWhatsAppWebhook_AcknowledgesAnyPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.EnvConfig{}
	cfg.Environment.Mode = "development"
	ctrl := &Controller{
		Config: &config.Config{EnvConfig: cfg},
		Infra:  &infra.Infra{Logger: infra.InitLoggerClient(cfg)},
	}

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/webhook/whatsapp", strings.NewReader(`{"ad":"anything"}`))

	ctrl.WhatsAppWebhook(c)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"success":true}`, recorder.Body.String())
}
