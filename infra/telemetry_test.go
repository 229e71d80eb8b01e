package infra

import (
	"testing"

	"github.com/feedhub/feedhub-service/config"
	"github.com/stretchr/testify/assert"
)

func TestNewTelemetryResourceAttributes(t *testing.T) {
	cfg := &config.EnvConfig{}
	cfg.Grafana.ServiceName = "feedhub-service"
	cfg.Environment.Mode = "staging"

	res := newTelemetryResource(cfg)

	attrs := map[string]string{}
	for _, kv := range res.Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsString()
	}
	assert.Equal(t, "feedhub-service", attrs["service.name"])
	assert.Equal(t, "staging", attrs["deployment.environment.name"])
}

func TestInitTelemetryDisabledWithoutEndpoint(t *testing.T) {
	cfg := &config.EnvConfig{}

	tel := InitTelemetry(cfg)
	assert.Nil(t, tel)
	assert.NoError(t, tel.Shutdown(t.Context()))
}
