package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_NoEndpointIsNoop(t *testing.T) {
	p, err := Setup(context.Background(), Config{ServiceName: "contactrelay"})
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	assert.NoError(t, p.ForceFlush(context.Background()))
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNilProvider(t *testing.T) {
	var p *Provider
	assert.False(t, p.Enabled())
	assert.NoError(t, p.ForceFlush(context.Background()))
}

func TestTrimScheme(t *testing.T) {
	tests := map[string]string{
		"localhost:4317":            "localhost:4317",
		"http://collector:4317":     "collector:4317",
		"https://otel.example.com/": "otel.example.com",
	}
	for in, want := range tests {
		assert.Equal(t, want, trimScheme(in), in)
	}
}
