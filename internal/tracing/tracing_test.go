package tracing

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsFromEnv(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "TRUE")
	t.Setenv("OTEL_SERVICE_NAME", "")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "http/protobuf")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4318")
	t.Setenv("OTEL_TRACES_SAMPLER", "")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "")

	s := SettingsFromEnv()

	assert.True(t, s.Disabled)
	assert.Equal(t, DefaultServiceName, s.ServiceName)
	assert.Equal(t, "http/protobuf", s.Protocol)
	assert.Equal(t, "http://collector:4318", s.Endpoint)
	assert.Equal(t, "parentbased_always_on", s.Sampler)
	assert.Equal(t, "1.0", s.SamplerArg)
}

func TestNewSampler(t *testing.T) {
	tests := []struct {
		name, arg string
		contains  string
	}{
		{"always_on", "", "AlwaysOnSampler"},
		{"always_off", "", "AlwaysOffSampler"},
		{"traceidratio", "0.25", "TraceIDRatioBased{0.25}"},
		{"traceidratio", "oops", "AlwaysOnSampler"},
		{"parentbased_traceidratio", "0.5", "TraceIDRatioBased{0.5}"},
		{"parentbased_always_off", "", "ParentBased{root:AlwaysOffSampler"},
		{"something_else", "", "ParentBased{root:AlwaysOnSampler"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.arg, func(t *testing.T) {
			assert.Contains(t, newSampler(tt.name, tt.arg).Description(), tt.contains)
		})
	}
}

func TestInit_Disabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	shutdown, err := Init(context.Background(), Settings{Disabled: true}, logger)

	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"tracing_enabled":false`)
}

func TestInit_UnsupportedProtocolDegrades(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	shutdown, err := Init(context.Background(), Settings{ServiceName: "test", Protocol: "carrier-pigeon"}, logger)

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.True(t, strings.Contains(buf.String(), "unsupported OTLP protocol: carrier-pigeon"))
}
