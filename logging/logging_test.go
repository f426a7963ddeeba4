package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		env   string
		level zapcore.Level
		debug bool
	}{
		{EnvLocal, zapcore.DebugLevel, true},
		{EnvDevelopment, zapcore.InfoLevel, false},
		{EnvProduction, zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			l, err := New(tt.env)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.level))
			assert.Equal(t, tt.debug, l.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestNewUnknownEnv(t *testing.T) {
	_, err := New("staging-ish")
	assert.EqualError(t, err, `unknown environment "staging-ish"`)
}
