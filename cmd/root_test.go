package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short separated", []string{"-c", "/tmp/config.yaml", "info"}, "/tmp/config.yaml"},
		{"long separated", []string{"deposit", "--config", "/tmp/config.yaml", "200"}, "/tmp/config.yaml"},
		{"long equals", []string{"--config=/tmp/config.yaml", "statement"}, "/tmp/config.yaml"},
		{"short equals", []string{"-c=/tmp/config.yaml"}, "/tmp/config.yaml"},
		{"absent", []string{"deposit", "200"}, ""},
		{"flag without value", []string{"info", "--config"}, ""},
		{"no args", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, configFlagValue(tt.args))
		})
	}
}

func TestCapitalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Invalid amount", capitalize("invalid amount"))
	assert.Equal(t, "Already upper", capitalize("Already upper"))
	assert.Equal(t, "", capitalize(""))
}
