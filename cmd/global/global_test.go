package global

import (
	"testing"

	"github.com/d6e/fanboi/internal/configuration"
	"github.com/stretchr/testify/assert"
)

func TestParseSensorFlags(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected []configuration.SensorConfig
	}{
		{
			name:   "with ids",
			values: []string{"cpu=/sys/class/thermal/thermal_zone0/temp", "gpu=/tmp/gpu"},
			expected: []configuration.SensorConfig{
				{ID: "cpu", Path: "/sys/class/thermal/thermal_zone0/temp"},
				{ID: "gpu", Path: "/tmp/gpu"},
			},
		},
		{
			name:   "without ids",
			values: []string{"/tmp/a", "gpu=/tmp/b", "/tmp/c"},
			expected: []configuration.SensorConfig{
				{ID: "sensor1", Path: "/tmp/a"},
				{ID: "gpu", Path: "/tmp/b"},
				{ID: "sensor3", Path: "/tmp/c"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseSensorFlags(tt.values)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseSensorFlags_Invalid(t *testing.T) {
	for _, value := range []string{"cpu=", "=/tmp/a", " "} {
		_, err := ParseSensorFlags([]string{value})
		assert.Error(t, err, value)
	}
}
