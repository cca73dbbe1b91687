package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/d6e/fanboi/internal/configuration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, content string) {
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
}

func createConfig(t *testing.T) (configuration.Configuration, string) {
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu")
	gpu := filepath.Join(dir, "gpu")
	fan := filepath.Join(dir, "target_pwm")
	writeFile(t, cpu, "38000\n")
	writeFile(t, gpu, "95000\n")
	writeFile(t, fan, "0\n")

	return configuration.Configuration{
		Pid: configuration.PidConfig{
			P:     1.0,
			Limit: 100,
		},
		TargetTemperature: 40,
		Sensors: []configuration.SensorConfig{
			{ID: "cpu", Path: cpu},
			{ID: "gpu", Path: gpu},
		},
		Fan: configuration.FanConfig{
			Path:     fan,
			MaxValue: 100,
		},
		PollInterval: 1 * time.Second,
		MinimumDuty:  50,
	}, fan
}

func TestInitializeObjects(t *testing.T) {
	// GIVEN
	config, fanPath := createConfig(t)

	// WHEN
	objects, err := InitializeObjects(config)

	// THEN
	require.NoError(t, err)
	assert.Len(t, objects.Aggregator.Sensors(), 2)

	result, err := objects.Controller.Tick()
	require.NoError(t, err)
	assert.Equal(t, 95, result.Temperature)
	assert.Equal(t, 55, result.Duty)
	assert.True(t, result.Written)

	content, err := os.ReadFile(fanPath)
	require.NoError(t, err)
	assert.Equal(t, "55", string(content))
}

func TestInitializeObjects_DryRun(t *testing.T) {
	// GIVEN
	config, fanPath := createConfig(t)
	config.DryRun = true

	// WHEN
	objects, err := InitializeObjects(config)
	require.NoError(t, err)
	result, err := objects.Controller.Tick()

	// THEN
	require.NoError(t, err)
	assert.True(t, result.Written)
	content, err := os.ReadFile(fanPath)
	require.NoError(t, err)
	assert.Equal(t, "0\n", string(content))
}

func TestInitializeObjects_NoSensors(t *testing.T) {
	config, _ := createConfig(t)
	config.Sensors = nil

	_, err := InitializeObjects(config)

	assert.Error(t, err)
}

func TestRunDaemon_SensorFailureIsFatal(t *testing.T) {
	// GIVEN
	config, fanPath := createConfig(t)
	config.Sensors[1].Path = filepath.Join(t.TempDir(), "missing")

	// WHEN
	err := RunDaemon(config)

	// THEN
	assert.ErrorContains(t, err, "unable to read temperature")
	content, err := os.ReadFile(fanPath)
	require.NoError(t, err)
	assert.Equal(t, "100", string(content))
}
