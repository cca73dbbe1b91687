package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/d6e/fanboi/internal/control_loop"
	"github.com/d6e/fanboi/internal/controller"
	"github.com/d6e/fanboi/internal/fans"
	"github.com/d6e/fanboi/internal/sensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createService(t *testing.T, tick bool) (http.Handler, *fans.VirtualFan) {
	aggregator, err := sensors.NewAggregator([]sensors.Sensor{
		&sensors.VirtualSensor{Name: "cpu", Value: 90},
		&sensors.VirtualSensor{Name: "gpu", Value: 60},
	})
	require.NoError(t, err)

	fan := fans.NewVirtualFan("fan", 0)
	contr := controller.NewFanController(
		aggregator,
		control_loop.NewPidControlLoop(1.0, 0, 0, 100, 40, 10*time.Second),
		control_loop.NewHysteresisPolicy(50),
		fan,
		10*time.Second,
	)
	if tick {
		_, err = contr.Tick()
		require.NoError(t, err)
	}
	return CreateRestService(contr, aggregator), fan
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAlive(t *testing.T) {
	service, _ := createService(t, false)

	rec := get(service, "/alive/")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatus(t *testing.T) {
	// GIVEN
	service, fan := createService(t, true)

	// WHEN
	rec := get(service, "/status")

	// THEN
	require.Equal(t, http.StatusOK, rec.Code)
	var status Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "fan", status.FanId)
	assert.Equal(t, 1, status.Statistics.TickCount)
	assert.Equal(t, 90, status.Statistics.LastTick.Temperature)
	assert.Equal(t, 50, status.Statistics.LastTick.Duty)
	assert.False(t, status.Statistics.LastTick.Written)
	assert.Empty(t, fan.Writes())
}

func TestSensors(t *testing.T) {
	// GIVEN
	service, _ := createService(t, true)

	// WHEN
	rec := get(service, "/sensor/")

	// THEN
	require.Equal(t, http.StatusOK, rec.Code)
	var data map[string]SensorInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	assert.Len(t, data, 2)
	require.NotNil(t, data["gpu"].Value)
	assert.Equal(t, 60, *data["gpu"].Value)
}

func TestSensor_NeverRead(t *testing.T) {
	// GIVEN
	service, _ := createService(t, false)

	// WHEN
	rec := get(service, "/sensor/cpu/")

	// THEN
	require.Equal(t, http.StatusOK, rec.Code)
	var data SensorInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	assert.Equal(t, "cpu", data.Config.ID)
	assert.Nil(t, data.Value)
}

func TestSensor_NotFound(t *testing.T) {
	service, _ := createService(t, true)

	rec := get(service, "/sensor/nvme/")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No item with id 'nvme' found")
}
