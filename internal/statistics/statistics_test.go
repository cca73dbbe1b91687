package statistics

import (
	"strings"
	"testing"
	"time"

	"github.com/d6e/fanboi/internal/control_loop"
	"github.com/d6e/fanboi/internal/controller"
	"github.com/d6e/fanboi/internal/fans"
	"github.com/d6e/fanboi/internal/sensors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTickedController(t *testing.T) (controller.FanController, *sensors.Aggregator) {
	aggregator, err := sensors.NewAggregator([]sensors.Sensor{
		&sensors.VirtualSensor{Name: "cpu", Value: 38},
		&sensors.VirtualSensor{Name: "gpu", Value: 42},
	})
	require.NoError(t, err)

	contr := controller.NewFanController(
		aggregator,
		control_loop.NewPidControlLoop(1.0, 0, 0, 100, 40, 10*time.Second),
		control_loop.NewHysteresisPolicy(50),
		fans.NewVirtualFan("fan", 0),
		10*time.Second,
	)
	_, err = contr.Tick()
	require.NoError(t, err)
	return contr, aggregator
}

func TestSensorCollector(t *testing.T) {
	// GIVEN
	_, aggregator := createTickedController(t)
	collector := NewSensorCollector(aggregator)

	// WHEN
	expected := `
# HELP fanboi_sensor_value Last value of the sensor, in degrees
# TYPE fanboi_sensor_value gauge
fanboi_sensor_value{id="cpu"} 38
fanboi_sensor_value{id="gpu"} 42
`
	err := testutil.CollectAndCompare(collector, strings.NewReader(expected))

	// THEN
	assert.NoError(t, err)
}

func TestControllerCollector(t *testing.T) {
	// GIVEN
	contr, _ := createTickedController(t)
	collector := NewControllerCollector([]controller.FanController{contr})

	// WHEN
	expected := `
# HELP fanboi_controller_duty Duty derived from the PID output in the last tick
# TYPE fanboi_controller_duty gauge
fanboi_controller_duty{id="fan"} 2
# HELP fanboi_controller_suppressed_total Number of ticks whose duty was suppressed because it could not start the fan
# TYPE fanboi_controller_suppressed_total counter
fanboi_controller_suppressed_total{id="fan"} 1
# HELP fanboi_controller_temperature Hottest sensor reading of the last tick, in degrees
# TYPE fanboi_controller_temperature gauge
fanboi_controller_temperature{id="fan"} 42
`
	err := testutil.CollectAndCompare(collector, strings.NewReader(expected),
		"fanboi_controller_duty",
		"fanboi_controller_suppressed_total",
		"fanboi_controller_temperature",
	)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 10, testutil.CollectAndCount(collector))
}

func TestControllerCollector_NoTickYet(t *testing.T) {
	aggregator, _ := sensors.NewAggregator([]sensors.Sensor{&sensors.VirtualSensor{Name: "cpu", Value: 38}})
	contr := controller.NewFanController(
		aggregator,
		control_loop.NewPidControlLoop(1.0, 0, 0, 100, 40, 10*time.Second),
		control_loop.NewHysteresisPolicy(50),
		fans.NewVirtualFan("fan", 0),
		10*time.Second,
	)
	collector := NewControllerCollector([]controller.FanController{contr})

	assert.Equal(t, 0, testutil.CollectAndCount(collector))
}
