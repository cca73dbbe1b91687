package api

import (
	"net/http"

	"github.com/d6e/fanboi/internal/configuration"
	"github.com/d6e/fanboi/internal/sensors"
	"github.com/labstack/echo/v4"
)

// SensorInfo describes a sensor together with its last reading
type SensorInfo struct {
	Config configuration.SensorConfig `json:"config"`
	// Value is the last value read by the control loop, in degrees, nil if never read
	Value *int `json:"value"`
}

func registerSensorEndpoints(rest *echo.Echo, aggregator *sensors.Aggregator) {
	group := rest.Group("/sensor")

	group.GET("/", func(c echo.Context) error {
		return getSensors(c, aggregator)
	})
	group.GET("/:"+urlParamId+"/", func(c echo.Context) error {
		return getSensor(c, aggregator)
	})
}

func getSensors(c echo.Context, aggregator *sensors.Aggregator) error {
	readings := aggregator.LastReadings()
	data := map[string]SensorInfo{}
	for _, sensor := range aggregator.Sensors() {
		data[sensor.GetId()] = toSensorInfo(sensor, readings)
	}
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getSensor(c echo.Context, aggregator *sensors.Aggregator) error {
	id := c.Param(urlParamId)
	for _, sensor := range aggregator.Sensors() {
		if sensor.GetId() == id {
			return c.JSONPretty(http.StatusOK, toSensorInfo(sensor, aggregator.LastReadings()), indentationChar)
		}
	}
	return returnNotFound(c, id)
}

func toSensorInfo(sensor sensors.Sensor, readings map[string]int) SensorInfo {
	info := SensorInfo{Config: sensor.GetConfig()}
	if value, ok := readings[sensor.GetId()]; ok {
		info.Value = &value
	}
	return info
}
