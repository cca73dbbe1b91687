package statistics

import (
	"github.com/d6e/fanboi/internal/sensors"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemSensor = "sensor"

// SensorCollector reports the last values read by the aggregator. It never reads the sensors itself,
// so sensor files are only ever accessed by the control loop.
type SensorCollector struct {
	aggregator *sensors.Aggregator
	value      *prometheus.Desc
}

func NewSensorCollector(aggregator *sensors.Aggregator) *SensorCollector {
	return &SensorCollector{
		aggregator: aggregator,
		value: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "value"),
			"Last value of the sensor, in degrees",
			[]string{"id"}, nil,
		),
	}
}

func (collector *SensorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.value
}

// Collect implements required collect function for all prometheus collectors
func (collector *SensorCollector) Collect(ch chan<- prometheus.Metric) {
	for sensorId, value := range collector.aggregator.LastReadings() {
		ch <- prometheus.MustNewConstMetric(collector.value, prometheus.GaugeValue, float64(value), sensorId)
	}
}
