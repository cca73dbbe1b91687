package sensors

import (
	"errors"

	"github.com/d6e/fanboi/internal/util"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// Aggregator reads a fixed set of sensors and reports the hottest one.
type Aggregator struct {
	sensors []Sensor
	// last value read from each sensor, by sensor id
	readings cmap.ConcurrentMap[string, int]
}

func NewAggregator(sensors []Sensor) (*Aggregator, error) {
	if len(sensors) <= 0 {
		return nil, errors.New("aggregator needs at least one sensor")
	}
	return &Aggregator{
		sensors:  sensors,
		readings: cmap.New[int](),
	}, nil
}

func (a *Aggregator) Sensors() []Sensor {
	return a.sensors
}

// Read reads every sensor in order and returns the maximum value.
// Any failing sensor fails the whole read, no previous value is reused.
func (a *Aggregator) Read() (int, error) {
	values := make([]int, 0, len(a.sensors))
	for _, sensor := range a.sensors {
		value, err := sensor.GetValue()
		if err != nil {
			return 0, err
		}
		a.readings.Set(sensor.GetId(), value)
		values = append(values, value)
	}

	result, ok := util.MaxOf(values)
	if !ok {
		return 0, errors.New("no sensor values")
	}
	return result, nil
}

// LastReadings returns the value of each sensor as of the last successful read of that sensor.
func (a *Aggregator) LastReadings() map[string]int {
	return a.readings.Items()
}
