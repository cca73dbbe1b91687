package statistics

import (
	"github.com/d6e/fanboi/internal/controller"
	"github.com/prometheus/client_golang/prometheus"
)

const controllerSubsystem = "controller"

type ControllerCollector struct {
	controllers []controller.FanController

	temperature     *prometheus.Desc
	pidTerm         *prometheus.Desc
	duty            *prometheus.Desc
	running         *prometheus.Desc
	tickCount       *prometheus.Desc
	writeCount      *prometheus.Desc
	suppressedCount *prometheus.Desc
}

func NewControllerCollector(controllers []controller.FanController) *ControllerCollector {
	return &ControllerCollector{
		controllers: controllers,
		temperature: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "temperature"),
			"Hottest sensor reading of the last tick, in degrees",
			[]string{"id"}, nil,
		),
		pidTerm: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "pid"),
			"Terms and combined output of the PID controller in the last tick",
			[]string{"id", "term"}, nil,
		),
		duty: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "duty"),
			"Duty derived from the PID output in the last tick",
			[]string{"id"}, nil,
		),
		running: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "fan_running"),
			"1 if the fan was running at the start of the last tick",
			[]string{"id"}, nil,
		),
		tickCount: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "ticks_total"),
			"Number of completed control loop ticks",
			[]string{"id"}, nil,
		),
		writeCount: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "writes_total"),
			"Number of ticks that wrote a duty to the fan",
			[]string{"id"}, nil,
		),
		suppressedCount: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "suppressed_total"),
			"Number of ticks whose duty was suppressed because it could not start the fan",
			[]string{"id"}, nil,
		),
	}
}

func (collector *ControllerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.temperature
	ch <- collector.pidTerm
	ch <- collector.duty
	ch <- collector.running
	ch <- collector.tickCount
	ch <- collector.writeCount
	ch <- collector.suppressedCount
}

// Collect implements required collect function for all prometheus collectors
func (collector *ControllerCollector) Collect(ch chan<- prometheus.Metric) {
	for _, contr := range collector.controllers {
		fanId := contr.GetFanId()
		stats := contr.GetStatistics()
		if stats.TickCount <= 0 {
			continue
		}
		tick := stats.LastTick

		running := 0.0
		if tick.Running {
			running = 1.0
		}

		ch <- prometheus.MustNewConstMetric(collector.temperature, prometheus.GaugeValue, float64(tick.Temperature), fanId)
		ch <- prometheus.MustNewConstMetric(collector.pidTerm, prometheus.GaugeValue, tick.Output.P, fanId, "p")
		ch <- prometheus.MustNewConstMetric(collector.pidTerm, prometheus.GaugeValue, tick.Output.I, fanId, "i")
		ch <- prometheus.MustNewConstMetric(collector.pidTerm, prometheus.GaugeValue, tick.Output.D, fanId, "d")
		ch <- prometheus.MustNewConstMetric(collector.pidTerm, prometheus.GaugeValue, tick.Output.Output, fanId, "output")
		ch <- prometheus.MustNewConstMetric(collector.duty, prometheus.GaugeValue, float64(tick.Duty), fanId)
		ch <- prometheus.MustNewConstMetric(collector.running, prometheus.GaugeValue, running, fanId)
		ch <- prometheus.MustNewConstMetric(collector.tickCount, prometheus.CounterValue, float64(stats.TickCount), fanId)
		ch <- prometheus.MustNewConstMetric(collector.writeCount, prometheus.CounterValue, float64(stats.WriteCount), fanId)
		ch <- prometheus.MustNewConstMetric(collector.suppressedCount, prometheus.CounterValue, float64(stats.SuppressedCount), fanId)
	}
}
