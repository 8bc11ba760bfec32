package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/orbiter/engine"
	"github.com/lixenwraith/orbiter/input"
	"github.com/lixenwraith/orbiter/vmath"
)

// phases lists every phase exported on the state-set gauge
var phases = []engine.Phase{
	engine.PhaseNominal,
	engine.PhaseFuelDepleted,
	engine.PhaseAtmosphericEntry,
	engine.PhaseMappingEligible,
}

// Collector exports flight telemetry; it implements engine.Observer
type Collector struct {
	gatherer prometheus.Gatherer

	Frames        prometheus.Counter
	Thrusts       *prometheus.CounterVec
	Transitions   *prometheus.CounterVec
	Phase         *prometheus.GaugeVec
	Altitude      prometheus.Gauge
	Speed         prometheus.Gauge
	Fuel          prometheus.Gauge
	Eccentricity  prometheus.Gauge
	TrailSegments prometheus.Gauge
	FrameDuration prometheus.Histogram
}

var _ engine.Observer = (*Collector)(nil)

// NewCollector registers telemetry against reg, nil = default registerer
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{gatherer: gatherer}
	var err error

	if c.Frames, err = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orbiter_frames_total",
		Help: "Simulation frames stepped.",
	}), "orbiter_frames_total"); err != nil {
		return nil, err
	}

	if c.Thrusts, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orbiter_thrust_frames_total",
		Help: "Frames with a thruster firing, by arrow key.",
	}, []string{"key"}), "orbiter_thrust_frames_total"); err != nil {
		return nil, err
	}

	if c.Transitions, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orbiter_phase_transitions_total",
		Help: "Game phase changes.",
	}, []string{"from", "to"}), "orbiter_phase_transitions_total"); err != nil {
		return nil, err
	}

	if c.Phase, err = registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "orbiter_phase",
		Help: "1 for the active game phase, 0 otherwise.",
	}, []string{"phase"}), "orbiter_phase"); err != nil {
		return nil, err
	}

	gauges := []struct {
		dst  *prometheus.Gauge
		name string
		help string
	}{
		{&c.Altitude, "orbiter_altitude", "Distance from planet centre in game miles."},
		{&c.Speed, "orbiter_speed", "Satellite speed in game miles per frame."},
		{&c.Fuel, "orbiter_fuel", "Remaining fuel."},
		{&c.Eccentricity, "orbiter_eccentricity", "Last evaluated orbital eccentricity."},
		{&c.TrailSegments, "orbiter_trail_segments", "Recorded trail segments."},
	}
	for _, g := range gauges {
		gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: g.name, Help: g.help})
		if *g.dst, err = registerGauge(reg, gauge, g.name); err != nil {
			return nil, err
		}
	}

	if c.FrameDuration, err = registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "orbiter_frame_duration_seconds",
		Help:    "Wall time spent stepping and drawing one frame.",
		Buckets: []float64{0.0005, 0.001, 0.002, 0.005, 0.01, 0.02, 0.033, 0.05, 0.1},
	}), "orbiter_frame_duration_seconds"); err != nil {
		return nil, err
	}

	return c, nil
}

// Gatherer returns the Prometheus gatherer associated with the collector
func (c *Collector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// Handler exposes a ready-to-use /metrics handler
func (c *Collector) Handler() http.Handler {
	gatherer := c.Gatherer()
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// ObserveFrame samples the satellite after a Step
func (c *Collector) ObserveFrame(s *engine.Simulation) {
	if c == nil {
		return
	}
	c.Frames.Inc()
	c.Altitude.Set(s.Satellite.Altitude())
	c.Speed.Set(vmath.V2FMag(s.Satellite.Vel))
	c.Fuel.Set(float64(s.DisplayFuel()))
	c.Eccentricity.Set(s.Eccentricity())
	c.TrailSegments.Set(float64(s.Trail.Len()))

	active := s.Phase()
	for _, p := range phases {
		v := 0.0
		if p == active {
			v = 1
		}
		c.Phase.WithLabelValues(p.String()).Set(v)
	}
}

// ObserveThrust counts one thruster frame
func (c *Collector) ObserveThrust(k input.Key) {
	if c == nil {
		return
	}
	c.Thrusts.WithLabelValues(k.String()).Inc()
}

// ObservePhase counts a phase change
func (c *Collector) ObservePhase(from, to engine.Phase) {
	if c == nil {
		return
	}
	c.Transitions.WithLabelValues(from.String(), to.String()).Inc()
}

// ObserveFrameDuration records how long a frontend frame took
func (c *Collector) ObserveFrameDuration(d time.Duration) {
	if c == nil {
		return
	}
	c.FrameDuration.Observe(d.Seconds())
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}
