package prometheus

import (
	"context"
	"sync"
	"time"

	"github.com/nyshte/go-task-executor/core"
	prom "github.com/prometheus/client_golang/prometheus"
)

// StatsPoller periodically exports executor Stats() snapshots into
// Prometheus gauges.
type StatsPoller struct {
	interval time.Duration

	sourcesMu sync.RWMutex
	sources   map[string]core.StatsSource

	queued   *prom.GaugeVec
	active   *prom.GaugeVec
	rejected *prom.GaugeVec
	workers  *prom.GaugeVec
	state    *prom.GaugeVec

	stateMu sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewStatsPoller creates a stats poller and registers its collectors.
func NewStatsPoller(reg prom.Registerer, interval time.Duration) (*StatsPoller, error) {
	if reg == nil {
		reg = prom.DefaultRegisterer
	}
	if interval <= 0 {
		interval = time.Second
	}

	queued := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "taskexecutor",
		Name:      "executor_queued",
		Help:      "Queued tasks per executor.",
	}, []string{"executor"})
	active := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "taskexecutor",
		Name:      "executor_active",
		Help:      "Active tasks per executor.",
	}, []string{"executor"})
	rejected := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "taskexecutor",
		Name:      "executor_rejected_total",
		Help:      "Executor rejected submission count snapshot.",
	}, []string{"executor"})
	workers := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "taskexecutor",
		Name:      "executor_workers",
		Help:      "Worker count per executor.",
	}, []string{"executor"})
	state := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "taskexecutor",
		Name:      "executor_state",
		Help:      "Executor lifecycle state (0=running, 1=shutting_down, 2=terminated).",
	}, []string{"executor"})

	var err error
	if queued, err = registerCollector(reg, queued); err != nil {
		return nil, err
	}
	if active, err = registerCollector(reg, active); err != nil {
		return nil, err
	}
	if rejected, err = registerCollector(reg, rejected); err != nil {
		return nil, err
	}
	if workers, err = registerCollector(reg, workers); err != nil {
		return nil, err
	}
	if state, err = registerCollector(reg, state); err != nil {
		return nil, err
	}

	return &StatsPoller{
		interval: interval,
		sources:  make(map[string]core.StatsSource),
		queued:   queued,
		active:   active,
		rejected: rejected,
		workers:  workers,
		state:    state,
	}, nil
}

// AddExecutor adds or replaces an executor stats source by name.
func (p *StatsPoller) AddExecutor(name string, source core.StatsSource) {
	if p == nil || source == nil {
		return
	}
	name = normalizeLabel(name, "executor")
	p.sourcesMu.Lock()
	p.sources[name] = source
	p.sourcesMu.Unlock()
}

// Start begins periodic polling; repeated calls are no-ops.
func (p *StatsPoller) Start(ctx context.Context) {
	if p == nil {
		return
	}

	p.stateMu.Lock()
	if p.running {
		p.stateMu.Unlock()
		return
	}
	pollCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	p.running = true
	p.stateMu.Unlock()

	go p.loop(pollCtx)
}

// Stop stops periodic polling; repeated calls are safe.
func (p *StatsPoller) Stop() {
	if p == nil {
		return
	}

	p.stateMu.Lock()
	if !p.running {
		p.stateMu.Unlock()
		return
	}
	cancel := p.cancel
	done := p.done
	p.stateMu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}

	p.stateMu.Lock()
	p.running = false
	p.cancel = nil
	p.done = nil
	p.stateMu.Unlock()
}

func (p *StatsPoller) loop(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.collectOnce()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.collectOnce()
		}
	}
}

func (p *StatsPoller) collectOnce() {
	p.sourcesMu.RLock()
	defer p.sourcesMu.RUnlock()

	for name, source := range p.sources {
		stats := source.Stats()
		p.queued.WithLabelValues(name).Set(float64(stats.Queued))
		p.active.WithLabelValues(name).Set(float64(stats.Active))
		p.rejected.WithLabelValues(name).Set(float64(stats.Rejected))
		p.workers.WithLabelValues(name).Set(float64(stats.Workers))
		p.state.WithLabelValues(name).Set(float64(stats.State))
	}
}
