package portpool

import (
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/experimenter"
	"code.cloudfoundry.org/lager/v3"
)

// Pool is a bounded set of lease-able ports shared by all transfer
// endpoints in the process. Ports are handed out in FIFO order: first
// configured, first leased; released ports rejoin at the tail.
type Pool struct {
	clock clock.Clock

	lock      sync.Mutex
	available []int
}

func NewPool(clock clock.Clock) *Pool {
	return &Pool{
		clock:     clock,
		available: []int{},
	}
}

// ConfigureRange replaces the available set with every port in
// [first, last], ascending. Leased ports are unaffected; they rejoin
// whatever pool exists when they are released. An inverted range is
// ignored.
func (p *Pool) ConfigureRange(logger lager.Logger, first, last int) {
	logger = logger.Session("configure-range", lager.Data{"first": first, "last": last})

	if first > last {
		logger.Info("ignoring-inverted-range")
		return
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	p.available = make([]int, 0, last-first+1)
	for port := first; port <= last; port++ {
		p.available = append(p.available, port)
	}

	logger.Info("configured", lager.Data{"num-ports": len(p.available)})
}

// Acquire removes and returns the head of the available set. While the
// set is empty it polls on the given cadence, giving up with
// ErrPortsExhausted once the elapsed wait exceeds maxWait.
func (p *Pool) Acquire(logger lager.Logger, pollInterval, maxWait time.Duration) (int, error) {
	logger = logger.Session("acquire")

	deadline := p.clock.Now().Add(maxWait)

	for {
		port, ok := p.take()
		if ok {
			logger.Debug("leased", lager.Data{"port": port})
			return port, nil
		}

		if !p.clock.Now().Before(deadline) {
			logger.Error("ports-exhausted", experimenter.ErrPortsExhausted, lager.Data{"max-wait": maxWait.String()})
			return 0, experimenter.ErrPortsExhausted
		}

		timer := p.clock.NewTimer(pollInterval)
		<-timer.C()
	}
}

// Release appends the port back to the tail of the available set.
// Releasing a port that is already in the pool is a caller error; it is
// rejected so a double release can never lead to a double lease.
func (p *Pool) Release(logger lager.Logger, port int) error {
	logger = logger.Session("release", lager.Data{"port": port})

	p.lock.Lock()
	defer p.lock.Unlock()

	for _, available := range p.available {
		if available == port {
			logger.Error("already-released", experimenter.ErrPortAlreadyReleased)
			return experimenter.ErrPortAlreadyReleased
		}
	}

	p.available = append(p.available, port)
	logger.Debug("released")
	return nil
}

// List returns a copy of the available set in lease order.
func (p *Pool) List() []int {
	p.lock.Lock()
	defer p.lock.Unlock()

	available := make([]int, len(p.available))
	copy(available, p.available)
	return available
}

func (p *Pool) take() (int, bool) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if len(p.available) == 0 {
		return 0, false
	}

	port := p.available[0]
	p.available = p.available[1:]
	return port, true
}
