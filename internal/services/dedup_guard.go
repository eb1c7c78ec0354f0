package services

import (
	"math"
	"sync"
	"time"

	"github.com/fortunegablin-rgb/PSC170/internal/domain"
)

const (
	// DeductionCooldown is the window in which an identical repeat request
	// for the same member is treated as an accidental double submission.
	DeductionCooldown = 3 * time.Second

	sweepInterval = time.Minute
)

type deductionEntry struct {
	Timestamp   time.Time
	Fare        float64
	ConductorID string
}

// DeductionGuard remembers recent fare deductions per member and rejects an
// identical repeat (same fare, same conductor) inside the cooldown window.
// A different conductor or a different fare is a genuinely new trip and is
// never blocked. Entries older than the cooldown are logically expired even
// before the sweep removes them.
type DeductionGuard struct {
	mu       sync.Mutex
	recent   map[int64]deductionEntry
	cooldown time.Duration
	now      func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

func NewDeductionGuard() *DeductionGuard {
	return NewDeductionGuardWithClock(DeductionCooldown, time.Now)
}

// NewDeductionGuardWithClock allows tests to control time.
func NewDeductionGuardWithClock(cooldown time.Duration, now func() time.Time) *DeductionGuard {
	return &DeductionGuard{
		recent:   make(map[int64]deductionEntry),
		cooldown: cooldown,
		now:      now,
		stop:     make(chan struct{}),
	}
}

// Check returns a domain.DuplicateDeductionError when the request repeats the
// member's latest deduction inside the cooldown window.
func (g *DeductionGuard) Check(memberID int64, fare float64, conductorID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry, ok := g.recent[memberID]
	if !ok {
		return nil
	}

	elapsed := g.now().Sub(entry.Timestamp)
	if elapsed >= g.cooldown {
		return nil
	}
	if entry.Fare != fare || entry.ConductorID != conductorID {
		return nil
	}

	remaining := g.cooldown - elapsed
	return domain.DuplicateDeductionError{
		RetryAfterSeconds: int(math.Ceil(remaining.Seconds())),
	}
}

// Record stores a successful deduction. Failed attempts are never recorded,
// so they do not block a legitimate retry.
func (g *DeductionGuard) Record(memberID int64, fare float64, conductorID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.recent[memberID] = deductionEntry{
		Timestamp:   g.now(),
		Fare:        fare,
		ConductorID: conductorID,
	}
}

// Start launches the periodic sweep that bounds memory growth. The sweep is
// not needed for correctness; Check ignores expired entries on its own.
func (g *DeductionGuard) Start() {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g.Sweep()
			case <-g.stop:
				return
			}
		}
	}()
}

func (g *DeductionGuard) Stop() {
	g.stopOnce.Do(func() { close(g.stop) })
}

// Sweep drops entries older than the cooldown window.
func (g *DeductionGuard) Sweep() {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	for memberID, entry := range g.recent {
		if now.Sub(entry.Timestamp) > g.cooldown {
			delete(g.recent, memberID)
		}
	}
}

func (g *DeductionGuard) size() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.recent)
}
