// Package timing accumulates wall-clock durations of named code sections
// and prints them as a sorted report.
//
// A Timer is an explicit value owned by its caller; there is no
// process-wide registry. Optionally every measurement is also observed
// by a Prometheus histogram labelled with the section name.
//
// Example:
//
//	t, _ := timing.New()
//	stop := t.Start("sort")
//	sorting.Quick(values)
//	stop()
//	_ = t.Report(os.Stdout)
package timing

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Sentinel errors for timing.
var (
	// ErrEmptyName is returned when a section is measured under an empty name.
	ErrEmptyName = errors.New("timing: section name is empty")

	// ErrRegister wraps a failure to register the section histogram.
	ErrRegister = errors.New("timing: register histogram")
)

// MetricName is the fully qualified name of the exported histogram.
const MetricName = "algorithms_section_duration_seconds"

// Report layout.
const (
	reportHeader = "---- TIMER START ----"
	reportFooter = "---- TIMER END ----"
	reportLine   = "%-24s : %fms\n"
)

// Entry is the accumulated time of one section.
type Entry struct {
	Name  string        `json:"name"`
	Total time.Duration `json:"total_ns"`
	Calls int           `json:"calls"`
}

// Milliseconds returns Total as fractional milliseconds.
func (e Entry) Milliseconds() float64 {
	return float64(e.Total) / float64(time.Millisecond)
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock replaces time.Now as the time source.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		if now != nil {
			t.now = now
		}
	}
}

// WithRegisterer registers the section histogram on reg.
// When reg already holds an identical histogram, that one is reused.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(t *Timer) {
		t.reg = reg
	}
}

// Timer accumulates durations per section name. It is safe for concurrent use.
type Timer struct {
	mu      sync.Mutex
	now     func() time.Time
	reg     prometheus.Registerer
	hist    *prometheus.HistogramVec
	entries map[string]*Entry
}

// New builds a Timer. It fails only when histogram registration fails.
func New(opts ...Option) (*Timer, error) {
	t := &Timer{
		now:     time.Now,
		entries: make(map[string]*Entry),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.reg == nil {
		return t, nil
	}

	hist := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "algorithms",
			Subsystem: "section",
			Name:      "duration_seconds",
			Help:      "Wall-clock duration of timed sections in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		},
		[]string{"section"},
	)
	if err := t.reg.Register(hist); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, fmt.Errorf("%w: %w", ErrRegister, err)
		}
		existing, ok := already.ExistingCollector.(*prometheus.HistogramVec)
		if !ok {
			return nil, fmt.Errorf("%w: %w", ErrRegister, err)
		}
		hist = existing
	}
	t.hist = hist

	return t, nil
}

// Start begins timing name and returns the function that stops it.
// Calling the stop function more than once records only the first call.
// An empty name is not recorded: the clock is not read and the returned
// stop function does nothing. Use Measure to get ErrEmptyName instead.
func (t *Timer) Start(name string) func() {
	if name == "" {
		return func() {}
	}
	begin := t.now()
	var once sync.Once

	return func() {
		once.Do(func() {
			t.add(name, t.now().Sub(begin))
		})
	}
}

// Measure times fn under name and returns fn's error.
func (t *Timer) Measure(name string, fn func() error) error {
	if name == "" {
		return ErrEmptyName
	}
	stop := t.Start(name)
	err := fn()
	stop()

	return err
}

// add folds d into the entry for name.
func (t *Timer) add(name string, d time.Duration) {
	t.mu.Lock()
	e, ok := t.entries[name]
	if !ok {
		e = &Entry{Name: name}
		t.entries[name] = e
	}
	e.Total += d
	e.Calls++
	t.mu.Unlock()

	if t.hist != nil {
		t.hist.WithLabelValues(name).Observe(d.Seconds())
	}
}

// Entries returns a snapshot sorted by total duration, longest first.
// Ties are broken by name.
func (t *Timer) Entries() []Entry {
	t.mu.Lock()
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, *e)
	}
	t.mu.Unlock()

	slices.SortFunc(out, func(a, b Entry) int {
		if a.Total != b.Total {
			if a.Total > b.Total {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})

	return out
}

// Report writes every entry between the header and footer lines.
func (t *Timer) Report(w io.Writer) error {
	var b strings.Builder
	b.WriteString(reportHeader + "\n")
	for _, e := range t.Entries() {
		fmt.Fprintf(&b, reportLine, e.Name, e.Milliseconds())
	}
	b.WriteString(reportFooter + "\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("timing: write report: %w", err)
	}

	return nil
}

// Clear forgets every accumulated entry. Histogram observations are kept.
func (t *Timer) Clear() {
	t.mu.Lock()
	clear(t.entries)
	t.mu.Unlock()
}
