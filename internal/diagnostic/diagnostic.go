// Package diagnostic implements the reporting boundary between the resolver
// and the host compilation context. Failures are recorded as structured
// diagnostics and surfaced later in one batch instead of unwinding the
// pipeline that hit them.
package diagnostic

import (
	"fmt"
	"strings"
	"sync"

	"github.com/griffnb/core-resolve/internal/domain"
)

// Code identifies a diagnostic kind.
type Code string

const (
	// ExpectedSuccessResponse is reported when an operation declares no
	// response classifiable as a success outcome.
	ExpectedSuccessResponse Code = "expected-success-response"
)

// Diagnostic is one reported finding, tagged with the offending operation.
type Diagnostic struct {
	Code      Code
	Operation *domain.Operation
	Message   string
}

// Error formats the diagnostic for display.
func (d Diagnostic) Error() string {
	target := "<unknown>"
	if d.Operation != nil {
		target = d.Operation.Name
	}
	if d.Message == "" {
		return fmt.Sprintf("[%s] operation %s", d.Code, target)
	}
	return fmt.Sprintf("[%s] operation %s: %s", d.Code, target, d.Message)
}

// Sink receives diagnostics. Implementations must be append-only and
// non-blocking; reporting never fails.
type Sink interface {
	Report(d Diagnostic)
}

// Collector is a concurrency-safe Sink that accumulates diagnostics in
// arrival order.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Report appends the diagnostic.
func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags = append(c.diags, d)
}

// All returns a copy of the collected diagnostics.
func (c *Collector) All() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	return out
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diags)
}

// Err returns the collected diagnostics as a single error, or nil when none
// were reported. The host decides at which stage accumulated diagnostics
// become fatal.
func (c *Collector) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.diags) == 0 {
		return nil
	}
	return List(append([]Diagnostic(nil), c.diags...))
}

// List is an error wrapping one or more diagnostics.
type List []Diagnostic

// Error returns a compact summary of the list.
func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no diagnostics"
	case 1:
		return l[0].Error()
	default:
		var b strings.Builder
		b.WriteString(l[0].Error())
		fmt.Fprintf(&b, " (and %d more)", len(l)-1)
		return b.String()
	}
}
