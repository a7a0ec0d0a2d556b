// Package temporal grounds natural-language time expressions into
// timezone-qualified instants.
package temporal

import (
	"fmt"
	"sync"
	"time"

	"cognitive-router/pkg/datemath"
)

// Resolver grounds time expressions. It is safe for concurrent use.
type Resolver struct {
	defaultParser *datemath.Parser
	now           func() time.Time

	mu      sync.Mutex
	parsers map[string]*datemath.Parser
}

// New creates a Resolver whose omitted timezone falls back to defaultTimezone.
func New(defaultTimezone string) (*Resolver, error) {
	p, err := datemath.NewParser(defaultTimezone)
	if err != nil {
		return nil, fmt.Errorf("temporal.New: %w", err)
	}
	return &Resolver{
		defaultParser: p,
		now:           time.Now,
		parsers:       map[string]*datemath.Parser{defaultTimezone: p},
	}, nil
}

// Resolve grounds text against reference in the named timezone. A zero reference
// means now; an empty or unknown timezone means the default one. It never fails:
// an unparseable expression yields a Resolution with nil time and source.
func (r *Resolver) Resolve(text string, reference time.Time, timezone string) Resolution {
	res := Resolution{ResolvedText: text}

	if reference.IsZero() {
		reference = r.now()
	}

	m, ok := r.parser(timezone).Extract(text, reference)
	if !ok {
		return res
	}

	iso := m.Time.Format(time.RFC3339)
	source := SourceTemporalResolver
	res.TargetTimeISO = &iso
	res.SourceOfTime = &source
	return res
}

func (r *Resolver) parser(timezone string) *datemath.Parser {
	if timezone == "" {
		return r.defaultParser
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.parsers[timezone]; ok {
		return p
	}
	p, err := datemath.NewParser(timezone)
	if err != nil {
		return r.defaultParser
	}
	r.parsers[timezone] = p
	return p
}
