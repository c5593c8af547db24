package domain

import (
	"context"
	"sync"
	"time"
)

// Span times one phase of a run, e.g. loading prices or the rebalance loop.
// A span may own a nested profile, used by compare to time each strategy's
// phases separately.
type Span struct {
	Name      string  `json:"name"`
	ElapsedMs *int64  `json:"elapsedMs"`
	SubSpans  []*Span `json:"subSpans,omitempty"`

	start time.Time
	sub   *Profile
}

// Profile is the ordered list of phases of one request or CLI invocation
type Profile struct {
	Spans   []*Span `json:"spans"`
	TotalMs *int64  `json:"totalMs"`

	start time.Time
	mu    sync.Mutex
}

type profileContextKey struct{}

// GetProfile returns the profile stored on ctx. A context without one gets
// a detached profile, so callers can time phases unconditionally.
func GetProfile(ctx context.Context) (*Profile, func()) {
	if p, ok := ctx.Value(profileContextKey{}).(*Profile); ok && p != nil {
		return p, p.End
	}
	return NewProfile()
}

func WithProfile(ctx context.Context, p *Profile) context.Context {
	return context.WithValue(ctx, profileContextKey{}, p)
}

func NewProfile() (*Profile, func()) {
	p := &Profile{
		Spans: []*Span{},
		start: time.Now(),
	}
	return p, p.End
}

// End closes the open span and records the total; later calls are no-ops
func (p *Profile) End() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n := len(p.Spans); n > 0 {
		p.Spans[n-1].End()
	}
	if p.TotalMs == nil {
		p.TotalMs = elapsedMs(p.start)
	}
}

// StartNewSpan closes the previous span, so phases never overlap
func (p *Profile) StartNewSpan(name string) (*Span, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n := len(p.Spans); n > 0 {
		p.Spans[n-1].End()
	}
	s := &Span{Name: name, start: time.Now()}
	p.Spans = append(p.Spans, s)
	return s, s.End
}

// Durations sums closed span times by name
func (p *Profile) Durations() map[string]int64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := map[string]int64{}
	for _, s := range p.Spans {
		if s.ElapsedMs != nil {
			out[s.Name] += *s.ElapsedMs
		}
	}
	return out
}

func (s *Span) End() {
	if s.ElapsedMs == nil {
		s.ElapsedMs = elapsedMs(s.start)
	}
	if s.sub != nil {
		s.SubSpans = s.sub.Spans
	}
}

// NewSubProfile nests a profile under s. A span holds at most one.
func (s *Span) NewSubProfile() (*Profile, func()) {
	if s.sub != nil {
		return s.sub, s.sub.End
	}
	p, end := NewProfile()
	s.sub = p
	return p, end
}

func elapsedMs(since time.Time) *int64 {
	ms := time.Since(since).Milliseconds()
	return &ms
}
