package middleware

import (
	"context"
	"fmt"
	"regexp"

	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/ports"
)

// Mask replaces redacted argument values.
const Mask = "***"

type piiMiddleware struct {
	next     ports.StateStore
	patterns []*regexp.Regexp
}

// NewPIIMiddleware creates a middleware that masks entry arguments whose names
// match one of the patterns. Restored destinations see Mask in their place.
func NewPIIMiddleware(patternStrings []string) (Middleware, error) {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		patterns[i] = re
	}
	return func(next ports.StateStore) ports.StateStore {
		return &piiMiddleware{next: next, patterns: patterns}
	}, nil
}

func (m *piiMiddleware) Save(ctx context.Context, hostID string, snapshot *domain.BackStackSnapshot) error {
	// The live host keeps its arguments; only the copy is masked.
	cloned := snapshot.Clone()
	for i := range cloned.Entries {
		maskMap(cloned.Entries[i].Args, m.patterns)
	}
	return m.next.Save(ctx, hostID, cloned)
}

func (m *piiMiddleware) Load(ctx context.Context, hostID string) (*domain.BackStackSnapshot, error) {
	return m.next.Load(ctx, hostID)
}

func (m *piiMiddleware) Delete(ctx context.Context, hostID string) error {
	return m.next.Delete(ctx, hostID)
}

func (m *piiMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

func maskMap(m map[string]any, patterns []*regexp.Regexp) {
	for k, v := range m {
		for _, p := range patterns {
			if p.MatchString(k) {
				m[k] = Mask
				break
			}
		}
		if sub, ok := v.(map[string]any); ok && m[k] != Mask {
			// Nested maps are shared with the live host; mask a copy.
			c := make(map[string]any, len(sub))
			for sk, sv := range sub {
				c[sk] = sv
			}
			maskMap(c, patterns)
			m[k] = c
		}
	}
}
