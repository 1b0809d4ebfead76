// Package reconcile applies a spreadsheet mapping to picklist values,
// recording what changed and what could not be matched.
package reconcile

import (
	"log/slog"
	"strings"

	"github.com/marcus/picksync/internal/mapping"
	"github.com/marcus/picksync/internal/metadata"
)

// MissingPolicy decides what happens when a value has a key but no target
// element.
type MissingPolicy int

const (
	// MissingSkip leaves the value untouched.
	MissingSkip MissingPolicy = iota
	// MissingCreate adds the target element when the key is mapped.
	MissingCreate
	// MissingRecord logs the key as unmapped without inventing data.
	MissingRecord
)

// Rule describes one reconciliation direction.
type Rule struct {
	Key    metadata.Field
	Target metadata.Field
	// TrimTarget compares the current target text after trimming.
	TrimTarget bool
	Missing    MissingPolicy
	// TrackUnmatched collects keys that have no mapping entry.
	TrackUnmatched bool
}

// Predefined rules for the three tools.
var (
	// LabelToAPIName updates fullName from label and ignores values
	// without a fullName.
	LabelToAPIName = Rule{
		Key:        metadata.FieldLabel,
		Target:     metadata.FieldFullName,
		TrimTarget: true,
		Missing:    MissingSkip,
	}
	// LabelToAPINameTracked also reports labels that have no fullName.
	LabelToAPINameTracked = Rule{
		Key:        metadata.FieldLabel,
		Target:     metadata.FieldFullName,
		TrimTarget: true,
		Missing:    MissingRecord,
	}
	// APINameToLabel updates label from fullName, creating the label when
	// it is absent.
	APINameToLabel = Rule{
		Key:     metadata.FieldFullName,
		Target:  metadata.FieldLabel,
		Missing: MissingCreate,
	}
)

// Change is one updated value: the key it was matched by, and the target
// text before and after.
type Change struct {
	Key string
	Old string
	New string
}

// Result summarizes one reconciliation pass.
type Result struct {
	Examined int
	Changes  []Change
	// Unmapped lists keys of values whose target element is missing, for
	// rules using MissingRecord.
	Unmapped []string
	// Unmatched lists keys with no mapping entry, for rules with
	// TrackUnmatched.
	Unmatched []string
	// Skipped counts values that have no key element.
	Skipped int
}

// Apply reconciles values against m according to rule. Values whose key is
// not in m are left exactly as they were.
func Apply(values []*metadata.Value, m *mapping.Mapping, rule Rule) *Result {
	res := &Result{}
	for _, v := range values {
		res.Examined++

		rawKey, ok := v.Get(rule.Key)
		if !ok {
			res.Skipped++
			continue
		}
		key := strings.TrimSpace(rawKey)

		current, hasTarget := v.Get(rule.Target)
		if !hasTarget {
			switch rule.Missing {
			case MissingRecord:
				res.Unmapped = append(res.Unmapped, key)
				continue
			case MissingSkip:
				continue
			}
		}

		want, ok := m.Lookup(rawKey)
		if !ok {
			slog.Debug("reconcile: no mapping", "key", key)
			if rule.TrackUnmatched {
				res.Unmatched = append(res.Unmatched, key)
			}
			continue
		}

		old := current
		if rule.TrimTarget {
			old = strings.TrimSpace(current)
		}
		if old == want {
			continue
		}

		if v.Set(rule.Target, want) {
			slog.Debug("reconcile: created element", "key", key, "field", rule.Target)
		}
		res.Changes = append(res.Changes, Change{Key: key, Old: old, New: want})
	}
	return res
}
