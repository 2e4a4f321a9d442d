package troop

import (
	"fmt"
	"maps"
	"slices"
)

// WarningKind identifies a non-fatal classification failure.
type WarningKind string

// Warning kinds. Each one names a table an operator may need to update.
const (
	UnknownOrderType     WarningKind = "UNKNOWN_ORDER_TYPE"
	UnknownPaymentStatus WarningKind = "UNKNOWN_PAYMENT_STATUS"
	UnknownTransferType  WarningKind = "UNKNOWN_TRANSFER_TYPE"
	UnknownCookieID      WarningKind = "UNKNOWN_COOKIE_ID"
	InvalidAmount        WarningKind = "INVALID_AMOUNT"
	InvalidDate          WarningKind = "INVALID_DATE"
)

// Warning records a value the engine could not classify. The record it
// belongs to is kept, with the unclassified field left empty.
type Warning struct {
	Kind      WarningKind `json:"kind"`
	Reference string      `json:"reference,omitempty"` // order or transfer number
	Value     string      `json:"value"`               // the unrecognized raw value
	Scout     string      `json:"scout,omitempty"`
}

func (w Warning) String() string {
	s := fmt.Sprintf("%s %q", w.Kind, w.Value)
	if w.Reference != "" {
		s += " in " + w.Reference
	}
	if w.Scout != "" {
		s += " (" + w.Scout + ")"
	}
	return s
}

// Warnings collects warnings in the order they were raised. Classifiers take
// a *Warnings so they can be used, and tested, on their own.
type Warnings []Warning

// Add appends a warning. A nil receiver discards it.
func (ws *Warnings) Add(kind WarningKind, reference, value, scout string) {
	if ws == nil {
		return
	}
	*ws = append(*ws, Warning{Kind: kind, Reference: reference, Value: value, Scout: scout})
}

// Count returns the number of warnings of the given kind.
func (ws Warnings) Count(kind WarningKind) int {
	n := 0
	for _, w := range ws {
		if w.Kind == kind {
			n++
		}
	}
	return n
}

// Counts returns the number of warnings per kind.
func (ws Warnings) Counts() map[WarningKind]int {
	counts := make(map[WarningKind]int)
	for _, w := range ws {
		counts[w.Kind]++
	}
	return counts
}

// Kinds returns the kinds present in ws, sorted.
func (ws Warnings) Kinds() []WarningKind {
	return slices.Sorted(maps.Keys(ws.Counts()))
}
