package troop

import (
	"encoding/json"
	"fmt"

	"github.com/etnz/troop/date"
	"github.com/google/uuid"
)

// HealthCheck summarizes the data quality of a reconciliation pass.
type HealthCheck struct {
	Warnings     int                 `json:"warnings"`
	WarningKinds map[WarningKind]int `json:"warningKinds"`

	Orders    int `json:"orders"`    // retail rows imported
	Transfers int `json:"transfers"` // ledger records classified
	Scouts    int `json:"scouts"`    // real scouts

	// Records dropped because they name no known scout.
	UnmatchedOrders      int `json:"unmatchedOrders"`
	UnmatchedTransfers   int `json:"unmatchedTransfers"`
	UnmatchedAllocations int `json:"unmatchedAllocations"`
	// Repeated order numbers of a real scout.
	DuplicateOrders int `json:"duplicateOrders"`
	// Identical allocation entries collapsed into one.
	DuplicateAllocations int `json:"duplicateAllocations"`
}

// OK reports whether the pass raised no warning and dropped no record.
func (h HealthCheck) OK() bool {
	return h.Warnings == 0 && h.UnmatchedOrders == 0 && h.UnmatchedTransfers == 0 &&
		h.UnmatchedAllocations == 0 && h.DuplicateOrders == 0
}

// Dataset is the output of one reconciliation pass. It is built from scratch
// by Build and never patched.
type Dataset struct {
	Scouts      []*Scout                  `json:"scouts"` // by name, site pseudo-scouts last
	Troop       TroopTotals               `json:"troop"`
	Transfers   []TransferBreakdown       `json:"transfers"`
	Varieties   VarietyReport             `json:"varieties"`
	CookieShare CookieShareReconciliation `json:"cookieShare"`
	Booths      []BoothSummary            `json:"booths"`
	Season      date.Range                `json:"season"` // first and last dated record
	Metadata    Metadata                  `json:"metadata"`
	Warnings    Warnings                  `json:"warnings"`
	Health      HealthCheck               `json:"health"`
}

// Build runs a complete reconciliation pass over state. It is a pure
// function: the same state and configuration always yield the same dataset.
func Build(state ImportState, cfg Config) *Dataset {
	warnings := Warnings{}
	var health HealthCheck

	transfers := make([]Transfer, 0, len(state.Transfers))
	for _, raw := range state.Transfers {
		transfers = append(transfers, NewTransfer(raw, cfg, &warnings))
	}

	scouts := initializeScouts(state.Orders, state.Scouts, cfg)
	health.UnmatchedOrders, health.DuplicateOrders = importOrders(scouts, state.Orders, &warnings)
	importSiteOrders(scouts, transfers, cfg)
	health.UnmatchedTransfers = applyInventory(scouts, transfers)

	// only divider payloads repeat; each virtual booth transfer is its own sale
	var dividers []Allocation
	dividers = append(dividers, NewBoothAllocations(state.BoothDividers, cfg, &warnings)...)
	dividers = append(dividers, NewDirectShipAllocations(state.DirectShipDivider, cfg, &warnings)...)
	unique := dedupeAllocations(dividers)
	health.DuplicateAllocations = len(dividers) - len(unique)
	allocs := append(unique, virtualBoothAllocations(transfers)...)
	health.UnmatchedAllocations = attachAllocations(scouts, allocs)

	sorted := scouts.sorted()
	for _, s := range sorted {
		s.Totals = computeScoutTotals(s, cfg)
	}
	troop := computeTroopTotals(sorted, transfers, cfg)

	var season date.Range
	for _, s := range sorted {
		for _, o := range s.Orders {
			season = season.Extend(o.Date)
		}
	}
	for _, t := range transfers {
		season = season.Extend(t.Date)
	}

	reservations := state.Reservations
	if reservations == nil {
		reservations = []BoothReservation{}
	}

	health.Warnings = len(warnings)
	health.WarningKinds = warnings.Counts()
	health.Transfers = len(transfers)
	health.Scouts = troop.Scouts
	for _, s := range sorted {
		health.Orders += len(s.Orders)
	}

	return &Dataset{
		Scouts:      sorted,
		Troop:       troop,
		Transfers:   buildTransferBreakdowns(transfers),
		Varieties:   buildVarietyReport(sorted, troop.InventoryByVariety),
		CookieShare: ReconcileCookieShare(sorted, transfers, cfg),
		Booths:      buildBoothSummaries(reservations, sorted),
		Season:      season,
		Metadata:    state.Metadata,
		Warnings:    warnings,
		Health:      health,
	}
}

// Scout returns the scout of the given name, or nil.
func (d *Dataset) Scout(name string) *Scout {
	name = scoutName(name, "")
	for _, s := range d.Scouts {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// fingerprintNamespace is the UUID namespace of dataset fingerprints.
var fingerprintNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/etnz/troop/dataset"))

// Fingerprint returns a name-based UUID of the dataset content. Two passes
// over the same input have the same fingerprint.
func (d *Dataset) Fingerprint() (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("cannot encode dataset: %w", err)
	}
	return uuid.NewSHA1(fingerprintNamespace, data).String(), nil
}
