package importer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/troop"
)

// LoadState reads both platform exports into the raw state of one
// reconciliation pass. Either path may be empty when that platform has
// nothing to report yet, but not both. Import times are read from the files.
func LoadState(dcPath, scPath string, paths Paths) (troop.ImportState, error) {
	var state troop.ImportState
	if dcPath == "" && scPath == "" {
		return state, errors.New("no export to reconcile")
	}

	if dcPath != "" {
		f, err := os.Open(dcPath)
		if err != nil {
			return state, fmt.Errorf("could not open order export: %w", err)
		}
		defer f.Close()
		dc, err := ReadDigitalCookie(f)
		if err != nil {
			return state, fmt.Errorf("order export %q: %w", dcPath, err)
		}
		state.Orders = dc.Orders
		state.Metadata.DCSource = filepath.Base(dcPath)
		state.Metadata.DCImportedAt = dc.ExportedAt
	}

	if scPath != "" {
		f, err := os.Open(scPath)
		if err != nil {
			return state, fmt.Errorf("could not open ledger dump: %w", err)
		}
		defer f.Close()
		sc, err := DecodeSmartCookies(f, paths)
		if err != nil {
			return state, fmt.Errorf("ledger dump %q: %w", scPath, err)
		}
		state.Transfers = sc.Transfers
		state.Scouts = sc.Scouts
		state.BoothDividers = sc.BoothDividers
		state.DirectShipDivider = sc.DirectShipDivider
		state.Reservations = sc.Reservations
		state.Metadata.SCSource = filepath.Base(scPath)
		state.Metadata.SCImportedAt = sc.ExportedAt
	}
	return state, nil
}
