package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/troop"
)

// Paths locates the record collections in a ledger platform dump, as
// JSONPath expressions. An empty path skips the collection.
type Paths struct {
	Transfers         string
	Scouts            string
	BoothDividers     string
	DirectShipDivider string
	Reservations      string
	ExportedAt        string
}

// DefaultPaths is the layout of a dump saved by the ledger platform sync.
func DefaultPaths() Paths {
	return Paths{
		Transfers:         "$.transfers",
		Scouts:            "$.scouts",
		BoothDividers:     "$.boothDividers",
		DirectShipDivider: "$.directShipDivider",
		Reservations:      "$.reservations",
		ExportedAt:        "$.exportedAt",
	}
}

// SmartCookies is the content of a ledger platform dump.
type SmartCookies struct {
	Transfers         []troop.SCTransfer
	Scouts            []troop.SCScout
	BoothDividers     []troop.SCBoothDivider
	DirectShipDivider *troop.SCDirectShipDivider
	Reservations      []troop.BoothReservation
	ExportedAt        string
}

// extract evaluates path on doc and decodes the result into v. It reports
// false when the document has nothing at path. A path that does not parse is
// an error.
func extract(doc any, path string, v any) (bool, error) {
	if path == "" {
		return false, nil
	}
	eval, err := jsonpath.New(path)
	if err != nil {
		return false, fmt.Errorf("invalid path %q: %w", path, err)
	}
	jval, err := eval(context.Background(), doc)
	if err != nil {
		// a missing key
		return false, nil
	}
	if jval == nil {
		return false, nil
	}
	data, err := json.Marshal(jval)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	return true, nil
}

// DecodeSmartCookies reads a JSON dump of the ledger platform. Transfers are
// required; every other collection is optional.
func DecodeSmartCookies(r io.Reader, paths Paths) (SmartCookies, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return SmartCookies{}, fmt.Errorf("cannot decode ledger dump: %w", err)
	}

	var sc SmartCookies
	found, err := extract(doc, paths.Transfers, &sc.Transfers)
	if err != nil {
		return SmartCookies{}, err
	}
	if !found {
		return SmartCookies{}, fmt.Errorf("ledger dump has no transfers at %q", paths.Transfers)
	}

	var errs error
	for _, c := range []struct {
		path string
		v    any
	}{
		{paths.Scouts, &sc.Scouts},
		{paths.BoothDividers, &sc.BoothDividers},
		{paths.DirectShipDivider, &sc.DirectShipDivider},
		{paths.Reservations, &sc.Reservations},
		{paths.ExportedAt, &sc.ExportedAt},
	} {
		if _, err := extract(doc, c.path, c.v); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return SmartCookies{}, errs
	}
	return sc, nil
}
