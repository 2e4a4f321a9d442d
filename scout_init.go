package troop

import (
	"maps"
	"slices"
	"strings"
)

// scoutSet indexes the scouts of one reconciliation pass.
type scoutSet struct {
	byName   map[string]*Scout
	nameByID map[int]string // built once per pass from ledger identities
}

// initializeScouts creates one Scout per identity seen in either platform.
// Rows whose last name is the site sentinel create the site pseudo-scout.
// Ledger identifiers are backfilled onto scouts first seen in retail rows.
func initializeScouts(rows []DCOrderRow, records []SCScout, cfg Config) *scoutSet {
	s := &scoutSet{
		byName:   make(map[string]*Scout),
		nameByID: make(map[int]string),
	}
	for _, row := range rows {
		name := row.Name()
		if name == "" {
			continue
		}
		if _, ok := s.byName[name]; !ok {
			s.byName[name] = newScout(row.FirstName, row.LastName, isSiteRow(row, cfg))
		}
	}
	for _, rec := range records {
		name := rec.Name()
		if name == "" {
			continue
		}
		scout, ok := s.byName[name]
		if !ok {
			scout = newScout(rec.FirstName, rec.LastName, strings.EqualFold(strings.TrimSpace(rec.LastName), cfg.SiteLastName))
			s.byName[name] = scout
		}
		if rec.GirlID == 0 {
			continue
		}
		if scout.GirlID == 0 {
			scout.GirlID = rec.GirlID
		}
		if _, ok := s.nameByID[rec.GirlID]; !ok {
			s.nameByID[rec.GirlID] = name
		}
	}
	return s
}

func isSiteRow(row DCOrderRow, cfg Config) bool {
	return strings.EqualFold(strings.TrimSpace(row.LastName), cfg.SiteLastName)
}

// lookup finds a scout by ledger identifier first, then by exact name.
func (s *scoutSet) lookup(name string, girlID int) *Scout {
	if girlID != 0 {
		if n, ok := s.nameByID[girlID]; ok {
			return s.byName[n]
		}
	}
	return s.byName[scoutName(name, "")]
}

// sorted returns the scouts by name, the site pseudo-scouts last.
func (s *scoutSet) sorted() []*Scout {
	scouts := slices.Collect(maps.Values(s.byName))
	slices.SortFunc(scouts, func(a, b *Scout) int {
		if a.IsSite != b.IsSite {
			if a.IsSite {
				return 1
			}
			return -1
		}
		return strings.Compare(a.Name, b.Name)
	})
	return scouts
}

// site returns the troop's site pseudo-scout, creating it when no retail row
// introduced one.
func (s *scoutSet) site(cfg Config) *Scout {
	for _, scout := range s.sorted() {
		if scout.IsSite {
			return scout
		}
	}
	first := "Troop"
	if cfg.TroopNumber != "" {
		first = "Troop " + cfg.TroopNumber
	}
	scout := newScout(first, cfg.SiteLastName, true)
	s.byName[scout.Name] = scout
	return scout
}

// importOrders attaches every retail row to the scout of the same name. It
// returns the number of rows dropped: rows naming no scout, and repeated
// order numbers of a real scout.
func importOrders(s *scoutSet, rows []DCOrderRow, w *Warnings) (unmatched, duplicates int) {
	seen := make(map[string]map[string]struct{})
	for _, row := range rows {
		scout := s.byName[row.Name()]
		if scout == nil {
			unmatched++
			continue
		}
		if !scout.IsSite && row.OrderNumber != "" {
			numbers := seen[scout.Name]
			if numbers == nil {
				numbers = make(map[string]struct{})
				seen[scout.Name] = numbers
			}
			if _, dup := numbers[row.OrderNumber]; dup {
				duplicates++
				continue
			}
			numbers[row.OrderNumber] = struct{}{}
		}
		scout.Orders = append(scout.Orders, NewOrder(row, scout.IsSite, w))
	}
	return unmatched, duplicates
}

// importSiteOrders turns troop-level direct-ship records of the ledger
// platform into orders of the site pseudo-scout. Scout-level direct-ship
// records are already known as retail orders.
func importSiteOrders(s *scoutSet, transfers []Transfer, cfg Config) {
	hints := TransferHints{TroopNumber: cfg.TroopNumber, TroopName: cfg.TroopName}
	for _, t := range transfers {
		if t.Category != DirectShipRecord || t.GirlID != 0 {
			continue
		}
		if strings.TrimSpace(t.To) != "" && !isThisTroop(t.To, hints) {
			continue
		}
		site := s.site(cfg)
		donations := min(t.Varieties[CookieShare], t.Packages)
		site.Orders = append(site.Orders, Order{
			Number:           t.OrderNumber,
			Scout:            site.Name,
			Date:             t.Date,
			Owner:            OwnerTroop,
			Type:             DirectShip,
			Packages:         t.Packages,
			Donations:        donations,
			PhysicalPackages: max(t.Packages-donations, 0),
			Amount:           t.Amount,
			Varieties:        t.Varieties.Clone(),
			Source:           SourceSC,
			Raw:              OrderRaw{OrderType: t.Type, TotalPackages: t.Packages},
		})
	}
}
