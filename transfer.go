package troop

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/etnz/troop/date"
)

// TransferCategory is the single meaning assigned to a ledger platform record.
type TransferCategory string

// Transfer categories. The set is closed: every record gets exactly one.
const (
	CouncilToTroop         TransferCategory = "COUNCIL_TO_TROOP"
	TroopOutgoing          TransferCategory = "TROOP_OUTGOING"
	GirlPickup             TransferCategory = "GIRL_PICKUP"
	GirlReturn             TransferCategory = "GIRL_RETURN"
	VirtualBoothAllocation TransferCategory = "VIRTUAL_BOOTH_ALLOCATION"
	BoothSalesAllocation   TransferCategory = "BOOTH_SALES_ALLOCATION"
	DirectShipAllocation   TransferCategory = "DIRECT_SHIP_ALLOCATION"
	DCOrderRecord          TransferCategory = "DC_ORDER_RECORD"
	CookieShareRecord      TransferCategory = "COOKIE_SHARE_RECORD"
	BoothCookieShare       TransferCategory = "BOOTH_COOKIE_SHARE"
	DirectShipRecord       TransferCategory = "DIRECT_SHIP"
	Planned                TransferCategory = "PLANNED"
)

// Categories returns every TransferCategory in reporting order.
func Categories() []TransferCategory {
	return []TransferCategory{
		CouncilToTroop, TroopOutgoing, GirlPickup, GirlReturn,
		VirtualBoothAllocation, BoothSalesAllocation, DirectShipAllocation,
		DCOrderRecord, CookieShareRecord, BoothCookieShare, DirectShipRecord, Planned,
	}
}

// IsOutbound reports whether the category removes physical packages from
// troop stock. Direct-ship allocations are fulfilled by the baker.
func (c TransferCategory) IsOutbound() bool {
	switch c {
	case TroopOutgoing, GirlPickup, VirtualBoothAllocation, BoothSalesAllocation:
		return true
	default:
		return false
	}
}

// Raw ledger platform type codes.
const (
	typeC2T         = "C2T" // prefix: "C2T", "C2T(P)", "C2T-2", ...
	typeT2T         = "T2T"
	typeT2G         = "T2G"
	typeG2T         = "G2T"
	typeDCSync      = "D"
	typeCookieShare = "COOKIE_SHARE"
	typeDirectShip  = "DIRECT_SHIP"
	typePlanned     = "PLANNED"
)

// TransferHints carries the context the type code alone does not give.
type TransferHints struct {
	VirtualBooth      bool
	BoothDivider      bool
	DirectShipDivider bool

	// This troop's number and name, used to tell the direction of a
	// troop-to-troop transfer.
	TroopNumber string
	TroopName   string
}

// ClassifyTransfer assigns the category of a ledger record. ok is false when
// the type code is unknown; the record is then PLANNED, which moves no
// inventory and credits no proceeds.
func ClassifyTransfer(typ, from, to string, h TransferHints) (category TransferCategory, ok bool) {
	code := strings.ToUpper(strings.TrimSpace(typ))
	switch {
	case strings.HasPrefix(code, typeC2T):
		return CouncilToTroop, true
	case code == typeT2T:
		// Outgoing only when the hint pins the sending side on this troop
		// and nothing else; when unsure, count the inventory as received.
		if isThisTroop(from, h) && !isThisTroop(to, h) {
			return TroopOutgoing, true
		}
		return CouncilToTroop, true
	case code == typeT2G:
		switch {
		case h.VirtualBooth:
			return VirtualBoothAllocation, true
		case h.BoothDivider:
			return BoothSalesAllocation, true
		case h.DirectShipDivider:
			return DirectShipAllocation, true
		default:
			return GirlPickup, true
		}
	case code == typeG2T:
		return GirlReturn, true
	case code == typeDCSync:
		return DCOrderRecord, true
	case code == typeCookieShare:
		if h.BoothDivider {
			return BoothCookieShare, true
		}
		return CookieShareRecord, true
	case code == typeDirectShip:
		return DirectShipRecord, true
	case code == typePlanned:
		return Planned, true
	}
	return Planned, false
}

// isThisTroop reports whether a transfer side names the configured troop,
// either by name or by number ("1234", "Troop 1234", "T1234").
func isThisTroop(side string, h TransferHints) bool {
	side = strings.TrimSpace(side)
	if side == "" {
		return false
	}
	if h.TroopName != "" && strings.EqualFold(side, strings.TrimSpace(h.TroopName)) {
		return true
	}
	number := strings.TrimSpace(h.TroopNumber)
	if number == "" {
		return false
	}
	if side == number {
		return true
	}
	// compare the digits of the side, when it carries a single number.
	fields := strings.FieldsFunc(side, func(r rune) bool { return !unicode.IsDigit(r) })
	if len(fields) != 1 {
		return false
	}
	a, errA := strconv.Atoi(fields[0])
	b, errB := strconv.Atoi(number)
	return errA == nil && errB == nil && a == b
}

// Transfer is one classified ledger platform record. It belongs to the troop
// transfer log, not to a scout.
type Transfer struct {
	Type              string           `json:"type"`
	Category          TransferCategory `json:"category"`
	OrderNumber       string           `json:"orderNumber,omitempty"`
	Date              date.Date        `json:"date"`
	From              string           `json:"from"`
	To                string           `json:"to"`
	GirlID            int              `json:"girlId,omitempty"`
	Packages          int              `json:"packages"`
	PhysicalPackages  int              `json:"physicalPackages"`
	Amount            Money            `json:"amount"`
	Varieties         Varieties        `json:"varieties"`
	PhysicalVarieties Varieties        `json:"physicalVarieties"`
}

// cookieVarieties translates ledger platform cookie counts. Unknown
// identifiers are counted under UnknownVariety with a warning, so that no
// package is lost.
func cookieVarieties(cookies []SCCookieCount, ids map[int]Variety, ref, scout string, w *Warnings) Varieties {
	vs := make(Varieties)
	for _, c := range cookies {
		if c.Quantity == 0 {
			continue
		}
		v, ok := ids[c.ID]
		if !ok {
			w.Add(UnknownCookieID, ref, strconv.Itoa(c.ID), scout)
			v = UnknownVariety
		}
		vs[v] += c.Quantity
	}
	return vs
}

// NewTransfer classifies a ledger platform record. The category is decided
// here once and never derived again.
func NewTransfer(raw SCTransfer, cfg Config, w *Warnings) Transfer {
	ref := raw.OrderNumber
	if ref == "" {
		ref = raw.Type + " " + raw.Date
	}
	category, ok := ClassifyTransfer(raw.Type, raw.From, raw.To, TransferHints{
		VirtualBooth:      raw.VirtualBooth,
		BoothDivider:      raw.BoothDivider,
		DirectShipDivider: raw.DirectShipDivider,
		TroopNumber:       cfg.TroopNumber,
		TroopName:         cfg.TroopName,
	})
	if !ok {
		w.Add(UnknownTransferType, ref, raw.Type, "")
	}

	on, err := date.Parse(raw.Date)
	if err != nil {
		w.Add(InvalidDate, ref, raw.Date, "")
	}
	amount, err := ParseDollars(raw.Amount)
	if err != nil {
		w.Add(InvalidAmount, ref, raw.Amount, "")
	}

	varieties := cookieVarieties(raw.Cookies, cfg.CookieIDs, ref, "", w)
	// physical counts are summed from the varieties, never derived by
	// subtracting Cookie Share from a total.
	physical := varieties.Physical()
	packages := raw.Packages
	if packages == 0 {
		packages = varieties.Total(true)
	}

	return Transfer{
		Type:              raw.Type,
		Category:          category,
		OrderNumber:       raw.OrderNumber,
		Date:              on,
		From:              raw.From,
		To:                raw.To,
		GirlID:            raw.GirlID,
		Packages:          packages,
		PhysicalPackages:  physical.Total(false),
		Amount:            amount,
		Varieties:         varieties,
		PhysicalVarieties: physical,
	}
}
