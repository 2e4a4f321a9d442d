package troop

// This file holds the raw input contracts, one shape per source platform.
// They are filled by the ingestion layer (see package importer) and are
// never modified by the engine.

// DCOrderRow is one row of the retail platform (Digital Cookie) order export.
type DCOrderRow struct {
	OrderNumber       string    `json:"orderNumber"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"` // the site sentinel marks troop rows
	OrderDate         string    `json:"orderDate"`
	OrderType         string    `json:"orderType"`
	TotalPackages     int       `json:"totalPackages"` // includes donations
	RefundedPackages  int       `json:"refundedPackages"`
	CurrentSaleAmount string    `json:"currentSaleAmount"` // "$1,234.50"
	OrderStatus       string    `json:"orderStatus"`
	PaymentStatus     string    `json:"paymentStatus"`
	ShipStatus        string    `json:"shipStatus"`
	Donations         int       `json:"donations"`
	Varieties         Varieties `json:"varieties"` // one column per physical variety
}

// Name returns the scout name of the row, "First Last".
func (r DCOrderRow) Name() string { return scoutName(r.FirstName, r.LastName) }

// SCCookieCount is a package count keyed by the ledger platform cookie identifier.
type SCCookieCount struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

// SCTransfer is one inventory or ledger record of the ledger platform (Smart Cookies).
type SCTransfer struct {
	Type        string          `json:"type"`
	OrderNumber string          `json:"orderNumber"`
	Date        string          `json:"date"`
	From        string          `json:"from"`
	To          string          `json:"to"`
	GirlID      int             `json:"girlId,omitempty"` // scout on the girl side of T2G/G2T records
	Packages    int             `json:"packages"`         // 0 means "sum of Cookies"
	Amount      string          `json:"amount,omitempty"`
	Cookies     []SCCookieCount `json:"cookies"`

	// Directional hints set by the platform on generated records.
	VirtualBooth      bool `json:"virtualBooth,omitempty"`
	BoothDivider      bool `json:"boothDivider,omitempty"`
	DirectShipDivider bool `json:"directShipDivider,omitempty"`
}

// SCScout is a scout identity known to the ledger platform.
type SCScout struct {
	GirlID    int    `json:"girlId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Name returns the scout name, "First Last".
func (s SCScout) Name() string { return scoutName(s.FirstName, s.LastName) }

// SCDividerGirl is one scout's share of a divided sale.
type SCDividerGirl struct {
	GirlID  int             `json:"girlId"`
	Cookies []SCCookieCount `json:"cookies"` // may contain a Cookie Share entry
}

// SCBoothDivider splits one booth reservation's sales across scouts.
type SCBoothDivider struct {
	ReservationID string          `json:"reservationId"`
	StoreName     string          `json:"storeName"`
	Date          string          `json:"date"`
	TimeSlot      string          `json:"timeSlot"`
	Girls         []SCDividerGirl `json:"girls"`
}

// SCDirectShipDivider splits the troop's direct-ship sales across scouts.
type SCDirectShipDivider struct {
	Girls []SCDividerGirl `json:"girls"`
}

// BoothReservation is a booth slot reserved by the troop. It is passed
// through to the dataset and only rolled up with its divider allocations.
type BoothReservation struct {
	ReservationID string `json:"reservationId"`
	StoreName     string `json:"storeName"`
	Address       string `json:"address,omitempty"`
	Date          string `json:"date"`
	TimeSlot      string `json:"timeSlot,omitempty"`
	Type          string `json:"type,omitempty"` // e.g. "Lottery", "FCFS", "Troop"
}

// Metadata describes where and when the raw inputs were obtained.
type Metadata struct {
	DCSource     string `json:"dcSource,omitempty"`
	SCSource     string `json:"scSource,omitempty"`
	DCImportedAt string `json:"dcImportedAt,omitempty"`
	SCImportedAt string `json:"scImportedAt,omitempty"`
}

// ImportState is every raw input of one reconciliation pass, already
// materialized in memory.
type ImportState struct {
	Orders            []DCOrderRow         `json:"orders"`
	Transfers         []SCTransfer         `json:"transfers"`
	Scouts            []SCScout            `json:"scouts"`
	BoothDividers     []SCBoothDivider     `json:"boothDividers"`
	DirectShipDivider *SCDirectShipDivider `json:"directShipDivider,omitempty"`
	Reservations      []BoothReservation   `json:"reservations"`
	Metadata          Metadata             `json:"metadata"`
}
