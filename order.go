package troop

import (
	"encoding/json"
	"strings"

	"github.com/etnz/troop/date"
)

// Owner tells whether an order belongs to a scout or to the troop.
type Owner string

const (
	OwnerGirl  Owner = "GIRL"
	OwnerTroop Owner = "TROOP"
)

// OrderType is how an order is fulfilled. The zero value means unclassified.
type OrderType string

const (
	Delivery   OrderType = "DELIVERY"    // delivered in person by the scout
	DirectShip OrderType = "DIRECT_SHIP" // shipped by the baker
	Booth      OrderType = "BOOTH"       // sold in hand at a troop booth
	InHand     OrderType = "IN_HAND"     // sold in hand by the scout
	Donation   OrderType = "DONATION"    // Cookie Share only
)

// MarshalJSON writes null for an unclassified order type.
func (t OrderType) MarshalJSON() ([]byte, error) { return nullableString(string(t)) }

// PaymentMethod is how the customer paid. The zero value means unknown and
// is never counted as either cash or electronic payment.
type PaymentMethod string

const (
	Cash       PaymentMethod = "CASH"
	CreditCard PaymentMethod = "CREDIT_CARD"
	Venmo      PaymentMethod = "VENMO"
)

// MarshalJSON writes null for an unknown payment method.
func (p PaymentMethod) MarshalJSON() ([]byte, error) { return nullableString(string(p)) }

// IsElectronic reports whether the payment was collected by the platform.
func (p PaymentMethod) IsElectronic() bool { return p == CreditCard || p == Venmo }

func nullableString(s string) ([]byte, error) {
	if s == "" {
		return []byte("null"), nil
	}
	return json.Marshal(s)
}

// Source identifies the platform a record came from.
type Source string

const (
	SourceDC Source = "DC" // retail platform
	SourceSC Source = "SC" // ledger platform
)

// OrderRaw keeps the platform strings an order was classified from.
type OrderRaw struct {
	OrderType     string `json:"orderType,omitempty"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
	ShipStatus    string `json:"shipStatus,omitempty"`
	TotalPackages int    `json:"totalPackages"`
	Refunded      int    `json:"refundedPackages"`
	Amount        string `json:"amount,omitempty"`
}

// Order is one customer sale. Orders are immutable once imported.
type Order struct {
	Number           string        `json:"number"`
	Scout            string        `json:"scout"`
	Date             date.Date     `json:"date"`
	Owner            Owner         `json:"owner"`
	Type             OrderType     `json:"orderType"`
	Payment          PaymentMethod `json:"paymentMethod"`
	Status           string        `json:"status,omitempty"`
	Packages         int           `json:"packages"` // total - refunded
	Donations        int           `json:"donations"`
	PhysicalPackages int           `json:"physicalPackages"` // packages - donations
	Amount           Money         `json:"amount"`
	Varieties        Varieties     `json:"varieties"`
	Source           Source        `json:"source"`
	Raw              OrderRaw      `json:"raw"`
}

// NeedsInventory reports whether the order draws on the scout's own stock:
// scout-owned orders delivered or handed over by the scout.
func (o Order) NeedsInventory() bool {
	return o.Owner == OwnerGirl && (o.Type == Delivery || o.Type == InHand)
}

// shippedKeywords mark orders fulfilled by the baker.
var shippedKeywords = []string{"shipped", "ship only", "direct ship"}

// deliveryKeywords mark orders the scout delivers herself.
var deliveryKeywords = []string{"in-person delivery", "in person delivery", "pick up"}

// ClassifyOrderType derives the owner and the order type of a retail order
// from the platform's free-text order type. Unrecognized strings yield an
// empty OrderType and an UNKNOWN_ORDER_TYPE warning.
func ClassifyOrderType(site bool, orderType string, ref, scout string, w *Warnings) (Owner, OrderType) {
	owner := OwnerGirl
	if site {
		owner = OwnerTroop
	}
	raw := strings.TrimSpace(orderType)
	lower := strings.ToLower(raw)
	switch {
	case raw == "Donation":
		return owner, Donation
	case containsAny(lower, shippedKeywords):
		return owner, DirectShip
	case strings.Contains(lower, "cookies in hand"):
		if site {
			return owner, Booth
		}
		return owner, InHand
	case containsAny(lower, deliveryKeywords):
		return owner, Delivery
	}
	w.Add(UnknownOrderType, ref, orderType, scout)
	return owner, ""
}

// ClassifyPayment derives the payment method from the platform payment
// status. Unrecognized statuses yield an empty PaymentMethod and an
// UNKNOWN_PAYMENT_STATUS warning.
func ClassifyPayment(status string, ref, scout string, w *Warnings) PaymentMethod {
	raw := strings.TrimSpace(status)
	switch {
	case raw == "CASH":
		return Cash
	case strings.Contains(raw, "VENMO"):
		return Venmo
	case raw == "CAPTURED", raw == "AUTHORIZED":
		return CreditCard
	}
	w.Add(UnknownPaymentStatus, ref, status, scout)
	return ""
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// NewOrder classifies a retail platform row into an Order. site tells
// whether the row belongs to the troop pseudo-scout.
func NewOrder(row DCOrderRow, site bool, w *Warnings) Order {
	scout := row.Name()
	ref := row.OrderNumber
	owner, typ := ClassifyOrderType(site, row.OrderType, ref, scout, w)
	payment := ClassifyPayment(row.PaymentStatus, ref, scout, w)

	on, err := date.Parse(row.OrderDate)
	if err != nil {
		w.Add(InvalidDate, ref, row.OrderDate, scout)
	}
	amount, err := ParseDollars(row.CurrentSaleAmount)
	if err != nil {
		w.Add(InvalidAmount, ref, row.CurrentSaleAmount, scout)
	}

	packages := max(row.TotalPackages-row.RefundedPackages, 0)
	donations := min(max(row.Donations, 0), packages)

	varieties := row.Varieties.Physical()
	if donations > 0 {
		varieties[CookieShare] = donations
	}

	return Order{
		Number:           row.OrderNumber,
		Scout:            scout,
		Date:             on,
		Owner:            owner,
		Type:             typ,
		Payment:          payment,
		Status:           strings.TrimSpace(row.OrderStatus),
		Packages:         packages,
		Donations:        donations,
		PhysicalPackages: packages - donations,
		Amount:           amount,
		Varieties:        varieties,
		Source:           SourceDC,
		Raw: OrderRaw{
			OrderType:     row.OrderType,
			PaymentStatus: row.PaymentStatus,
			ShipStatus:    row.ShipStatus,
			TotalPackages: row.TotalPackages,
			Refunded:      row.RefundedPackages,
			Amount:        row.CurrentSaleAmount,
		},
	}
}

// OrderStatus groups the platform order statuses a leader follows up on.
type OrderStatus string

const (
	StatusNeedsApproval OrderStatus = "NEEDS_APPROVAL"
	StatusPending       OrderStatus = "PENDING"
	StatusCompleted     OrderStatus = "COMPLETED"
)

// StatusGroup maps the platform order status to an OrderStatus.
func (o Order) StatusGroup() OrderStatus {
	s := strings.ToLower(o.Status)
	switch {
	case strings.Contains(s, "needs approval"):
		return StatusNeedsApproval
	case strings.Contains(s, "complete"), strings.Contains(s, "delivered"), strings.Contains(s, "shipped"):
		return StatusCompleted
	default:
		return StatusPending
	}
}
