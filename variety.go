package troop

import (
	"fmt"
	"slices"
	"strings"
)

// Variety is a cookie type, named as the troop reports it.
type Variety string

// Cookie varieties known to the council catalog.
const (
	ThinMints            Variety = "Thin Mints"
	Trefoils             Variety = "Trefoils"
	DoSiDos              Variety = "Do-si-dos"
	Samoas               Variety = "Samoas"
	Tagalongs            Variety = "Tagalongs"
	Lemonades            Variety = "Lemonades"
	Adventurefuls        Variety = "Adventurefuls"
	ToffeeTastic         Variety = "Toffee-tastic"
	Exploremores         Variety = "Exploremores"
	CaramelChocolateChip Variety = "Caramel Chocolate Chip"

	// CookieShare is the virtual donation unit. It is never physical inventory.
	CookieShare Variety = "Cookie Share"

	// UnknownVariety collects packages whose cookie identifier could not be
	// translated. They are physical: only Cookie Share is virtual.
	UnknownVariety Variety = "Unknown"
)

// catalog is the display order of varieties.
var catalog = []Variety{
	ThinMints, Trefoils, DoSiDos, Samoas, Tagalongs, Lemonades,
	Adventurefuls, ToffeeTastic, Exploremores, CaramelChocolateChip,
	CookieShare, UnknownVariety,
}

// Catalog returns the known varieties in display order.
func Catalog() []Variety { return slices.Clone(catalog) }

// IsPhysical reports whether packages of this variety occupy inventory.
func (v Variety) IsPhysical() bool { return v != CookieShare }

// ParseVariety matches a column header or label to a Variety, ignoring case
// and punctuation ("Do-Si-Dos", "dosidos" and "Do-si-dos" are the same).
func ParseVariety(s string) (Variety, error) {
	key := varietyKey(s)
	for _, v := range catalog {
		if varietyKey(string(v)) == key {
			return v, nil
		}
	}
	if alias, ok := varietyAliases[key]; ok {
		return alias, nil
	}
	return "", fmt.Errorf("unknown cookie variety %q", s)
}

// varietyAliases are the other bakery's names for the same cookies.
var varietyAliases = map[string]Variety{
	"carameldelites":       Samoas,
	"peanutbutterpatties":  Tagalongs,
	"peanutbuttersandwich": DoSiDos,
	"donate":               CookieShare,
	"cookiesharedonation":  CookieShare,
	"caramelchocchip":      CaramelChocolateChip,
	"toffeetastic":         ToffeeTastic,
	"glutenfree":           ToffeeTastic,
}

func varietyKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Varieties maps a cookie variety to a package count.
//
// Sums over Varieties exclude Cookie Share unless explicitly requested: a
// "package" in inventory or sales context is always a physical package.
type Varieties map[Variety]int

// Total returns the number of packages, including Cookie Share only when asked.
func (v Varieties) Total(includeCookieShare bool) int {
	total := 0
	for variety, n := range v {
		if !includeCookieShare && !variety.IsPhysical() {
			continue
		}
		total += n
	}
	return total
}

// Physical returns a copy of v without the Cookie Share entry.
func (v Varieties) Physical() Varieties {
	p := make(Varieties, len(v))
	for variety, n := range v {
		if variety.IsPhysical() && n != 0 {
			p[variety] = n
		}
	}
	return p
}

// Clone returns a copy of v, dropping zero entries.
func (v Varieties) Clone() Varieties {
	c := make(Varieties, len(v))
	for variety, n := range v {
		if n != 0 {
			c[variety] = n
		}
	}
	return c
}

// Add adds every count of o into v. v must not be nil.
func (v Varieties) Add(o Varieties) {
	for variety, n := range o {
		v[variety] += n
	}
}

// Sub subtracts every count of o from v. v must not be nil.
func (v Varieties) Sub(o Varieties) {
	for variety, n := range o {
		v[variety] -= n
	}
}

// Sorted returns the varieties present in v in catalog order, then any
// variety missing from the catalog in alphabetical order.
func (v Varieties) Sorted() []Variety {
	return sortVarieties(map[Variety]int(v))
}

// Equal reports whether v and o hold the same non-zero counts.
func (v Varieties) Equal(o Varieties) bool {
	for variety, n := range v {
		if o[variety] != n {
			return false
		}
	}
	for variety, n := range o {
		if v[variety] != n {
			return false
		}
	}
	return true
}

// MarshalJSON writes the non-zero counts in catalog order.
func (v Varieties) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, variety := range v.Sorted() {
		w.Optional(string(variety), v[variety])
	}
	return w.MarshalJSON()
}

// key returns a canonical string of v, used to identify identical breakdowns.
func (v Varieties) key() string {
	var b strings.Builder
	for _, variety := range v.Sorted() {
		if n := v[variety]; n != 0 {
			fmt.Fprintf(&b, "%s=%d;", variety, n)
		}
	}
	return b.String()
}

// sortVarieties returns the keys of any variety-keyed maps in display order.
func sortVarieties[T any](maps ...map[Variety]T) []Variety {
	seen := make(map[Variety]struct{})
	for _, m := range maps {
		for variety := range m {
			seen[variety] = struct{}{}
		}
	}
	out := make([]Variety, 0, len(seen))
	for _, variety := range catalog {
		if _, ok := seen[variety]; ok {
			out = append(out, variety)
			delete(seen, variety)
		}
	}
	rest := make([]Variety, 0, len(seen))
	for variety := range seen {
		rest = append(rest, variety)
	}
	slices.Sort(rest)
	return append(out, rest...)
}
