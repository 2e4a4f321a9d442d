package troop

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ProceedsTier is one step of the troop proceeds rate: troops whose
// per-girl average reaches MinPGA earn Rate dollars per package.
type ProceedsTier struct {
	MinPGA int
	Rate   Money
}

// Config holds the council and troop parameters of a reconciliation pass.
type Config struct {
	TroopNumber string
	TroopName   string

	// SiteLastName is the retail platform's last-name sentinel for rows that
	// belong to the troop rather than to a scout.
	SiteLastName string
	// DCOrderPrefix starts the order number of ledger records synchronized
	// from the retail platform.
	DCOrderPrefix string

	Prices    map[Variety]Money
	CookieIDs map[int]Variety
	Tiers     []ProceedsTier // ascending MinPGA
	// ExemptPackages is the number of packages per active scout deducted
	// from troop proceeds.
	ExemptPackages int
}

// DefaultConfig returns the council defaults.
func DefaultConfig() Config {
	prices := make(map[Variety]Money)
	for _, v := range catalog {
		prices[v] = USD(6)
	}
	prices[ToffeeTastic] = USD(7)
	prices[CaramelChocolateChip] = USD(7)
	return Config{
		SiteLastName:  "Site",
		DCOrderPrefix: "D",
		Prices:        prices,
		CookieIDs: map[int]Variety{
			1:  ThinMints,
			2:  Samoas,
			3:  Tagalongs,
			4:  Trefoils,
			5:  DoSiDos,
			6:  Lemonades,
			7:  Adventurefuls,
			8:  ToffeeTastic,
			9:  Exploremores,
			10: CaramelChocolateChip,
			37: CookieShare,
		},
		Tiers: []ProceedsTier{
			{MinPGA: 0, Rate: USD(0.85)},
			{MinPGA: 150, Rate: USD(0.90)},
			{MinPGA: 350, Rate: USD(0.95)},
		},
		ExemptPackages: 50,
	}
}

// Price returns the per-package price of a variety; unknown varieties use
// the Thin Mints price.
func (c Config) Price(v Variety) Money {
	if p, ok := c.Prices[v]; ok {
		return p
	}
	return c.Prices[ThinMints]
}

// Value returns the dollar value of the physical packages of vs.
func (c Config) Value(vs Varieties) Money {
	var total Money
	for _, v := range vs.Sorted() {
		if !v.IsPhysical() {
			continue
		}
		total = total.Add(c.Price(v).Mul(vs[v]))
	}
	return total
}

// Validate checks the configuration and returns every problem found.
func (c Config) Validate() error {
	var errs error
	if c.SiteLastName == "" {
		errs = errors.Join(errs, errors.New("site last name is missing"))
	}
	if len(c.Tiers) == 0 {
		errs = errors.Join(errs, errors.New("at least one proceeds tier is required"))
	}
	for i, t := range c.Tiers {
		if i > 0 && t.MinPGA <= c.Tiers[i-1].MinPGA {
			errs = errors.Join(errs, fmt.Errorf("proceeds tier %d: min_pga %d must be greater than %d", i, t.MinPGA, c.Tiers[i-1].MinPGA))
		}
		if t.Rate.IsNegative() {
			errs = errors.Join(errs, fmt.Errorf("proceeds tier %d: negative rate %s", i, t.Rate))
		}
	}
	if c.ExemptPackages < 0 {
		errs = errors.Join(errs, fmt.Errorf("negative exempt packages %d", c.ExemptPackages))
	}
	for v, p := range c.Prices {
		if p.IsNegative() {
			errs = errors.Join(errs, fmt.Errorf("negative price %s for %s", p, v))
		}
	}
	return errs
}

// configFile is the YAML shape of a Config. Fields left out keep their
// default value.
type configFile struct {
	TroopNumber    string             `yaml:"troop_number"`
	TroopName      string             `yaml:"troop_name"`
	SiteLastName   string             `yaml:"site_last_name"`
	DCOrderPrefix  string             `yaml:"dc_order_prefix"`
	Prices         map[string]float64 `yaml:"prices"`
	CookieIDs      map[int]string     `yaml:"cookie_ids"`
	ExemptPackages *int               `yaml:"exempt_packages"`
	Tiers          []struct {
		MinPGA int     `yaml:"min_pga"`
		Rate   float64 `yaml:"rate"`
	} `yaml:"tiers"`
}

// DecodeConfig reads a YAML configuration on top of DefaultConfig.
//
//	troop_number: "1234"
//	troop_name: Troop 1234
//	prices: {Thin Mints: 6, Toffee-tastic: 7}
//	cookie_ids: {1: Thin Mints, 37: Cookie Share}
//	tiers: [{min_pga: 0, rate: 0.85}, {min_pga: 150, rate: 0.90}]
//	exempt_packages: 50
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	var f configFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("cannot decode config: %w", err)
	}

	var errs error
	if f.TroopNumber != "" {
		cfg.TroopNumber = f.TroopNumber
	}
	if f.TroopName != "" {
		cfg.TroopName = f.TroopName
	}
	if f.SiteLastName != "" {
		cfg.SiteLastName = f.SiteLastName
	}
	if f.DCOrderPrefix != "" {
		cfg.DCOrderPrefix = f.DCOrderPrefix
	}
	for name, price := range f.Prices {
		v, err := ParseVariety(name)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("prices: %w", err))
			continue
		}
		cfg.Prices[v] = USD(decimal.NewFromFloat(price))
	}
	if len(f.CookieIDs) > 0 {
		cfg.CookieIDs = make(map[int]Variety, len(f.CookieIDs))
		for id, name := range f.CookieIDs {
			v, err := ParseVariety(name)
			if err != nil {
				errs = errors.Join(errs, fmt.Errorf("cookie_ids[%d]: %w", id, err))
				continue
			}
			cfg.CookieIDs[id] = v
		}
	}
	if len(f.Tiers) > 0 {
		cfg.Tiers = cfg.Tiers[:0:0]
		for _, t := range f.Tiers {
			cfg.Tiers = append(cfg.Tiers, ProceedsTier{MinPGA: t.MinPGA, Rate: USD(decimal.NewFromFloat(t.Rate))})
		}
		slices.SortStableFunc(cfg.Tiers, func(a, b ProceedsTier) int { return a.MinPGA - b.MinPGA })
	}
	if f.ExemptPackages != nil {
		cfg.ExemptPackages = *f.ExemptPackages
	}
	if errs != nil {
		return cfg, errs
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads the configuration file at path. An empty path returns
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("could not open config file %q: %w", path, err)
	}
	defer f.Close()
	cfg, err := DecodeConfig(f)
	if err != nil {
		return cfg, fmt.Errorf("config file %q: %w", path, err)
	}
	return cfg, nil
}
