// Package mockdata serves the bundled demonstration data set of traders and
// trades.
package mockdata

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/trogers1052/trade-transparency/internal/dashboard"
	"github.com/trogers1052/trade-transparency/internal/models"
)

//go:embed data/dataset.yaml
var dataset []byte

// Dataset is the on-disk shape of a data set file
type Dataset struct {
	Traders []models.Trader `yaml:"traders"`
	Trades  []models.Trade  `yaml:"trades"`
}

// Store is an immutable in-memory provider. It is safe for concurrent use.
type Store struct {
	traders  []models.Trader
	byTrader map[string][]models.Trade
	trades   map[string]models.Trade
}

// Default loads the bundled data set
func Default() (*Store, error) {
	return Load(bytes.NewReader(dataset))
}

// Load reads a YAML data set. Trades of each trader are ordered by trade
// number, highest first.
func Load(r io.Reader) (*Store, error) {
	var ds Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("failed to decode data set: %w", err)
	}
	return New(ds)
}

// New builds a Store from ds, rejecting duplicate IDs and trades of unknown traders
func New(ds Dataset) (*Store, error) {
	s := &Store{
		traders:  make([]models.Trader, 0, len(ds.Traders)),
		byTrader: make(map[string][]models.Trade, len(ds.Traders)),
		trades:   make(map[string]models.Trade, len(ds.Trades)),
	}

	for _, t := range ds.Traders {
		if _, dup := s.byTrader[t.ID]; dup {
			return nil, fmt.Errorf("duplicate trader id %q", t.ID)
		}
		s.byTrader[t.ID] = []models.Trade{}
		s.traders = append(s.traders, t)
	}

	for _, t := range ds.Trades {
		if _, ok := s.byTrader[t.TraderID]; !ok {
			return nil, fmt.Errorf("trade %q references unknown trader %q", t.ID, t.TraderID)
		}
		if _, dup := s.trades[t.ID]; dup {
			return nil, fmt.Errorf("duplicate trade id %q", t.ID)
		}
		if err := t.CheckFinite(); err != nil {
			return nil, err
		}
		s.trades[t.ID] = t
		s.byTrader[t.TraderID] = append(s.byTrader[t.TraderID], t)
	}

	for id := range s.byTrader {
		list := s.byTrader[id]
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].TradeNumber > list[j].TradeNumber
		})
	}

	return s, nil
}

// Traders returns all traders in data set order
func (s *Store) Traders(ctx context.Context) ([]models.Trader, error) {
	out := make([]models.Trader, len(s.traders))
	copy(out, s.traders)
	return out, nil
}

// Trader returns one trader
func (s *Store) Trader(ctx context.Context, id string) (*models.Trader, error) {
	for _, t := range s.traders {
		if t.ID == id {
			trader := t
			return &trader, nil
		}
	}
	return nil, fmt.Errorf("trader %q: %w", id, dashboard.ErrNotFound)
}

// TradesByTrader returns the trader's trades, newest first
func (s *Store) TradesByTrader(ctx context.Context, traderID string) ([]models.Trade, error) {
	list, ok := s.byTrader[traderID]
	if !ok {
		return nil, fmt.Errorf("trader %q: %w", traderID, dashboard.ErrNotFound)
	}
	out := make([]models.Trade, len(list))
	copy(out, list)
	return out, nil
}

// Trade returns one trade
func (s *Store) Trade(ctx context.Context, id string) (*models.Trade, error) {
	t, ok := s.trades[id]
	if !ok {
		return nil, fmt.Errorf("trade %q: %w", id, dashboard.ErrNotFound)
	}
	return &t, nil
}

var _ dashboard.Provider = (*Store)(nil)
