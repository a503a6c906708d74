package battlelog

import (
	"context"
	"sync"

	"bellum/internal/api"
	"bellum/internal/log"
)

// ShipLookup is the slice of the API client the snapshot pool needs.
type ShipLookup interface {
	GetShip(ctx context.Context, shipNumber int64) (*api.OwnedShip, error)
}

// StatRatios are the current-vs-base percentages for one ship, clamped
// to 100. Every field falls back to 100 when no snapshot resolves.
type StatRatios struct {
	Attack   float64
	Shield   float64
	HP       float64
	Evasion  float64
	FireRate float64
	Value    float64
}

// SnapshotPool holds two current-state snapshot pools: the viewer's own
// ships and individually fetched opponent/NPC ships. Lookups union the
// pools with own-ship priority.
type SnapshotPool struct {
	mu      sync.RWMutex
	own     map[int64]api.OwnedShip
	fetched map[int64]api.OwnedShip
}

// NewSnapshotPool seeds the pool with the viewer's own ships.
func NewSnapshotPool(ownShips []api.OwnedShip) *SnapshotPool {
	own := make(map[int64]api.OwnedShip, len(ownShips))
	for _, ship := range ownShips {
		own[ship.ShipNumber] = ship
	}
	return &SnapshotPool{
		own:     own,
		fetched: make(map[int64]api.OwnedShip),
	}
}

// Resolve returns the snapshot for a ship number, preferring the viewer's
// own pool.
func (p *SnapshotPool) Resolve(shipNumber int64) (api.OwnedShip, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if ship, ok := p.own[shipNumber]; ok {
		return ship, true
	}
	ship, ok := p.fetched[shipNumber]
	return ship, ok
}

// MissingFrom lists the distinct participant ship numbers the pool cannot
// resolve yet.
func (p *SnapshotPool) MissingFrom(participants []api.Participant) []int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	seen := make(map[int64]bool)
	var missing []int64
	for _, part := range participants {
		if seen[part.ShipNumber] {
			continue
		}
		seen[part.ShipNumber] = true
		if _, ok := p.own[part.ShipNumber]; ok {
			continue
		}
		if _, ok := p.fetched[part.ShipNumber]; ok {
			continue
		}
		missing = append(missing, part.ShipNumber)
	}
	return missing
}

// FetchMissing looks up every missing ship number concurrently. Each
// failure is isolated and logged per ship; the remaining fetches and the
// caller's render proceed regardless.
func (p *SnapshotPool) FetchMissing(ctx context.Context, lookup ShipLookup, shipNumbers []int64) {
	var wg sync.WaitGroup
	for _, shipNumber := range shipNumbers {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()
			ship, err := lookup.GetShip(ctx, n)
			if err != nil {
				log.Warn("Could not fetch ship snapshot", "ship_number", n, "error", err)
				return
			}
			p.mu.Lock()
			p.fetched[n] = *ship
			p.mu.Unlock()
		}(shipNumber)
	}
	wg.Wait()
}

// Ratios computes the progress-bar percentages for a ship. When the ship
// number resolves in neither pool, every bar renders full rather than
// erroring.
func (p *SnapshotPool) Ratios(shipNumber int64) StatRatios {
	ship, ok := p.Resolve(shipNumber)
	if !ok {
		return StatRatios{Attack: 100, Shield: 100, HP: 100, Evasion: 100, FireRate: 100, Value: 100}
	}
	return StatRatios{
		Attack:   StatRatio(ship.ActualAttack, ship.BaseAttack),
		Shield:   StatRatio(ship.ActualShield, ship.BaseShield),
		HP:       StatRatio(ship.ActualHP, ship.BaseHP),
		Evasion:  StatRatio(ship.ActualEvasion, ship.BaseEvasion),
		FireRate: StatRatio(ship.ActualFireRate, ship.BaseFireRate),
		Value:    StatRatio(ship.ActualValue, ship.BaseValue),
	}
}

// StatRatio is min(100, actual/base*100). A non-positive base cannot
// produce a meaningful ratio and renders full.
func StatRatio(actual, base float64) float64 {
	if base <= 0 {
		return 100
	}
	ratio := actual / base * 100
	if ratio > 100 {
		return 100
	}
	return ratio
}
