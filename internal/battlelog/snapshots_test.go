package battlelog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bellum/internal/api"
)

type fakeLookup struct {
	ships   map[int64]api.OwnedShip
	failing map[int64]bool
}

func (f *fakeLookup) GetShip(_ context.Context, shipNumber int64) (*api.OwnedShip, error) {
	if f.failing[shipNumber] {
		return nil, errors.New("boom")
	}
	ship, ok := f.ships[shipNumber]
	if !ok {
		return nil, errors.New("not found")
	}
	return &ship, nil
}

func TestStatRatio(t *testing.T) {
	assert.Equal(t, 100.0, StatRatio(50, 50), "actual == base is exactly 100")
	assert.Equal(t, 100.0, StatRatio(75, 50), "buffed stat clamps to 100")
	assert.Equal(t, 50.0, StatRatio(25, 50))
	assert.Equal(t, 100.0, StatRatio(10, 0), "non-positive base renders full")
}

func TestSnapshotPoolOwnShipPriority(t *testing.T) {
	pool := NewSnapshotPool([]api.OwnedShip{
		{ShipNumber: 10, ShipName: "Swift", BaseHP: 100, ActualHP: 40},
	})
	lookup := &fakeLookup{ships: map[int64]api.OwnedShip{
		10: {ShipNumber: 10, ShipName: "Impostor", BaseHP: 100, ActualHP: 100},
		20: {ShipNumber: 20, ShipName: "Falcon", BaseHP: 200, ActualHP: 100},
	}}

	missing := pool.MissingFrom([]api.Participant{
		{ShipNumber: 10}, {ShipNumber: 20}, {ShipNumber: 20},
	})
	assert.Equal(t, []int64{20}, missing, "own ships and duplicates are not refetched")

	pool.FetchMissing(context.Background(), lookup, missing)

	own, ok := pool.Resolve(10)
	require.True(t, ok)
	assert.Equal(t, "Swift", own.ShipName, "own pool wins over fetched")

	fetched, ok := pool.Resolve(20)
	require.True(t, ok)
	assert.Equal(t, "Falcon", fetched.ShipName)
}

func TestFetchMissingIsolatesFailures(t *testing.T) {
	pool := NewSnapshotPool(nil)
	lookup := &fakeLookup{
		ships: map[int64]api.OwnedShip{
			20: {ShipNumber: 20, BaseHP: 200, ActualHP: 150},
			30: {ShipNumber: 30, BaseHP: 300, ActualHP: 300},
		},
		failing: map[int64]bool{25: true},
	}

	pool.FetchMissing(context.Background(), lookup, []int64{20, 25, 30})

	_, ok := pool.Resolve(25)
	assert.False(t, ok, "failed fetch leaves no snapshot")

	first, ok := pool.Resolve(20)
	require.True(t, ok)
	assert.Equal(t, int64(20), first.ShipNumber)
	_, ok = pool.Resolve(30)
	assert.True(t, ok, "one failure never aborts the others")
}

func TestRatiosFallback(t *testing.T) {
	pool := NewSnapshotPool([]api.OwnedShip{{
		ShipNumber: 10,
		BaseAttack: 10, ActualAttack: 5,
		BaseShield: 10, ActualShield: 10,
		BaseHP: 100, ActualHP: 130,
		BaseEvasion: 4, ActualEvasion: 1,
		BaseFireRate: 2, ActualFireRate: 2,
		BaseValue: 1000, ActualValue: 750,
	}})

	ratios := pool.Ratios(10)
	assert.Equal(t, 50.0, ratios.Attack)
	assert.Equal(t, 100.0, ratios.Shield)
	assert.Equal(t, 100.0, ratios.HP, "buff clamps")
	assert.Equal(t, 25.0, ratios.Evasion)
	assert.Equal(t, 100.0, ratios.FireRate)
	assert.Equal(t, 75.0, ratios.Value)

	unknown := pool.Ratios(999)
	assert.Equal(t, StatRatios{Attack: 100, Shield: 100, HP: 100, Evasion: 100, FireRate: 100, Value: 100}, unknown)
}
