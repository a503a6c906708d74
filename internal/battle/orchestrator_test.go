package battle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bellum/internal/api"
)

type fakeAPI struct {
	shipsByUser map[int64][]api.OwnedShip
	shipsErr    map[int64]error
	users       []api.UserProfile
	lastRequest *api.BattleRequest
	result      *api.BattleResult
	submitErr   error
}

func (f *fakeAPI) GetUserShips(_ context.Context, userID int64, status string) ([]api.OwnedShip, error) {
	if err := f.shipsErr[userID]; err != nil {
		return nil, err
	}
	var matching []api.OwnedShip
	for _, ship := range f.shipsByUser[userID] {
		if status == "" || ship.Status == status {
			matching = append(matching, ship)
		}
	}
	return matching, nil
}

func (f *fakeAPI) SubmitBattle(_ context.Context, req api.BattleRequest) (*api.BattleResult, error) {
	f.lastRequest = &req
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.result, nil
}

func (f *fakeAPI) ListUsers(context.Context) ([]api.UserProfile, error) {
	return f.users, nil
}

func activeShip(n int64) api.OwnedShip {
	return api.OwnedShip{ShipNumber: n, Status: api.ShipStatusActive}
}

func dockedShip(n int64) api.OwnedShip {
	return api.OwnedShip{ShipNumber: n, Status: api.ShipStatusDocked}
}

func TestStartCommitsBothFullActiveFleets(t *testing.T) {
	client := &fakeAPI{
		shipsByUser: map[int64][]api.OwnedShip{
			1: {activeShip(10), dockedShip(11), activeShip(12)},
			2: {activeShip(20), activeShip(21)},
		},
		result: &api.BattleResult{BattleID: 42},
	}
	orch := NewOrchestrator(client)

	result, err := orch.Start(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.BattleID)

	req := client.lastRequest
	require.NotNil(t, req)
	assert.Equal(t, int64(2), req.OpponentUserID)
	assert.Equal(t, []int64{10, 12}, req.UserShipNumbers, "all and only active ships")
	assert.Equal(t, []int64{20, 21}, req.OpponentShipNumbers)
	assert.Equal(t, api.FormationAggressive, req.UserFormation)
	assert.Equal(t, api.FormationDefensive, req.OpponentFormation,
		"opponent formation is fixed regardless of their configured default")
}

func TestStartRequiresViewerActiveShip(t *testing.T) {
	client := &fakeAPI{
		shipsByUser: map[int64][]api.OwnedShip{
			1: {dockedShip(10)},
			2: {activeShip(20)},
		},
	}
	orch := NewOrchestrator(client)

	_, err := orch.Start(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrNoActiveShips)
	assert.Nil(t, client.lastRequest, "no request is sent")
}

func TestStartRejectsEmptyOpponent(t *testing.T) {
	client := &fakeAPI{
		shipsByUser: map[int64][]api.OwnedShip{
			1: {activeShip(10)},
			2: {dockedShip(20)},
		},
	}
	orch := NewOrchestrator(client)

	_, err := orch.Start(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrOpponentNoShips)
	assert.Nil(t, client.lastRequest, "no request is sent")
}

func TestStartPropagatesRejection(t *testing.T) {
	rejection := &api.Error{StatusCode: 400, Detail: "Battle cooldown active"}
	client := &fakeAPI{
		shipsByUser: map[int64][]api.OwnedShip{
			1: {activeShip(10)},
			2: {activeShip(20)},
		},
		submitErr: rejection,
	}
	orch := NewOrchestrator(client)

	_, err := orch.Start(context.Background(), 1, 2)
	assert.Equal(t, "Battle cooldown active", api.Detail(err, ""))
}

func TestStartPropagatesFleetFetchErrors(t *testing.T) {
	client := &fakeAPI{
		shipsByUser: map[int64][]api.OwnedShip{2: {activeShip(20)}},
		shipsErr:    map[int64]error{1: errors.New("network down")},
	}
	orch := NewOrchestrator(client)

	_, err := orch.Start(context.Background(), 1, 2)
	require.Error(t, err)
	assert.Nil(t, client.lastRequest)
}

func TestOpponentsFiltering(t *testing.T) {
	client := &fakeAPI{users: []api.UserProfile{
		{UserID: 1, Nickname: "Aezakimi"},
		{UserID: 2, Nickname: "Rival"},
		{UserID: 3, Nickname: "NPC_Pirate"},
		{UserID: 4, Nickname: "admin"},
		{UserID: 5, Nickname: "test_account"},
	}}
	orch := NewOrchestrator(client)

	opponents, err := orch.Opponents(context.Background(), 1)
	require.NoError(t, err)

	var nicknames []string
	for _, u := range opponents {
		nicknames = append(nicknames, u.Nickname)
	}
	assert.Equal(t, []string{"Rival", "NPC_Pirate"}, nicknames,
		"viewer and system accounts are filtered, NPCs remain challengeable")
}

func TestIsNPC(t *testing.T) {
	assert.True(t, IsNPC(api.UserProfile{Nickname: "NPC_Pirate"}))
	assert.True(t, IsNPC(api.UserProfile{Email: "bot@npc.bellum"}))
	assert.False(t, IsNPC(api.UserProfile{Nickname: "Aezakimi", Email: "a@b.c"}))
}
