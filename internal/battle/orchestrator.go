package battle

import (
	"context"
	"errors"
	"strings"
	"sync"

	"bellum/internal/api"
	"bellum/internal/log"
)

var (
	// ErrNoActiveShips means the viewer cannot initiate a battle.
	ErrNoActiveShips = errors.New("battle: no active ships in your fleet")
	// ErrOpponentNoShips means the opponent has nothing to fight; no
	// request is sent in this case.
	ErrOpponentNoShips = errors.New("battle: opponent has no active ships")
)

// API is the slice of the client the orchestrator needs.
type API interface {
	GetUserShips(ctx context.Context, userID int64, status string) ([]api.OwnedShip, error)
	SubmitBattle(ctx context.Context, req api.BattleRequest) (*api.BattleResult, error)
	ListUsers(ctx context.Context) ([]api.UserProfile, error)
}

// Orchestrator gathers both sides' eligible fleets and submits battles.
type Orchestrator struct {
	client API
}

func NewOrchestrator(client API) *Orchestrator {
	return &Orchestrator{client: client}
}

// Start fights the viewer's full active fleet against the opponent's full
// active fleet. There is no partial-fleet selection: every active ship on
// both sides is committed, with the requester always AGGRESSIVE and the
// opponent always DEFENSIVE regardless of the opponent's configured
// default formation.
func (o *Orchestrator) Start(ctx context.Context, viewerID, opponentID int64) (*api.BattleResult, error) {
	var (
		wg            sync.WaitGroup
		viewerShips   []api.OwnedShip
		opponentShips []api.OwnedShip
		viewerErr     error
		opponentErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		viewerShips, viewerErr = o.client.GetUserShips(ctx, viewerID, api.ShipStatusActive)
	}()
	go func() {
		defer wg.Done()
		opponentShips, opponentErr = o.client.GetUserShips(ctx, opponentID, api.ShipStatusActive)
	}()
	wg.Wait()

	if viewerErr != nil {
		return nil, viewerErr
	}
	if opponentErr != nil {
		return nil, opponentErr
	}

	if len(viewerShips) == 0 {
		return nil, ErrNoActiveShips
	}
	if len(opponentShips) == 0 {
		return nil, ErrOpponentNoShips
	}

	req := api.BattleRequest{
		OpponentUserID:      opponentID,
		UserShipNumbers:     shipNumbers(viewerShips),
		OpponentShipNumbers: shipNumbers(opponentShips),
		UserFormation:       api.FormationAggressive,
		OpponentFormation:   api.FormationDefensive,
	}

	log.Info("Submitting battle",
		"opponent", opponentID,
		"user_ships", len(req.UserShipNumbers),
		"opponent_ships", len(req.OpponentShipNumbers))

	result, err := o.client.SubmitBattle(ctx, req)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Opponents lists users the viewer can challenge: everyone but the viewer
// and system accounts. NPC accounts stay in the list; they are valid
// opponents.
func (o *Orchestrator) Opponents(ctx context.Context, viewerID int64) ([]api.UserProfile, error) {
	users, err := o.client.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	opponents := make([]api.UserProfile, 0, len(users))
	for _, u := range users {
		if u.UserID == viewerID || isSystemAccount(u) {
			continue
		}
		opponents = append(opponents, u)
	}
	return opponents, nil
}

// IsNPC reports whether a profile belongs to a computer-controlled
// account.
func IsNPC(u api.UserProfile) bool {
	return strings.HasPrefix(u.Nickname, "NPC_") || strings.Contains(u.Email, "@npc.")
}

func isSystemAccount(u api.UserProfile) bool {
	nickname := strings.ToLower(u.Nickname)
	return strings.HasPrefix(nickname, "admin") || strings.HasPrefix(nickname, "test_")
}

func shipNumbers(ships []api.OwnedShip) []int64 {
	numbers := make([]int64, len(ships))
	for i, ship := range ships {
		numbers[i] = ship.ShipNumber
	}
	return numbers
}
