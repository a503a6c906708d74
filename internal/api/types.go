package api

// Ship status values used by the fleet endpoints.
const (
	ShipStatusActive    = "active"
	ShipStatusDocked    = "docked"
	ShipStatusDestroyed = "destroyed"
)

// Formation labels accepted by the battle endpoint.
const (
	FormationAggressive = "AGGRESSIVE"
	FormationDefensive  = "DEFENSIVE"
)

// UserProfile is the server's view of a player account.
type UserProfile struct {
	UserID           int64   `json:"user_id"`
	Email            string  `json:"email"`
	Nickname         string  `json:"nickname"`
	Level            int     `json:"level"`
	Experience       float64 `json:"experience"`
	Credits          float64 `json:"currency_value"`
	ELO              float64 `json:"elo_rank"`
	Rank             string  `json:"rank"`
	VictoryCount     int     `json:"victory_count"`
	DefeatCount      int     `json:"defeat_count"`
	DefaultFormation string  `json:"default_formation"`
}

// OwnedShip is a current-state snapshot of a player's ship. Base values are
// the ship's catalog stats; actual values reflect damage and buffs.
type OwnedShip struct {
	ShipNumber     int64   `json:"ship_number"`
	ShipName       string  `json:"ship_name"`
	Status         string  `json:"status"`
	BaseAttack     float64 `json:"base_attack"`
	ActualAttack   float64 `json:"actual_attack"`
	BaseShield     float64 `json:"base_shield"`
	ActualShield   float64 `json:"actual_shield"`
	BaseHP         float64 `json:"base_hp"`
	ActualHP       float64 `json:"actual_hp"`
	BaseEvasion    float64 `json:"base_evasion"`
	ActualEvasion  float64 `json:"actual_evasion"`
	BaseFireRate   float64 `json:"base_fire_rate"`
	ActualFireRate float64 `json:"actual_fire_rate"`
	BaseValue      float64 `json:"base_value"`
	ActualValue    float64 `json:"actual_value"`
}

// Participant is a combat-time stat snapshot attributed to one side of a
// finished battle.
type Participant struct {
	UserID     int64   `json:"user_id"`
	ShipNumber int64   `json:"ship_number"`
	Nickname   string  `json:"nickname"`
	ShipName   string  `json:"ship_name"`
	Attack     float64 `json:"attack"`
	Shield     float64 `json:"shield"`
	HP         float64 `json:"hp"`
	Evasion    float64 `json:"evasion"`
	FireRate   float64 `json:"fire_rate"`
	Value      float64 `json:"value"`
}

// BattleResult is the immutable outcome of a submitted battle. A nil
// WinnerUserID means the battle was a draw.
type BattleResult struct {
	BattleID     int64         `json:"battle_id"`
	WinnerUserID *int64        `json:"winner_user_id"`
	Timestamp    string        `json:"timestamp"`
	Participants []Participant `json:"participants"`
	BattleLog    []string      `json:"battle_log"`
}

// BattleRequest carries both sides' fleets to the battle endpoint.
type BattleRequest struct {
	OpponentUserID      int64   `json:"opponent_user_id"`
	UserShipNumbers     []int64 `json:"user_ship_numbers"`
	OpponentShipNumbers []int64 `json:"opponent_ship_numbers"`
	UserFormation       string  `json:"user_formation"`
	OpponentFormation   string  `json:"opponent_formation"`
}

// LoginRequest is the credential payload for login and register.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest additionally carries the chosen nickname.
type RegisterRequest struct {
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

// AuthResponse carries the bearer token issued on login or register.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RepairResponse reports the result of a ship repair.
type RepairResponse struct {
	ShipNumber int64   `json:"ship_number"`
	Cost       float64 `json:"cost"`
	HPRestored float64 `json:"hp_restored"`
}

// MarketShip is a catalog entry available for purchase.
type MarketShip struct {
	ShipID   int64   `json:"ship_id"`
	ShipName string  `json:"ship_name"`
	Attack   float64 `json:"attack"`
	Shield   float64 `json:"shield"`
	HP       float64 `json:"hp"`
	Evasion  float64 `json:"evasion"`
	FireRate float64 `json:"fire_rate"`
	Value    float64 `json:"value"`
}

// TradeResponse reports the outcome of a market buy or sell.
type TradeResponse struct {
	ShipNumber int64   `json:"ship_number"`
	ShipName   string  `json:"ship_name"`
	Credits    float64 `json:"currency_value"`
}

// WorkStatus reports whether the player can currently perform work.
type WorkStatus struct {
	CanWork         bool    `json:"can_work"`
	CooldownSeconds int     `json:"cooldown_seconds"`
	LastWorkType    string  `json:"last_work_type"`
	TotalEarned     float64 `json:"total_earned"`
	WorksPerformed  int     `json:"works_performed"`
}

// WorkType describes one available work activity and its payout range.
type WorkType struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	MinIncome    float64 `json:"min_income"`
	MaxIncome    float64 `json:"max_income"`
	RequiredRank string  `json:"required_rank"`
}

// WorkResult is the payout of a performed work activity.
type WorkResult struct {
	WorkType string  `json:"work_type"`
	Income   float64 `json:"income"`
	Credits  float64 `json:"currency_value"`
}

// WorkHistoryEntry is one past work activity.
type WorkHistoryEntry struct {
	WorkType    string  `json:"work_type"`
	Income      float64 `json:"income"`
	PerformedAt string  `json:"performed_at"`
}

// GameMessage is one entry from the server-side message log.
type GameMessage struct {
	MessageID int64  `json:"message_id"`
	Category  string `json:"category"`
	Level     string `json:"level"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// MessagePage is a page of the message log.
type MessagePage struct {
	Messages   []GameMessage `json:"messages"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalCount int           `json:"total_count"`
}
