package battlelog

import (
	"regexp"
	"strconv"
	"strings"

	"bellum/internal/api"
)

// EntryType classifies one processed battle-log line.
type EntryType int

const (
	EntryHeader EntryType = iota
	EntryRound
	EntryAttack
	EntryInfo
	EntryResult
	EntryReward
)

func (t EntryType) String() string {
	switch t {
	case EntryHeader:
		return "header"
	case EntryRound:
		return "round"
	case EntryAttack:
		return "attack"
	case EntryInfo:
		return "info"
	case EntryResult:
		return "result"
	case EntryReward:
		return "reward"
	default:
		return "unknown"
	}
}

// Entry is a typed battle-log event derived from one raw line. Lines that
// carry no information ("ships active" counters, blanks) produce no entry.
type Entry struct {
	Type    EntryType
	Content string

	// Attack fields
	Attacker         string
	Target           string
	Damage           float64
	Evaded           bool
	AttackerIsViewer bool
	TargetIsViewer   bool

	// Round fields
	Round int

	// Formation info
	Player string
}

// Outcome is the viewer-relative result of a battle.
type Outcome int

const (
	OutcomeDraw Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "draw"
	}
}

var (
	indexMarkerRe = regexp.MustCompile(`^\[\d+\]\s*`)
	roundNumberRe = regexp.MustCompile(`Round\s+(\d+)`)

	// Two hit-line shapes exist in the wild; the parenthesized-affiliation
	// form is tried first, the plain form second.
	hitAffiliationRe = regexp.MustCompile(`^(.+?)\s*\(([^)]*)\)\s+hits\s+(.+?)\s*\(([^)]*)\)\s+for\s+([0-9]+(?:\.[0-9]+)?)\s+damage`)
	hitPlainRe       = regexp.MustCompile(`^(.+?)\s+hits\s+(.+?)\s+for\s+([0-9]+(?:\.[0-9]+)?)\s+damage`)
	evasionRe        = regexp.MustCompile(`^(.+?)\s+evaded attack from\s+(.+?)[!.]?\s*$`)
)

// Interpreter turns raw battle-log lines into typed entries for one
// battle, attributing attack lines to the viewer's side by ship name.
type Interpreter struct {
	viewerID    int64
	viewerShips map[string]bool
	lastRound   int
}

// NewInterpreter creates an interpreter for one battle result viewed by
// the given user. Round numbering starts fresh per interpreter.
func NewInterpreter(result *api.BattleResult, viewerID int64) *Interpreter {
	viewerShips := make(map[string]bool)
	for _, p := range result.Participants {
		if p.UserID == viewerID {
			viewerShips[p.ShipName] = true
		}
	}
	return &Interpreter{viewerID: viewerID, viewerShips: viewerShips}
}

// InterpretAll processes every raw line in order. Dropped lines produce
// no entry, so the output may be shorter than the input but never
// reordered.
func (in *Interpreter) InterpretAll(lines []string) []Entry {
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if entry, ok := in.Interpret(line); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Interpret classifies a single raw line. The boolean is false when the
// line is filtered out.
func (in *Interpreter) Interpret(raw string) (Entry, bool) {
	line := indexMarkerRe.ReplaceAllString(strings.TrimSpace(raw), "")
	if line == "" {
		return Entry{}, false
	}

	switch {
	case strings.Contains(line, "Battle") && strings.Contains(line, "started:"):
		return Entry{Type: EntryHeader, Content: line}, true

	case strings.Contains(line, "formation:"):
		entry := Entry{Type: EntryInfo, Content: line}
		if idx := strings.Index(line, " formation:"); idx > 0 {
			entry.Player = DisplayName(line[:idx])
		}
		return entry, true

	case strings.HasPrefix(line, "--- Round"):
		round := in.lastRound + 1
		if m := roundNumberRe.FindStringSubmatch(line); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				round = n
			}
		}
		in.lastRound = round
		return Entry{Type: EntryRound, Content: line, Round: round}, true

	case strings.Contains(line, "ships active"):
		return Entry{}, false

	case strings.Contains(line, "hits") && strings.Contains(line, "damage"):
		if entry, ok := in.parseHit(line); ok {
			return entry, true
		}
		// Unrecognized hit shape: only usable if it is also an evasion.
		if strings.Contains(line, "evaded attack") {
			return in.parseEvasion(line), true
		}
		return Entry{}, false

	case strings.Contains(line, "evaded attack"):
		return in.parseEvasion(line), true

	case strings.Contains(line, "destroyed") && !strings.Contains(line, "restored"):
		return Entry{Type: EntryResult, Content: line}, true

	case strings.Contains(line, "wins"):
		return Entry{Type: EntryResult, Content: line}, true

	case strings.Contains(line, "awarded") && strings.Contains(line, "credits"):
		return Entry{Type: EntryReward, Content: line}, true

	case strings.Contains(line, "gains") && strings.Contains(line, "XP"):
		return Entry{Type: EntryReward, Content: line}, true

	case strings.Contains(line, "restored") || strings.Contains(line, "reactivated"):
		return Entry{Type: EntryInfo, Content: line}, true

	default:
		return Entry{Type: EntryInfo, Content: line}, true
	}
}

func (in *Interpreter) parseHit(line string) (Entry, bool) {
	if m := hitAffiliationRe.FindStringSubmatch(line); m != nil {
		damage, err := strconv.ParseFloat(m[5], 64)
		if err != nil {
			return Entry{}, false
		}
		return in.attackEntry(line, m[1], m[3], damage), true
	}
	if m := hitPlainRe.FindStringSubmatch(line); m != nil {
		damage, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return Entry{}, false
		}
		return in.attackEntry(line, m[1], m[2], damage), true
	}
	return Entry{}, false
}

func (in *Interpreter) parseEvasion(line string) Entry {
	entry := Entry{Type: EntryAttack, Content: line, Evaded: true}
	if m := evasionRe.FindStringSubmatch(line); m != nil {
		entry.Target = m[1]
		entry.Attacker = m[2]
		entry.AttackerIsViewer = in.viewerShips[entry.Attacker]
		entry.TargetIsViewer = in.viewerShips[entry.Target]
	}
	return entry
}

func (in *Interpreter) attackEntry(line, attacker, target string, damage float64) Entry {
	return Entry{
		Type:             EntryAttack,
		Content:          line,
		Attacker:         attacker,
		Target:           target,
		Damage:           damage,
		AttackerIsViewer: in.viewerShips[attacker],
		TargetIsViewer:   in.viewerShips[target],
	}
}

// DecideOutcome resolves the battle outcome once, from the structured
// winner field only. Result lines that textually contain "wins" are
// styled from this decision and never re-derive it.
func DecideOutcome(result *api.BattleResult, viewerID int64) Outcome {
	if result.WinnerUserID == nil {
		return OutcomeDraw
	}
	if *result.WinnerUserID == viewerID {
		return OutcomeVictory
	}
	return OutcomeDefeat
}

// DisplayName strips the internal NPC marker from a player name wherever
// names are shown.
func DisplayName(name string) string {
	return strings.TrimPrefix(name, "NPC_")
}
