package cricket

import (
	"math/rand"
	"sync"
	"time"
)

// Summary is the terminal report of a match.
type Summary struct {
	ChatID  string
	Score   int
	Wickets int
}

// Pairing names who is up next on both sides of a ball.
type Pairing struct {
	Batsman    Player
	Bowler     Player
	BotBowling bool
}

// BallResult is everything the caller needs to narrate one resolved ball.
type BallResult struct {
	ChatID  string
	BatNum  int
	BowlNum int

	Wicket    bool
	Runs      int
	Batsman   Player // who faced the ball
	BowlerID  string
	BotBowled bool

	Score   int
	Wickets int

	AllOut bool
	Next   Pairing // valid only when !AllOut
}

// Manager owns every live match, keyed by chat ID. It is the only piece
// of shared mutable state in the process; all mutation happens under mu.
type Manager struct {
	mu      sync.Mutex
	matches map[string]*Match
	order   []string // chat IDs in creation order, drives the bowling scan

	idle     time.Duration
	onExpire func(Summary) // called outside the lock when the watchdog fires
	botPick  func() int
}

// NewManager builds a registry whose matches auto-end after the given idle
// window. onExpire may be nil.
func NewManager(idle time.Duration, onExpire func(Summary)) *Manager {
	return &Manager{
		matches:  make(map[string]*Match),
		idle:     idle,
		onExpire: onExpire,
		botPick:  func() int { return rand.Intn(MaxPick + 1) },
	}
}

// CreateMatch opens a new match in the chat with host as creator. The
// bowling roster is seeded with BOT so a bowler always exists.
func (mgr *Manager) CreateMatch(chatID string, host Player) error {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	if _, exists := mgr.matches[chatID]; exists {
		return ErrMatchExists
	}

	now := time.Now()
	host.JoinedAt = now
	m := &Match{
		ChatID:       chatID,
		HostID:       host.ID,
		Bowling:      []Player{{ID: BotID, Name: BotID, JoinedAt: now}},
		State:        StateJoinTeams,
		BowlerNum:    -1,
		CreatedAt:    now,
		LastActivity: now,
	}
	mgr.matches[chatID] = m
	mgr.order = append(mgr.order, chatID)
	mgr.touch(m)
	return nil
}

// Join adds the player to the named roster. Rejections never mutate state.
func (mgr *Manager) Join(chatID string, team Team, p Player) error {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	m, ok := mgr.matches[chatID]
	if !ok {
		return ErrNoMatch
	}
	if m.State != StateJoinTeams {
		return ErrWrongPhase
	}
	if inRoster(m.Batting, p.ID) || inRoster(m.Bowling, p.ID) {
		return ErrAlreadyIn
	}

	p.JoinedAt = time.Now()
	switch team {
	case TeamBatting:
		if len(m.Batting) >= MaxTeamSize {
			return ErrTeamFull
		}
		m.Batting = append(m.Batting, p)
	case TeamBowling:
		if len(m.Bowling) >= MaxTeamSize {
			return ErrTeamFull
		}
		m.Bowling = append(m.Bowling, p)
	}
	mgr.touch(m)
	return nil
}

// StartPlay locks the rosters and moves to the first ball. Host only,
// needs at least one batsman on board.
func (mgr *Manager) StartPlay(chatID, byID string) (Pairing, error) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	m, ok := mgr.matches[chatID]
	if !ok {
		return Pairing{}, ErrNoMatch
	}
	if m.State != StateJoinTeams {
		return Pairing{}, ErrWrongPhase
	}
	if byID != m.HostID {
		return Pairing{}, ErrNotHost
	}
	if len(m.Batting) == 0 {
		return Pairing{}, ErrNoBatsmen
	}

	m.State = StateWaitingBowler
	m.BatIndex, m.BowlIndex = 0, 0
	m.BowlerNum = -1
	m.CurrentBowlerID = ""
	mgr.touch(m)
	return pairingOf(m), nil
}

// Bowl records a private bowling pick. There is no chat ID on a private
// submission, so we scan every live match in creation order and accept
// the pick into the FIRST one that is waiting exactly this bowler. At
// most one match is mutated per call; O(active matches) and fine at this
// scale.
func (mgr *Manager) Bowl(bowlerID string, num int) (chatID string, batsman Player, err error) {
	if !ValidPick(num) {
		return "", Player{}, ErrBadPick
	}

	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	for _, id := range mgr.order {
		m, ok := mgr.matches[id]
		if !ok || m.State != StateWaitingBowler {
			continue
		}
		if CurrentBowler(m).ID != bowlerID {
			continue
		}
		m.BowlerNum = num
		m.CurrentBowlerID = bowlerID
		m.State = StateWaitingBatsman
		mgr.touch(m)
		return m.ChatID, CurrentBatsman(m), nil
	}
	return "", Player{}, ErrNotYourTurn
}

// Bat records the batsman pick for the chat's match and resolves the
// ball. When the expected bowler is BOT the bowling pick is self-resolved
// right here, synchronously, with a uniform 0..6 roll.
func (mgr *Manager) Bat(chatID, batsmanID string, num int) (BallResult, error) {
	if !ValidPick(num) {
		return BallResult{}, ErrBadPick
	}

	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	m, ok := mgr.matches[chatID]
	if !ok {
		return BallResult{}, ErrNoMatch
	}

	botBowled := false
	switch m.State {
	case StateWaitingBatsman:
		// human pick already on record
	case StateWaitingBowler:
		// only BOT may bowl implicitly; a human bowler must act first
		if CurrentBowler(m).ID != BotID {
			return BallResult{}, ErrWrongPhase
		}
		if CurrentBatsman(m).ID != batsmanID {
			return BallResult{}, ErrNotYourTurn
		}
		m.BowlerNum = mgr.botPick()
		m.CurrentBowlerID = BotID
		m.State = StateWaitingBatsman
		botBowled = true
	default:
		return BallResult{}, ErrWrongPhase
	}

	if CurrentBatsman(m).ID != batsmanID {
		return BallResult{}, ErrNotYourTurn
	}

	res := resolveBall(m, num)
	res.BotBowled = botBowled

	if res.AllOut {
		mgr.removeLocked(m.ChatID)
		return res, nil
	}
	mgr.touch(m)
	return res, nil
}

// End force-ends the chat's match. byID must be the host unless force is
// set (owner override). Returns the final summary.
func (mgr *Manager) End(chatID, byID string, force bool) (Summary, error) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	m, ok := mgr.matches[chatID]
	if !ok {
		return Summary{}, ErrNoMatch
	}
	if !force && byID != m.HostID {
		return Summary{}, ErrNotHost
	}

	s := Summary{ChatID: chatID, Score: m.Score, Wickets: m.Wickets}
	mgr.removeLocked(chatID)
	return s, nil
}

// Get returns a copy of the chat's match, if any.
func (mgr *Manager) Get(chatID string) (Snapshot, bool) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	m, ok := mgr.matches[chatID]
	if !ok {
		return Snapshot{}, false
	}
	return snapshot(m), true
}

// Has reports whether the chat currently owns a match.
func (mgr *Manager) Has(chatID string) bool {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	_, ok := mgr.matches[chatID]
	return ok
}

// Active returns copies of every live match in creation order.
func (mgr *Manager) Active() []Snapshot {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	out := make([]Snapshot, 0, len(mgr.matches))
	for _, id := range mgr.order {
		if m, ok := mgr.matches[id]; ok {
			out = append(out, snapshot(m))
		}
	}
	return out
}

// ---- internals, all called under mgr.mu ----

// touch resets the single-shot watchdog for m. Every state-changing
// action lands here.
func (mgr *Manager) touch(m *Match) {
	m.LastActivity = time.Now()
	if m.idle != nil {
		m.idle.Stop()
	}
	if mgr.idle <= 0 {
		return
	}
	chatID := m.ChatID
	m.idle = time.AfterFunc(mgr.idle, func() { mgr.expire(chatID, m) })
}

// expire is the watchdog callback. The match may have been ended (or even
// recreated) since the timer was armed, so membership AND identity are
// re-checked under the lock; a stale fire is a normal race, not an error.
func (mgr *Manager) expire(chatID string, armed *Match) {
	mgr.mu.Lock()
	m, ok := mgr.matches[chatID]
	if !ok || m != armed {
		mgr.mu.Unlock()
		return
	}
	s := Summary{ChatID: chatID, Score: m.Score, Wickets: m.Wickets}
	mgr.removeLocked(chatID)
	mgr.mu.Unlock()

	if mgr.onExpire != nil {
		mgr.onExpire(s)
	}
}

// removeLocked destroys the match exactly once, cancelling any armed
// timer so it can never fire against a since-recreated match.
func (mgr *Manager) removeLocked(chatID string) {
	m, ok := mgr.matches[chatID]
	if !ok {
		return
	}
	if m.idle != nil {
		m.idle.Stop()
		m.idle = nil
	}
	delete(mgr.matches, chatID)
	for i, id := range mgr.order {
		if id == chatID {
			mgr.order = append(mgr.order[:i], mgr.order[i+1:]...)
			break
		}
	}
}
