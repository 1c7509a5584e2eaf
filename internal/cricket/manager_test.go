package cricket

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func invariant(t *testing.T, s Snapshot) {
	t.Helper()
	// 1) roster caps
	if len(s.Batting) > MaxTeamSize || len(s.Bowling) > MaxTeamSize {
		t.Fatalf("roster cap exceeded: bat=%d bowl=%d", len(s.Batting), len(s.Bowling))
	}
	// 2) BOT always present in bowling
	found := false
	for _, p := range s.Bowling {
		if p.ID == BotID {
			found = true
		}
	}
	if !found {
		t.Fatalf("BOT missing from bowling roster")
	}
	// 3) disjoint rosters
	seen := map[string]bool{}
	for _, p := range s.Batting {
		seen[p.ID] = true
	}
	for _, p := range s.Bowling {
		if seen[p.ID] {
			t.Fatalf("player %s in both rosters", p.ID)
		}
	}
}

func newTestManager() *Manager {
	return NewManager(0, nil) // idle disabled for most tests
}

func player(id string) Player { return Player{ID: id, Name: "u-" + id} }

func setupMatch(t *testing.T, m *Manager, chat string, batsmen, bowlers []string) {
	t.Helper()
	if err := m.CreateMatch(chat, player("host")); err != nil {
		t.Fatal(err)
	}
	for _, id := range batsmen {
		if err := m.Join(chat, TeamBatting, player(id)); err != nil {
			t.Fatal(err)
		}
	}
	for _, id := range bowlers {
		if err := m.Join(chat, TeamBowling, player(id)); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCreateJoinBasic(t *testing.T) {
	m := newTestManager()
	setupMatch(t, m, "c1", []string{"A", "B"}, []string{"X"})

	if err := m.CreateMatch("c1", player("other")); !errors.Is(err, ErrMatchExists) {
		t.Fatalf("want ErrMatchExists, got %v", err)
	}
	// duplicate membership across rosters
	if err := m.Join("c1", TeamBowling, player("A")); !errors.Is(err, ErrAlreadyIn) {
		t.Fatalf("want ErrAlreadyIn, got %v", err)
	}

	s, ok := m.Get("c1")
	if !ok {
		t.Fatal("match missing")
	}
	invariant(t, s)
}

func TestRosterCap(t *testing.T) {
	m := newTestManager()
	if err := m.CreateMatch("c", player("host")); err != nil {
		t.Fatal(err)
	}
	// bowling already holds BOT, so 10 humans fill it
	for i := 0; i < MaxTeamSize-1; i++ {
		if err := m.Join("c", TeamBowling, player(string(rune('A'+i)))); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.Join("c", TeamBowling, player("extra")); !errors.Is(err, ErrTeamFull) {
		t.Fatalf("want ErrTeamFull, got %v", err)
	}
	s, _ := m.Get("c")
	invariant(t, s)
}

func TestStartPlayGuards(t *testing.T) {
	m := newTestManager()
	if err := m.CreateMatch("c", player("host")); err != nil {
		t.Fatal(err)
	}

	if _, err := m.StartPlay("c", "stranger"); !errors.Is(err, ErrNotHost) {
		t.Fatalf("want ErrNotHost, got %v", err)
	}
	if _, err := m.StartPlay("c", "host"); !errors.Is(err, ErrNoBatsmen) {
		t.Fatalf("want ErrNoBatsmen, got %v", err)
	}

	_ = m.Join("c", TeamBatting, player("A"))
	pr, err := m.StartPlay("c", "host")
	if err != nil {
		t.Fatal(err)
	}
	if pr.Batsman.ID != "A" {
		t.Fatalf("first batsman: want A, got %s", pr.Batsman.ID)
	}
	if !pr.BotBowling || pr.Bowler.ID != BotID {
		t.Fatalf("no human bowlers: BOT should bowl, got %+v", pr)
	}
	// joining after lock is a phase violation
	if err := m.Join("c", TeamBatting, player("late")); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("want ErrWrongPhase, got %v", err)
	}
}

func TestBowlerRotation(t *testing.T) {
	m := &Match{Bowling: []Player{{ID: BotID}, {ID: "A"}, {ID: "B"}}}
	want := []string{"A", "B", "A", "B"}
	for i, w := range want {
		m.BowlIndex = i
		if got := CurrentBowler(m).ID; got != w {
			t.Fatalf("bowlIndex=%d: want %s, got %s", i, w, got)
		}
	}

	// only BOT on the roster -> always BOT
	solo := &Match{Bowling: []Player{{ID: BotID}}}
	for i := 0; i < 4; i++ {
		solo.BowlIndex = i
		if got := CurrentBowler(solo).ID; got != BotID {
			t.Fatalf("bowlIndex=%d: want BOT, got %s", i, got)
		}
	}
}

func TestHumanBowlFlow(t *testing.T) {
	m := newTestManager()
	setupMatch(t, m, "c", []string{"A", "B"}, []string{"X"})
	if _, err := m.StartPlay("c", "host"); err != nil {
		t.Fatal(err)
	}

	// wrong identity can not bowl
	if _, _, err := m.Bowl("A", 3); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("want ErrNotYourTurn, got %v", err)
	}
	// out of range rejected before any scan
	if _, _, err := m.Bowl("X", 9); !errors.Is(err, ErrBadPick) {
		t.Fatalf("want ErrBadPick, got %v", err)
	}

	chat, batsman, err := m.Bowl("X", 3)
	if err != nil {
		t.Fatal(err)
	}
	if chat != "c" || batsman.ID != "A" {
		t.Fatalf("bowl accepted into %s for %s", chat, batsman.ID)
	}

	// a second pick while the batsman is pending finds no eligible match
	if _, _, err := m.Bowl("X", 2); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("want ErrNotYourTurn, got %v", err)
	}

	// wrong batsman rejected, state untouched
	if _, err := m.Bat("c", "B", 4); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("want ErrNotYourTurn, got %v", err)
	}

	res, err := m.Bat("c", "A", 5)
	if err != nil {
		t.Fatal(err)
	}
	if res.Wicket || res.Runs != 5 || res.Score != 5 || res.Wickets != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Next.Batsman.ID != "A" || res.Next.Bowler.ID != "X" {
		t.Fatalf("next pairing: %+v", res.Next)
	}
}

func TestAtMostOneAcceptanceAcrossChats(t *testing.T) {
	m := newTestManager()
	setupMatch(t, m, "c1", []string{"A"}, []string{"X"})
	setupMatch(t, m, "c2", []string{"B"}, []string{"X"})
	if _, err := m.StartPlay("c1", "host"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.StartPlay("c2", "host"); err != nil {
		t.Fatal(err)
	}

	// X is the expected bowler in BOTH chats; the oldest match wins.
	chat, _, err := m.Bowl("X", 4)
	if err != nil {
		t.Fatal(err)
	}
	if chat != "c1" {
		t.Fatalf("first eligible match should win, got %s", chat)
	}

	s1, _ := m.Get("c1")
	s2, _ := m.Get("c2")
	if s1.State != StateWaitingBatsman {
		t.Fatalf("c1 state: %v", s1.State)
	}
	if s2.State != StateWaitingBowler {
		t.Fatalf("c2 must stay untouched, state: %v", s2.State)
	}
}

func TestEndAuthority(t *testing.T) {
	m := newTestManager()
	setupMatch(t, m, "c", []string{"A"}, nil)

	if _, err := m.End("c", "A", false); !errors.Is(err, ErrNotHost) {
		t.Fatalf("want ErrNotHost, got %v", err)
	}
	// owner override
	if _, err := m.End("c", "owner", true); err != nil {
		t.Fatal(err)
	}
	if m.Has("c") {
		t.Fatal("match should be gone")
	}
	// ending again is ErrNoMatch, not a crash
	if _, err := m.End("c", "host", false); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("want ErrNoMatch, got %v", err)
	}
}

func TestIdleTimeout(t *testing.T) {
	fired := make(chan Summary, 1)
	m := NewManager(30*time.Millisecond, func(s Summary) { fired <- s })
	setupMatch(t, m, "c", []string{"A"}, nil)

	select {
	case s := <-fired:
		if s.ChatID != "c" {
			t.Fatalf("expired chat: %s", s.ChatID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watchdog never fired")
	}
	if m.Has("c") {
		t.Fatal("expired match still registered")
	}
	// manual end against the dead match is a plain rejection
	if _, err := m.End("c", "host", false); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("want ErrNoMatch, got %v", err)
	}
}

func TestManualEndCancelsWatchdog(t *testing.T) {
	var fired int32
	m := NewManager(80*time.Millisecond, func(Summary) { atomic.AddInt32(&fired, 1) })
	setupMatch(t, m, "c", []string{"A"}, nil)

	if _, err := m.End("c", "host", false); err != nil {
		t.Fatal(err)
	}

	// a fresh match in the same chat must not be killed by the old timer
	if err := m.CreateMatch("c", player("host2")); err != nil {
		t.Fatal(err)
	}
	time.Sleep(50 * time.Millisecond)
	_ = m.Join("c", TeamBatting, player("A")) // resets the new watchdog

	// past the first match's original deadline; only a stale fire could
	// have removed the recreated match by now
	time.Sleep(50 * time.Millisecond)
	if !m.Has("c") {
		t.Fatal("stale timer killed the recreated match")
	}
	if atomic.LoadInt32(&fired) != 0 {
		t.Fatalf("watchdog fired %d times too early", fired)
	}
}

func TestRaceRandomOps(t *testing.T) {
	m := newTestManager()
	_ = m.CreateMatch("c", player("host"))

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(gid int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				id := "P" + string(rune('A'+(gid+j)%26))
				if (gid+j)%2 == 0 {
					_ = m.Join("c", TeamBatting, player(id))
				} else {
					_ = m.Join("c", TeamBowling, player(id))
				}
			}
		}(g)
	}
	wg.Wait()

	s, ok := m.Get("c")
	if !ok {
		t.Fatal("match missing")
	}
	invariant(t, s)
}
