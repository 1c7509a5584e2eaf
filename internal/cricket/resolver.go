// Package cricket - resolver.go
// One ball = one bowl/bat pick pair. resolveBall turns that pair into
// score/wicket mutations and the narration data for the chat.
package cricket

// pairingOf names the next batsman/bowler pair for m. Caller guarantees
// BatIndex < len(Batting).
func pairingOf(m *Match) Pairing {
	b := CurrentBowler(m)
	return Pairing{
		Batsman:    CurrentBatsman(m),
		Bowler:     b,
		BotBowling: b.ID == BotID,
	}
}

// resolveBall applies the batsman pick against the recorded BowlerNum.
// Called under the manager lock with m.State == StateWaitingBatsman.
func resolveBall(m *Match, batNum int) BallResult {
	res := BallResult{
		ChatID:   m.ChatID,
		BatNum:   batNum,
		BowlNum:  m.BowlerNum,
		Batsman:  CurrentBatsman(m),
		BowlerID: m.CurrentBowlerID,
	}

	if batNum == m.BowlerNum {
		// same pick: out
		m.Wickets++
		m.BatIndex++
		res.Wicket = true
	} else {
		m.Score += batNum
		res.Runs = batNum
	}

	res.Score = m.Score
	res.Wickets = m.Wickets

	if m.BatIndex >= len(m.Batting) {
		res.AllOut = true
		return res
	}

	// next ball
	m.BowlIndex++
	m.BowlerNum = -1
	m.CurrentBowlerID = ""
	m.State = StateWaitingBowler
	res.Next = pairingOf(m)
	return res
}
