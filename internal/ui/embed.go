package ui

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/hand-cricket-bot/internal/cricket"
)

// RenderMatchEmbed builds the /info scoreboard for one match.
func RenderMatchEmbed(s cricket.Snapshot) *discordgo.MessageEmbed {
	color := map[bool]int{true: 0x57F287, false: 0xFEE75C}[s.State != cricket.StateJoinTeams]

	emb := &discordgo.MessageEmbed{
		Title:       "🏏 Hand Cricket",
		Description: stateLabel(s.State),
		Color:       color,
	}

	emb.Fields = append(emb.Fields,
		&discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("Batting (%d/%d)", len(s.Batting), cricket.MaxTeamSize),
			Value:  bulletList(s.Batting, cricket.MaxTeamSize),
			Inline: true,
		},
		&discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("Bowling (%d/%d)", len(s.Bowling), cricket.MaxTeamSize),
			Value:  bulletList(s.Bowling, cricket.MaxTeamSize),
			Inline: true,
		},
	)

	if s.State != cricket.StateJoinTeams {
		emb.Fields = append(emb.Fields, &discordgo.MessageEmbedField{
			Name:   "Score",
			Value:  fmt.Sprintf("**%d/%d** — batsman #%d", s.Score, s.Wickets, s.BatIndex+1),
			Inline: false,
		})
	}
	return emb
}
