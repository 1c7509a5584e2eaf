package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// Send posts a plain text message to a channel.
func Send(s *discordgo.Session, channelID, msg string) error {
	_, err := s.ChannelMessageSend(channelID, msg)
	if err != nil {
		log.Printf("Send error (channel %s): %v", channelID, err)
	}
	return err
}

// SendDM opens (or reuses) a DM channel with the user and sends msg.
// Best effort: users can have DMs closed.
func SendDM(s *discordgo.Session, userID, msg string) error {
	ch, err := s.UserChannelCreate(userID)
	if err != nil {
		log.Printf("SendDM open error (user %s): %v", userID, err)
		return err
	}
	return Send(s, ch.ID, msg)
}

// DisplayName resolves the best visible name for a message author:
// server nickname, then global name, then username.
func DisplayName(m *discordgo.MessageCreate) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	if m.Author == nil {
		return "unknown"
	}
	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}
	return m.Author.Username
}

// IsPrivate reports whether the message arrived over a DM channel.
// Gateway messages from guilds always carry a GuildID.
func IsPrivate(m *discordgo.MessageCreate) bool {
	return m.GuildID == ""
}
