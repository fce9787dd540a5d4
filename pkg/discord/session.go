package discord

import (
	"fmt"

	"github.com/apex/log"
	"github.com/bwmarrin/discordgo"
)

type (
	// Session is the part of a Discord session the Sink uses.
	Session interface {
		ChannelMessageSend(channelID string, content string) (*discordgo.Message, error)
		UpdateGameStatus(idle int, name string) error
	}
)

var _ Session = (*discordgo.Session)(nil)

// Connect opens a bot session using the configured token.
func Connect(config Config) (session *discordgo.Session, err error) {
	log.Debug("discord.connecting")

	if session, err = discordgo.New("Bot " + config.Token.Reveal()); err == nil {
		session.Identify.Intents = discordgo.IntentsGuildMessages
		session.AddHandler(onReady)
		err = session.Open()
	}

	if err != nil {
		log.WithError(err).Error("discord.connect")
		return nil, fmt.Errorf("could not connect to Discord: %w", err)
	}
	return
}

// Disconnect closes a session opened by Connect.
func Disconnect(session *discordgo.Session) {
	if session == nil {
		return
	}
	log.Debug("discord.disconnecting")

	if err := session.Close(); err != nil {
		log.WithError(err).Info("discord.disconnect")
	}
}

func onReady(session *discordgo.Session, ready *discordgo.Ready) {
	log.WithField("username", ready.User.Username).Info("discord.ready")
}
