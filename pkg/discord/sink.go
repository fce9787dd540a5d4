package discord

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Adirelle/fuzzlog/pkg/fuzzlog"
	"github.com/apex/log"
)

// Sink posts failures and errors to Discord channels. Other events are
// ignored, unless the configuration asks for test case notifications.
type Sink struct {
	fuzzlog.NopSink
	Config
	session Session

	mu       sync.Mutex
	testCase fuzzlog.TestCaseID
}

// Discord rejects messages longer than 2000 characters.
const maxDescriptionLength = 1800

var _ fuzzlog.Sink = (*Sink)(nil)

func NewSink(config Config, session Session) *Sink {
	return &Sink{Config: config, session: session}
}

func (s *Sink) OpenTestCase(id fuzzlog.TestCaseID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.testCase = id

	if s.ShowStatus {
		if err := s.session.UpdateGameStatus(0, "test case "+id.String()); err != nil {
			return fmt.Errorf("could not update Discord status: %w", err)
		}
	}
	if !s.NotifyTestCases {
		return nil
	}
	return s.notify(fmt.Sprintf("Test case `%s` started", id))
}

func (s *Sink) LogFail(description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notify(s.format("Check failed", description))
}

func (s *Sink) LogError(description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notify(s.format("Error", description))
}

func (s *Sink) format(title string, description string) string {
	msg := fmt.Sprintf("**%s** in test case `%s`", title, s.testCase)
	if description == "" {
		return msg
	}
	if len(description) > maxDescriptionLength {
		description = strings.ToValidUTF8(description[:maxDescriptionLength], "") + "…"
	}
	return msg + "\n```\n" + strings.ReplaceAll(description, "```", "'''") + "\n```"
}

func (s *Sink) notify(msg string) error {
	for _, channelID := range s.Channels() {
		if _, err := s.session.ChannelMessageSend(channelID, msg); err != nil {
			log.WithError(err).WithField("channel", channelID).Warn("discord.notify")
			return fmt.Errorf("could not notify channel %s: %w", channelID, err)
		}
	}
	return nil
}
