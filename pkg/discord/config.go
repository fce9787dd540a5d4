package discord

import (
	"github.com/Adirelle/fuzzlog/pkg/utils"
)

type (
	Config struct {
		Token      utils.Secret `json:"token" validate:"required"`
		ChannelIDs []Snowflake  `json:"channelIds" validate:"required,min=1,dive,required"`
		// NotifyTestCases also posts a message for every opened test case.
		NotifyTestCases bool `json:"notifyTestCases,omitempty"`
		// ShowStatus displays the current test case as the bot status.
		ShowStatus bool `json:"showStatus,omitempty"`
	}
)

func (c Config) Channels() []string {
	return utils.MapSlice(c.ChannelIDs, Snowflake.String)
}
