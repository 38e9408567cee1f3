package tgbot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type HelpCommand struct {
	commands *Commands
}

func (c *HelpCommand) Run(_ int64, args string, resp *tgbotapi.MessageConfig) error {
	args = strings.TrimPrefix(strings.TrimSpace(args), "/")
	if command, ok := c.commands.list[args]; ok {
		resp.Text = command.Help()
		return nil
	}
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, name := range c.commands.visible() {
		b.WriteString("/")
		b.WriteString(name)
		b.WriteString("\n")
	}
	b.WriteString("Send /help and a command name for details")
	resp.Text = b.String()
	return nil
}

func (c *HelpCommand) Help() string {
	return "Lists the available commands"
}
