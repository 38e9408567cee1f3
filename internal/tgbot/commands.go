package tgbot

import (
	"errors"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/goserg/matchsim/internal/service"
)

var ErrBadRequest = errors.New("unknown command, try /help")

type Command interface {
	Run(chatID int64, args string, resp *tgbotapi.MessageConfig) error
	Help() string
}

type Commands struct {
	list map[string]Command
	// hidden commands work but are not listed by /help
	hidden mapset.Set[string]
}

func NewCommands(ss *service.SimulationService, subs *subscriptions) *Commands {
	hc := &HelpCommand{}
	uc := Commands{
		list: map[string]Command{
			"help":  hc,
			"start": hc,
			"sim": &SimCommand{
				simulations: ss,
			},
			"last": &LastCommand{
				simulations: ss,
			},
			"sub": &SubCommand{
				subs: subs,
			},
			"unsub": &UnsubCommand{
				subs: subs,
			},
		},
		hidden: mapset.NewSet[string]("start"),
	}
	hc.commands = &uc
	return &uc
}

func (uc *Commands) RunCommand(chatID int64, cmd string, args string, resp *tgbotapi.MessageConfig) error {
	command, ok := uc.list[cmd]
	if !ok {
		return ErrBadRequest
	}
	return command.Run(chatID, args, resp)
}

// visible returns the names listed by /help in a stable order.
func (uc *Commands) visible() []string {
	names := make([]string, 0, len(uc.list))
	for name := range uc.list {
		if uc.hidden.Contains(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
