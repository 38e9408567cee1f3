package tgbot

import (
	"context"
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/goserg/matchsim/internal/config"
	"github.com/goserg/matchsim/internal/domain"
	"github.com/goserg/matchsim/internal/format"
	"github.com/goserg/matchsim/internal/service"
	"github.com/sirupsen/logrus"
)

// sender is the part of tgbotapi.BotAPI used to deliver messages.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	bot    *tgbotapi.BotAPI
	sender sender
	log    *logrus.Entry

	ctx context.Context
	// cancel func to stop the bot
	cancel func()
	// notifications tracks report fan-outs still sending
	notifications sync.WaitGroup

	subs     *subscriptions
	commands *Commands
}

func New(ss *service.SimulationService, cfg config.TgBot, l *logrus.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramApiToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	bot.Debug = cfg.Debug

	b := newBot(bot, ss, l)
	b.bot = bot
	b.log.WithField("username", bot.Self.UserName).Info("bot authorized")
	return b, nil
}

func newBot(s sender, ss *service.SimulationService, l *logrus.Logger) *Bot {
	ctx, cancel := context.WithCancel(context.Background())
	subs := newSubs()
	b := &Bot{
		sender:   s,
		log:      l.WithField("name", "tg_bot"),
		ctx:      ctx,
		cancel:   cancel,
		subs:     subs,
		commands: NewCommands(ss, subs),
	}
	ss.OnReport(b.sendReportNotification)
	return b
}

func (b *Bot) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-b.ctx.Done():
			b.bot.StopReceivingUpdates()
			return
		case update := <-updates:
			b.handleMessage(update)
		}
	}
}

func (b *Bot) handleMessage(update tgbotapi.Update) {
	if update.Message == nil { // ignore any non-Message updates
		return
	}
	if !update.Message.IsCommand() {
		return
	}
	log := b.log.WithFields(logrus.Fields{
		"chat_id": update.Message.Chat.ID,
		"text":    update.Message.Text,
	})

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	err := b.commands.RunCommand(
		update.Message.Chat.ID,
		update.Message.Command(),
		update.Message.CommandArguments(),
		&msg,
	)
	if err != nil {
		log.WithError(err).Debug("command failed")
		msg.Text = err.Error()
	}
	if _, err := b.sender.Send(msg); err != nil {
		log.WithError(err).Error("send error")
	}
}

// Stop ends Run and waits for notifications already being sent.
func (b *Bot) Stop() {
	b.cancel()
	b.notifications.Wait()
}

// sendReportNotification returns at once; subscribers are messaged in the
// background.
func (b *Bot) sendReportNotification(report domain.Report) {
	chatIDs := b.subs.ChatIDs()
	if len(chatIDs) == 0 {
		return
	}
	text := "New simulation\n" + format.Report(report)
	b.notifications.Add(1)
	go func() {
		defer b.notifications.Done()
		for _, chatID := range chatIDs {
			if b.ctx.Err() != nil {
				return
			}
			msg := tgbotapi.NewMessage(chatID, text)
			if _, err := b.sender.Send(msg); err != nil {
				b.log.WithError(err).WithField("chat_id", chatID).Error("notification not sent")
			}
		}
	}()
}
