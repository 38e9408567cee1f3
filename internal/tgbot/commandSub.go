package tgbot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type SubCommand struct {
	subs *subscriptions
}

func (c *SubCommand) Run(chatID int64, _ string, resp *tgbotapi.MessageConfig) error {
	if !c.subs.Add(chatID) {
		resp.Text = "already subscribed"
		return nil
	}
	resp.Text = "subscribed to new simulations"
	return nil
}

func (c *SubCommand) Help() string {
	return "Sends a message for every new simulation"
}

type UnsubCommand struct {
	subs *subscriptions
}

func (c *UnsubCommand) Run(chatID int64, _ string, resp *tgbotapi.MessageConfig) error {
	if !c.subs.Remove(chatID) {
		resp.Text = "not subscribed"
		return nil
	}
	resp.Text = "unsubscribed"
	return nil
}

func (c *UnsubCommand) Help() string {
	return "Stops the messages sent by /sub"
}
