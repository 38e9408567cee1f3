package tgbot

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// subscriptions holds the chats that want a message for every new report.
type subscriptions struct {
	chats mapset.Set[int64]
}

func newSubs() *subscriptions {
	return &subscriptions{
		chats: mapset.NewSet[int64](),
	}
}

// Add reports whether chatID was not subscribed yet.
func (s *subscriptions) Add(chatID int64) bool {
	return s.chats.Add(chatID)
}

func (s *subscriptions) Remove(chatID int64) bool {
	if !s.chats.Contains(chatID) {
		return false
	}
	s.chats.Remove(chatID)
	return true
}

func (s *subscriptions) ChatIDs() []int64 {
	return s.chats.ToSlice()
}
