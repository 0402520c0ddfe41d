package usecase

import (
	"fmt"
	"sort"
	"strings"

	"nexus-tube/domain/model"
)

type IMessagingUsecase interface {
	SendMessage(receiverID, content string) (model.Message, error)
	GetConversation(otherID string) []model.Message
	MarkConversationRead(otherID string) int
	Inbox() []model.InboxEntry
}

// SendMessage appends an unread message from the active user to receiverID
func (s *Store) SendMessage(receiverID, content string) (model.Message, error) {
	var sent model.Message
	err := s.apply(func() ([]model.StoreEvent, error) {
		if strings.TrimSpace(content) == "" {
			return nil, fmt.Errorf("%w: message is empty", model.ErrValidation)
		}
		if _, ok := s.findUser(receiverID); !ok {
			return nil, fmt.Errorf("%w: user %s", model.ErrNotFound, receiverID)
		}
		sent = model.Message{
			ID:         s.newID("msg_"),
			SenderID:   s.active.ID,
			ReceiverID: receiverID,
			Content:    content,
			Timestamp:  s.now().UnixMilli(),
		}
		s.messages = append(s.messages, sent)
		ev := s.event(model.EventMessageSent, sent.ID, "")
		return []model.StoreEvent{ev, {Kind: model.EventMessageSent, UserID: receiverID, SubjectID: sent.ID}}, nil
	})
	return sent, err
}

// GetConversation returns the messages exchanged between the active user and
// otherID, oldest first. Messages with equal timestamps keep storage order.
func (s *Store) GetConversation(otherID string) []model.Message {
	var out []model.Message
	s.read(func() {
		me := s.active.ID
		out = filter(s.messages, func(m model.Message) bool { return m.Between(me, otherID) })
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return out
}

// MarkConversationRead flags every message otherID sent to the active user as
// read and returns how many changed.
func (s *Store) MarkConversationRead(otherID string) int {
	n := 0
	_ = s.apply(func() ([]model.StoreEvent, error) {
		me := s.active.ID
		for i := range s.messages {
			m := &s.messages[i]
			if m.SenderID == otherID && m.ReceiverID == me && !m.Read {
				m.Read = true
				n++
			}
		}
		if n == 0 {
			return nil, nil
		}
		return []model.StoreEvent{s.event(model.EventMessagesRead, otherID, "")}, nil
	})
	return n
}

// Inbox lists everyone the active user has exchanged messages with, most
// recent conversation first. Partners no longer in the roster are listed by id.
func (s *Store) Inbox() []model.InboxEntry {
	var out []model.InboxEntry
	s.read(func() {
		me := s.active.ID
		byPartner := map[string]*model.InboxEntry{}
		for _, m := range s.messages {
			var other string
			switch me {
			case m.SenderID:
				other = m.ReceiverID
			case m.ReceiverID:
				other = m.SenderID
			default:
				continue
			}
			e, ok := byPartner[other]
			if !ok {
				u, found := s.findUser(other)
				if !found {
					u = model.User{ID: other, Name: "Unknown User"}
				}
				e = &model.InboxEntry{User: u}
				byPartner[other] = e
			}
			e.TotalMessages++
			if m.ReceiverID == me && !m.Read {
				e.UnreadCount++
			}
			if m.Timestamp >= e.LastMessage.Timestamp {
				e.LastMessage = m
			}
		}
		out = make([]model.InboxEntry, 0, len(byPartner))
		for _, e := range byPartner {
			out = append(out, *e)
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastMessage.Timestamp != out[j].LastMessage.Timestamp {
			return out[i].LastMessage.Timestamp > out[j].LastMessage.Timestamp
		}
		return out[i].User.ID < out[j].User.ID
	})
	return out
}
