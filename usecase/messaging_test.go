package usecase_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-tube/domain/model"
	"nexus-tube/usecase"
)

func TestGetConversation(t *testing.T) {
	s := loggedIn(t, "u1")

	conv := s.GetConversation(usecase.DirectorID)

	require.Len(t, conv, 2)
	assert.Equal(t, "m1", conv[0].ID)
	assert.Equal(t, "m2", conv[1].ID)
	assert.True(t, sort.SliceIsSorted(conv, func(i, j int) bool { return conv[i].Timestamp < conv[j].Timestamp }))
	for _, m := range conv {
		assert.True(t, m.Between("u1", usecase.DirectorID))
	}
	assert.Empty(t, s.GetConversation("u2"))
}

func TestGetConversation_IsPure(t *testing.T) {
	s := loggedIn(t, "u1")

	_ = s.GetConversation(usecase.DirectorID)

	assert.False(t, s.GetConversation(usecase.DirectorID)[1].Read)
}

func TestSendMessage(t *testing.T) {
	s := loggedIn(t, "u1")

	sent, err := s.SendMessage(usecase.DirectorID, "hi")

	require.NoError(t, err)
	assert.Equal(t, "u1", sent.SenderID)
	assert.Equal(t, usecase.DirectorID, sent.ReceiverID)
	assert.False(t, sent.Read)
	assert.Equal(t, baseTime.Add(time.Second).UnixMilli(), sent.Timestamp)
	conv := s.GetConversation(usecase.DirectorID)
	assert.Len(t, conv, 3)
	assert.Equal(t, sent, conv[len(conv)-1])
}

func TestSendMessage_Rejects(t *testing.T) {
	s := loggedIn(t, "u1")

	_, err := s.SendMessage("ghost", "hi")
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = s.SendMessage("u2", "   ")
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Empty(t, s.GetConversation("u2"))
}

func TestMarkConversationRead(t *testing.T) {
	s := loggedIn(t, "u1")

	assert.Equal(t, 1, s.MarkConversationRead(usecase.DirectorID))
	assert.Equal(t, 0, s.MarkConversationRead(usecase.DirectorID))
	for _, m := range s.GetConversation(usecase.DirectorID) {
		assert.True(t, m.Read)
	}
}

func TestInbox_Director(t *testing.T) {
	s := newTestStore(t)
	s.LoginAsDirector()

	inbox := s.Inbox()

	require.Len(t, inbox, 2)
	assert.Equal(t, "u1", inbox[0].User.ID)
	assert.Equal(t, "m2", inbox[0].LastMessage.ID)
	assert.Equal(t, 0, inbox[0].UnreadCount)
	assert.Equal(t, 2, inbox[0].TotalMessages)
	assert.Equal(t, "u2", inbox[1].User.ID)
	assert.Equal(t, 1, inbox[1].UnreadCount)

	s.MarkConversationRead("u2")
	assert.Equal(t, 0, s.Inbox()[1].UnreadCount)
}
