package usecase

import (
	"fmt"

	"nexus-tube/domain/model"
)

type INotificationUsecase interface {
	MarkNotificationAsRead(id string)
	PushNotification(userID string, notification model.Notification) (model.Notification, error)
	Notifications() []model.Notification
	UnreadNotificationCount() int
}

// MarkNotificationAsRead flags the active user's notification id as read.
// Unknown ids are ignored.
func (s *Store) MarkNotificationAsRead(id string) {
	_ = s.apply(func() ([]model.StoreEvent, error) {
		for i := range s.current().Notifications {
			n := &s.current().Notifications[i]
			if n.ID == id && !n.Read {
				n.Read = true
				return []model.StoreEvent{s.event(model.EventNotificationRead, id, "")}, nil
			}
		}
		return nil, nil
	})
}

// PushNotification prepends notification to the inbox of userID. It is the
// entry point for producers outside the store.
func (s *Store) PushNotification(userID string, notification model.Notification) (model.Notification, error) {
	err := s.apply(func() ([]model.StoreEvent, error) {
		if _, ok := s.findUser(userID); !ok {
			return nil, fmt.Errorf("%w: user %s", model.ErrNotFound, userID)
		}
		if notification.Text == "" {
			return nil, fmt.Errorf("%w: notification text is required", model.ErrValidation)
		}
		if notification.ID == "" {
			notification.ID = s.newID("n_")
		}
		if notification.Time == "" {
			notification.Time = "Just now"
		}
		notification.Read = false
		d := s.data(userID)
		d.Notifications = append([]model.Notification{notification}, d.Notifications...)
		return []model.StoreEvent{{Kind: model.EventNotificationNew, UserID: userID, SubjectID: notification.ID}}, nil
	})
	if err != nil {
		return model.Notification{}, err
	}
	return notification, nil
}

func (s *Store) Notifications() []model.Notification {
	var out []model.Notification
	s.read(func() { out = append([]model.Notification{}, s.current().Notifications...) })
	return out
}

func (s *Store) UnreadNotificationCount() int {
	n := 0
	s.read(func() {
		for _, it := range s.current().Notifications {
			if !it.Read {
				n++
			}
		}
	})
	return n
}
