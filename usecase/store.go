package usecase

import (
	"sync"
	"time"

	"nexus-tube/domain/model"
	"nexus-tube/domain/repository"

	"github.com/google/uuid"
)

// DirectorID is the fixed id of the privileged moderation identity
const DirectorID = "admin_001"

// Listener receives store events after the mutation that produced them has
// been applied and the store lock released. Events reach listeners one
// mutation at a time, in the order the mutations were applied. A listener
// may read the store but must not mutate it.
type Listener func(event model.StoreEvent)

// Store is the single in-memory session and content store. Every exported
// method is atomic with respect to the others; composite flows (moderation
// take-action) are sequenced by the caller.
type Store struct {
	mu sync.Mutex

	// dispatch is taken before mu is released so deliveries keep apply order
	dispatch sync.Mutex

	now   func() time.Time
	newID func(prefix string) string
	saver repository.IFileSaver

	users         []model.User
	director      model.User
	active        model.User
	authenticated bool

	videos   []model.Video
	posts    []model.Post
	comments []model.Comment
	reports  []model.Report
	messages []model.Message
	userData map[string]*model.UserData

	listeners    map[int]Listener
	nextListener int
}

func NewStore(seed *model.Seed) *Store {
	if seed == nil {
		seed = &model.Seed{}
	}
	s := &Store{
		now:       func() time.Time { return time.Now().UTC() },
		newID:     func(prefix string) string { return prefix + uuid.NewString() },
		director:  directorUser(),
		users:     append([]model.User{}, seed.Users...),
		videos:    append([]model.Video{}, seed.Videos...),
		posts:     append([]model.Post{}, seed.Posts...),
		comments:  append([]model.Comment{}, seed.Comments...),
		reports:   append([]model.Report{}, seed.Reports...),
		messages:  append([]model.Message{}, seed.Messages...),
		userData:  map[string]*model.UserData{},
		listeners: map[int]Listener{},
	}
	for _, u := range s.users {
		s.userData[u.ID] = model.NewUserData()
	}
	for id, data := range seed.UserData {
		if data != nil {
			s.userData[id] = cloneUserData(data)
		}
	}
	s.active = s.defaultUser()
	return s
}

// WithClock replaces the time source used for ids, message timestamps and
// report timestamps.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// WithIDGenerator replaces the generator of entity ids
func (s *Store) WithIDGenerator(newID func(prefix string) string) *Store {
	s.newID = newID
	return s
}

// WithFileSaver attaches the collaborator that stores downloaded media
func (s *Store) WithFileSaver(saver repository.IFileSaver) *Store {
	s.saver = saver
	return s
}

// Subscribe registers fn for every subsequent store event and returns a
// function that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// apply runs fn under the store lock and then notifies listeners of the
// events it returned. Listeners are not called when fn fails.
func (s *Store) apply(fn func() ([]model.StoreEvent, error)) error {
	events, listeners, err := func() ([]model.StoreEvent, []Listener, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		events, err := fn()
		if err != nil || len(events) == 0 {
			return nil, nil, err
		}
		listeners := make([]Listener, 0, len(s.listeners))
		for _, l := range s.listeners {
			listeners = append(listeners, l)
		}
		s.dispatch.Lock()
		return events, listeners, nil
	}()
	if err != nil {
		return err
	}
	defer s.dispatch.Unlock()
	for _, ev := range events {
		for _, l := range listeners {
			l(ev)
		}
	}
	return nil
}

// read runs fn under the store lock
func (s *Store) read(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

func (s *Store) event(kind model.EventKind, subjectID, message string) model.StoreEvent {
	return model.StoreEvent{Kind: kind, UserID: s.active.ID, SubjectID: subjectID, Message: message}
}

// data returns the derived state of userID, creating an empty record when the
// user has none yet.
func (s *Store) data(userID string) *model.UserData {
	d, ok := s.userData[userID]
	if !ok {
		d = model.NewUserData()
		s.userData[userID] = d
	}
	return d
}

func (s *Store) current() *model.UserData {
	return s.data(s.active.ID)
}

// defaultUser is the identity shown before login: the first roster entry, or
// a guest when the roster is empty.
func (s *Store) defaultUser() model.User {
	if len(s.users) > 0 {
		return s.users[0]
	}
	return model.User{ID: "guest", Name: "Guest", Avatar: avatarURL("Guest", 0)}
}

func (s *Store) findUser(id string) (model.User, bool) {
	if id == s.director.ID {
		return s.director, true
	}
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

func (s *Store) timestamp() string {
	return s.now().Format("2006-01-02 15:04:05")
}

func directorUser() model.User {
	return model.User{
		ID:                 DirectorID,
		Name:               "Nexus Admin",
		Handle:             "creative_director",
		Avatar:             "https://ui-avatars.com/api/?name=Nexus+Admin&background=000&color=fff",
		Description:        "Platform Administrator",
		IsCreativeDirector: true,
	}
}

func cloneUserData(d *model.UserData) *model.UserData {
	c := model.NewUserData()
	for k := range d.LikedIDs {
		c.LikedIDs[k] = struct{}{}
	}
	for k := range d.SubscribedChannels {
		c.SubscribedChannels[k] = struct{}{}
	}
	for k := range d.ChannelNotifications {
		c.ChannelNotifications[k] = struct{}{}
	}
	c.WatchHistory = append(c.WatchHistory, d.WatchHistory...)
	c.DownloadedVideos = append(c.DownloadedVideos, d.DownloadedVideos...)
	c.PinnedVideos = append(c.PinnedVideos, d.PinnedVideos...)
	c.Notifications = append(c.Notifications, d.Notifications...)
	return c
}
