package domain

import (
	"strconv"
	"strings"

	apperrors "github.com/reshetovitsme/approval-relay/internal/shared/errors"
	"github.com/samber/oops"
)

// ChatRef identifies a Telegram chat either by numeric id or by public
// username. Exactly one of the two is set.
type ChatRef struct {
	ID       int64
	Username string
}

// ParseChatRef accepts "-1001234567890", "@name", "name" or "https://t.me/name".
func ParseChatRef(ref string) (ChatRef, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		if id == 0 {
			return ChatRef{}, oops.With("ref", ref).Wrap(apperrors.ErrInvalidChatRef)
		}
		return ChatRef{ID: id}, nil
	}

	name := ref
	for _, prefix := range []string{"https://t.me/", "http://t.me/", "t.me/", "@"} {
		name = strings.TrimPrefix(name, prefix)
	}
	name = strings.TrimSuffix(name, "/")
	if name == "" || strings.ContainsAny(name, " /@") {
		return ChatRef{}, oops.With("ref", ref).Wrap(apperrors.ErrInvalidChatRef)
	}
	return ChatRef{Username: strings.ToLower(name)}, nil
}

// Value returns the form accepted by the Bot API chat_id parameter.
func (c ChatRef) Value() any {
	if c.Username != "" {
		return "@" + c.Username
	}
	return c.ID
}

func (c ChatRef) String() string {
	if c.Username != "" {
		return "@" + c.Username
	}
	return strconv.FormatInt(c.ID, 10)
}

// Set is the static list of monitored chats. It is read-only once built.
type Set struct {
	ids       map[int64]struct{}
	usernames map[string]struct{}
}

// NewSet parses every reference. Duplicates collapse; order carries no meaning.
func NewSet(refs []string) (*Set, error) {
	s := &Set{
		ids:       make(map[int64]struct{}),
		usernames: make(map[string]struct{}),
	}
	for _, raw := range refs {
		ref, err := ParseChatRef(raw)
		if err != nil {
			return nil, err
		}
		if ref.Username != "" {
			s.usernames[ref.Username] = struct{}{}
		} else {
			s.ids[ref.ID] = struct{}{}
		}
	}
	return s, nil
}

// Contains reports whether a chat is monitored, matching either its id or
// its username (case-insensitive).
func (s *Set) Contains(chatID int64, username string) bool {
	if _, ok := s.ids[chatID]; ok {
		return true
	}
	if username == "" {
		return false
	}
	_, ok := s.usernames[strings.ToLower(strings.TrimPrefix(username, "@"))]
	return ok
}

func (s *Set) Len() int {
	return len(s.ids) + len(s.usernames)
}
