package session

import (
	"github.com/itf-dev/schedule-masters/internal/model/chat"
)

// Identity is the opaque handle the identity provider hands us. The core
// never inspects credentials; presence of an Identity simply means the
// transcript is worth persisting.
type Identity struct {
	Key         string
	DisplayName string
}

// Session is the ordered transcript for one (topic, identity) pair. A nil
// Identity marks a guest session that lives only in memory.
type Session struct {
	TopicID  string
	Identity *Identity
	Messages []chat.Message
}

// Authenticated reports whether the session belongs to a signed-in identity.
func (s *Session) Authenticated() bool {
	return s.Identity != nil && s.Identity.Key != ""
}
