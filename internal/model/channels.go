package model

import "sort"

// channel is one named group: an owner, a visibility flag, and the member
// map keyed by connection id. The owner is always a current member; removing
// the owner disbands the whole channel.
type channel struct {
	name       string
	owner      string
	inviteOnly bool
	members    map[int64]string
}

func (ch *channel) memberNicks() []string {
	out := make([]string, 0, len(ch.members))
	for _, nick := range ch.members {
		out = append(out, nick)
	}
	sort.Strings(out)
	return out
}

// ChannelRegistry owns the channel name -> record mapping. It consults the
// user registry to resolve nicknames, so both registries must belong to the
// same model instance.
type ChannelRegistry struct {
	byName map[string]*channel
	users  *UserRegistry
}

// NewChannelRegistry returns an empty registry backed by the given users.
func NewChannelRegistry(users *UserRegistry) *ChannelRegistry {
	return &ChannelRegistry{
		byName: make(map[string]*channel),
		users:  users,
	}
}

// Create makes a new channel with the owner as its sole member. Existence is
// checked before validity; callers observe that order through the reply code.
func (r *ChannelRegistry) Create(name, owner string, inviteOnly bool) ReplyCode {
	if _, taken := r.byName[name]; taken {
		return ChannelAlreadyExists
	}
	if !ValidName(name) {
		return InvalidName
	}
	ownerID, _ := r.users.ConnID(owner)
	r.byName[name] = &channel{
		name:       name,
		owner:      owner,
		inviteOnly: inviteOnly,
		members:    map[int64]string{ownerID: owner},
	}
	return Okay
}

// AddPublicMember adds a user to a public channel.
func (r *ChannelRegistry) AddPublicMember(nick, name string) ReplyCode {
	id, ok := r.users.ConnID(nick)
	if !ok {
		return NoSuchUser
	}
	ch, ok := r.byName[name]
	if !ok {
		return NoSuchChannel
	}
	if ch.inviteOnly {
		return JoinPrivateChannel
	}
	ch.members[id] = nick
	return Okay
}

// AddPrivateMember adds a user to an invite-only channel on the owner's
// authority.
func (r *ChannelRegistry) AddPrivateMember(nick, name, sender string) ReplyCode {
	id, ok := r.users.ConnID(nick)
	if !ok {
		return NoSuchUser
	}
	ch, ok := r.byName[name]
	if !ok {
		return NoSuchChannel
	}
	if !ch.inviteOnly {
		return InviteToPublicChannel
	}
	if ch.owner != sender {
		return UserNotOwner
	}
	ch.members[id] = nick
	return Okay
}

// RemoveMember removes a user from a channel on the authorizer's authority.
// Removing the owner deletes the channel outright.
func (r *ChannelRegistry) RemoveMember(nick, name, sender string) ReplyCode {
	id, ok := r.users.ConnID(nick)
	if !ok {
		return NoSuchUser
	}
	ch, ok := r.byName[name]
	if !ok {
		return NoSuchChannel
	}
	if ch.owner != sender {
		return UserNotOwner
	}
	if _, member := ch.members[id]; !member {
		return UserNotInChannel
	}
	if ch.owner == nick {
		delete(r.byName, name)
		return Okay
	}
	delete(ch.members, id)
	return Okay
}

// DropConn removes the connection from every channel it belongs to,
// disbanding channels it owns, and returns the union of every affected
// channel's remaining pre-removal membership. The departing nickname is not
// filtered here; the broadcast constructor excludes it.
func (r *ChannelRegistry) DropConn(connID int64) []string {
	var recipients []string
	for name, ch := range r.byName {
		nick, member := ch.members[connID]
		if !member {
			continue
		}
		if ch.owner == nick {
			recipients = append(recipients, ch.memberNicks()...)
			delete(r.byName, name)
			continue
		}
		delete(ch.members, connID)
		recipients = append(recipients, ch.memberNicks()...)
	}
	return recipients
}

// RenameMember rewrites the membership record for the connection in every
// channel it belongs to and returns the union of those channels' members,
// with the new nickname already in place.
func (r *ChannelRegistry) RenameMember(connID int64, nick string) []string {
	var recipients []string
	for _, ch := range r.byName {
		old, member := ch.members[connID]
		if !member {
			continue
		}
		ch.members[connID] = nick
		if ch.owner == old {
			// owner field tracks the nickname, keep it in sync
			ch.owner = nick
		}
		recipients = append(recipients, ch.memberNicks()...)
	}
	return recipients
}

// Names returns a sorted, independent snapshot of all channel names.
func (r *ChannelRegistry) Names() []string {
	out := make([]string, 0, len(r.byName))
	for name := range r.byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Members returns a sorted, independent snapshot of a channel's member
// nicknames; it is empty when no such channel exists.
func (r *ChannelRegistry) Members(name string) []string {
	ch, ok := r.byName[name]
	if !ok {
		return []string{}
	}
	return ch.memberNicks()
}

// IsMember reports whether the nickname currently belongs to the channel.
func (r *ChannelRegistry) IsMember(nick, name string) bool {
	ch, ok := r.byName[name]
	if !ok {
		return false
	}
	id, ok := r.users.ConnID(nick)
	if !ok {
		return false
	}
	_, member := ch.members[id]
	return member
}

// Owner returns the owning nickname of a channel.
func (r *ChannelRegistry) Owner(name string) (string, bool) {
	ch, ok := r.byName[name]
	if !ok {
		return "", false
	}
	return ch.owner, true
}

// Exists reports whether a channel with the given name is present.
func (r *ChannelRegistry) Exists(name string) bool {
	_, ok := r.byName[name]
	return ok
}
