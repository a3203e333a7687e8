// Package model is the state-transition engine for the line-chat protocol:
// the user and channel registries plus the command state machine. It holds no
// locks and does no I/O; the surrounding system serializes access so that at
// most one mutation is in flight, and every outcome is a synchronous
// Broadcast value.
package model

import "fmt"

// Model aggregates the two registries behind one exclusively owned handle.
// A failed command leaves the model byte-for-byte unchanged.
type Model struct {
	users    *UserRegistry
	channels *ChannelRegistry
}

// New returns a fresh, empty model.
func New() *Model {
	users := NewUserRegistry()
	return &Model{
		users:    users,
		channels: NewChannelRegistry(users),
	}
}

// RegisterUser records a newly connected user under a default nickname and
// returns the greeting broadcast addressed to them alone.
func (m *Model) RegisterUser(connID int64) Broadcast {
	return connected(m.users.Register(connID))
}

// DeregisterUser removes every trace of a disconnected user: channels they
// own disband, other memberships are dropped, and the registry entry goes.
// The broadcast covers every ex-peer across affected channels, minus the
// departing user. Precondition: connID is registered.
func (m *Model) DeregisterUser(connID int64) Broadcast {
	nick, _ := m.users.Nickname(connID)
	recipients := m.channels.DropConn(connID)
	m.users.Deregister(connID)
	return disconnected(nick, recipients)
}

// Apply processes one parsed command: validate, mutate, build the broadcast.
// On any failure the broadcast targets the sender alone and no state changes.
func (m *Model) Apply(cmd Command) Broadcast {
	switch cmd.Verb {
	case VerbNick:
		return m.rename(cmd)
	case VerbCreate:
		return m.create(cmd)
	case VerbJoin:
		return m.join(cmd)
	case VerbMessage:
		return m.message(cmd)
	case VerbLeave:
		return m.leave(cmd)
	case VerbInvite:
		return m.invite(cmd)
	case VerbKick:
		return m.kick(cmd)
	}
	panic(fmt.Sprintf("model: unhandled verb %d", cmd.Verb))
}

func (m *Model) rename(cmd Command) Broadcast {
	// The sender's own current nickname is in use by definition, so renaming
	// to it fails the same way as taking anyone else's.
	if _, taken := m.users.ConnID(cmd.NewNick); taken {
		return errorTo(cmd, NameAlreadyInUse)
	}
	if !ValidName(cmd.NewNick) {
		return errorTo(cmd, InvalidName)
	}
	m.users.Rename(cmd.SenderID, cmd.NewNick)
	recipients := m.channels.RenameMember(cmd.SenderID, cmd.NewNick)
	return delivery(cmd, recipients)
}

func (m *Model) create(cmd Command) Broadcast {
	if code := m.channels.Create(cmd.Channel, cmd.Sender, cmd.InviteOnly); code != Okay {
		return errorTo(cmd, code)
	}
	return delivery(cmd, []string{cmd.Sender})
}

func (m *Model) join(cmd Command) Broadcast {
	if code := m.channels.AddPublicMember(cmd.Sender, cmd.Channel); code != Okay {
		return errorTo(cmd, code)
	}
	owner, _ := m.channels.Owner(cmd.Channel)
	return names(cmd, m.channels.Members(cmd.Channel), owner)
}

func (m *Model) invite(cmd Command) Broadcast {
	if code := m.channels.AddPrivateMember(cmd.Target, cmd.Channel, cmd.Sender); code != Okay {
		return errorTo(cmd, code)
	}
	owner, _ := m.channels.Owner(cmd.Channel)
	return names(cmd, m.channels.Members(cmd.Channel), owner)
}

func (m *Model) leave(cmd Command) Broadcast {
	// Membership is captured before removal so a disbanded channel's departed
	// members are still notified. The authorizer is the channel's own owner,
	// which makes LEAVE always self-authorized.
	prior := m.channels.Members(cmd.Channel)
	owner, _ := m.channels.Owner(cmd.Channel)
	if code := m.channels.RemoveMember(cmd.Sender, cmd.Channel, owner); code != Okay {
		return errorTo(cmd, code)
	}
	return delivery(cmd, prior)
}

func (m *Model) kick(cmd Command) Broadcast {
	prior := m.channels.Members(cmd.Channel)
	if code := m.channels.RemoveMember(cmd.Target, cmd.Channel, cmd.Sender); code != Okay {
		return errorTo(cmd, code)
	}
	return delivery(cmd, prior)
}

func (m *Model) message(cmd Command) Broadcast {
	if !m.channels.Exists(cmd.Channel) {
		return errorTo(cmd, NoSuchChannel)
	}
	if !m.channels.IsMember(cmd.Sender, cmd.Channel) {
		return errorTo(cmd, UserNotInChannel)
	}
	return delivery(cmd, m.channels.Members(cmd.Channel))
}

// Nickname resolves a connection id to its current nickname.
func (m *Model) Nickname(connID int64) (string, bool) {
	return m.users.Nickname(connID)
}

// ConnID resolves a nickname to its live connection id.
func (m *Model) ConnID(nick string) (int64, bool) {
	return m.users.ConnID(nick)
}

// Users returns a sorted snapshot of registered nicknames.
func (m *Model) Users() []string {
	return m.users.Nicknames()
}

// Channels returns a sorted snapshot of channel names.
func (m *Model) Channels() []string {
	return m.channels.Names()
}

// ChannelMembers returns a sorted snapshot of a channel's member nicknames,
// empty when the channel does not exist.
func (m *Model) ChannelMembers(name string) []string {
	return m.channels.Members(name)
}

// ChannelOwner returns the owner of a channel.
func (m *Model) ChannelOwner(name string) (string, bool) {
	return m.channels.Owner(name)
}
