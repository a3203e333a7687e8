package model

import "fmt"

// Verb identifies what the client wants to do.
type Verb int

const (
	// VerbNick changes the sender's nickname.
	VerbNick Verb = iota
	// VerbCreate creates a channel owned by the sender.
	VerbCreate
	// VerbJoin adds the sender to a public channel.
	VerbJoin
	// VerbMessage delivers a text message to a channel.
	VerbMessage
	// VerbLeave removes the sender from a channel.
	VerbLeave
	// VerbInvite adds another user to an invite-only channel owned by the sender.
	VerbInvite
	// VerbKick removes another user from a channel owned by the sender.
	VerbKick
)

func (v Verb) String() string {
	switch v {
	case VerbNick:
		return "NICK"
	case VerbCreate:
		return "CREATE"
	case VerbJoin:
		return "JOIN"
	case VerbMessage:
		return "MESG"
	case VerbLeave:
		return "LEAVE"
	case VerbInvite:
		return "INVITE"
	case VerbKick:
		return "KICK"
	}
	return "UNKNOWN"
}

// Command is one parsed client command: a verb tag plus the fields that verb
// uses. It is produced once by the parser and consumed once by Model.Apply.
// Sender carries the nickname the sender held when the command was issued.
type Command struct {
	SenderID int64
	Sender   string
	Verb     Verb

	Channel    string // CREATE, JOIN, MESG, LEAVE, INVITE, KICK
	Target     string // INVITE, KICK: the affected nickname
	NewNick    string // NICK
	Text       string // MESG
	InviteOnly bool   // CREATE
}

// Wire renders the command in its line-protocol form.
func (c Command) Wire() string {
	switch c.Verb {
	case VerbNick:
		return fmt.Sprintf(":%s NICK %s", c.Sender, c.NewNick)
	case VerbCreate:
		flag := 0
		if c.InviteOnly {
			flag = 1
		}
		return fmt.Sprintf(":%s CREATE %s %d", c.Sender, c.Channel, flag)
	case VerbJoin:
		return fmt.Sprintf(":%s JOIN %s", c.Sender, c.Channel)
	case VerbMessage:
		return fmt.Sprintf(":%s MESG %s :%s", c.Sender, c.Channel, c.Text)
	case VerbLeave:
		return fmt.Sprintf(":%s LEAVE %s", c.Sender, c.Channel)
	case VerbInvite:
		return fmt.Sprintf(":%s INVITE %s %s", c.Sender, c.Channel, c.Target)
	case VerbKick:
		return fmt.Sprintf(":%s KICK %s %s", c.Sender, c.Channel, c.Target)
	}
	return fmt.Sprintf(":%s UNKNOWN", c.Sender)
}
