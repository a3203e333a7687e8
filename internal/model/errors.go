package model

// ReplyCode is the outcome of a registry mutation or command check.
// Every failure is a value; nothing in this package panics on a bad command.
type ReplyCode int

const (
	// Okay means the operation succeeded.
	Okay ReplyCode = iota
	// NoSuchUser: the named user is not currently registered.
	NoSuchUser
	// NoSuchChannel: no channel with the given name exists.
	NoSuchChannel
	// JoinPrivateChannel: JOIN targeted an invite-only channel.
	JoinPrivateChannel
	// InviteToPublicChannel: INVITE targeted a public channel.
	InviteToPublicChannel
	// UserNotOwner: the sender is not the channel owner.
	UserNotOwner
	// UserNotInChannel: the target is not a member of the channel.
	UserNotInChannel
	// ChannelAlreadyExists: CREATE named a channel that is already taken.
	ChannelAlreadyExists
	// InvalidName: the nickname or channel name fails the validity rule.
	InvalidName
	// NameAlreadyInUse: NICK requested a nickname held by a registered user.
	NameAlreadyInUse
)

var replyNames = map[ReplyCode]string{
	Okay:                  "OKAY",
	NoSuchUser:            "NO_SUCH_USER",
	NoSuchChannel:         "NO_SUCH_CHANNEL",
	JoinPrivateChannel:    "JOIN_PRIVATE_CHANNEL",
	InviteToPublicChannel: "INVITE_TO_PUBLIC_CHANNEL",
	UserNotOwner:          "USER_NOT_OWNER",
	UserNotInChannel:      "USER_NOT_IN_CHANNEL",
	ChannelAlreadyExists:  "CHANNEL_ALREADY_EXISTS",
	InvalidName:           "INVALID_NAME",
	NameAlreadyInUse:      "NAME_ALREADY_IN_USE",
}

func (c ReplyCode) String() string {
	if name, ok := replyNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
