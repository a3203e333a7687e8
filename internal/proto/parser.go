// Package proto translates between the line protocol and model values. It
// sits outside the core: malformed lines are rejected here and never reach
// the state machine.
package proto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/linechat/linechat-server/internal/model"
)

// ErrMalformed is wrapped by every parse failure.
var ErrMalformed = errors.New("malformed line")

// Parse turns one raw line into a command attributed to the given sender.
// The wire shape is `:<sender> <VERB> <args>`; a leading `:<sender>` prefix
// is accepted and discarded, the server-side nickname is authoritative.
func Parse(senderID int64, sender, line string) (model.Command, error) {
	line = strings.TrimRight(line, "\r\n")
	if rest, ok := strings.CutPrefix(line, ":"); ok {
		_, rest, _ = strings.Cut(rest, " ")
		line = rest
	}

	verb, rest, _ := strings.Cut(line, " ")
	cmd := model.Command{SenderID: senderID, Sender: sender}

	switch verb {
	case "NICK":
		nick, err := oneArg(verb, rest)
		if err != nil {
			return model.Command{}, err
		}
		cmd.Verb = model.VerbNick
		cmd.NewNick = nick
	case "CREATE":
		ch, flag, err := twoArgs(verb, rest)
		if err != nil {
			return model.Command{}, err
		}
		switch flag {
		case "0":
			cmd.InviteOnly = false
		case "1":
			cmd.InviteOnly = true
		default:
			return model.Command{}, fmt.Errorf("%w: CREATE flag must be 0 or 1, got %q", ErrMalformed, flag)
		}
		cmd.Verb = model.VerbCreate
		cmd.Channel = ch
	case "JOIN":
		ch, err := oneArg(verb, rest)
		if err != nil {
			return model.Command{}, err
		}
		cmd.Verb = model.VerbJoin
		cmd.Channel = ch
	case "MESG":
		ch, trailing, _ := strings.Cut(rest, " ")
		text, ok := strings.CutPrefix(trailing, ":")
		if ch == "" || !ok {
			return model.Command{}, fmt.Errorf("%w: MESG wants `<channel> :<text>`", ErrMalformed)
		}
		cmd.Verb = model.VerbMessage
		cmd.Channel = ch
		cmd.Text = text
	case "LEAVE":
		ch, err := oneArg(verb, rest)
		if err != nil {
			return model.Command{}, err
		}
		cmd.Verb = model.VerbLeave
		cmd.Channel = ch
	case "INVITE":
		ch, nick, err := twoArgs(verb, rest)
		if err != nil {
			return model.Command{}, err
		}
		cmd.Verb = model.VerbInvite
		cmd.Channel = ch
		cmd.Target = nick
	case "KICK":
		ch, nick, err := twoArgs(verb, rest)
		if err != nil {
			return model.Command{}, err
		}
		cmd.Verb = model.VerbKick
		cmd.Channel = ch
		cmd.Target = nick
	default:
		return model.Command{}, fmt.Errorf("%w: unknown verb %q", ErrMalformed, verb)
	}
	return cmd, nil
}

func oneArg(verb, rest string) (string, error) {
	if rest == "" || strings.Contains(rest, " ") {
		return "", fmt.Errorf("%w: %s wants exactly one argument", ErrMalformed, verb)
	}
	return rest, nil
}

func twoArgs(verb, rest string) (string, string, error) {
	first, second, ok := strings.Cut(rest, " ")
	if !ok || first == "" || second == "" || strings.Contains(second, " ") {
		return "", "", fmt.Errorf("%w: %s wants exactly two arguments", ErrMalformed, verb)
	}
	return first, second, nil
}
