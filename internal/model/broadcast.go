package model

import "sort"

// BroadcastKind discriminates the Broadcast variants.
type BroadcastKind int

const (
	// BroadcastConnected greets a newly registered user; sent to them alone.
	BroadcastConnected BroadcastKind = iota
	// BroadcastDisconnected tells remaining channel members a user is gone.
	BroadcastDisconnected
	// BroadcastError reports a failed command to its sender alone.
	BroadcastError
	// BroadcastDelivery relays a successful command to a recipient set.
	BroadcastDelivery
	// BroadcastNames announces the membership of a channel after JOIN or
	// INVITE, including the channel owner.
	BroadcastNames
)

// Broadcast is the immutable outcome of processing one command: which
// connections must be notified, and with what. Recipient slices are sorted,
// deduplicated snapshots; later model mutations never alter a returned value.
type Broadcast struct {
	Kind       BroadcastKind
	Command    Command // zero value for connected/disconnected
	Code       ReplyCode
	Nickname   string // subject of connected/disconnected
	Recipients []string
	Owner      string // set for names listings
}

func connected(nickname string) Broadcast {
	return Broadcast{
		Kind:       BroadcastConnected,
		Nickname:   nickname,
		Recipients: []string{nickname},
	}
}

func disconnected(nickname string, recipients []string) Broadcast {
	return Broadcast{
		Kind:       BroadcastDisconnected,
		Nickname:   nickname,
		Recipients: snapshot(recipients, nickname),
	}
}

func errorTo(cmd Command, code ReplyCode) Broadcast {
	return Broadcast{
		Kind:       BroadcastError,
		Command:    cmd,
		Code:       code,
		Recipients: []string{cmd.Sender},
	}
}

func delivery(cmd Command, recipients []string) Broadcast {
	return Broadcast{
		Kind:       BroadcastDelivery,
		Command:    cmd,
		Recipients: snapshot(recipients),
	}
}

func names(cmd Command, recipients []string, owner string) Broadcast {
	return Broadcast{
		Kind:       BroadcastNames,
		Command:    cmd,
		Recipients: snapshot(recipients),
		Owner:      owner,
	}
}

// snapshot copies, deduplicates, and sorts a recipient list, dropping any
// excluded nicknames. The result never aliases the input.
func snapshot(recipients []string, exclude ...string) []string {
	seen := make(map[string]struct{}, len(recipients))
	for _, ex := range exclude {
		seen[ex] = struct{}{}
	}
	out := make([]string, 0, len(recipients))
	for _, r := range recipients {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}
