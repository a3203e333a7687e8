package model

import (
	"sort"
	"strconv"
	"unicode"
)

// UserRegistry owns the connection-id <-> nickname mapping. Nicknames are
// unique among registered users; connection ids are assigned by the backend
// and unique among live connections.
type UserRegistry struct {
	nickByID map[int64]string
	idByNick map[string]int64
}

// NewUserRegistry returns an empty registry.
func NewUserRegistry() *UserRegistry {
	return &UserRegistry{
		nickByID: make(map[int64]string),
		idByNick: make(map[string]int64),
	}
}

// Register inserts a new user under a generated default nickname of the form
// "User<N>", N the smallest non-negative integer not currently in use, and
// returns that nickname. It cannot fail.
func (r *UserRegistry) Register(connID int64) string {
	var nick string
	for n := 0; ; n++ {
		nick = "User" + strconv.Itoa(n)
		if _, taken := r.idByNick[nick]; !taken {
			break
		}
	}
	r.nickByID[connID] = nick
	r.idByNick[nick] = connID
	return nick
}

// Deregister removes the user entry. Channel cleanup is the caller's job.
// Precondition: connID is currently registered; behavior is undefined
// otherwise, the transport layer must never pass an unknown id.
func (r *UserRegistry) Deregister(connID int64) {
	nick := r.nickByID[connID]
	delete(r.idByNick, nick)
	delete(r.nickByID, connID)
}

// Rename rebinds the registered user's nickname. The caller has already
// checked availability and validity.
func (r *UserRegistry) Rename(connID int64, nick string) {
	old := r.nickByID[connID]
	delete(r.idByNick, old)
	r.nickByID[connID] = nick
	r.idByNick[nick] = connID
}

// ConnID looks up the connection id bound to a nickname.
func (r *UserRegistry) ConnID(nick string) (int64, bool) {
	id, ok := r.idByNick[nick]
	return id, ok
}

// Nickname looks up the nickname bound to a connection id.
func (r *UserRegistry) Nickname(connID int64) (string, bool) {
	nick, ok := r.nickByID[connID]
	return nick, ok
}

// Nicknames returns a sorted, independent snapshot of all registered
// nicknames. Mutating the result does not affect the registry.
func (r *UserRegistry) Nicknames() []string {
	out := make([]string, 0, len(r.idByNick))
	for nick := range r.idByNick {
		out = append(out, nick)
	}
	sort.Strings(out)
	return out
}

// ValidName reports whether a nickname or channel name is acceptable:
// non-empty and entirely alphanumeric.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
