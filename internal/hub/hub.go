// Package hub serializes access to the model and fans broadcasts out to live
// connections. The model itself is lock-free by contract; the hub's mutex is
// the single serialization point, scoped around each command's processing.
package hub

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/linechat/linechat-server/internal/model"
	"github.com/linechat/linechat-server/internal/proto"
)

// DefaultEventBuffer is the per-client outbound queue depth used when the
// configured value is not positive.
const DefaultEventBuffer = 32

// Hub owns the model and the conn-id -> client table. Connection ids are
// assigned here, monotonically, and never reused within a process.
type Hub struct {
	mu      sync.Mutex
	model   *model.Model
	clients map[int64]*Client
	nextID  int64
	buffer  int
	log     *zerolog.Logger
}

// New builds a hub around a fresh model.
func New(logger *zerolog.Logger, eventBuffer int) *Hub {
	if eventBuffer <= 0 {
		eventBuffer = DefaultEventBuffer
	}
	return &Hub{
		model:   model.New(),
		clients: make(map[int64]*Client),
		buffer:  eventBuffer,
		log:     logger,
	}
}

// Connect registers a new connection, assigns its conn id and default
// nickname, and queues the greeting on the returned client's Events channel.
func (h *Hub) Connect() *Client {
	h.mu.Lock()
	defer h.mu.Unlock()

	client := &Client{
		ConnID:  h.nextID,
		Session: uuid.NewString(),
		Events:  make(chan string, h.buffer),
	}
	h.nextID++
	h.clients[client.ConnID] = client

	b := h.model.RegisterUser(client.ConnID)
	h.deliver(b)

	h.log.Info().
		Int64("conn_id", client.ConnID).
		Str("session", client.Session).
		Str("nick", b.Nickname).
		Msg("client connected")
	return client
}

// Disconnect deregisters the connection, notifies its ex-peers, and closes
// the client's Events channel. Calling it twice for the same client is safe.
func (h *Hub) Disconnect(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, live := h.clients[c.ConnID]; !live {
		return
	}
	b := h.model.DeregisterUser(c.ConnID)
	delete(h.clients, c.ConnID)
	h.deliver(b)
	close(c.Events)

	h.log.Info().
		Int64("conn_id", c.ConnID).
		Str("session", c.Session).
		Str("nick", b.Nickname).
		Msg("client disconnected")
}

// Submit runs one raw line through parse and apply. Parse failures are
// answered on the submitting client alone and never touch the model.
func (h *Hub) Submit(c *Client, line string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, live := h.clients[c.ConnID]; !live {
		return
	}
	nick, _ := h.model.Nickname(c.ConnID)

	cmd, err := proto.Parse(c.ConnID, nick, line)
	if err != nil {
		h.log.Debug().Err(err).Int64("conn_id", c.ConnID).Msg("rejected line")
		h.send(c, proto.RenderParseError(err))
		return
	}
	h.deliver(h.model.Apply(cmd))
}

// deliver fans a broadcast's rendered lines out to every live recipient.
// Callers hold the mutex.
func (h *Hub) deliver(b model.Broadcast) {
	lines := proto.Render(b)
	for _, nick := range b.Recipients {
		id, ok := h.model.ConnID(nick)
		if !ok {
			continue
		}
		client, ok := h.clients[id]
		if !ok {
			continue
		}
		for _, line := range lines {
			h.send(client, line)
		}
	}
}

func (h *Hub) send(c *Client, line string) {
	select {
	case c.Events <- line:
	default:
		// Drop if slow consumer.
		h.log.Warn().Int64("conn_id", c.ConnID).Msg("event queue full, dropping line")
	}
}

// Users returns a snapshot of registered nicknames.
func (h *Hub) Users() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.model.Users()
}

// Channels returns a snapshot of channel names.
func (h *Hub) Channels() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.model.Channels()
}

// ChannelMembers returns a snapshot of a channel's members plus its owner.
// ok is false when the channel does not exist.
func (h *Hub) ChannelMembers(name string) (members []string, owner string, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	owner, ok = h.model.ChannelOwner(name)
	if !ok {
		return nil, "", false
	}
	return h.model.ChannelMembers(name), owner, true
}
