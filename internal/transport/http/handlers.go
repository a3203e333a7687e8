package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/linechat/linechat-server/internal/hub"
)

// Handlers provides the read-only REST endpoints over the hub's snapshots.
type Handlers struct {
	hub *hub.Hub
	log *zerolog.Logger
}

// UsersResponse lists the registered nicknames.
type UsersResponse struct {
	Users []string `json:"users"`
}

// ChannelsResponse lists the channel names.
type ChannelsResponse struct {
	Channels []string `json:"channels"`
}

// MembersResponse describes one channel's membership.
type MembersResponse struct {
	Channel string   `json:"channel"`
	Owner   string   `json:"owner"`
	Members []string `json:"members"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health responds to liveness probes.
// GET /health
func (h *Handlers) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// ListUsers returns all registered nicknames, sorted.
// GET /api/users
func (h *Handlers) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, UsersResponse{Users: h.hub.Users()})
}

// ListChannels returns all channel names, sorted.
// GET /api/channels
func (h *Handlers) ListChannels(c *gin.Context) {
	c.JSON(http.StatusOK, ChannelsResponse{Channels: h.hub.Channels()})
}

// ChannelMembers returns one channel's owner and sorted member list.
// GET /api/channels/:name/members
func (h *Handlers) ChannelMembers(c *gin.Context) {
	name := c.Param("name")
	members, owner, ok := h.hub.ChannelMembers(name)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no such channel"})
		return
	}
	c.JSON(http.StatusOK, MembersResponse{Channel: name, Owner: owner, Members: members})
}
