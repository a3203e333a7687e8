package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"strings"

	"github.com/coder/websocket"
	"github.com/rs/zerolog"

	"github.com/linechat/linechat-server/internal/hub"
)

// WSHandler upgrades HTTP connections and bridges them to the hub. Clients
// send the same newline-delimited commands as on TCP, one or more per text
// frame, and receive one outbound line per frame.
type WSHandler struct {
	hub *hub.Hub
	log *zerolog.Logger
}

// NewWSHandler builds a new WebSocket handler.
func NewWSHandler(h *hub.Hub, logger *zerolog.Logger) stdhttp.Handler {
	return &WSHandler{hub: h, log: logger}
}

func (h *WSHandler) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	client := h.hub.Connect()
	defer h.hub.Disconnect(client)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	errCh := make(chan error, 2)
	go func() {
		errCh <- h.readLoop(ctx, conn, client)
	}()
	go func() {
		errCh <- h.writeLoop(ctx, conn, client)
	}()

	err = <-errCh
	cancel()
	h.hub.Disconnect(client) // closes Events so the write loop can finish
	<-errCh

	status := websocket.StatusNormalClosure
	reason := "closing"
	if err != nil && !errors.Is(err, context.Canceled) {
		if s := websocket.CloseStatus(err); s != -1 {
			status = s
		}
		if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway {
			h.log.Warn().Err(err).Str("session", client.Session).Msg("ws connection closed with error")
			status = websocket.StatusInternalError
			reason = "internal error"
		}
	}

	conn.Close(status, reason)
}

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, client *hub.Client) error {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			h.hub.Submit(client, line)
		}
	}
}

func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, client *hub.Client) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-client.Events:
			if !ok {
				return nil
			}
			if err := conn.Write(ctx, websocket.MessageText, []byte(line)); err != nil {
				return err
			}
		}
	}
}
