// Package tcp is the protocol's native transport: one goroutine per
// connection, newline-delimited commands in, broadcast lines out.
package tcp

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/linechat/linechat-server/internal/hub"
)

// Server accepts raw TCP connections and bridges them to the hub.
type Server struct {
	addr string
	hub  *hub.Hub
	log  *zerolog.Logger
}

// NewServer builds a TCP server listening on addr.
func NewServer(addr string, h *hub.Hub, logger *zerolog.Logger) *Server {
	return &Server{addr: addr, hub: h, log: logger}
}

// Run listens and serves until the context is cancelled. Each accepted
// connection gets its own goroutine; Run returns after they all finish.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	s.log.Info().Str("addr", s.addr).Msg("tcp server listening")

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	var wg sync.WaitGroup
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			return fmt.Errorf("accept: %w", err)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.handle(conn)
		}()
	}
	wg.Wait()
	return nil
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	client := s.hub.Connect()
	defer s.hub.Disconnect(client)

	s.log.Debug().
		Str("session", client.Session).
		Str("remote", conn.RemoteAddr().String()).
		Msg("tcp connection open")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for line := range client.Events {
			if _, err := fmt.Fprintln(conn, line); err != nil {
				// Unblock the read side as well.
				conn.Close()
				return
			}
		}
	}()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		s.hub.Submit(client, line)
	}
	if err := scanner.Err(); err != nil {
		s.log.Debug().Err(err).Str("session", client.Session).Msg("tcp read ended")
	}

	// Deregister now so the Events channel closes and the writer drains out.
	s.hub.Disconnect(client)
	<-done
}
