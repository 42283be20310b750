// Package sse tracks Server-Sent Events subscribers of board changes.
package sse

import (
	"sync"

	"github.com/debemdeboas/dallama/internal/model"
)

// Client receives broadcast messages on Msg. A zero PostID subscribes to
// every change, otherwise only changes to that post and board wide changes
// are delivered.
type Client struct {
	Msg    chan string
	PostID model.PostID
}

func NewClient(postID model.PostID, buffer int) *Client {
	return &Client{
		Msg:    make(chan string, buffer),
		PostID: postID,
	}
}

func (c *Client) wants(postID model.PostID) bool {
	return c.PostID == 0 || postID == 0 || c.PostID == postID
}

type SSEClients struct {
	clients map[*Client]bool
	mu      sync.RWMutex
}

func NewSSEClients() *SSEClients {
	return &SSEClients{
		clients: make(map[*Client]bool),
	}
}

func (s *SSEClients) Add(client *Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[client] = true
}

func (s *SSEClients) Delete(client *Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clients[client] {
		delete(s.clients, client)
		close(client.Msg)
	}
}

func (s *SSEClients) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Broadcast delivers msg to interested clients. Clients with a full buffer miss it.
func (s *SSEClients) Broadcast(postID model.PostID, msg string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for client := range s.clients {
		if !client.wants(postID) {
			continue
		}
		select {
		case client.Msg <- msg:
		default:
		}
	}
}
