package stream

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// eventsChannel carries scheduler change events between instances.
const eventsChannel = "dashboard:events"

// Hub fans scheduler events out to every open dashboard page. With Redis
// configured the fanout goes through pub/sub so multiple instances stay in
// sync; without it events are delivered to local clients only.
type Hub struct {
	redis   *redis.Client
	clients map[*Client]struct{}
	mu      sync.RWMutex
}

type Client struct {
	Send chan []byte
}

type Event struct {
	Event string          `json:"event"`
	Post  json.RawMessage `json:"post"`
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{
		redis:   redisClient,
		clients: map[*Client]struct{}{},
	}

	if redisClient != nil {
		go h.subscribeRedis()
	}
	return h
}

func (h *Hub) Register() *Client {
	client := &Client{
		Send: make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.Send)
	}
}

// PublishEvent wraps a payload in an Event envelope and broadcasts it.
func (h *Hub) PublishEvent(event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("event marshal error: %v", err)
		return
	}
	msg, err := json.Marshal(Event{Event: event, Post: data})
	if err != nil {
		log.Printf("event marshal error: %v", err)
		return
	}
	h.Broadcast(msg)
}

// Broadcast sends a raw payload to all dashboard clients. When Redis is
// connected delivery happens through the subscription loop so every instance
// sees the message exactly once.
func (h *Hub) Broadcast(payload []byte) {
	if h.redis != nil {
		err := h.redis.Publish(context.Background(), eventsChannel, payload).Err()
		if err == nil {
			return
		}
		log.Printf("redis publish error: %v", err)
	}
	h.deliver(payload)
}

func (h *Hub) deliver(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.Send <- payload:
		default:
		}
	}
}

func (h *Hub) subscribeRedis() {
	pubsub := h.redis.Subscribe(context.Background(), eventsChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		h.deliver([]byte(msg.Payload))
	}
}
