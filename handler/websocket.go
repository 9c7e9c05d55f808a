package handler

import (
	"github.com/gofiber/contrib/websocket"
)

// EventsWebsocket gắn client vào hub, hub lo phần fan-out.
func EventsWebsocket(c *websocket.Conn) {
	eventHub.Serve(c)
}
