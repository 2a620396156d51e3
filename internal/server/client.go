package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/theDrake/pebblequest-sub000/internal/engine"
	"github.com/theDrake/pebblequest-sub000/pkg/api"
	"github.com/theDrake/pebblequest-sub000/pkg/logger"
	"github.com/theDrake/pebblequest-sub000/pkg/utils"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и GameService
type Client struct {
	Game      *engine.GameService
	Conn      *websocket.Conn
	Send      chan api.ServerMessage
	SessionID string
}

func NewClient(game *engine.GameService, conn *websocket.Conn) *Client {
	return &Client{
		Game: game,
		Conn: conn,
		Send: make(chan api.ServerMessage, 64),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	var updates chan api.ServerMessage

	defer func() {
		if updates != nil {
			c.Game.Hub.Unregister(c.SessionID, updates)
		}
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("websocket close in readPump")
		}
		if c.SessionID != "" {
			// Сессия гасится, герой сохраняется
			c.Game.Detach(c.SessionID)
			logger.Log.WithField("session", c.SessionID).Info("Client disconnected")
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. HANDSHAKE (первое сообщение несет токен)
	var loginCmd api.ClientCommand
	if err := c.Conn.ReadJSON(&loginCmd); err != nil {
		logger.Log.Warn("Handshake failed")
		return
	}

	c.SessionID = loginCmd.Token
	if c.SessionID == "" {
		c.SessionID = utils.GenerateID()
	}

	// 2. СОЗДАНИЕ/ПОДЪЕМ СЕССИИ И ПОДПИСКА
	c.Game.Attach(c.SessionID)
	updates = c.Game.Hub.Register(c.SessionID)

	go func() {
		for msg := range updates {
			c.Send <- msg
		}
		close(c.Send)
	}()

	logger.Log.WithField("session", c.SessionID).Info("Client logged in")

	// Триггер первой отрисовки
	c.Game.ProcessCommand(api.ClientCommand{Action: "INIT", Token: c.SessionID})

	// 3. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}
		cmd.Token = c.SessionID
		c.Game.ProcessCommand(cmd)
	}
}

// writePump отправляет кадры клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("websocket close in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
