// Package ws реализует живой канал консоли сервера поверх WebSocket.
//
// Клиент после подключения отправляет события join-server-console и
// server-command; сервер отвечает событиями console-log. Вывод консоли
// синтетический: join запускает таймер с периодическим heartbeat-сообщением,
// команда немедленно отражается строкой лога и никогда не исполняется.
//
// Каждый вызов join-server-console запускает собственный таймер, даже при
// повторном join того же serverId на одном соединении. При разрыве соединения
// все его таймеры останавливаются.
package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/hackerhosting/backend/internal/lib/sl"
	"github.com/hackerhosting/backend/internal/metrics"
)

// Названия событий протокола канала консоли.
const (
	EventJoinConsole   = "join-server-console"
	EventServerCommand = "server-command"
	EventConsoleLog    = "console-log"
)

// ClientEvent — событие, присланное клиентом.
type ClientEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// ServerEvent — событие, отправляемое клиенту.
type ServerEvent struct {
	Event string `json:"event"`
	Data  string `json:"data"`
}

// JoinPayload — полезная нагрузка события join-server-console.
// serverId не сверяется с хранилищем: канал принимает любую строку.
type JoinPayload struct {
	ServerID string `json:"serverId"`
}

// CommandPayload — полезная нагрузка события server-command.
type CommandPayload struct {
	ServerID string `json:"serverId"`
	Cmd      string `json:"cmd"`
}

// Handler обслуживает WebSocket-соединения живого канала консоли.
type Handler struct {
	log               *slog.Logger
	heartbeatInterval time.Duration
	upgrader          websocket.Upgrader
}

// NewHandler создает новый Handler с заданным периодом heartbeat-сообщений.
// Запросы на апгрейд принимаются с любого origin: демо открыто для всех.
func NewHandler(log *slog.Logger, heartbeatInterval time.Duration) *Handler {
	return &Handler{
		log:               log,
		heartbeatInterval: heartbeatInterval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP апгрейдит запрос до WebSocket и обслуживает соединение до разрыва.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "ws.console"

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("failed to upgrade connection", sl.Err(err))
		return
	}

	socketID := uuid.NewString()
	c := &connection{
		id:   socketID,
		ws:   conn,
		send: make(chan ServerEvent, 16),
		log: h.log.With(
			slog.String("op", op),
			slog.String("socket_id", socketID),
		),
	}
	c.log.Info("socket connected")
	metrics.ConsoleConnectionsActive.Inc()
	defer metrics.ConsoleConnectionsActive.Dec()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go c.writePump(ctx)
	c.readPump(ctx, h.heartbeatInterval)
	c.log.Info("socket disconnected")
}

// connection — состояние одного WebSocket-соединения.
// Все записи в сокет идут через канал send и выполняются одной горутиной.
type connection struct {
	id   string
	ws   *websocket.Conn
	send chan ServerEvent
	log  *slog.Logger
}

// readPump читает события клиента до разрыва соединения и диспетчеризует их.
// Возврат из readPump означает конец жизни соединения: контекст отменяется
// вызывающей стороной, и все heartbeat-горутины завершаются.
func (c *connection) readPump(ctx context.Context, heartbeatInterval time.Duration) {
	defer c.ws.Close()

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			return
		}

		var ev ClientEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			c.log.Error("failed to decode client event", sl.Err(err))
			continue
		}

		switch ev.Event {
		case EventJoinConsole:
			var payload JoinPayload
			if err := json.Unmarshal(ev.Data, &payload); err != nil {
				c.log.Error("failed to decode join payload", sl.Err(err))
				continue
			}
			c.log.Info("join-server-console", slog.String("server_id", payload.ServerID))
			go c.heartbeat(ctx, payload.ServerID, heartbeatInterval)

		case EventServerCommand:
			var payload CommandPayload
			if err := json.Unmarshal(ev.Data, &payload); err != nil {
				c.log.Error("failed to decode command payload", sl.Err(err))
				continue
			}
			c.emit(ctx, commandLine(payload.ServerID, payload.Cmd))

		default:
			c.log.Error("unknown client event", slog.String("event", ev.Event))
		}
	}
}

// heartbeat периодически шлёт синтетическую строку лога для указанного сервера.
// Таймер живет до отмены контекста соединения.
func (c *connection) heartbeat(ctx context.Context, serverID string, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.emit(ctx, heartbeatLine(serverID))
		}
	}
}

// writePump — единственный писатель в сокет: забирает события из канала send
// и сериализует их в соединение.
func (c *connection) writePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-c.send:
			if err := c.ws.WriteJSON(ev); err != nil {
				c.log.Error("failed to write event", sl.Err(err))
				return
			}
			metrics.ConsoleEventsTotal.Inc()
		}
	}
}

func (c *connection) emit(ctx context.Context, line string) {
	select {
	case c.send <- ServerEvent{Event: EventConsoleLog, Data: line}:
	case <-ctx.Done():
	}
}

func heartbeatLine(serverID string) string {
	return fmt.Sprintf("[%s] [%s] Demo log: server heartbeat OK", timestamp(), serverID)
}

func commandLine(serverID, cmd string) string {
	return fmt.Sprintf("[%s] [%s] Executed command: %s", timestamp(), serverID, cmd)
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
