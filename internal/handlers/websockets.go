package handlers

import (
	"net/http"
	"strconv"
	"time"

	"wearable_display/internal/logger"
	"wearable_display/internal/render"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 1 << 12

	defaultInterval = time.Second
	maxInterval     = 10 * time.Second

	envStatus = "status"
	envRender = "render"
)

type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Origin is not checked; the upgrade already sits behind operatorMiddleware.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsSession owns one upgraded connection. Only the serve loop writes to conn.
type wsSession struct {
	conn *websocket.Conn
	log  *logger.Logger
}

func (s *wsSession) write(env wsEnvelope) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(env)
}

func (s *wsSession) ping() error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.PingMessage, nil)
}

// readUntilClosed consumes client frames so pongs and close frames are processed.
func (s *wsSession) readUntilClosed(done chan<- struct{}) {
	defer close(done)
	s.conn.SetReadLimit(maxMsgSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			s.log.Debugw("ws_read_closed", "err", err)
			return
		}
	}
}

// @Summary      Render stream
// @Description  WebSocket. Sends a "status" envelope on connect and every interval, and a "render"
// @Description  envelope for every renderer call. Interval via ?interval=2s or ?interval_ms=2000.
// @Tags         display
// @Param        access_token  query  string  false  "Bearer token when the Authorization header cannot be set"
// @Router       /ws [get]
// @Security     BearerAuth
func (h *Handler) wsConnect(c *gin.Context) {
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Errorw("ws_upgrade_failed", "err", err)
		return
	}
	defer func() { _ = conn.Close() }()

	opID, _ := operatorID(c)
	s := &wsSession{conn: conn, log: &logger.Logger{SugaredLogger: h.log.With("operator", opID)}}
	s.log.Infow("ws_connected", "interval", interval.String())

	done := make(chan struct{})
	go s.readUntilClosed(done)

	// a nil channel never fires, so the loop runs status-only without a hub
	var renders <-chan render.Command
	if h.stream != nil {
		var unsubscribe func()
		renders, unsubscribe = h.stream.Subscribe()
		defer unsubscribe()
	}

	h.serveStream(c, s, interval, renders, done)
}

func (h *Handler) serveStream(c *gin.Context, s *wsSession, interval time.Duration, renders <-chan render.Command, done <-chan struct{}) {
	status := time.NewTicker(interval)
	defer status.Stop()
	keepalive := time.NewTicker(pingPeriod)
	defer keepalive.Stop()

	sendStatus := func() error {
		return s.write(wsEnvelope{Type: envStatus, Data: h.services.Monitoring.Status()})
	}
	if err := sendStatus(); err != nil {
		s.log.Infow("ws_write_failed", "stage", "initial", "err", err)
		return
	}

	for {
		var err error
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-keepalive.C:
			err = s.ping()
		case <-status.C:
			err = sendStatus()
		case cmd, ok := <-renders:
			if !ok {
				return
			}
			err = s.write(wsEnvelope{Type: envRender, Data: cmd})
		}
		if err != nil {
			s.log.Infow("ws_write_failed", "err", err)
			return
		}
	}
}

// parseInterval reads ?interval=2s, falling back to ?interval_ms=2000, within (0, maxInterval].
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && validInterval(d) {
			return d
		}
	}
	if s := c.Query("interval_ms"); s != "" {
		if ms, err := strconv.Atoi(s); err == nil {
			if d := time.Duration(ms) * time.Millisecond; validInterval(d) {
				return d
			}
		}
	}
	return defaultInterval
}

func validInterval(d time.Duration) bool { return d > 0 && d <= maxInterval }
