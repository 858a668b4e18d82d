package handlers

import (
	"github.com/donelist/todo-backend/config"
	"github.com/donelist/todo-backend/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
)

// EchoHandler upgrades a connection and echoes every message back to the
// client byte-for-byte, preserving the text/binary frame type, until the
// client disconnects.
type EchoHandler struct {
	log            *zap.SugaredLogger
	allowedOrigins []string
	isDevelopment  bool
}

// NewEchoHandler creates a websocket echo handler.
func NewEchoHandler(serverCfg *config.ServerConfig) *EchoHandler {
	return &EchoHandler{
		log:            logger.GetLogger().Named("ws_echo"),
		allowedOrigins: serverCfg.AllowedOrigins,
		isDevelopment:  serverCfg.Environment == config.EnvDevelopment,
	}
}

// getAcceptOptions returns accept options based on configuration. All origins
// are allowed in development; only configured origins in production.
func (h *EchoHandler) getAcceptOptions() *websocket.AcceptOptions {
	opts := &websocket.AcceptOptions{
		CompressionMode: websocket.CompressionContextTakeover,
	}

	if h.isDevelopment {
		opts.InsecureSkipVerify = true
	} else {
		opts.OriginPatterns = h.allowedOrigins
	}

	return opts
}

// EchoWebSocket handles GET /ws.
func (h *EchoHandler) EchoWebSocket(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, h.getAcceptOptions())
	if err != nil {
		h.log.Errorw("Failed to accept WebSocket connection", "error", err)
		return
	}
	defer conn.CloseNow()

	ctx := c.Request.Context()
	h.log.Infow("WebSocket echo connection established", "remoteAddr", c.Request.RemoteAddr)

	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				h.log.Infow("Client closed WebSocket connection", "remoteAddr", c.Request.RemoteAddr)
			} else {
				h.log.Warnw("WebSocket read failed", "error", err)
			}
			return
		}

		if err := conn.Write(ctx, typ, data); err != nil {
			h.log.Warnw("WebSocket write failed", "error", err)
			return
		}
	}
}
