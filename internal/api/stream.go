package api

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"care-assessment/backend/internal/assessment"
	"care-assessment/backend/internal/util"
)

const (
	streamWriteTimeout = 10 * time.Second
	streamReadTimeout  = 30 * time.Second
	streamMaxPayload   = 1 << 20
)

// wsClient wraps a websocket connection with write locking.
type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsClient) writeJSON(payload interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
	return c.conn.WriteJSON(payload)
}

func (c *wsClient) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	deadline := time.Now().Add(streamWriteTimeout)
	_ = c.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
	_ = c.conn.Close()
}

// handleAssessStream runs one assessment over a websocket: the client sends
// the payload as its first message, receives chunk events while the backend
// generates, then a single result event before the server closes.
func (s *Server) handleAssessStream(c *gin.Context) {
	log := requestLogger(c).WithField("variant", s.variant.Name)

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	client := &wsClient{conn: conn}
	defer client.close()

	finish := func(result AdviceResult) {
		if err := client.writeJSON(streamResult(result)); err != nil {
			log.WithError(err).Warn("write stream result")
		}
	}

	if !s.aiEnabled() {
		log.Warn("stream rejected: backend credential missing")
		finish(adviceFailed(errMissingKey))
		return
	}

	conn.SetReadLimit(streamMaxPayload)
	_ = conn.SetReadDeadline(time.Now().Add(streamReadTimeout))
	_, message, err := conn.ReadMessage()
	if err != nil {
		finish(adviceFailed(fmt.Errorf("read payload: %w", err)))
		return
	}
	input, err := assessment.ParseInput(message)
	if err != nil {
		finish(adviceFailed(err))
		return
	}

	timer := util.StartTimer()
	req := s.buildRequest(input)
	timer.Lap("render")

	advice, err := s.generator.Stream(c.Request.Context(), req, func(chunk string) error {
		return client.writeJSON(StreamEvent{Type: "chunk", Text: chunk})
	})
	timer.Lap("backend")
	if err != nil {
		log.WithFields(timer.Fields()).WithError(err).Error("streamed assessment failed")
		finish(assessmentFailure(err))
		return
	}
	log.WithFields(timer.Fields()).Info("streamed assessment completed")
	finish(adviceOK(advice))
}
