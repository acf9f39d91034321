package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/nothingbetterhealth/nbh-site/internal/catalog"
)

// maxFilterMessage bounds a single incoming filter message.
const maxFilterMessage = 4096

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// filterMessage is the incoming WebSocket message format.
type filterMessage struct {
	Query  string `json:"query"`
	Status string `json:"status"`
}

// socketError is sent when a message cannot be handled.
type socketError struct {
	Error string `json:"error"`
}

// handleLocationsSocket answers each filter message with the re-rendered
// grid, so the listing updates as the visitor types.
func (s *Server) handleLocationsSocket(w http.ResponseWriter, r *http.Request) {
	logger := hlog.FromRequest(r)
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("websocket upgrade")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxFilterMessage)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn().Err(err).Msg("websocket read")
			}
			return
		}

		var req filterMessage
		if err := json.Unmarshal(msg, &req); err != nil {
			s.send(conn, logger, socketError{Error: "invalid message format"})
			continue
		}

		resp, err := s.filterLocations(catalog.LocationFilter{
			Query:  req.Query,
			Status: catalog.ParseStatusFilter(req.Status),
		})
		if err != nil {
			logger.Error().Err(err).Msg("filtering locations")
			s.send(conn, logger, socketError{Error: "failed to render locations"})
			continue
		}
		s.send(conn, logger, resp)
	}
}

func (s *Server) send(conn *websocket.Conn, logger *zerolog.Logger, v any) {
	if err := conn.WriteJSON(v); err != nil {
		logger.Warn().Err(err).Msg("websocket write")
	}
}
