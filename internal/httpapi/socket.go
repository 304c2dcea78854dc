package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
)

// handleGradeSocket answers one GradeResponse per GradeRequest until the
// client closes the connection.
func (h *Handler) handleGradeSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	log := slog.With("session_id", uuid.NewString())
	log.Debug("grading session opened", "remote", r.RemoteAddr)

	ctx := r.Context()
	graded := 0
	for {
		var req GradeRequest
		if err := wsjson.Read(ctx, conn, &req); err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			default:
				log.Debug("websocket read ended", "error", err)
			}
			log.Debug("grading session closed", "graded", graded)
			return
		}

		resp, err := h.grade(req)
		if err != nil {
			var ge *gradeError
			if !errors.As(err, &ge) {
				log.Error("curriculum unavailable", "error", err)
				conn.Close(websocket.StatusInternalError, "curriculum unavailable")
				return
			}
			resp = GradeResponse{Error: ge.msg}
		} else {
			graded++
		}

		if err := wsjson.Write(ctx, conn, resp); err != nil {
			log.Debug("websocket write failed", "error", err)
			return
		}
	}
}
