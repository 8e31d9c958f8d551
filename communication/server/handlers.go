package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"morris/communication"
	"morris/game"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, communication.ErrorResponse{Error: err.Error()})
}

// decode reads the request body and validates the board, and the player when
// needPlayer is set.
func decode(r *http.Request, needPlayer bool) (communication.Request, game.Board, error) {
	var req communication.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, game.Board{}, fmt.Errorf("invalid payload: %w", err)
	}
	if req.Board == nil {
		return req, game.Board{}, fmt.Errorf("invalid payload: missing board")
	}
	b, err := req.Board.ToBoard()
	if err != nil {
		return req, game.Board{}, err
	}
	if needPlayer && !game.Player(req.Player).IsValid() {
		return req, game.Board{}, fmt.Errorf("invalid player %d, want 1 or -1", req.Player)
	}
	return req, b, nil
}

func (s *Server) handleActionCount(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, communication.CountResponse{Count: s.game.ActionCount()})
}

func (s *Server) handleInitialState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, communication.StateResponse{Board: s.game.InitialState(), Player: int(game.PlayerOne)})
}

func (s *Server) handleValidActions(w http.ResponseWriter, r *http.Request) {
	req, b, err := decode(r, true)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	mask := s.game.ValidActions(b, game.Player(req.Player))
	resp := communication.ValidResponse{Valid: make([]int, len(mask)), Legal: []int{}}
	for i, v := range mask {
		resp.Valid[i] = int(v)
		if v == 1 {
			resp.Legal = append(resp.Legal, i)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	req, b, err := decode(r, true)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Action == nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid payload: missing action"))
		return
	}
	action, p := *req.Action, game.Player(req.Player)
	if action < 0 || action >= s.game.ActionCount() {
		writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("action %d is outside the action space", action))
		return
	}
	if move := s.game.Move(action); !b.IsLegal(p, move) {
		writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("illegal action %d (%v) for %v", action, move, p))
		return
	}
	next, nextPlayer := s.game.Apply(b, p, action)
	writeJSON(w, http.StatusOK, communication.StateResponse{Board: next, Player: int(nextPlayer)})
}

func (s *Server) handleOutcome(w http.ResponseWriter, r *http.Request) {
	req, b, err := decode(r, true)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	result := s.game.Result(b, game.Player(req.Player))
	writeJSON(w, http.StatusOK, communication.OutcomeResponse{Outcome: result.Value(), Result: result.String()})
}

func (s *Server) handleCanonical(w http.ResponseWriter, r *http.Request) {
	req, b, err := decode(r, true)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, communication.CanonicalResponse{Board: s.game.Canonicalize(b, game.Player(req.Player))})
}

func (s *Server) handleSymmetries(w http.ResponseWriter, r *http.Request) {
	req, b, err := decode(r, false)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(req.Pi) != s.game.ActionCount() {
		writeError(w, http.StatusBadRequest, fmt.Errorf("pi has %d entries, want %d", len(req.Pi), s.game.ActionCount()))
		return
	}
	writeJSON(w, http.StatusOK, communication.SymmetriesResponse{Symmetries: s.game.Symmetries(b, req.Pi)})
}

func (s *Server) handleHash(w http.ResponseWriter, r *http.Request) {
	_, b, err := decode(r, false)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, communication.HashResponse{Key: s.game.HashKey(b)})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	_, b, err := decode(r, false)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(s.game.Render(b)))
}
