package player

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"morris/communication"
	"morris/game"
)

// Remote asks an agent process over HTTP for its action. The agent receives
// the canonical board on POST <url>/findmove and answers with an action index.
type Remote struct {
	url  string
	http *http.Client
}

func NewRemote(url string, httpClient *http.Client) *Remote {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Remote{url: url, http: httpClient}
}

func (r *Remote) Play(b game.Board) (int, error) {
	board := communication.FromBoard(b)
	bodyBytes, err := json.Marshal(communication.Request{Board: &board, Player: int(game.PlayerOne)})
	if err != nil {
		return 0, errors.Wrap(err, "encoding board")
	}

	resp, err := r.http.Post(r.url+"/findmove", "application/json", bytes.NewReader(bodyBytes))
	if err != nil {
		return 0, errors.Wrap(err, "requesting move from agent")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return 0, errors.Errorf("agent returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var action communication.ActionResponse
	if err := json.NewDecoder(resp.Body).Decode(&action); err != nil {
		return 0, errors.Wrap(err, "decoding agent response")
	}
	return action.Action, nil
}
