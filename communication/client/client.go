package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"morris/communication"
	"morris/game"
)

// StatusError is a non-2xx answer from the server.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
}

// IsIllegal reports whether err is the server rejecting an illegal action.
func IsIllegal(err error) bool {
	var status *StatusError
	return errors.As(err, &status) && status.Code == http.StatusUnprocessableEntity
}

// Client calls the rules engine served by communication/server.
type Client struct {
	serverURL string
	http      *http.Client
}

func NewClient(serverURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		serverURL: serverURL,
		http:      httpClient,
	}
}

func (c *Client) ActionCount(ctx context.Context) (int, error) {
	var resp communication.CountResponse
	err := c.do(ctx, http.MethodGet, "/actions/count", nil, &resp)
	return resp.Count, err
}

func (c *Client) InitialState(ctx context.Context) (game.Board, game.Player, error) {
	var resp communication.StateResponse
	err := c.do(ctx, http.MethodGet, "/state/initial", nil, &resp)
	return resp.Board, game.Player(resp.Player), err
}

// LegalActions returns the legal action indices for p.
func (c *Client) LegalActions(ctx context.Context, b game.Board, p game.Player) ([]int, error) {
	var resp communication.ValidResponse
	err := c.do(ctx, http.MethodPost, "/actions/valid", request(b, p), &resp)
	return resp.Legal, err
}

func (c *Client) Apply(ctx context.Context, b game.Board, p game.Player, action int) (game.Board, game.Player, error) {
	req := request(b, p)
	req.Action = &action
	var resp communication.StateResponse
	err := c.do(ctx, http.MethodPost, "/actions/apply", req, &resp)
	return resp.Board, game.Player(resp.Player), err
}

func (c *Client) Outcome(ctx context.Context, b game.Board, p game.Player) (float64, error) {
	var resp communication.OutcomeResponse
	err := c.do(ctx, http.MethodPost, "/outcome", request(b, p), &resp)
	return resp.Outcome, err
}

func (c *Client) Canonical(ctx context.Context, b game.Board, p game.Player) (game.Board, error) {
	var resp communication.CanonicalResponse
	err := c.do(ctx, http.MethodPost, "/canonical", request(b, p), &resp)
	return resp.Board, err
}

func (c *Client) HashKey(ctx context.Context, b game.Board) (string, error) {
	var resp communication.HashResponse
	err := c.do(ctx, http.MethodPost, "/hash", request(b, game.PlayerOne), &resp)
	return resp.Key, err
}

func request(b game.Board, p game.Player) communication.Request {
	board := communication.FromBoard(b)
	return communication.Request{Board: &board, Player: int(p)}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.serverURL+path, reader)
	if err != nil {
		return errors.Wrapf(err, "building %s %s", method, path)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e communication.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return &StatusError{Code: resp.StatusCode, Message: e.Error}
	}
	return errors.Wrapf(json.NewDecoder(resp.Body).Decode(out), "decoding %s response", path)
}
