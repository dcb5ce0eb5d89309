package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

const (
	writeTimeout           = 10 * time.Second
	initialReconnectPeriod = 100 * time.Millisecond
)

// Client is the connection to the authoritative game server. It delivers
// snapshots to the registered callbacks, forwards move requests and keeps
// the table of player profiles seen so far.
type Client struct {
	logger      *slog.Logger
	url         string
	playerID    entity.PlayerID
	maxInterval time.Duration
	dialer      *websocket.Dialer

	mu        sync.RWMutex
	conn      *websocket.Conn
	profiles  map[entity.PlayerID]entity.PlayerProfile
	callbacks []func(entity.Update)

	writeMu sync.Mutex
}

func New(logger *slog.Logger, url string, playerID entity.PlayerID, maxInterval time.Duration) *Client {
	return &Client{
		logger:      logger.With("component", "channel"),
		url:         url,
		playerID:    playerID,
		maxInterval: maxInterval,
		dialer:      websocket.DefaultDialer,

		profiles: make(map[entity.PlayerID]entity.PlayerProfile),
	}
}

// OnSnapshot registers a callback for every state:sync message. Callbacks
// run on the read goroutine and must not block.
func (that *Client) OnSnapshot(callback func(entity.Update)) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.callbacks = append(that.callbacks, callback)
}

// GetPlayerProfile returns the last profile the server sent for id.
func (that *Client) GetPlayerProfile(id entity.PlayerID) (entity.PlayerProfile, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	profile, ok := that.profiles[id]

	return profile, ok
}

// SendMoveRequest asks the server to claim cell. The outcome only shows up
// in a later snapshot.
func (that *Client) SendMoveRequest(ctx context.Context, cell entity.CellIndex) error {
	if err := cell.Validate(); err != nil {
		return err
	}

	msgID := uuid.NewString()
	if err := that.send(ctx, actionGameTurn, TurnPayload{Cell: cell, MsgID: msgID}); err != nil {
		return fmt.Errorf("failed to send move request: %w", err)
	}

	that.logger.Debug("move requested", "cell", cell, "msgId", msgID)

	return nil
}

// Run keeps a connection open until ctx is canceled, redialing with
// exponential backoff whenever it drops.
func (that *Client) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = min(initialReconnectPeriod, that.maxInterval)
	policy.MaxInterval = that.maxInterval
	policy.MaxElapsedTime = 0

	err := backoff.RetryNotify(func() error {
		err := that.serve(ctx, policy)
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}

		return err
	}, backoff.WithContext(policy, ctx), func(err error, wait time.Duration) {
		log.Warn("connection lost, reconnecting", "error", err, "wait", wait)
	})

	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

// serve dials once and reads until the connection fails.
func (that *Client) serve(ctx context.Context, policy backoff.BackOff) error {
	log := that.logger.With("method", "serve")

	conn, _, err := that.dialer.DialContext(ctx, that.url, nil)
	if err != nil {
		return fmt.Errorf("failed to dial %s: %w", that.url, err)
	}

	that.setConn(conn)
	defer that.setConn(nil)

	stop := make(chan struct{})
	defer close(stop)

	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-stop:
		}
	}()

	defer conn.Close()

	policy.Reset()
	log.Info("connected to game server", "url", that.url)

	if that.playerID.IsSet() {
		if err = that.send(ctx, actionConnect, ConnectPayload{Player: &entity.Player{ID: that.playerID}}); err != nil {
			return err
		}
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		if err = that.handleMessage(&message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Client) handleMessage(message *Message) error {
	switch message.Action {
	case actionStateSync:
		var payload SyncPayload
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}

		that.dispatch(payload)
	case actionError:
		var payload ErrorPayload
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}

		that.logger.Warn("game server error", "error", payload.Error)
	default:
		that.logger.Debug("unhandled message", "action", message.Action)
	}

	return nil
}

// dispatch stores the profiles first so callbacks can look them up.
func (that *Client) dispatch(payload SyncPayload) {
	that.mu.Lock()
	for id, profile := range payload.Players {
		that.profiles[id] = profile
	}
	callbacks := slices.Clone(that.callbacks)
	that.mu.Unlock()

	for _, callback := range callbacks {
		callback(payload.Update)
	}
}

func (that *Client) send(ctx context.Context, action string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	that.mu.RLock()
	conn := that.conn
	that.mu.RUnlock()

	if conn == nil {
		return apperror.ErrNotConnected
	}

	deadline := time.Now().Add(writeTimeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if err = conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: payloadJSON}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Client) setConn(conn *websocket.Conn) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.conn = conn
}
