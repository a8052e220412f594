package videocall

import (
	"context"
	"sync"
	"time"

	"github.com/samuel/go-metrics/metrics"

	"github.com/venahealth/backend/libs/clock"
	"github.com/venahealth/backend/libs/conc"
	"github.com/venahealth/backend/libs/errors"
	"github.com/venahealth/backend/libs/golog"
)

// Transport is the real time video provider's connection for a single
// room. Implementations wrap the provider SDK; connection state changes
// and remote participant counts are fed back into the call through
// HandleConnectionState and HandleRemoteParticipants.
type Transport interface {
	Join(ctx context.Context, token string) error
	Leave(ctx context.Context) error
}

// SessionFetcher retrieves the server's current view of a session.
type SessionFetcher interface {
	FetchSession(ctx context.Context, sessionID string) (*Session, error)
}

// TokenSource mints a room token. A fresh token is requested for every
// join and rejoin attempt.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// UI receives the call's user visible outputs: state changes, one shot
// alerts, timer ticks and the counterpart disconnect indicator. Callbacks
// are invoked on the goroutine driving the call and must not call back
// into the Call synchronously.
type UI interface {
	StateChanged(state ScreenState)
	Alert(message string)
	CountdownTick(secondsUntilStart int)
	WaitingTick(secondsElapsed int)
	DurationTick(secondsElapsed int)
	RemoteDisconnectedChanged(disconnected bool)
}

// joinWindow is how far ahead of the scheduled start a party may join.
const joinWindow = 2 * time.Minute

const (
	alertTooEarly     = "It's a little early. You can join up to 2 minutes before your scheduled start time."
	alertJoinFailed   = "We couldn't connect you to the call. Please try again."
	alertRejoinFailed = "Reconnecting didn't work. Please check your connection and try again."
)

// Config wires a Call to its collaborators.
type Config struct {
	Session   *Session
	Transport Transport
	Fetcher   SessionFetcher
	Tokens    TokenSource
	UI        UI

	// Clock defaults to wall time. NewTicker sources the one second tick
	// driving Start and defaults to clock.NewTicker. PollInterval is how
	// often the session is refreshed from the server while the screen is
	// active; it defaults to 5 seconds.
	Clock        clock.Clock
	NewTicker    func(d time.Duration) clock.Ticker
	PollInterval time.Duration

	// Stats receives the call's failure counters when set.
	Stats metrics.Registry
}

// Call models one consultation call screen as a state machine driven by
// user actions, transport events and a one second tick. A Call is bound
// to a single session; after POST_CALL a new Call is created for the
// next session.
type Call struct {
	transport    Transport
	fetcher      SessionFetcher
	tokens       TokenSource
	ui           UI
	clk          clock.Clock
	newTicker    func(d time.Duration) clock.Ticker
	pollInterval time.Duration

	mu           sync.Mutex
	state        ScreenState
	session      *Session
	durationSecs int
	waitingSecs  int
	remoteGone   bool

	closeOnce sync.Once
	done      chan struct{}

	statJoinFailures   *metrics.Counter
	statRejoinFailures *metrics.Counter
	statPollFailures   *metrics.Counter
}

// NewCall returns a call screen state machine in PRE_CALL.
func NewCall(cfg Config) (*Call, error) {
	switch {
	case cfg.Session == nil:
		return nil, errors.New("videocall: config missing session")
	case cfg.Transport == nil:
		return nil, errors.New("videocall: config missing transport")
	case cfg.Fetcher == nil:
		return nil, errors.New("videocall: config missing session fetcher")
	case cfg.Tokens == nil:
		return nil, errors.New("videocall: config missing token source")
	case cfg.UI == nil:
		return nil, errors.New("videocall: config missing ui")
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	newTicker := cfg.NewTicker
	if newTicker == nil {
		newTicker = clock.NewTicker
	}
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}
	c := &Call{
		transport:          cfg.Transport,
		fetcher:            cfg.Fetcher,
		tokens:             cfg.Tokens,
		ui:                 cfg.UI,
		clk:                clk,
		newTicker:          newTicker,
		pollInterval:       pollInterval,
		state:              StatePreCall,
		session:            cfg.Session,
		done:               make(chan struct{}),
		statJoinFailures:   metrics.NewCounter(),
		statRejoinFailures: metrics.NewCounter(),
		statPollFailures:   metrics.NewCounter(),
	}
	if cfg.Stats != nil {
		cfg.Stats.Add("join/failed", c.statJoinFailures)
		cfg.Stats.Add("rejoin/failed", c.statRejoinFailures)
		cfg.Stats.Add("poll/failed", c.statPollFailures)
	}
	return c, nil
}

// State returns the current screen state.
func (c *Call) State() ScreenState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Session returns the call's current view of the server session.
func (c *Call) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// DurationSeconds returns the total in call time, reconnections included.
func (c *Call) DurationSeconds() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.durationSecs
}

// Start runs the one second tick and the session status polling until
// Close or EndCall. The tick cadence comes from the configured ticker,
// so tests can drive it deterministically.
func (c *Call) Start() {
	conc.Go(func() {
		ticker := c.newTicker(time.Second)
		defer ticker.Stop()
		pollEvery := int(c.pollInterval / time.Second)
		if pollEvery < 1 {
			pollEvery = 1
		}
		sincePoll := 0
		for {
			select {
			case <-c.done:
				return
			case <-ticker.C():
				c.tick()
				sincePoll++
				if sincePoll >= pollEvery {
					sincePoll = 0
					c.pollOnce(context.Background())
				}
			}
		}
	})
}

// Close stops the tick and polling. It does not change the screen state;
// use EndCall to finish the call. Safe to call more than once.
func (c *Call) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// Join is the user's request to enter the call. From PRE_CALL it routes
// to consent capture when recording consent hasn't been given, rejects
// joins more than two minutes before the scheduled start unless the
// counterpart is already waiting, and otherwise joins the room and moves
// to WAITING. Expected failures surface through the UI, not the error.
func (c *Call) Join(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StatePreCall {
		return errors.Errorf("videocall: cannot join from %s", c.state)
	}
	c.joinLocked(ctx)
	return nil
}

func (c *Call) joinLocked(ctx context.Context) {
	if !c.session.RecordingConsent {
		c.setStateLocked(StateConsent)
		return
	}

	until := c.session.ScheduledStart.Sub(c.clk.Now())
	if until > joinWindow && c.session.Status != SessionStatusCounterpartWaiting {
		c.ui.Alert(alertTooEarly)
		return
	}

	token, err := c.tokens.Token(ctx)
	if err == nil {
		err = c.transport.Join(ctx, token)
	}
	if err != nil {
		c.statJoinFailures.Inc(1)
		golog.Warningf("videocall: join failed for session %s: %s", c.session.ID, err)
		c.ui.Alert(alertJoinFailed)
		// still PRE_CALL; the user may retry
		return
	}

	c.waitingSecs = 0
	c.setStateLocked(StateWaiting)
}

// GrantConsent records that the user granted recording consent, re-fetches
// the session for the server's current view, and re-attempts the join. If
// the refreshed session still reads no consent (the grant hasn't landed
// yet), the screen re-enters CONSENT.
func (c *Call) GrantConsent(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateConsent {
		return errors.Errorf("videocall: cannot grant consent from %s", c.state)
	}

	c.setStateLocked(StatePreCall)
	if sess, err := c.fetcher.FetchSession(ctx, c.session.ID); err != nil {
		golog.Warningf("videocall: session refresh after consent failed for %s: %s", c.session.ID, err)
	} else {
		c.session = sess
	}
	c.joinLocked(ctx)
	return nil
}

// EndCall finishes the call: the transport is left first, then the screen
// moves to POST_CALL and all timers and polling stop. Irreversible for
// this Call instance. No-op if the call already ended.
func (c *Call) EndCall(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StatePostCall {
		return
	}
	if err := c.transport.Leave(ctx); err != nil {
		golog.Warningf("videocall: leave failed for session %s: %s", c.session.ID, err)
	}
	c.setStateLocked(StatePostCall)
	c.Close()
}

// Reconnect is the user's manual retry while the transport is
// re-establishing its connection: leave, mint a fresh token, join again.
// Failure alerts and stays in RECONNECTING; on success the transport's
// connected event moves the screen back to IN_CALL.
func (c *Call) Reconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateReconnecting {
		return errors.Errorf("videocall: cannot reconnect from %s", c.state)
	}

	if err := c.transport.Leave(ctx); err != nil {
		golog.Warningf("videocall: leave before rejoin failed for session %s: %s", c.session.ID, err)
	}
	token, err := c.tokens.Token(ctx)
	if err == nil {
		err = c.transport.Join(ctx, token)
	}
	if err != nil {
		c.statRejoinFailures.Inc(1)
		golog.Warningf("videocall: rejoin failed for session %s: %s", c.session.ID, err)
		c.ui.Alert(alertRejoinFailed)
	}
	return nil
}

// HandleConnectionState feeds a transport connection state change into
// the machine: IN_CALL drops to RECONNECTING on "reconnecting" and
// RECONNECTING recovers to IN_CALL on "connected". All other
// combinations are ignored.
func (c *Call) HandleConnectionState(state ConnectionState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.state == StateInCall && state == ConnectionStateReconnecting:
		c.setStateLocked(StateReconnecting)
	case c.state == StateReconnecting && state == ConnectionStateConnected:
		c.setStateLocked(StateInCall)
	}
}

// HandleRemoteParticipants feeds a remote participant count change into
// the machine. The first remote participant moves WAITING to IN_CALL.
// While IN_CALL, a drop to zero shows the counterpart disconnected
// indicator without a state change; it clears when someone reappears.
func (c *Call) HandleRemoteParticipants(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state {
	case StateWaiting:
		if count > 0 {
			c.remoteGone = false
			c.setStateLocked(StateInCall)
		}
	case StateInCall:
		if count == 0 && !c.remoteGone {
			c.remoteGone = true
			c.ui.RemoteDisconnectedChanged(true)
		} else if count > 0 && c.remoteGone {
			c.remoteGone = false
			c.ui.RemoteDisconnectedChanged(false)
		}
	}
}

// tick advances the state's timer by one second: the countdown to the
// scheduled start in PRE_CALL, the waiting counter in WAITING, and the
// call duration in IN_CALL and RECONNECTING. The duration spans
// reconnections without resetting.
func (c *Call) tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state {
	case StatePreCall:
		until := int(c.session.ScheduledStart.Sub(c.clk.Now()) / time.Second)
		if until < 0 {
			until = 0
		}
		c.ui.CountdownTick(until)
	case StateWaiting:
		c.waitingSecs++
		c.ui.WaitingTick(c.waitingSecs)
	case StateInCall, StateReconnecting:
		c.durationSecs++
		c.ui.DurationTick(c.durationSecs)
	}
}

// pollOnce refreshes the session from the server. Failures are logged
// and counted; the call keeps its last good view.
func (c *Call) pollOnce(ctx context.Context) {
	c.mu.Lock()
	sessionID := c.session.ID
	c.mu.Unlock()

	sess, err := c.fetcher.FetchSession(ctx, sessionID)
	if err != nil {
		c.statPollFailures.Inc(1)
		golog.Warningf("videocall: session poll failed for %s: %s", sessionID, err)
		return
	}

	c.mu.Lock()
	c.session = sess
	c.mu.Unlock()
}

func (c *Call) setStateLocked(state ScreenState) {
	if c.state == state {
		return
	}
	c.state = state
	c.ui.StateChanged(state)
}
