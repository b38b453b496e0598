package network

import (
	"context"
	"encoding/json"
	"net"
	"sync"
	"time"

	"elevsim/elevator"
	"elevsim/elevio"
	"elevsim/logger"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/xtaci/kcp-go"
)

func configureSession(sess *kcp.UDPSession) {
	sess.SetStreamMode(true)
	sess.SetNoDelay(1, flushInterval, 2, 1)
}

// Publisher streams cab states to a watcher over a KCP session.
type Publisher struct {
	sess     *kcp.UDPSession
	enc      *json.Encoder
	log      *zerolog.Logger
	lastDoor elevio.DoorState
}

func Dial(address string) (*Publisher, error) {
	sess, err := kcp.DialWithOptions(address, nil, 0, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "dial feed %s", address)
	}
	configureSession(sess)

	log := logger.Component("feed")
	log.Info().Str("address", address).Msg("Publishing state feed")
	return &Publisher{sess: sess, enc: json.NewEncoder(sess), log: log}, nil
}

// Observe sends the state, followed by a stop message on the tick the door
// reaches OPEN.
func (p *Publisher) Observe(tick int, state elevator.State) error {
	if err := p.send(MsgState{Type: TypeState, Tick: tick, State: state}); err != nil {
		return err
	}
	if stop, ok := p.stopFor(tick, state); ok {
		return p.send(stop)
	}
	return nil
}

func (p *Publisher) stopFor(tick int, state elevator.State) (MsgStop, bool) {
	opened := state.Door == elevio.DS_Open && p.lastDoor != elevio.DS_Open
	p.lastDoor = state.Door
	return MsgStop{Type: TypeStop, Tick: tick, Floor: state.Floor}, opened
}

func (p *Publisher) send(msg Message) error {
	if err := p.enc.Encode(msg); err != nil {
		return errors.Wrapf(err, "send %s message", msg.MessageType())
	}
	return nil
}

func (p *Publisher) Close() error {
	time.Sleep(lingerDuration)
	return p.sess.Close()
}

// Watcher accepts feed sessions and decodes their messages.
type Watcher struct {
	ln  *kcp.Listener
	log *zerolog.Logger

	mu        sync.Mutex
	closeOnce sync.Once
	closeErr  error
}

func Listen(address string) (*Watcher, error) {
	ln, err := kcp.ListenWithOptions(address, nil, 0, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "listen for feed on %s", address)
	}
	return &Watcher{ln: ln, log: logger.Component("feed")}, nil
}

func (w *Watcher) Addr() net.Addr {
	return w.ln.Addr()
}

// Close stops the listener. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		w.closeErr = w.ln.Close()
	})
	return w.closeErr
}

// Serve accepts sessions until ctx is cancelled or accepting fails. The
// listener is closed when Serve returns. handler is never called from two
// sessions at once.
func (w *Watcher) Serve(ctx context.Context, handler func(Message)) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		w.Close()
	}()

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		sess, err := w.ln.AcceptKCP()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, "accept feed session")
		}
		configureSession(sess)
		w.log.Info().Str("remote", sess.RemoteAddr().String()).Msg("Feed session accepted")

		wg.Add(1)
		go func() {
			defer wg.Done()
			w.handleSession(ctx, sess, handler)
		}()
	}
}

func (w *Watcher) handleSession(ctx context.Context, sess *kcp.UDPSession, handler func(Message)) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		sess.Close()
	}()

	dec := json.NewDecoder(sess)
	for {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if ctx.Err() == nil {
				w.log.Debug().Err(err).Str("remote", sess.RemoteAddr().String()).Msg("Feed session ended")
			}
			return
		}
		msg, err := decodeMessage(raw)
		if err != nil {
			w.log.Warn().Err(err).Msg("Skipping feed message")
			continue
		}
		w.mu.Lock()
		handler(msg)
		w.mu.Unlock()
	}
}

// Watch listens on address and hands every message to handler until ctx
// is cancelled.
func Watch(ctx context.Context, address string, handler func(Message)) error {
	w, err := Listen(address)
	if err != nil {
		return err
	}
	return w.Serve(ctx, handler)
}
