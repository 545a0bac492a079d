// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extension

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/secure-vault/internal/logger"
)

// Size limits of the browser native messaging protocol.
const (
	MaxInboundFrame  = 64 << 20
	MaxOutboundFrame = 1 << 20
)

// ReadFrame reads one native messaging frame: a 32-bit length in native
// byte order followed by that many bytes of JSON.
func ReadFrame(r io.Reader) ([]byte, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}

	n := binary.NativeEndian.Uint32(hdr[:])
	if n > MaxInboundFrame {
		return nil, fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, n)
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("read frame body: %w", err)
	}
	return buf, nil
}

// WriteFrame writes payload as one native messaging frame.
func WriteFrame(w io.Writer, payload []byte) error {
	if len(payload) > MaxOutboundFrame {
		return fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, len(payload))
	}

	var hdr [4]byte
	binary.NativeEndian.PutUint32(hdr[:], uint32(len(payload)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// NativeConn is a native messaging port over a reader and a writer, usually
// stdin and stdout. Writes are serialized.
type NativeConn struct {
	r  io.Reader
	mu sync.Mutex
	w  io.Writer
}

// NewNativeConn wraps r and w.
func NewNativeConn(r io.Reader, w io.Writer) *NativeConn {
	return &NativeConn{r: r, w: w}
}

// Read returns the next inbound message.
func (c *NativeConn) Read() (Message, error) {
	frame, err := ReadFrame(c.r)
	if err != nil {
		return Message{}, err
	}
	var msg Message
	if err = json.Unmarshal(frame, &msg); err != nil {
		return Message{}, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}
	return msg, nil
}

// Write sends v as one JSON frame.
func (c *NativeConn) Write(v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return WriteFrame(c.w, payload)
}

// Sink returns a Sink writing broadcasts to the connection.
func (c *NativeConn) Sink() Sink {
	return func(m Message) error { return c.Write(m) }
}

// Serve relays messages from conn to b until the browser closes the port
// or ctx is cancelled. Responses to requests are written back in order.
// Malformed messages are logged and skipped.
func Serve(ctx context.Context, conn *NativeConn, b *Background) error {
	log := logger.FromContext(ctx)

	for {
		if ctx.Err() != nil {
			return nil
		}

		msg, err := conn.Read()
		if errors.Is(err, io.EOF) {
			log.Info().Str("func", "extension.Serve").Msg("native port closed")
			return nil
		}
		if errors.Is(err, ErrMalformedMessage) {
			log.Warn().Err(err).Str("func", "extension.Serve").Msg("skipping malformed message")
			continue
		}
		if err != nil {
			return err
		}

		body, err := b.Send(ctx, msg)
		if errors.Is(err, ErrBackgroundStopped) {
			return nil
		}
		if !msg.Type.IsRequest() {
			if err != nil {
				log.Err(err).Str("func", "extension.Serve").Str("type", string(msg.Type)).Msg("message failed")
			}
			continue
		}

		if err != nil {
			body = Result{Error: err.Error()}
		}
		if err = conn.Write(body); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
}
