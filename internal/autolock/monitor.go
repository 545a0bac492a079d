// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package autolock locks the vault after a period of user inactivity.
package autolock

import (
	"context"
	"sync"
	"time"
)

// Defaults used when no option overrides them.
const (
	DefaultTimeout  = 15 * time.Minute
	DefaultInterval = time.Minute
)

// Option configures a Monitor.
type Option func(*Monitor)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Monitor) { m.now = now }
}

// WithTimeout sets the initial idle timeout.
func WithTimeout(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithInterval sets how often the background loop checks for inactivity.
func WithInterval(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

// Monitor tracks the time of the last user activity and calls its lock
// function once the vault has been idle for longer than the timeout.
type Monitor struct {
	lock     func()
	now      func() time.Time
	interval time.Duration

	mu           sync.Mutex
	timeout      time.Duration
	lastActivity time.Time
	fired        bool
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

// NewMonitor creates an idle Monitor that calls lock on timeout. Activity is
// counted from construction. The background loop runs only after Start.
func NewMonitor(lock func(), opts ...Option) *Monitor {
	m := &Monitor{
		lock:     lock,
		now:      time.Now,
		interval: DefaultInterval,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.lastActivity = m.now()
	return m
}

// Touch records user activity now.
func (m *Monitor) Touch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastActivity = m.now()
	m.fired = false
}

// LastActivity returns the time of the last recorded activity.
func (m *Monitor) LastActivity() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastActivity
}

// SetTimeout changes the idle timeout. It takes effect at the next check.
// Non-positive values restore DefaultTimeout.
func (m *Monitor) SetTimeout(d time.Duration) {
	if d <= 0 {
		d = DefaultTimeout
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeout = d
}

// Timeout returns the current idle timeout.
func (m *Monitor) Timeout() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.timeout
}

// Check calls the lock function if more than Timeout has passed since the
// last activity. It fires at most once per idle period and reports whether
// it did.
func (m *Monitor) Check() bool {
	m.mu.Lock()
	idle := m.now().Sub(m.lastActivity)
	expired := !m.fired && idle > m.timeout
	if expired {
		m.fired = true
	}
	m.mu.Unlock()

	if expired {
		m.lock()
	}
	return expired
}

// Start stops any running loop and launches a goroutine that calls Check
// every interval until ctx is cancelled or Stop is called.
func (m *Monitor) Start(ctx context.Context) {
	m.Stop()

	m.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(m.interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				m.Check()
			}
		}
	}()
}

// Stop cancels the background loop and waits for it to exit. Safe to call
// when the loop is not running.
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}
