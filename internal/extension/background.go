// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package extension is the background side of the browser integration. A
// single goroutine (the Background actor) owns all message handling; the app
// side and the background share state only through SessionStorage.
package extension

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/secure-vault/internal/autolock"
	"github.com/MKhiriev/secure-vault/internal/generator"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/vault"
	"github.com/MKhiriev/secure-vault/models"
)

// badgePending is shown while credentials wait to be saved.
const badgePending = "1"

// Sink delivers outbound messages to every listener (popup, content script).
type Sink func(Message) error

// Snapshot is what the app side hands over after a successful unlock.
type Snapshot struct {
	UID     string
	Salt    string
	Entries []models.DecryptedEntry
}

// Vault is the app side the background delegates to for requests that need
// the master key.
type Vault interface {
	Unlock(ctx context.Context, req UnlockRequest) (Snapshot, error)
	AddEntry(ctx context.Context, fields models.EntryFields, tags []string) (models.DecryptedEntry, error)
	Entries() ([]models.DecryptedEntry, error)
	Lock()
}

// BackgroundOption configures a Background.
type BackgroundOption func(*Background)

// WithVault attaches the app side.
func WithVault(v Vault) BackgroundOption {
	return func(b *Background) { b.vault = v }
}

// WithSink sets where outbound messages go.
func WithSink(s Sink) BackgroundOption {
	return func(b *Background) { b.out = s }
}

// WithBackgroundClock replaces time.Now for hand-off timestamps.
func WithBackgroundClock(now func() time.Time) BackgroundOption {
	return func(b *Background) { b.now = now }
}

// WithMonitorOptions passes options to the auto-lock monitor. The timeout
// from the persisted settings is applied before them.
func WithMonitorOptions(opts ...autolock.Option) BackgroundOption {
	return func(b *Background) { b.monitorOpts = append(b.monitorOpts, opts...) }
}

type reply struct {
	body any
	err  error
}

type envelope struct {
	msg   Message
	reply chan reply
}

// Background is the message-handling actor. Create it with NewBackground,
// drive it with Run and talk to it with Send.
type Background struct {
	storage  SessionStorage
	settings SettingsStore
	gen      *generator.Generator
	vault    Vault
	out      Sink
	now      func() time.Time
	log      *logger.Logger

	monitorOpts []autolock.Option
	monitor     *autolock.Monitor

	mailbox chan envelope
	done    chan struct{}
}

// NewBackground builds a Background. The auto-lock timeout is read from
// settings; if they cannot be read the default is used.
func NewBackground(storage SessionStorage, settings SettingsStore, gen *generator.Generator, log *logger.Logger, opts ...BackgroundOption) *Background {
	b := &Background{
		storage:  storage,
		settings: settings,
		gen:      gen,
		now:      time.Now,
		log:      log,
		mailbox:  make(chan envelope),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}

	timeout := autolock.DefaultTimeout
	if s, err := settings.Settings(); err != nil {
		log.Err(err).Str("func", "extension.NewBackground").Msg("failed to load settings, using defaults")
	} else {
		timeout = s.AutoLockTimeout()
	}

	monitorOpts := append([]autolock.Option{autolock.WithTimeout(timeout)}, b.monitorOpts...)
	b.monitor = autolock.NewMonitor(b.autoLock, monitorOpts...)
	return b
}

// Monitor exposes the auto-lock monitor.
func (b *Background) Monitor() *autolock.Monitor {
	return b.monitor
}

// Run processes messages until ctx is cancelled. It also runs the auto-lock
// loop. Run must be called once.
func (b *Background) Run(ctx context.Context) error {
	b.monitor.Start(ctx)
	defer b.monitor.Stop()
	defer close(b.done)

	b.log.Info().Str("func", "extension.Background.Run").Msg("background started")
	for {
		select {
		case <-ctx.Done():
			b.log.Info().Str("func", "extension.Background.Run").Msg("background stopped")
			return nil
		case env := <-b.mailbox:
			body, err := b.handle(ctx, env.msg)
			if env.reply != nil {
				env.reply <- reply{body: body, err: err}
			} else if err != nil {
				b.log.Err(err).Str("func", "extension.Background.Run").Str("type", string(env.msg.Type)).Msg("message failed")
			}
		}
	}
}

// Send delivers msg to the actor. For request types it waits for and returns
// the response; for the rest it returns once the message is queued.
func (b *Background) Send(ctx context.Context, msg Message) (any, error) {
	env := envelope{msg: msg}
	if msg.Type.IsRequest() {
		env.reply = make(chan reply, 1)
	}

	select {
	case b.mailbox <- env:
	case <-b.done:
		return nil, ErrBackgroundStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if env.reply == nil {
		return nil, nil
	}

	select {
	case r := <-env.reply:
		return r.body, r.err
	case <-b.done:
		return nil, ErrBackgroundStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// autoLock is the monitor callback. It runs on the monitor goroutine and
// hands the work to the actor.
func (b *Background) autoLock() {
	select {
	case b.mailbox <- envelope{msg: Message{Type: TypeLock}}:
	case <-b.done:
	}
}

func (b *Background) handle(ctx context.Context, msg Message) (any, error) {
	switch msg.Type {
	case TypeSaveCredentials:
		return nil, b.saveCredentials(msg)
	case TypeSettingsUpdated:
		return nil, b.settingsUpdated(msg)
	case TypeUserActivity:
		b.monitor.Touch()
		return nil, nil
	case TypeCheckAuthStatus:
		return ReadAuthStatus(b.storage), nil
	case TypeGetCredentialsForSite:
		return b.credentialsForSite(msg.URL), nil
	case TypeGeneratePassword:
		return nil, b.generatePassword()
	case TypeFillCredentials:
		return nil, b.broadcast(msg)
	case TypeUnlock:
		return b.unlock(ctx, msg)
	case TypeSavePending:
		return b.savePending(ctx)
	case TypeLock:
		return nil, b.lock()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type)
	}
}

func (b *Background) saveCredentials(msg Message) error {
	var c SavedCredentials
	if err := msg.DecodeData(&c); err != nil {
		return err
	}
	if c.Hostname == "" {
		c.Hostname = vault.Hostname(c.URL)
	}

	settings, err := b.settings.Settings()
	if err != nil {
		return err
	}
	if !settings.AutoSave {
		return nil
	}

	blacklisted, err := b.settings.IsBlacklisted(c.Hostname)
	if err != nil {
		return err
	}
	if blacklisted {
		b.log.Debug().Str("func", "extension.Background.saveCredentials").Str("host", c.Hostname).Msg("site is blacklisted, ignoring")
		return nil
	}

	if err = PutPendingCredentials(b.storage, c, b.now()); err != nil {
		return err
	}
	SetBadge(b.storage, badgePending)
	return nil
}

func (b *Background) settingsUpdated(msg Message) error {
	if msg.Settings == nil {
		return fmt.Errorf("%w: %s has no settings", ErrMalformedMessage, msg.Type)
	}
	s := *msg.Settings
	if s.AutoLockMinutes > 0 {
		b.monitor.SetTimeout(s.AutoLockTimeout())
	} else {
		s.AutoLockMinutes = int(b.monitor.Timeout() / time.Minute)
	}
	return b.settings.SaveSettings(s)
}

func (b *Background) credentialsForSite(siteURL string) SiteCredentials {
	if vault.Hostname(siteURL) == "" {
		return SiteCredentials{Passwords: []models.DecryptedEntry{}, Error: "invalid url"}
	}

	entries, ok, err := CachedEntries(b.storage)
	if err != nil {
		return SiteCredentials{Passwords: []models.DecryptedEntry{}, Error: err.Error()}
	}
	if !ok {
		return SiteCredentials{Passwords: []models.DecryptedEntry{}}
	}

	matching := make([]models.DecryptedEntry, 0)
	for _, e := range entries {
		if vault.MatchesSite(e.URL, siteURL) {
			matching = append(matching, e)
		}
	}
	return SiteCredentials{Success: true, Passwords: matching}
}

func (b *Background) generatePassword() error {
	pw, err := b.gen.Generate(generator.DefaultOptions())
	if err != nil {
		return err
	}
	return b.broadcast(Message{Type: TypeInsertGeneratedPassword, Password: pw})
}

func (b *Background) unlock(ctx context.Context, msg Message) (any, error) {
	if b.vault == nil {
		return nil, ErrNoVault
	}
	var req UnlockRequest
	if err := msg.DecodeData(&req); err != nil {
		return nil, err
	}

	snap, err := b.vault.Unlock(ctx, req)
	if err != nil {
		return Result{Error: userMessage(err)}, nil
	}
	if err = PublishSession(b.storage, snap.UID, snap.Salt, snap.Entries); err != nil {
		return nil, err
	}
	b.monitor.Touch()
	return Result{Success: true, UserID: snap.UID}, nil
}

func (b *Background) savePending(ctx context.Context) (any, error) {
	if b.vault == nil {
		return nil, ErrNoVault
	}

	p, ok, err := ConsumePendingCredentials(b.storage)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Result{Error: "no pending credentials"}, nil
	}

	entry, err := b.vault.AddEntry(ctx, p.EntryFields(), nil)
	if err != nil {
		return Result{Error: userMessage(err)}, nil
	}

	entries, err := b.vault.Entries()
	if err == nil {
		err = PublishEntries(b.storage, entries)
	}
	if err != nil {
		b.log.Err(err).Str("func", "extension.Background.savePending").Msg("failed to refresh cached entries")
	}
	return Result{Success: true, ID: entry.ID}, nil
}

// lock clears the ephemeral storage, locks the app side and tells every
// listener.
func (b *Background) lock() error {
	b.storage.Clear()
	if b.vault != nil {
		b.vault.Lock()
	}
	b.log.Info().Str("func", "extension.Background.lock").Msg("vault locked")
	return b.broadcast(Message{Type: TypeVaultLocked})
}

func (b *Background) broadcast(msg Message) error {
	if b.out == nil {
		return nil
	}
	if err := b.out(msg); err != nil {
		return fmt.Errorf("broadcast %s: %w", msg.Type, err)
	}
	return nil
}

// userMessage turns an app-side error into text for the popup. Details of
// crypto failures are not exposed.
func userMessage(err error) string {
	switch {
	case errors.Is(err, vault.ErrWrongMasterPassword):
		return "Invalid master password"
	case errors.Is(err, vault.ErrStoreUnavailable):
		return "Vault storage is unavailable. Please try again later."
	case errors.Is(err, vault.ErrVaultLocked):
		return "Please unlock your vault first"
	default:
		return err.Error()
	}
}
