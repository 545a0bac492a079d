// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extension

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/secure-vault/models"
)

// SettingsStore persists extension settings and the save blacklist.
type SettingsStore interface {
	Settings() (models.Settings, error)
	SaveSettings(s models.Settings) error
	Blacklist() ([]string, error)
	SetBlacklist(hosts []string) error
	IsBlacklisted(hostname string) (bool, error)
}

// settingsDocument is the on-disk layout.
type settingsDocument struct {
	Settings  models.Settings `yaml:"settings"`
	Blacklist []string        `yaml:"blacklist"`
}

// fileSettingsStore keeps settingsDocument in a YAML file.
type fileSettingsStore struct {
	path string
	mu   sync.Mutex
}

// NewFileSettingsStore returns a SettingsStore backed by the YAML file at
// path. A missing file reads as defaults and is created on first load.
func NewFileSettingsStore(path string) SettingsStore {
	return &fileSettingsStore{path: path}
}

func (s *fileSettingsStore) Settings() (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	return doc.Settings, err
}

func (s *fileSettingsStore) SaveSettings(settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.Settings = settings
	return s.write(doc)
}

func (s *fileSettingsStore) Blacklist() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	return doc.Blacklist, err
}

func (s *fileSettingsStore) SetBlacklist(hosts []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.Blacklist = make([]string, 0, len(hosts))
	for _, h := range hosts {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" && !slices.Contains(doc.Blacklist, h) {
			doc.Blacklist = append(doc.Blacklist, h)
		}
	}
	return s.write(doc)
}

func (s *fileSettingsStore) IsBlacklisted(hostname string) (bool, error) {
	hosts, err := s.Blacklist()
	if err != nil {
		return false, err
	}
	return slices.Contains(hosts, strings.ToLower(hostname)), nil
}

// load reads the document, creating it with defaults when missing. mu must
// be held.
func (s *fileSettingsStore) load() (settingsDocument, error) {
	doc := settingsDocument{Settings: models.DefaultSettings(), Blacklist: []string{}}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, s.write(doc)
	}
	if err != nil {
		return doc, fmt.Errorf("read settings: %w", err)
	}

	if err = yaml.Unmarshal(data, &doc); err != nil {
		return settingsDocument{Settings: models.DefaultSettings(), Blacklist: []string{}},
			fmt.Errorf("parse settings %s: %w", s.path, err)
	}
	if doc.Settings.AutoLockMinutes <= 0 {
		doc.Settings.AutoLockMinutes = models.DefaultAutoLockMinutes
	}
	if doc.Blacklist == nil {
		doc.Blacklist = []string{}
	}
	return doc, nil
}

// write replaces the file atomically. mu must be held.
func (s *fileSettingsStore) write(doc settingsDocument) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}
