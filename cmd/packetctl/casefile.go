package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/linesmerrill/dispute-evidence-api/models"
	"github.com/linesmerrill/dispute-evidence-api/session"
)

// loadCase reads a YAML case file
func loadCase(path string) (models.DisputeCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.DisputeCase{}, fmt.Errorf("read case file: %w", err)
	}
	var c models.DisputeCase
	if err := yaml.Unmarshal(data, &c); err != nil {
		return models.DisputeCase{}, fmt.Errorf("parse case file %s: %w", path, err)
	}
	return c, nil
}

// saveCase writes c as YAML
func saveCase(path string, c models.DisputeCase) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// parseAttach splits an --attach value of the form path[=note]
func parseAttach(value string) (path, note string) {
	path, note, _ = strings.Cut(value, "=")
	return strings.TrimSpace(path), strings.TrimSpace(note)
}

// openSession loads the case and the attachment files into a new session
func openSession(casePath string, attach []string) (*session.Session, error) {
	c, err := loadCase(casePath)
	if err != nil {
		return nil, err
	}
	sess := session.New(c)
	for _, value := range attach {
		path, note := parseAttach(value)
		if path == "" {
			return nil, errors.New("empty --attach path")
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read attachment: %w", err)
		}
		sess.AddAttachment(filepath.Base(path), content, note)
	}
	return sess, nil
}
