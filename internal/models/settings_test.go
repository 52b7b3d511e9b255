// ABOUTME: Tests for the settings document.
// ABOUTME: Covers defaulting, merging, and unknown-key preservation.
package models

import (
	"encoding/json"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.TrainingTime != "09:00" {
		t.Errorf("expected default training time 09:00, got %q", s.TrainingTime)
	}
	if s.Timezone != "Africa/Lagos" {
		t.Errorf("expected default timezone Africa/Lagos, got %q", s.Timezone)
	}
	if !s.ReminderEnabled || !s.SoundEnabled {
		t.Error("expected reminders and sound enabled by default")
	}
	if s.Theme != "light" {
		t.Errorf("expected default theme light, got %q", s.Theme)
	}
}

func TestUnmarshalMergesOverDefaults(t *testing.T) {
	var s Settings
	if err := json.Unmarshal([]byte(`{"theme": "dark"}`), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if s.Theme != "dark" {
		t.Errorf("expected theme dark, got %q", s.Theme)
	}
	if s.TrainingTime != DefaultTrainingTime {
		t.Errorf("expected missing key to default, got %q", s.TrainingTime)
	}
	if !s.ReminderEnabled {
		t.Error("expected missing reminder_enabled to default to true")
	}
}

func TestUnmarshalEmptyDocument(t *testing.T) {
	var s Settings
	if err := json.Unmarshal([]byte(`{}`), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	def := DefaultSettings()
	if s.TrainingTime != def.TrainingTime || s.Timezone != def.Timezone || s.Theme != def.Theme {
		t.Error("expected empty document to yield defaults")
	}
}

func TestUnknownKeysSurviveRoundTrip(t *testing.T) {
	doc := `{"theme": "dark", "future_flag": {"nested": true}, "training_time": "18:30"}`

	var s Settings
	if err := json.Unmarshal([]byte(doc), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if _, ok := s.Extra("future_flag"); !ok {
		t.Fatal("expected unknown key to be preserved")
	}

	out, err := json.Marshal(&s)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var round map[string]json.RawMessage
	if err := json.Unmarshal(out, &round); err != nil {
		t.Fatalf("round-trip unmarshal failed: %v", err)
	}
	if _, ok := round["future_flag"]; !ok {
		t.Error("expected unknown key in marshaled output")
	}
	if string(round["training_time"]) != `"18:30"` {
		t.Errorf("expected training_time preserved, got %s", round["training_time"])
	}
	if string(round["theme"]) != `"dark"` {
		t.Errorf("expected theme preserved, got %s", round["theme"])
	}
}
