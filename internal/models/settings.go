// ABOUTME: Settings document for the training tracker.
// ABOUTME: Known keys fall back to defaults; unknown keys survive round-trips.
package models

import "encoding/json"

// Default settings values, used whenever a key is missing or the
// settings file is absent or unreadable.
const (
	DefaultTrainingTime = "09:00"
	DefaultTimezone     = "Africa/Lagos"
	DefaultTheme        = "light"
)

// Settings is the flat key-value configuration document.
type Settings struct {
	TrainingTime    string `json:"training_time"`
	Timezone        string `json:"timezone"`
	ReminderEnabled bool   `json:"reminder_enabled"`
	SoundEnabled    bool   `json:"sound_enabled"`
	Theme           string `json:"theme"`

	// extra holds keys this version does not know about, so that a
	// load/save cycle never drops them.
	extra map[string]json.RawMessage
}

// DefaultSettings returns the settings document with every key at its default.
func DefaultSettings() *Settings {
	return &Settings{
		TrainingTime:    DefaultTrainingTime,
		Timezone:        DefaultTimezone,
		ReminderEnabled: true,
		SoundEnabled:    true,
		Theme:           DefaultTheme,
	}
}

// knownKeys are the JSON keys mapped to struct fields.
var knownKeys = map[string]bool{
	"training_time":    true,
	"timezone":         true,
	"reminder_enabled": true,
	"sound_enabled":    true,
	"theme":            true,
}

// UnmarshalJSON merges the document over defaults and keeps unknown keys.
func (s *Settings) UnmarshalJSON(data []byte) error {
	*s = *DefaultSettings()

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	type alias Settings
	var a alias
	a = alias(*s)
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = Settings(a)

	for k, v := range raw {
		if knownKeys[k] {
			continue
		}
		if s.extra == nil {
			s.extra = make(map[string]json.RawMessage)
		}
		s.extra[k] = v
	}
	return nil
}

// MarshalJSON emits known fields plus any preserved unknown keys.
func (s *Settings) MarshalJSON() ([]byte, error) {
	doc := map[string]json.RawMessage{}
	for k, v := range s.extra {
		doc[k] = v
	}

	type alias Settings
	known, err := json.Marshal(alias(*s))
	if err != nil {
		return nil, err
	}
	var knownDoc map[string]json.RawMessage
	if err := json.Unmarshal(known, &knownDoc); err != nil {
		return nil, err
	}
	for k, v := range knownDoc {
		doc[k] = v
	}

	return json.Marshal(doc)
}

// Extra returns a preserved unknown key, if present.
func (s *Settings) Extra(key string) (json.RawMessage, bool) {
	v, ok := s.extra[key]
	return v, ok
}
