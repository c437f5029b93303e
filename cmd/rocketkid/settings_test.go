package main

import (
	"testing"

	"github.com/vovakirdan/rocket-kid/internal/config"
)

func TestApplySetting(t *testing.T) {
	tests := []struct {
		key, value string
		check      func(config.Settings) bool
		wantErr    bool
	}{
		{"language", "PT", func(s config.Settings) bool { return s.Language == config.LanguagePT }, false},
		{"language", "de", nil, true},
		{"volume", "0", func(s config.Settings) bool { return s.Volume == 0 }, false},
		{"volume", "6", nil, true},
		{"volume", "loud", nil, true},
		{"jet", "false", func(s config.Settings) bool { return !s.Sounds.Jet }, false},
		{"auto_restart", "true", func(s config.Settings) bool { return s.AutoRestart }, false},
		{"shooting", "0", func(s config.Settings) bool { return !s.Shooting }, false},
		{"shooting", "maybe", nil, true},
		{"gravity", "1", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			s := config.DefaultSettings()
			err := applySetting(&s, tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applySetting() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil && !tt.check(s) {
				t.Errorf("settings after apply = %+v", s)
			}
		})
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"localhost:2222": "2222",
		"[::]:22":        "22",
		"2222":           "2222",
	}
	for in, want := range tests {
		if got := portOf(in); got != want {
			t.Errorf("portOf(%q) = %q, expected %q", in, got, want)
		}
	}
}
