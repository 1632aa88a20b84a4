package config

import (
	"reflect"
	"testing"
)

func TestParseButtonOrder(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "default trailing order",
			input: "minimize,maximize,close",
			want:  []string{"minimize", "maximize", "close"},
		},
		{
			name:  "single button",
			input: "close",
			want:  []string{"close"},
		},
		{
			name:  "whitespace and case are forgiven",
			input: " Minimize , CLOSE ",
			want:  []string{"minimize", "close"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "blank entries are skipped",
			input: "minimize,,close",
			want:  []string{"minimize", "close"},
		},
		{
			name:    "unknown button",
			input:   "minimize,help",
			wantErr: true,
		},
		{
			name:    "duplicate button",
			input:   "close,close",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseButtonOrder(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseButtonOrder(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseButtonOrder(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*UserConfig)
		wantErrors   int
		wantWarnings int
	}{
		{
			name:   "defaults are clean",
			mutate: func(cfg *UserConfig) {},
		},
		{
			name: "unknown border style warns",
			mutate: func(cfg *UserConfig) {
				cfg.Appearance.BorderStyle = "wavy"
			},
			wantWarnings: 1,
		},
		{
			name: "bad trailing order errors",
			mutate: func(cfg *UserConfig) {
				cfg.Frame.ButtonOrderTrailing = "minimize,quit"
			},
			wantErrors: 1,
		},
		{
			name: "button on both edges errors",
			mutate: func(cfg *UserConfig) {
				cfg.Frame.ButtonOrderLeading = "close"
				cfg.Frame.ButtonOrderTrailing = "minimize,close"
			},
			wantErrors: 1,
		},
		{
			name: "negative overlay height errors",
			mutate: func(cfg *UserConfig) {
				cfg.Frame.OverlayHeight = -2
			},
			wantErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			result := ValidateConfig(cfg)
			if len(result.Errors) != tt.wantErrors {
				t.Errorf("got %d errors %v, want %d", len(result.Errors), result.Errors, tt.wantErrors)
			}
			if len(result.Warnings) != tt.wantWarnings {
				t.Errorf("got %d warnings %v, want %d", len(result.Warnings), result.Warnings, tt.wantWarnings)
			}
		})
	}
}

func TestKeybindRegistry(t *testing.T) {
	cfg := DefaultConfig()
	registry := NewKeybindRegistry(&cfg.Keybindings)

	action, ok := registry.ActionForKey("n")
	if !ok || action != "new_window" {
		t.Errorf("ActionForKey(\"n\") = %q, %v, want \"new_window\", true", action, ok)
	}

	if _, ok := registry.ActionForKey("ctrl+alt+del"); ok {
		t.Error("ActionForKey returned a binding for an unbound key")
	}

	if keys := registry.GetKeysForDisplay("close_window"); keys != "w, x" {
		t.Errorf("GetKeysForDisplay(\"close_window\") = %q, want \"w, x\"", keys)
	}
}
