package theme

import (
	"os"
	"path/filepath"
	"testing"

	tint "github.com/lrstanley/bubbletint/v2"
)

func writeTheme(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCustomThemeFile(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		body        string
		wantErr     bool
		wantID      string
		wantDisplay string
	}{
		{
			name: "complete theme",
			file: "nordish.json",
			body: `{
				"id": "nordish",
				"display_name": "Nordish",
				"dark": true,
				"fg": "#d8dee9",
				"bg": "#2e3440",
				"black": "#3b4252",
				"red": "#bf616a",
				"green": "#a3be8c",
				"yellow": "#ebcb8b",
				"blue": "#81a1c1",
				"purple": "#b48ead",
				"cyan": "#88c0d0",
				"white": "#e5e9f0",
				"bright_black": "#4c566a",
				"bright_cyan": "#8fbcbb"
			}`,
			wantID:      "nordish",
			wantDisplay: "Nordish",
		},
		{
			name:        "minimal theme gets defaults",
			file:        "bare.json",
			body:        `{"id": "bare", "bg": "#101010"}`,
			wantID:      "bare",
			wantDisplay: "bare",
		},
		{
			name:        "id derived from filename",
			file:        "Paper-Light.json",
			body:        `{"fg": "#303030", "bg": "#fafafa"}`,
			wantID:      "paper-light",
			wantDisplay: "paper-light",
		},
		{
			name:    "broken json",
			file:    "broken.json",
			body:    `{"id": "broken", "fg":`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTheme(t, t.TempDir(), tt.file, tt.body)

			got, err := LoadCustomThemeFile(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadCustomThemeFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", got.ID, tt.wantID)
			}
			if got.DisplayName != tt.wantDisplay {
				t.Errorf("DisplayName = %q, want %q", got.DisplayName, tt.wantDisplay)
			}

			// Every slot must come back non-nil, whether from the file or
			// from the defaults.
			for name, c := range map[string]*tint.Color{
				"Fg": got.Fg, "Bg": got.Bg, "Cursor": got.Cursor,
				"Black": got.Black, "Red": got.Red, "Green": got.Green,
				"Yellow": got.Yellow, "Blue": got.Blue, "Purple": got.Purple,
				"Cyan": got.Cyan, "White": got.White,
				"BrightBlack": got.BrightBlack, "BrightRed": got.BrightRed,
				"BrightGreen": got.BrightGreen, "BrightYellow": got.BrightYellow,
				"BrightBlue": got.BrightBlue, "BrightPurple": got.BrightPurple,
				"BrightCyan": got.BrightCyan, "BrightWhite": got.BrightWhite,
			} {
				if c == nil {
					t.Errorf("%s is nil after load", name)
				}
			}
		})
	}
}

func TestLoadCustomThemeFileKeepsExplicitBrights(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "contrast.json", `{
		"id": "contrast",
		"black": "#202020",
		"bright_black": "#909090"
	}`)

	got, err := LoadCustomThemeFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.BrightBlack.R == got.Black.R {
		t.Error("explicit bright_black was overwritten by the black fallback")
	}
}

func TestFillDefaultsCopiesInsteadOfAliasing(t *testing.T) {
	theme := &tint.Tint{Red: tint.FromHex("#bf616a")}
	fillDefaults(theme)

	if theme.BrightRed == theme.Red {
		t.Fatal("BrightRed aliases Red; mutating one would change both")
	}
	theme.BrightRed.R = 0
	if theme.Red.R == 0 {
		t.Error("mutating BrightRed leaked into Red")
	}
	if theme.Cursor == theme.Fg {
		t.Error("Cursor aliases Fg")
	}
}

func TestLoadCustomThemesSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "good.json", `{"id": "good-sash-theme", "bg": "#000000"}`)
	writeTheme(t, dir, "bad.json", `{{{`)
	writeTheme(t, dir, "notes.txt", "not a theme at all")
	if err := os.Mkdir(filepath.Join(dir, "subdir.json"), 0750); err != nil {
		t.Fatal(err)
	}

	tint.NewDefaultRegistry()
	loaded, err := LoadCustomThemes(dir)
	if err != nil {
		t.Fatalf("LoadCustomThemes() error = %v", err)
	}
	if len(loaded) != 1 || loaded[0] != "good-sash-theme" {
		t.Fatalf("loaded = %v, want only the good theme", loaded)
	}

	var found bool
	for _, id := range tint.TintIDs() {
		if id == "good-sash-theme" {
			found = true
		}
	}
	if !found {
		t.Error("loaded theme missing from the registry")
	}
}

func TestLoadCustomThemesEmptyDir(t *testing.T) {
	loaded, err := LoadCustomThemes(t.TempDir())
	if err != nil {
		t.Fatalf("LoadCustomThemes() error = %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("loaded = %v, want none", loaded)
	}
}

func TestLoadCustomThemesMissingDir(t *testing.T) {
	if _, err := LoadCustomThemes(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
