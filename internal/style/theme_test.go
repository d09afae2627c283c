package style

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestTheme_Validate(t *testing.T) {
	tests := map[string]struct {
		theme  Theme
		expErr bool
	}{
		"empty theme": {
			theme: Theme{},
		},
		"valid styles": {
			theme: Theme{Styles: map[string]string{
				"room_name": "cyan+bright",
				"system":    "white:blue",
			}},
		},
		"unknown tag": {
			theme: Theme{Styles: map[string]string{
				"bogus": "red",
			}},
			expErr: true,
		},
		"unknown color": {
			theme: Theme{Styles: map[string]string{
				"error": "crimson",
			}},
			expErr: true,
		},
		"unknown attribute": {
			theme: Theme{Styles: map[string]string{
				"error": "red+blink",
			}},
			expErr: true,
		},
		"empty spec": {
			theme: Theme{Styles: map[string]string{
				"error": "",
			}},
			expErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.theme.Validate()
			testutil.AssertEqual(t, "error", err != nil, tt.expErr)
		})
	}
}

func TestTheme_Render(t *testing.T) {
	theme := Default()

	tests := map[string]struct {
		event Event
		exp   string
	}{
		"plain fg": {
			event: Event{Text: "You take the key.", Tag: Success},
			exp:   "\x1b[32;1mYou take the key.\x1b[0m",
		},
		"fg with bg": {
			event: Event{Text: "note", Tag: System},
			exp:   "\x1b[37;44mnote\x1b[0m",
		},
		"dim attribute": {
			event: Event{Text: "psst", Tag: Hint},
			exp:   "\x1b[35;2mpsst\x1b[0m",
		},
		"unstyled tag passes through": {
			event: Event{Text: "raw", Tag: Tag("unknown")},
			exp:   "raw",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "rendered", theme.Render(tt.event), tt.exp)
		})
	}
}

func TestBuiltinThemesValidate(t *testing.T) {
	for name, theme := range map[string]*Theme{"default": Default(), "spooky": Spooky()} {
		if err := theme.Validate(); err != nil {
			t.Errorf("theme %q: unexpected error: %v", name, err)
		}
		testutil.AssertEqual(t, "style count", len(theme.Styles), len(Tags()))
	}
}
