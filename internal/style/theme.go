package style

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// Theme maps output tags to color specs. Specs have the form
// "fg[+attr...][:bg]", e.g. "cyan+bright", "white:blue", "magenta+dim".
// Themes are loadable as storage assets; Default and Spooky are built in.
type Theme struct {
	Styles map[string]string `json:"styles"`
}

var colorCodes = map[string]int{
	"black":   30,
	"red":     31,
	"green":   32,
	"yellow":  33,
	"blue":    34,
	"magenta": 35,
	"cyan":    36,
	"white":   37,
}

var attrCodes = map[string]int{
	"bright": 1,
	"dim":    2,
}

// Validate satisfies storage.ValidatingSpec.
func (t *Theme) Validate() error {
	el := errors.NewErrorList()

	known := make(map[string]bool, len(Tags()))
	for _, tag := range Tags() {
		known[string(tag)] = true
	}

	for tag, spec := range t.Styles {
		if !known[tag] {
			el.Add(fmt.Errorf("unknown style tag %q", tag))
		}
		if _, err := parseSpec(spec); err != nil {
			el.Add(fmt.Errorf("style %q: %w", tag, err))
		}
	}

	return el.Err()
}

// Render wraps the event text in the ANSI sequence for its tag. Events with
// no configured style render as plain text.
func (t *Theme) Render(e Event) string {
	spec, ok := t.Styles[string(e.Tag)]
	if !ok {
		return e.Text
	}

	codes, err := parseSpec(spec)
	if err != nil {
		return e.Text
	}

	parts := make([]string, 0, len(codes))
	for _, c := range codes {
		parts = append(parts, fmt.Sprintf("%d", c))
	}
	return fmt.Sprintf("\x1b[%sm%s\x1b[0m", strings.Join(parts, ";"), e.Text)
}

// parseSpec converts a "fg[+attr...][:bg]" spec into ANSI SGR codes.
func parseSpec(spec string) ([]int, error) {
	if spec == "" {
		return nil, fmt.Errorf("empty color spec")
	}

	fgPart := spec
	bgPart := ""
	if i := strings.Index(spec, ":"); i >= 0 {
		fgPart, bgPart = spec[:i], spec[i+1:]
	}

	var codes []int
	fields := strings.Split(fgPart, "+")
	fg, ok := colorCodes[fields[0]]
	if !ok {
		return nil, fmt.Errorf("unknown color %q", fields[0])
	}
	codes = append(codes, fg)

	for _, attr := range fields[1:] {
		code, ok := attrCodes[attr]
		if !ok {
			return nil, fmt.Errorf("unknown attribute %q", attr)
		}
		codes = append(codes, code)
	}

	if bgPart != "" {
		bgFields := strings.Split(bgPart, "+")
		bg, ok := colorCodes[bgFields[0]]
		if !ok {
			return nil, fmt.Errorf("unknown background color %q", bgFields[0])
		}
		codes = append(codes, bg+10)
		for _, attr := range bgFields[1:] {
			code, ok := attrCodes[attr]
			if !ok {
				return nil, fmt.Errorf("unknown attribute %q", attr)
			}
			codes = append(codes, code)
		}
	}

	return codes, nil
}

// Default is the standard theme.
func Default() *Theme {
	return &Theme{
		Styles: map[string]string{
			"room_name": "cyan+bright",
			"room_desc": "white",
			"item_name": "yellow",
			"item_desc": "white",
			"command":   "green",
			"error":     "red",
			"success":   "green+bright",
			"hint":      "magenta+dim",
			"speech":    "cyan",
			"system":    "white:blue",
			"header":    "black:white+bright",
		},
	}
}

// Spooky is a darker alternative theme.
func Spooky() *Theme {
	return &Theme{
		Styles: map[string]string{
			"room_name": "red+bright",
			"room_desc": "white+dim",
			"item_name": "yellow",
			"item_desc": "white+dim",
			"command":   "green",
			"error":     "red+bright",
			"success":   "green",
			"hint":      "magenta+dim",
			"speech":    "cyan",
			"system":    "white:red",
			"header":    "white:red+bright",
		},
	}
}
