package commands

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestCompileTemplate(t *testing.T) {
	tests := map[string]struct {
		pattern string
		expErr  bool
	}{
		"literal only":             {pattern: "look"},
		"multi literal":            {pattern: "pick up ITEM"},
		"single placeholder":       {pattern: "take ITEM"},
		"two placeholders":         {pattern: "use ITEM on TARGET"},
		"empty pattern":            {pattern: "", expErr: true},
		"whitespace pattern":       {pattern: "   ", expErr: true},
		"adjacent placeholders":    {pattern: "give ITEM PERSON", expErr: true},
		"duplicate placeholder":    {pattern: "swap ITEM with ITEM", expErr: true},
		"mixed case is a literal":  {pattern: "look at Painting"},
		"placeholder then literal": {pattern: "talk to PERSON"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := CompileTemplate(tt.pattern)
			testutil.AssertEqual(t, "error", err != nil, tt.expErr)
		})
	}
}

func TestTemplate_Match(t *testing.T) {
	tests := map[string]struct {
		pattern string
		line    string
		expOk   bool
		expCaps map[string]string
	}{
		"exact literal": {
			pattern: "look",
			line:    "look",
			expOk:   true,
			expCaps: map[string]string{},
		},
		"literal is case-insensitive": {
			pattern: "look",
			line:    "LOOK",
			expOk:   true,
			expCaps: map[string]string{},
		},
		"literal with trailing words fails": {
			pattern: "look",
			line:    "look around",
			expOk:   false,
		},
		"trailing placeholder captures rest": {
			pattern: "take ITEM",
			line:    "take cotton candy",
			expOk:   true,
			expCaps: map[string]string{"item": "cotton candy"},
		},
		"placeholder lowercases capture": {
			pattern: "take ITEM",
			line:    "TAKE Cotton CANDY",
			expOk:   true,
			expCaps: map[string]string{"item": "cotton candy"},
		},
		"empty capture fails": {
			pattern: "take ITEM",
			line:    "take",
			expOk:   false,
		},
		"multi-word literals": {
			pattern: "pick up ITEM",
			line:    "pick up trinket",
			expOk:   true,
			expCaps: map[string]string{"item": "trinket"},
		},
		"connector split": {
			pattern: "use ITEM on TARGET",
			line:    "use key on case",
			expOk:   true,
			expCaps: map[string]string{"item": "key", "target": "case"},
		},
		"connector splits at leftmost occurrence": {
			pattern: "use ITEM on TARGET",
			line:    "use ration on board on table",
			expOk:   true,
			expCaps: map[string]string{"item": "ration", "target": "board on table"},
		},
		"missing connector fails": {
			pattern: "use ITEM on TARGET",
			line:    "use key case",
			expOk:   false,
		},
		"connector with empty first capture fails": {
			pattern: "use ITEM on TARGET",
			line:    "use on case",
			expOk:   false,
		},
		"connector with empty second capture fails": {
			pattern: "use ITEM on TARGET",
			line:    "use key on",
			expOk:   false,
		},
		"multi-word captures around connector": {
			pattern: "use ITEM on TARGET",
			line:    "use rusty key on display case",
			expOk:   true,
			expCaps: map[string]string{"item": "rusty key", "target": "display case"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tmpl, err := CompileTemplate(tt.pattern)
			if err != nil {
				t.Fatalf("unexpected compile error: %v", err)
			}

			caps, ok := tmpl.Match(tt.line)
			testutil.AssertEqual(t, "match", ok, tt.expOk)
			if !tt.expOk {
				return
			}

			testutil.AssertEqual(t, "capture count", len(caps), len(tt.expCaps))
			for k, v := range tt.expCaps {
				testutil.AssertEqual(t, "capture "+k, caps[k], v)
			}
		})
	}
}

func TestTemplate_MatchDeterministic(t *testing.T) {
	tmpl, err := CompileTemplate("use ITEM on TARGET")
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}

	first, ok := tmpl.Match("use key on case")
	testutil.AssertEqual(t, "first match", ok, true)

	for i := 0; i < 10; i++ {
		caps, ok := tmpl.Match("use key on case")
		testutil.AssertEqual(t, "repeat match", ok, true)
		testutil.AssertEqual(t, "repeat item", caps["item"], first["item"])
		testutil.AssertEqual(t, "repeat target", caps["target"], first["target"])
	}
}
