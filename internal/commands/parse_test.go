package commands

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		line      string
		expNil    bool
		expVerb   string
		expPhrase string
	}{
		"verb only":         {line: "look", expVerb: "look"},
		"verb and target":   {line: "look walls", expVerb: "look", expPhrase: "walls"},
		"look at":           {line: "look at the walls", expVerb: "look", expPhrase: "the walls"},
		"mixed case spaces": {line: "  LOOK   Four  Walls ", expVerb: "look", expPhrase: "four walls"},
		"lone preposition":  {line: "look at", expVerb: "look", expPhrase: "at"},
		"blank":             {line: "   ", expNil: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmd := Parse(tt.line)
			if tt.expNil {
				if cmd != nil {
					t.Errorf("expected nil, got %+v", cmd)
				}
				return
			}
			if cmd == nil {
				t.Fatal("expected command, got nil")
			}
			testutil.AssertEqual(t, "verb", cmd.Verb, tt.expVerb)
			testutil.AssertEqual(t, "phrase", cmd.Phrase, tt.expPhrase)
		})
	}
}
