package terminal

import "testing"

func TestDetectProtocol(t *testing.T) {
	clear := func(t *testing.T) {
		for _, k := range []string{"TERM", "TERM_PROGRAM", "COLORTERM", "KITTY_WINDOW_ID", "TMUX"} {
			t.Setenv(k, "")
		}
	}

	cases := []struct {
		name string
		env  map[string]string
		want GraphicsProtocol
	}{
		{"kitty by window id", map[string]string{"KITTY_WINDOW_ID": "1"}, ProtocolKitty},
		{"kitty by TERM", map[string]string{"TERM": "xterm-kitty"}, ProtocolKitty},
		{"ghostty", map[string]string{"TERM_PROGRAM": "ghostty"}, ProtocolKitty},
		{"wezterm", map[string]string{"TERM_PROGRAM": "WezTerm"}, ProtocolKitty},
		{"iterm2", map[string]string{"TERM_PROGRAM": "iTerm.app"}, ProtocolITerm2},
		{"tmux pins halfblocks", map[string]string{"TMUX": "/tmp/tmux-0/default,1,0", "KITTY_WINDOW_ID": "1"}, ProtocolHalfblocks},
		{"truecolor fallback", map[string]string{"TERM": "xterm-256color", "COLORTERM": "truecolor"}, ProtocolHalfblocks},
		{"dumb terminal", map[string]string{"TERM": "vt100"}, ProtocolNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clear(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if got := DetectProtocol(); got != tc.want {
				t.Errorf("DetectProtocol() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseProtocol(t *testing.T) {
	if p, ok := ParseProtocol("kitty"); !ok || p != ProtocolKitty {
		t.Errorf("ParseProtocol(kitty) = %v, %v", p, ok)
	}
	if p, ok := ParseProtocol("Halfblocks"); !ok || p != ProtocolHalfblocks {
		t.Errorf("ParseProtocol(Halfblocks) = %v, %v", p, ok)
	}
	if _, ok := ParseProtocol("webp"); ok {
		t.Error("ParseProtocol accepted an unknown protocol")
	}
}

func TestWithCellDefaults(t *testing.T) {
	s := withCellDefaults(Size{Cols: 100, Rows: 50, PixelW: 1000, PixelH: 1100})
	if s.CellW != 10 || s.CellH != 22 {
		t.Errorf("cell size = %dx%d, want 10x22", s.CellW, s.CellH)
	}

	s = withCellDefaults(Size{Cols: 80, Rows: 24})
	if s.CellW != DefaultCellW || s.CellH != DefaultCellH {
		t.Errorf("cell size = %dx%d, want defaults", s.CellW, s.CellH)
	}
}

func TestSizeFromEnvDefaults(t *testing.T) {
	t.Setenv("COLUMNS", "")
	t.Setenv("LINES", "")
	s := sizeFromEnv()
	if s.Cols != 80 || s.Rows != 24 {
		t.Errorf("sizeFromEnv() = %dx%d, want 80x24", s.Cols, s.Rows)
	}

	t.Setenv("COLUMNS", "132")
	t.Setenv("LINES", "43")
	s = sizeFromEnv()
	if s.Cols != 132 || s.Rows != 43 {
		t.Errorf("sizeFromEnv() = %dx%d, want 132x43", s.Cols, s.Rows)
	}
}
