// Package terminal answers two questions the portrait renderer needs before
// drawing: how big is a cell in pixels, and which graphics protocol (if any)
// does the emulator speak. Detection is environment-variable inspection
// only; no query sequences are sent.
package terminal

import (
	"os"
	"strings"
)

// GraphicsProtocol identifies how images can be drawn.
type GraphicsProtocol int

const (
	ProtocolNone GraphicsProtocol = iota
	ProtocolHalfblocks
	ProtocolKitty
	ProtocolITerm2
	ProtocolSixel
)

var protocolNames = [...]string{
	ProtocolNone:       "none",
	ProtocolHalfblocks: "halfblocks",
	ProtocolKitty:      "kitty",
	ProtocolITerm2:     "iterm2",
	ProtocolSixel:      "sixel",
}

// String returns the protocol's lowercase name.
func (p GraphicsProtocol) String() string {
	if int(p) < len(protocolNames) {
		return protocolNames[p]
	}
	return "unknown"
}

// ParseProtocol maps a config override string to a protocol. Unknown
// strings report false so the caller can fall back to detection.
func ParseProtocol(s string) (GraphicsProtocol, bool) {
	for p, name := range protocolNames {
		if strings.EqualFold(s, name) {
			return GraphicsProtocol(p), true
		}
	}
	return ProtocolNone, false
}

// DetectProtocol picks the best graphics protocol from the environment.
// Multiplexers (tmux, screen) mangle passthrough for most protocols, so
// they are pinned to halfblocks.
func DetectProtocol() GraphicsProtocol {
	term := os.Getenv("TERM")
	prog := os.Getenv("TERM_PROGRAM")

	if strings.HasPrefix(term, "tmux") || strings.HasPrefix(term, "screen") || os.Getenv("TMUX") != "" {
		return ProtocolHalfblocks
	}

	switch {
	case os.Getenv("KITTY_WINDOW_ID") != "", strings.Contains(term, "kitty"):
		return ProtocolKitty
	case strings.EqualFold(prog, "ghostty"), strings.Contains(term, "ghostty"):
		return ProtocolKitty
	case strings.EqualFold(prog, "WezTerm"):
		return ProtocolKitty
	case strings.EqualFold(prog, "iTerm.app"):
		return ProtocolITerm2
	}

	if supportsTrueColor(term, prog) {
		return ProtocolHalfblocks
	}
	return ProtocolNone
}

// supportsTrueColor reports whether 24-bit color output is safe.
func supportsTrueColor(term, prog string) bool {
	ct := os.Getenv("COLORTERM")
	if strings.Contains(ct, "truecolor") || strings.Contains(ct, "24bit") {
		return true
	}
	switch {
	case strings.Contains(term, "direct"):
		return true
	case strings.EqualFold(prog, "vscode"):
		return true
	}
	return false
}
