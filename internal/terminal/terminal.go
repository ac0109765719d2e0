package terminal

import (
	"unicode/utf8"

	"entity-engine/internal/commands"
	"entity-engine/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	BarHeight = 40
	// When windowed, move bar up by this many pixels so it stays visible.
	WindowedBarOffset = 56
	prompt            = "> "
	fontSize          = 20
	padding           = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxLineLen       = 200
)

var (
	termBarColor    = rl.NewColor(40, 40, 40, 255)
	termLineColor   = rl.NewColor(80, 80, 80, 255)
	termChatBgColor = rl.NewColor(24, 24, 24, 240)
)

// Terminal is the console bar at the bottom of the window. It is shown/hidden with ESC.
// Lines starting with "cmd " are parsed as subcommand + flags and executed via the command registry;
// anything else is written to the log as a note.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
}

// New returns a Terminal that logs lines and runs "cmd ..." through reg. It starts closed.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen returns true when the console is visible and capturing input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Submit logs line and runs it when it is a command. Errors are logged, not returned.
func (t *Terminal) Submit(line string) {
	if line == "" {
		return
	}
	t.log.Log(prompt + line)
	if _, err := t.reg.Line(line); err != nil {
		t.log.Log(err.Error())
	}
}

// Update handles ESC (toggle open/closed), and when open: typing, paste, backspace, enter.
// Call once per frame. Returns whether the console holds the keyboard.
func (t *Terminal) Update() bool {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
		if t.open {
			rl.EnableCursor()
		} else {
			rl.DisableCursor()
		}
	}
	if !t.open {
		return false
	}
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		t.inputBuf += rl.GetClipboardText()
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		t.inputBuf = trimLastRune(t.inputBuf)
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		line := t.inputBuf
		t.inputBuf = ""
		t.Submit(line)
	}
	return true
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

// visibleLines returns the tail of the log that fits above the bar, long lines elided.
func visibleLines(lines []string) []string {
	if len(lines) > maxLinesOnScreen {
		lines = lines[len(lines)-maxLinesOnScreen:]
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		out[i] = line
	}
	return out
}

// Draw draws the console bar at the bottom when open, and the recent log lines above it.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int(rl.GetScreenWidth())
	screenH := int(rl.GetScreenHeight())
	barY := screenH - BarHeight
	if !rl.IsWindowFullscreen() {
		barY -= WindowedBarOffset
	}

	chatHeight := maxLinesOnScreen * lineHeight
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight = barY
		chatY = 0
	}
	if chatHeight > 0 {
		rl.DrawRectangle(0, int32(chatY), int32(screenW), int32(chatHeight), termChatBgColor)
	}
	for i, line := range visibleLines(t.log.Lines()) {
		y := chatY + i*lineHeight + padding
		rl.DrawText(line, int32(padding), int32(y), int32(fontSize), rl.LightGray)
	}

	rl.DrawRectangle(0, int32(barY), int32(screenW), int32(BarHeight), termBarColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, termLineColor)
	rl.DrawText(prompt+t.inputBuf+"|", int32(padding), int32(barY+padding), int32(fontSize), rl.White)
}
