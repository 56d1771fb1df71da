package app

import (
	"fmt"
	"image"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"lumen/hal"
	"lumen/hud"

	"tinygo.org/x/tinyfont"
)

// PanicError is returned by a step function whose frame panicked.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string { return fmt.Sprintf("panic: %v", e.Value) }

// guardStep converts a panic in step into a logged *PanicError and shows a
// panic screen, so hosts shut down through their normal error path.
func guardStep(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			pe := &PanicError{Value: v, Stack: debug.Stack()}
			reportPanic(h, pe)
			err = pe
		}()
		return step()
	}
}

func reportPanic(h hal.HAL, pe *PanicError) {
	lines := []string{"lumen panic:", fmt.Sprintf("panic: %v", pe.Value)}
	if len(pe.Stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(pe.Stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	w, ht := disp.ScreenSize()
	if w <= 0 || ht <= 0 {
		return
	}
	_ = disp.Show(panicScreen(w, ht, lines), "panic")
}

// panicScreen draws lines in black on white, wrapping at the screen width.
func panicScreen(w, h int, lines []string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	_, outboxWidth := tinyfont.LineWidth(hud.Font, "0")
	fontWidth := int16(outboxWidth)
	fontHeight := int16(hud.Font.GetYAdvance())
	if fontWidth <= 0 || fontHeight <= 0 {
		return img
	}
	cols := int16(w) / fontWidth
	if cols <= 0 {
		cols = 1
	}

	fg := color.RGBA{A: 0xff}
	y := fontHeight
	for _, line := range lines {
		for len(line) > 0 {
			if y > int16(h) {
				return img
			}
			chunk, rest := takeRunes(line, cols)
			hud.Draw(img, 0, y, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	return img
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
