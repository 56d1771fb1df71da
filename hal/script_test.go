package hal

import (
	"testing"

	"lumen/input"
)

func TestParseScript(t *testing.T) {
	got, err := ParseScript("10:engage 12:down:w 40:up:w 20:mouse:10,-10 12:release")
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}
	want := []ScriptEvent{
		{10, input.Engage()},
		{12, input.KeyDown(input.KeyW)},
		{12, input.Release()},
		{20, input.MouseMove(10, -10)},
		{40, input.KeyUp(input.KeyW)},
	}
	if len(got) != len(want) {
		t.Fatalf("ParseScript() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ParseScript()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, s := range []string{
		"engage",
		"x:engage",
		"1:jump",
		"1:down:zz",
		"1:mouse:3",
		"1:mouse:a,b",
	} {
		if _, err := ParseScript(s); err == nil {
			t.Fatalf("ParseScript(%q) error = nil", s)
		}
	}
	if got, err := ParseScript("  "); err != nil || len(got) != 0 {
		t.Fatalf("ParseScript(blank) = %v, %v", got, err)
	}
}
