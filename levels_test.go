package logsmith

import (
	"testing"

	"github.com/Iron-Ham/logsmith/ansi"
)

func TestBuiltinLevels(t *testing.T) {
	levels := Levels()
	want := map[string]Level{
		"NOTSET":   NOTSET,
		"TRACE":    TRACE,
		"DEBUG":    DEBUG,
		"INFO":     INFO,
		"WARNING":  WARNING,
		"ERROR":    ERROR,
		"CRITICAL": CRITICAL,
	}
	for name, value := range want {
		if got, ok := levels[name]; !ok || got != value {
			t.Errorf("expected %s=%d, got %d (present=%v)", name, value, got, ok)
		}
	}
}

func TestLevelName(t *testing.T) {
	if got := LevelName(INFO); got != "INFO" {
		t.Errorf("expected INFO, got %q", got)
	}
	if got := LevelName(Level(33)); got != "LEVEL_33" {
		t.Errorf("expected LEVEL_33 placeholder, got %q", got)
	}
}

func TestRegisterLevel(t *testing.T) {
	t.Run("adds a usable level", func(t *testing.T) {
		style := &LevelStyle{FG: ansi.FG.SkyBlue}
		if err := RegisterLevel("NOTICE", 25, style); err != nil {
			t.Fatalf("RegisterLevel failed: %v", err)
		}
		if got := Levels()["NOTICE"]; got != 25 {
			t.Errorf("expected NOTICE=25, got %d", got)
		}
		if got := LevelName(25); got != "NOTICE" {
			t.Errorf("expected NOTICE, got %q", got)
		}
	})

	t.Run("rejects invalid names", func(t *testing.T) {
		for _, name := range []string{"notice", "N", "9LEVEL", "WITH SPACE", ""} {
			if err := RegisterLevel(name, 26, nil); err == nil {
				t.Errorf("expected error for name %q", name)
			}
		}
	})

	t.Run("rejects negative severity", func(t *testing.T) {
		if err := RegisterLevel("NEGATIVE", -1, nil); err == nil {
			t.Error("expected error for negative severity")
		}
	})

	t.Run("rejects name collision with different severity", func(t *testing.T) {
		err := RegisterLevel("INFO", 21, nil)
		if err == nil {
			t.Fatal("expected a conflict error")
		}
		if !IsNameConflict(err) {
			t.Errorf("expected NameConflictError, got %T", err)
		}
	})

	t.Run("rejects severity collision with another level", func(t *testing.T) {
		if err := RegisterLevel("ALSO_INFO", 20, nil); err == nil {
			t.Error("expected a conflict error for duplicate severity")
		}
	})

	t.Run("re-registering identical severity updates only the style", func(t *testing.T) {
		original := levelReg.lookup("INFO").style
		if err := RegisterLevel("INFO", 20, &LevelStyle{FG: ansi.FG.White}); err != nil {
			t.Fatalf("identical re-registration should not error: %v", err)
		}
		if got := levelReg.lookup("INFO").style.FG; got != ansi.FG.White {
			t.Errorf("expected updated style, got %v", got)
		}
		if err := RegisterLevel("INFO", 20, &original); err != nil {
			t.Fatalf("restoring style failed: %v", err)
		}
	})

	t.Run("override replaces severity", func(t *testing.T) {
		if err := RegisterLevel("AUDITED", 27, nil); err != nil {
			t.Fatalf("RegisterLevel failed: %v", err)
		}
		if err := OverrideLevel("AUDITED", 28, nil); err != nil {
			t.Fatalf("OverrideLevel failed: %v", err)
		}
		if got := Levels()["AUDITED"]; got != 28 {
			t.Errorf("expected AUDITED=28 after override, got %d", got)
		}
	})
}

func TestApplyColorTheme(t *testing.T) {
	original := levelReg.lookup("INFO").style

	ApplyColorTheme(map[Level]LevelStyle{
		INFO: {FG: ansi.FG.HotPink, Intensity: ansi.Bold},
	})
	themed := levelReg.lookup("INFO").style
	if themed.FG != ansi.FG.HotPink || themed.Intensity != ansi.Bold {
		t.Errorf("expected themed style, got %+v", themed)
	}

	ApplyColorTheme(nil)
	restored := levelReg.lookup("INFO").style
	if restored.FG != original.FG {
		t.Errorf("expected default style restored, got %+v", restored)
	}
}

func TestBuiltinThemesCoverEveryLevel(t *testing.T) {
	for name, theme := range BuiltinThemes {
		for _, level := range []Level{TRACE, DEBUG, INFO, WARNING, ERROR, CRITICAL} {
			if _, ok := theme[level]; !ok {
				t.Errorf("theme %q missing level %d", name, level)
			}
		}
	}
}

func TestLevelStyleRender(t *testing.T) {
	s := LevelStyle{FG: ansi.FG.Red, BG: ansi.BG.Yellow, Intensity: ansi.Bold, Styles: []ansi.Code{ansi.Underline}}
	got := s.render("X")
	want := "\x1b[1;31;43;4mX\x1b[0m"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if got := (LevelStyle{}).render("X"); got != "X" {
		t.Errorf("zero style must render nothing, got %q", got)
	}
}
