package render

import (
	"testing"
)

func newTestScreen() (*Screen, *Recorder) {
	rec := NewRecorder(1000, 700)
	return NewScreen(rec, NewScrollBackdrop(), DefaultMetrics()), rec
}

func TestDrawTextReturnsCursorBelowBlock(t *testing.T) {
	s, rec := newTestScreen()
	ts := s.TextSettings() // 16px: 8px per rune, 16px lines
	ts.MaxWidth = 70

	end := s.DrawText("aaaa bbbb cccc", 10, 50, ts)

	texts := rec.Texts()
	if len(texts) != 3 {
		t.Fatalf("expected 3 wrapped lines, got %d", len(texts))
	}
	if texts[2].Y != 82 {
		t.Fatalf("third line expected at y=82, got %v", texts[2].Y)
	}
	if end != 82+16+5 {
		t.Fatalf("unexpected end cursor %v", end)
	}
}

func TestDrawTextDefaults(t *testing.T) {
	s, rec := newTestScreen()
	s.DrawText("hello", 0, 0, TextSettings{})

	texts := rec.Texts()
	if len(texts) != 1 {
		t.Fatalf("expected one text op, got %d", len(texts))
	}
	if texts[0].Style.Size != DefaultMetrics().TextSize || texts[0].Style.Color == nil {
		t.Fatalf("expected default size and colour, got %+v", texts[0].Style)
	}
}

func TestDialogTitleAndSubNote(t *testing.T) {
	s, rec := newTestScreen()
	m := DefaultMetrics()

	y := s.DrawDialogTitle("The Silk Road Game")
	if want := m.PaddingY + m.TitleSize + 5 + m.TitleGap; y != want {
		t.Fatalf("title cursor expected %v, got %v", want, y)
	}
	s.DrawDialogSubNote("Press enter to continue.")

	texts := rec.Texts()
	if len(texts) != 2 {
		t.Fatalf("expected 2 text ops, got %d", len(texts))
	}
	title, note := texts[0], texts[1]
	if title.X != 500 || title.Style.HAlign != AlignCenter || title.Style.Font != FontTitle {
		t.Fatalf("title should be centered in title font: %+v", title)
	}
	if note.X != 1000-m.PaddingX || note.Y != 700-m.PaddingY || note.Style.HAlign != AlignEnd {
		t.Fatalf("sub-note should be anchored bottom right: %+v", note)
	}
}

func TestDialogBoxUsesDefaultBackground(t *testing.T) {
	s, rec := newTestScreen()
	s.DrawDialogBox(nil)
	other := NewMapBackdrop()
	s.DrawDialogBox(other)

	ops := rec.Ops()
	if len(ops) != 2 || ops[0].Kind != OpImage || ops[1].Image != other {
		t.Fatalf("unexpected ops %+v", ops)
	}
	if ops[0].X != 15 || ops[0].W != 970 || ops[0].H != 670 {
		t.Fatalf("dialog box should be inset by box padding: %+v", ops[0])
	}
}

func TestClearBackground(t *testing.T) {
	s, rec := newTestScreen()
	s.ClearBackground(nil)
	ops := rec.Ops()
	if len(ops) != 1 || ops[0].Kind != OpRect || ops[0].W != 1000 || ops[0].Color != ColorBlack {
		t.Fatalf("unexpected clear op %+v", ops)
	}
}

func TestBackdropsHaveExpectedSize(t *testing.T) {
	if b := NewScrollBackdrop().Bounds(); b.Dx() != backdropWidth || b.Dy() != backdropHeight {
		t.Fatalf("scroll backdrop has size %v", b)
	}
	if b := NewMapBackdrop().Bounds(); b.Dx() != backdropWidth || b.Dy() != backdropHeight {
		t.Fatalf("map backdrop has size %v", b)
	}
}
