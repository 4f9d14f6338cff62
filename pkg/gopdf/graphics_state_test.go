package gopdf

import "testing"

func TestPushPopRoundTrip(t *testing.T) {
	s := NewState()
	before := *s.GS

	s.Push()
	s.GS.CTM = CTM{A: 9, D: 9}
	s.GS.LineWidth = 42

	if err := s.Pop(); err != nil {
		t.Fatalf("Pop: %v", err)
	}

	if s.GS.CTM != before.CTM {
		t.Errorf("CTM after q...Q = %v, want %v", s.GS.CTM, before.CTM)
	}
	if s.GS.LineWidth != before.LineWidth {
		t.Errorf("LineWidth after q...Q = %v, want %v", s.GS.LineWidth, before.LineWidth)
	}
}

func TestPopEmptyStackIsUnbalanced(t *testing.T) {
	s := NewState()
	err := s.Pop()
	if err == nil {
		t.Fatal("Pop on empty stack: want ErrUnbalancedStack, got nil")
	}
}

func TestCloneSharesFontPointer(t *testing.T) {
	s := NewState()
	s.GS.TextState = defaultTextState()
	f := &Font{Name: "F0"}
	s.GS.TextState.Font = f

	clone := s.GS.Clone()
	if clone.TextState.Font != f {
		t.Error("Clone copied the Font instead of sharing the pointer")
	}
}

func TestPathResetAfterPaint(t *testing.T) {
	resources := NewResources()
	scene := NewRecordingScene()
	interp := NewInterpreter(resources, DeviceScale{Height: 100, Scale: 1}, scene)

	ops, _ := ParseContentStream([]byte("10 10 m 90 90 l f"))
	if err := interp.Run(ops); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !interp.state.GS.Path.IsEmpty() {
		t.Error("path not reset after f")
	}
	if len(scene.Fills) != 1 {
		t.Errorf("got %d fills, want 1", len(scene.Fills))
	}
}
