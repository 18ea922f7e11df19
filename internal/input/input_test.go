package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestDefaultBindingsDriveMovement(t *testing.T) {
	im := New()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if !im.IsActive(ActionMoveForward) {
		t.Fatal("expected W press to activate ActionMoveForward")
	}
	if !im.JustPressed(ActionMoveForward) {
		t.Fatal("expected W press to report JustPressed this frame")
	}

	im.PostUpdate()
	if im.JustPressed(ActionMoveForward) {
		t.Fatal("expected JustPressed to clear after PostUpdate")
	}
	if !im.IsActive(ActionMoveForward) {
		t.Fatal("expected IsActive to remain true while the key is still held")
	}

	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	if im.IsActive(ActionMoveForward) {
		t.Fatal("expected release to deactivate ActionMoveForward")
	}
}

func TestMouseButtonsMapToBreakAndPlace(t *testing.T) {
	im := New()
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	if !im.IsActive(ActionMouseLeft) {
		t.Fatal("expected left click to activate ActionMouseLeft")
	}
	im.HandleMouseButtonEvent(glfw.MouseButtonRight, glfw.Press)
	if !im.IsActive(ActionMouseRight) {
		t.Fatal("expected right click to activate ActionMouseRight")
	}
}

func TestUnboundKeyIsIgnored(t *testing.T) {
	im := New()
	im.HandleKeyEvent(glfw.KeyP, glfw.Press)
	for a := Action(0); a < ActionCount; a++ {
		if im.IsActive(a) {
			t.Fatalf("expected no action active for an unbound key, got %d active", a)
		}
	}
}

func TestOutOfRangeActionIsHarmless(t *testing.T) {
	im := New()
	if im.IsActive(ActionCount) || im.JustPressed(Action(-1)) {
		t.Fatal("expected out-of-range actions to report false, not panic")
	}
}
