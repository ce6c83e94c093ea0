package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderStatusBarWidth(t *testing.T) {
	bar := RenderStatusBar(100, "[q]salir", Flash{Text: "¡Propuesta copiada al portapapeles!"})

	if w := lipgloss.Width(bar); w != 100 {
		t.Errorf("status bar width = %d, want 100", w)
	}
	if !strings.Contains(bar, "[q]salir") || !strings.Contains(bar, "¡Propuesta copiada") {
		t.Errorf("status bar missing content: %q", bar)
	}
}

func TestRenderStatusBarFlashWinsWhenNarrow(t *testing.T) {
	hints := strings.Repeat("h", 50)
	bar := RenderStatusBar(40, hints, Flash{Text: "Error al copiar", Error: true})

	if strings.Contains(bar, hints) {
		t.Error("hints should be dropped when they do not fit next to the flash")
	}
	if !strings.Contains(bar, "Error al copiar") {
		t.Error("flash missing")
	}
}
