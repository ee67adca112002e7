package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterSymbols(t *testing.T) {
	t.Run("ForcedOn", func(t *testing.T) {
		p := NewPrinter("on")
		assert.Equal(t, "✅", p.Symbol(OK))
		assert.Equal(t, "❌", p.Symbol(Err))
		assert.Equal(t, "•", p.Symbol("bogus"))
	})

	t.Run("ForcedOff", func(t *testing.T) {
		p := NewPrinter("off")
		assert.Equal(t, "[OK]", p.Symbol(OK))
		assert.Equal(t, "[WARN]", p.Symbol(Warn))
		assert.Equal(t, "[ERR]", p.Symbol(Err))
		assert.Equal(t, "[RUN]", p.Symbol(Run))
		assert.Equal(t, "[INFO]", p.Symbol(Info))
		assert.Equal(t, "[*]", p.Symbol("bogus"))
	})

	t.Run("UnknownModeFallsBackToAuto", func(t *testing.T) {
		p := NewPrinter("sometimes")
		assert.Equal(t, "auto", p.mode)
	})
}
