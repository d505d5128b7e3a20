package infra

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptRenderer_WritesFileAndReturnsBytes(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pdfs")
	r := NewReceiptRenderer(dir, filepath.Join(dir, "no-logo.png"))

	out, err := r.Render(42, Receipt{
		Cliente: "Juan Pérez",
		Fecha:   "2025-03-07",
		Lineas: []Linea{
			linea("Llavero dragón", 3, "12000"),
			linea("Soporte auriculares", 1, "25500"),
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))

	onDisk, err := os.ReadFile(filepath.Join(dir, "entrega_42.pdf"))
	require.NoError(t, err)
	assert.Equal(t, out, onDisk)
	assert.Equal(t, filepath.Join(dir, "entrega_42.pdf"), r.PathFor(42))
}

func TestReceiptRenderer_ManyLinesBreakPages(t *testing.T) {
	r := NewReceiptRenderer(t.TempDir(), "")

	var lineas []Linea
	for i := 0; i < 40; i++ {
		lineas = append(lineas, linea(fmt.Sprintf("Pieza número %d con nombre largo para partir", i), i+1, "10500"))
	}
	out, err := r.Render(7, Receipt{Cliente: "Ana", Fecha: "2025-01-02", Lineas: lineas})
	require.NoError(t, err)
	assert.Greater(t, bytes.Count(out, []byte("/Type /Page\n")), 1)
}

func TestReceiptRenderer_NoItems(t *testing.T) {
	r := NewReceiptRenderer(t.TempDir(), "")
	out, err := r.Render(1, Receipt{Cliente: "", Fecha: "fecha rara"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestReceiptRenderer_AccentsAndSymbols(t *testing.T) {
	r := NewReceiptRenderer(t.TempDir(), "")

	out, err := r.Render(3, Receipt{
		Cliente: "Ñandú Deco",
		Fecha:   "2025-05-20",
		Lineas: []Linea{
			linea("Llavero dragón", 2, "1500"),
			linea("Maceta Ñandú – edición €", 1, "8000"),
			linea("Figura ☃ articulada", 1, "500"),
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func newDibujo(t *testing.T) *dibujo {
	t.Helper()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetCellMargin(pt(6))
	pdf.SetFont(fuente, "", articuloPt)
	return &dibujo{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func TestPartir_KeepsEveryWordAndTranslates(t *testing.T) {
	d := newDibujo(t)
	texto := "Llavero dragón articulado con cadena y argolla de acero inoxidable"

	renglones := d.partir(texto, 60)
	require.Greater(t, len(renglones), 1)
	for _, r := range renglones {
		assert.LessOrEqual(t, d.pdf.GetStringWidth(r), 60.0)
	}
	assert.Equal(t, d.tr(texto), strings.Join(renglones, " "))
}

func TestPartir_RunesOutsideLatin1(t *testing.T) {
	d := newDibujo(t)

	renglones := d.partir("Set € – ☃", 150)
	require.Len(t, renglones, 1)
	// € and the en dash exist in cp1252; the snowman does not.
	assert.Equal(t, d.tr("Set € – ?"), renglones[0])

	assert.Empty(t, d.partir("", 150))
}
