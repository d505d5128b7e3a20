package infra

// pdf.go renders the delivery receipt ("ENTREGA DE MERCADERIA") with go-pdf/fpdf:
//   - logo on the left, stacked title with a thick rule on the right
//   - client name (upper-cased) and date
//   - Artículo / C / Precio / Total table, header repeated on each page
//   - "Total Final:" row spanning the first three columns
//
// The file is written to storagePath/entrega_{id}.pdf and the same bytes are
// returned so the handler can stream them without reading the file back.

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unicode"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const (
	margenIzq = 14.0
	margenDer = 14.0
	margenSup = 10.0
	margenInf = 14.0
	logoMM    = 55.0
	colLogoMM = 58.0
	reglaMM   = 110.0
	fuente    = "Helvetica"
)

// Receipt is the content of one delivery receipt.
type Receipt struct {
	Cliente string // already sanitized
	Fecha   string // YYYY-MM-DD
	Lineas  []Linea
}

// ReceiptRenderer draws delivery receipts and keeps a copy on disk.
type ReceiptRenderer struct {
	storagePath string
	logoPath    string
}

func NewReceiptRenderer(storagePath, logoPath string) *ReceiptRenderer {
	return &ReceiptRenderer{storagePath: storagePath, logoPath: logoPath}
}

// PathFor returns where the receipt of entregaID is stored.
func (r *ReceiptRenderer) PathFor(entregaID int64) string {
	return filepath.Join(r.storagePath, fmt.Sprintf("entrega_%d.pdf", entregaID))
}

// Render produces the receipt PDF, writes it to PathFor(entregaID) and
// returns the bytes.
func (r *ReceiptRenderer) Render(entregaID int64, rc Receipt) ([]byte, error) {
	if err := os.MkdirAll(r.storagePath, 0755); err != nil {
		return nil, fmt.Errorf("pdf: create storage dir: %w", err)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		SizeStr:        "A4",
	})
	pdf.SetTitle("Entrega "+rc.Cliente, true)
	pdf.SetMargins(margenIzq, margenSup, margenDer)
	pdf.SetAutoPageBreak(false, margenInf)
	pdf.SetCellMargin(pt(6))
	pdf.AddPage()

	d := &dibujo{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pageW, pageH := pdf.GetPageSize()
	d.ancho = pageW - margenIzq - margenDer
	d.limite = pageH - margenInf

	y := d.encabezado(r.logoPath, rc.Cliente, rc.Fecha)
	pdf.SetY(y + pt(6))
	d.tabla(rc.Lineas)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render: %w", err)
	}
	if err := os.WriteFile(r.PathFor(entregaID), buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("pdf: write file: %w", err)
	}
	return buf.Bytes(), nil
}

type dibujo struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	ancho  float64
	limite float64
	anchos Anchos
}

func (d *dibujo) medir(texto string, puntos float64) float64 {
	d.pdf.SetFont(fuente, "", puntos)
	return d.pdf.GetStringWidth(d.tr(texto))
}

// encabezado draws the logo and title block and returns the lowest y used.
func (d *dibujo) encabezado(logoPath, cliente, fecha string) float64 {
	pdf := d.pdf
	fondo := margenSup
	if _, err := os.Stat(logoPath); err == nil {
		pdf.ImageOptions(logoPath, margenIzq, margenSup, logoMM, logoMM, false,
			fpdf.ImageOptions{ReadDpi: true}, 0, "")
		fondo = margenSup + logoMM
	}

	x := margenIzq + colLogoMM
	pdf.SetXY(x, margenSup)
	pdf.SetFont(fuente, "B", tituloPt)
	pdf.CellFormat(reglaMM, pt(38), d.tr("ENTREGA DE"), "", 2, "L", false, 0, "")

	y := pdf.GetY() + pt(1)
	pdf.SetLineWidth(pt(1.6))
	pdf.Line(x, y, x+reglaMM, y)
	pdf.SetXY(x, y+pt(2))
	pdf.CellFormat(reglaMM, pt(38), d.tr("MERCADERIA"), "", 2, "L", false, 0, "")

	fila := func(etiqueta, valor string) {
		pdf.SetX(x)
		pdf.SetFont(fuente, "B", etiquetaPt)
		pdf.CellFormat(35, pt(30), d.tr(etiqueta), "", 0, "LM", false, 0, "")
		pdf.SetFont(fuente, "B", valorPt)
		pdf.CellFormat(80, pt(30), d.tr(valor), "", 2, "LM", false, 0, "")
	}
	pdf.SetCellMargin(0)
	fila("Nombre:", Mayusculas(cliente))
	fila("Fecha:", FormatearFecha(fecha))
	pdf.SetCellMargin(pt(6))

	return max(fondo, pdf.GetY())
}

func (d *dibujo) tabla(lineas []Linea) {
	pdf := d.pdf
	d.anchos = CalcularAnchos(lineas, d.ancho, d.medir)

	inicio := pdf.GetY()
	d.filaCabecera()

	suma := decimal.Zero
	for _, l := range lineas {
		suma = suma.Add(l.Total)

		pdf.SetFont(fuente, "", articuloPt)
		renglones := d.partir(l.Pieza, d.anchos.Articulo)
		if len(renglones) == 0 {
			renglones = []string{""}
		}
		alto := float64(len(renglones))*pt(articuloPt) + 2*pt(4)

		if pdf.GetY()+alto > d.limite {
			d.caja(inicio)
			pdf.AddPage()
			inicio = pdf.GetY()
			d.filaCabecera()
		}
		d.filaItem(renglones, l, alto)
	}

	altoTotal := pt(28) + 2*pt(4)
	if pdf.GetY()+altoTotal > d.limite {
		d.caja(inicio)
		pdf.AddPage()
		inicio = pdf.GetY()
		d.filaCabecera()
	}
	d.filaTotal(suma, altoTotal)
	d.caja(inicio)
}

// partir wraps texto to ancho with the current font and returns the lines
// already translated to the font code page. The core font width table is
// indexed by cp1252 byte, so SplitText measures a copy where every rune above
// Latin-1 is replaced by its cp1252 byte, or by '?' when the code page has
// none. The copy keeps one rune per rune, so line lengths map back onto texto.
func (d *dibujo) partir(texto string, ancho float64) []string {
	orig := []rune(texto)
	medida := make([]rune, len(orig))
	for i, r := range orig {
		medida[i] = r
		if r <= 0xff {
			continue
		}
		if b := d.tr(string(r)); len(b) == 1 && !unicode.IsSpace(rune(b[0])) {
			medida[i] = rune(b[0])
		} else {
			orig[i], medida[i] = '?', '?'
		}
	}

	var renglones []string
	pos := 0
	for _, ln := range d.pdf.SplitText(string(medida), ancho) {
		fin := min(pos+len([]rune(ln)), len(orig))
		renglones = append(renglones, d.tr(string(orig[pos:fin])))
		pos = fin
		// SplitText drops the space or newline it broke on.
		if pos < len(medida) && unicode.IsSpace(medida[pos]) {
			pos++
		}
	}
	return renglones
}

func (d *dibujo) filaCabecera() {
	pdf := d.pdf
	a := d.anchos
	alto := pt(22) + 2*pt(4)
	pdf.SetLineWidth(pt(0.9))
	pdf.SetFont(fuente, "B", cabeceraPt)
	pdf.SetX(margenIzq)
	pdf.CellFormat(a.Articulo, alto, d.tr("Artículo"), "1", 0, "CM", false, 0, "")
	pdf.CellFormat(a.Cantidad, alto, "C", "1", 0, "CM", false, 0, "")
	pdf.CellFormat(a.Precio, alto, "Precio", "1", 0, "CM", false, 0, "")
	pdf.CellFormat(a.Total, alto, "Total", "1", 1, "CM", false, 0, "")

	y := pdf.GetY()
	pdf.SetLineWidth(pt(1.4))
	pdf.Line(margenIzq, y, margenIzq+d.anchoTabla(), y)
}

func (d *dibujo) filaItem(renglones []string, l Linea, alto float64) {
	pdf := d.pdf
	a := d.anchos
	x, y := margenIzq, pdf.GetY()
	pdf.SetLineWidth(pt(0.9))

	pdf.Rect(x, y, a.Articulo, alto, "D")
	pdf.SetFont(fuente, "", articuloPt)
	for i, r := range renglones {
		pdf.SetXY(x, y+pt(4)+float64(i)*pt(articuloPt))
		pdf.CellFormat(a.Articulo, pt(articuloPt), r, "", 0, "LM", false, 0, "")
	}

	pdf.SetXY(x+a.Articulo, y)
	pdf.SetFont(fuente, "", cabeceraPt)
	pdf.CellFormat(a.Cantidad, alto, strconv.Itoa(l.Cantidad), "1", 0, "CM", false, 0, "")
	pdf.SetFont(fuente, "", numeroPt)
	pdf.CellFormat(a.Precio, alto, FormatearMonto(l.Precio), "1", 0, "RM", false, 0, "")
	pdf.CellFormat(a.Total, alto, FormatearMonto(l.Total), "1", 1, "RM", false, 0, "")
}

func (d *dibujo) filaTotal(suma decimal.Decimal, alto float64) {
	pdf := d.pdf
	a := d.anchos
	y := pdf.GetY()

	pdf.SetLineWidth(pt(1.6))
	pdf.Line(margenIzq, y, margenIzq+d.anchoTabla(), y)

	pdf.SetX(margenIzq)
	pdf.SetFont(fuente, "B", totalLabelPt)
	pdf.CellFormat(a.Articulo+a.Cantidad+a.Precio, alto, "Total Final:", "", 0, "CM", false, 0, "")
	pdf.SetFont(fuente, "B", totalValorPt)
	pdf.CellFormat(a.Total, alto, FormatearMonto(suma), "", 1, "RM", false, 0, "")
}

// caja draws the thick outer border of the table segment on the current page.
func (d *dibujo) caja(desde float64) {
	pdf := d.pdf
	pdf.SetLineWidth(pt(1.4))
	pdf.Rect(margenIzq, desde, d.anchoTabla(), pdf.GetY()-desde, "D")
}

func (d *dibujo) anchoTabla() float64 {
	a := d.anchos
	return a.Articulo + a.Cantidad + a.Precio + a.Total
}
