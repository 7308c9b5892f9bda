// Package pdf genera la ficha PDF de una solicitud de registro de empresa.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la empresa │ Estado + Fecha de alta       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMPRESA: Sector / Ciudad / Web + Descripción               │
//	│  CONTACTO: Nombre + Email + Teléfono                        │
//	│  SEGUIMIENTO: verificación / aprobación / motivo rechazo    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MENSAJES: autor, fecha y texto en orden cronológico        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR del portal de la empresa                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/practicas-api/internal/application/solicitud"
	"github.com/jhoicas/practicas-api/internal/domain/entity"
)

var _ solicitud.FichaPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 160, Green: 30, Blue: 30}
)

const (
	fechaFmt      = "02/01/2006 15:04"
	charsPorLinea = 110
)

// MarotoPDFGenerator implementa solicitud.FichaPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador; author aparece en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// GenerateFichaPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateFichaPDF(
	ctx context.Context,
	s *entity.EmpresaSolicitud,
	portalURL string,
	mensajes []*entity.EmpresaMensaje,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Solicitud de registro - "+s.NombreEmpresa, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(empresaRows(s)...)
	m.AddRows(contactoRow(s))
	m.AddRows(seguimientoRows(s)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(mensajesRows(mensajes)...)

	if portalURL != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(portalRow(portalURL))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(s *entity.EmpresaSolicitud) core.Row {
	estadoColor := colorPrimary
	if s.Estado == entity.EstadoRechazada {
		estadoColor = colorRed
	}
	return row.New(18).Add(
		col.New(8).Add(
			text.New(s.NombreEmpresa, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Solicitud "+s.ID, props.Text{
				Size: 7, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(strings.ToUpper(etiquetaEstado(s.Estado)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: estadoColor, Top: 1,
			}),
			text.New("Recibida: "+s.CreatedAt.Format(fechaFmt), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func empresaRows(s *entity.EmpresaSolicitud) []core.Row {
	rows := []core.Row{
		seccion("DATOS DE LA EMPRESA"),
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Sector: %s   |   Ciudad: %s   |   Web: %s",
				nonEmpty(s.Sector, "—"),
				nonEmpty(s.Ciudad, "—"),
				nonEmpty(s.Web, "—"),
			), props.Text{Size: 8, Top: 1, Color: colorGray}),
		)),
	}
	if s.Descripcion != "" {
		rows = append(rows, parrafo(s.Descripcion, 8)...)
	}
	return rows
}

func contactoRow(s *entity.EmpresaSolicitud) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("CONTACTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 3,
			}),
			text.New(s.ContactoNombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 8,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s",
				nonEmpty(s.ContactoEmail, "—"),
				nonEmpty(s.ContactoTelefono, "—"),
			), props.Text{Size: 8, Top: 13, Color: colorGray}),
		),
	)
}

func seguimientoRows(s *entity.EmpresaSolicitud) []core.Row {
	rows := []core.Row{
		seccion("SEGUIMIENTO"),
		linea("Correo verificado: " + fechaOpcional(s.EmailVerificadoEn)),
		linea("Aprobada: " + fechaOpcional(s.AprobadoEn)),
	}
	if s.EmpresaID != nil {
		rows = append(rows, linea("Empresa colaboradora: "+*s.EmpresaID))
	}
	if s.RejectionReason != nil {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Motivo del rechazo:", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorRed, Top: 1}),
		)))
		rows = append(rows, parrafo(*s.RejectionReason, 8)...)
	}
	return rows
}

func mensajesRows(mensajes []*entity.EmpresaMensaje) []core.Row {
	rows := []core.Row{seccion(fmt.Sprintf("MENSAJES (%d)", len(mensajes)))}
	if len(mensajes) == 0 {
		return append(rows, linea("Sin mensajes."))
	}
	for _, msg := range mensajes {
		autor := "Empresa"
		if msg.Autor == entity.AutorCentro {
			autor = "Centro"
		}
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%s · %s", autor, msg.CreatedAt.Format(fechaFmt)), props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 2, Color: colorPrimary,
			}),
		)))
		rows = append(rows, parrafo(msg.Contenido, 8)...)
	}
	return rows
}

func portalRow(portalURL string) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(portalURL, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(9).Add(
			text.New("Portal de la empresa", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 6, Left: 3, Color: colorPrimary,
			}),
			text.New("Escanea el código para consultar el estado y los mensajes de la solicitud.", props.Text{
				Size: 8, Top: 13, Left: 3, Color: colorGray,
			}),
			text.New(portalURL, props.Text{Size: 7, Top: 20, Left: 3, Color: colorGray}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func seccion(titulo string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(titulo, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 3}),
	))
}

func linea(s string) core.Row {
	return row.New(5).Add(col.New(12).Add(text.New(s, props.Text{Size: 8, Top: 1})))
}

// parrafo parte el texto en filas de altura fija; maroto no calcula la altura de filas con texto largo.
func parrafo(s string, size float64) []core.Row {
	var rows []core.Row
	for _, l := range strings.Split(s, "\n") {
		for _, chunk := range splitRunes(l, charsPorLinea) {
			rows = append(rows, row.New(4.5).Add(col.New(12).Add(
				text.New(chunk, props.Text{Size: size, Top: 0.5, Left: 2}),
			)))
		}
	}
	return rows
}

func etiquetaEstado(estado string) string {
	switch estado {
	case entity.EstadoEmailVerificado:
		return "correo verificado"
	default:
		return estado
	}
}

func fechaOpcional(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Format(fechaFmt)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// splitRunes divide s en trozos de como máximo n runas. Un texto vacío produce un trozo vacío.
func splitRunes(s string, n int) []string {
	r := []rune(s)
	if len(r) == 0 {
		return []string{""}
	}
	var parts []string
	for len(r) > n {
		parts = append(parts, string(r[:n]))
		r = r[n:]
	}
	return append(parts, string(r))
}
