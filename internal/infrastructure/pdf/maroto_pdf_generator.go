// Package pdf genera el registro anual OSHA Form 300 (Log of Work-Related Injuries and Illnesses).
//
// Layout de la página A4 horizontal:
//
//	┌──────────────────────────────────────────────────────────────────────┐
//	│  HEADER: OSHA's Form 300 + año  │  Establecimiento                   │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  TABLA: Caso | Empleado | Puesto | Fecha | Lugar | Descripción |     │
//	│         Clasificación | Días fuera | Días restringido                │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  TOTALES: casos por clasificación y suma de días                     │
//	│  FOOTER: leyenda de conservación (29 CFR 1904)                       │
//	└──────────────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/roofguard-api/internal/application/safety"
	"github.com/jhoicas/roofguard-api/internal/domain/entity"
)

var _ safety.OSHALogGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Clasificación de la columna G-J del formulario.
const (
	classDeath      = "Death"
	classDaysAway   = "Days away"
	classRestricted = "Job transfer or restriction"
	classOther      = "Other recordable"
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa safety.OSHALogGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateOSHALog genera el PDF y devuelve sus bytes. Un año sin casos produce el formulario vacío.
func (g *MarotoPDFGenerator) GenerateOSHALog(
	_ context.Context,
	header safety.OSHALogHeader,
	entries []entity.OSHALogEntry,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(fmt.Sprintf("OSHA Form 300 - %d", header.Year), true).
		WithAuthor(header.OrganizationName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(header))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(entries) {
		m.AddRows(r)
	}
	if len(entries) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("No recordable cases for this year.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(summarize(entries)))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del formulario y año (izq), establecimiento (der).
func headerRow(header safety.OSHALogHeader) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("OSHA's Form 300", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Log of Work-Related Injuries and Illnesses", props.Text{
				Size: 9, Top: 8, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Year "+strconv.Itoa(header.Year), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Establishment: "+nonEmpty(header.OrganizationName, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Case", 1, align.Center),
		h("Employee", 2, align.Left),
		h("Job title", 1, align.Left),
		h("Date", 1, align.Center),
		h("Where", 2, align.Left),
		h("Description", 2, align.Left),
		h("Classification", 1, align.Left),
		h("Days away", 1, align.Center),
		h("Restricted", 1, align.Center),
	)
}

// tableDetailRows: una fila por caso, numerados desde 1.
func tableDetailRows(entries []entity.OSHALogEntry) []core.Row {
	result := make([]core.Row, 0, len(entries))
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 7, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	for i, e := range entries {
		result = append(result, row.New(10).Add(
			cell(strconv.Itoa(i+1), 1, align.Center),
			cell(nonEmpty(e.EmployeeName, "Privacy case"), 2, align.Left),
			cell(nonEmpty(e.JobTitle, "-"), 1, align.Left),
			cell(e.Incident.OccurredAt.Format("01/02/2006"), 1, align.Center),
			cell(e.Incident.Location, 2, align.Left),
			cell(truncate(e.Incident.Description, 90), 2, align.Left),
			cell(classify(e.Incident), 1, align.Left),
			cell(strconv.Itoa(e.Incident.DaysAway), 1, align.Center),
			cell(strconv.Itoa(e.Incident.DaysRestricted), 1, align.Center),
		))
	}
	return result
}

type logTotals struct {
	Deaths, DaysAwayCases, RestrictedCases, OtherCases int
	DaysAway, DaysRestricted                           int
}

func summarize(entries []entity.OSHALogEntry) logTotals {
	var t logTotals
	for _, e := range entries {
		switch classify(e.Incident) {
		case classDeath:
			t.Deaths++
		case classDaysAway:
			t.DaysAwayCases++
		case classRestricted:
			t.RestrictedCases++
		default:
			t.OtherCases++
		}
		t.DaysAway += e.Incident.DaysAway
		t.DaysRestricted += e.Incident.DaysRestricted
	}
	return t
}

func totalsRow(t logTotals) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Right: 2})
	}
	value := func(n int) core.Component {
		return text.New(strconv.Itoa(n), props.Text{Size: 8, Align: align.Left, Left: 1})
	}
	return row.New(10).Add(
		col.New(2).Add(label("Deaths:")), col.New(1).Add(value(t.Deaths)),
		col.New(2).Add(label("Days away cases:")), col.New(1).Add(value(t.DaysAwayCases)),
		col.New(2).Add(label("Restricted cases:")), col.New(1).Add(value(t.RestrictedCases)),
		col.New(1).Add(label("Other:")), col.New(1).Add(value(t.OtherCases)),
		col.New(1).Add(text.New(fmt.Sprintf("%d / %d days", t.DaysAway, t.DaysRestricted), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary,
		})),
	)
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Employers must keep this log and the annual summary for 5 years following the year to which it pertains "+
				"(29 CFR 1904.33). Post the summary from February 1 to April 30.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// classify ubica el caso en una sola columna del formulario, de mayor a menor gravedad.
func classify(i entity.Incident) string {
	switch {
	case i.Severity == entity.SeverityFatality:
		return classDeath
	case i.DaysAway > 0 || i.Severity == entity.SeverityLostTime:
		return classDaysAway
	case i.DaysRestricted > 0:
		return classRestricted
	default:
		return classOther
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// truncate corta s a n runas agregando "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
