package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"rentcar-service/internal/model"
)

// RenderPDF writes the filtered rentals and their summary block as a
// paginated landscape A4 document.
func RenderPDF(w io.Writer, rentas []model.Renta, stats Stats, generatedAt time.Time) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("RentCar — Reporte de Rentas"))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Generado: %s", generatedAt.Format("2006-01-02 15:04"))))
	pdf.Ln(10)
	pdf.SetTextColor(0, 0, 0)

	// Summary block
	pdf.SetFont("Helvetica", "B", 10)
	summary := []struct {
		label string
		value string
	}{
		{"Total Rentas", fmt.Sprintf("%d", stats.TotalRentas)},
		{"Rentas Activas", fmt.Sprintf("%d", stats.RentasActivas)},
		{"Rentas Devueltas", fmt.Sprintf("%d", stats.RentasDevueltas)},
		{"Ingresos Totales", "$" + stats.IngresoTotal.StringFixed(2)},
	}
	for _, item := range summary {
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(45, 8, tr(item.label), "1", 0, "L", true, 0, "")
		pdf.CellFormat(25, 8, item.value, "1", 0, "R", false, 0, "")
	}
	pdf.Ln(14)

	// Table header
	headers := []struct {
		label string
		width float64
	}{
		{"Fecha Renta", 28},
		{"Fecha Dev.", 28},
		{"Cliente", 50},
		{"Vehículo", 60},
		{"Estado", 24},
		{"Días", 14},
		{"Monto/Día", 26},
		{"Total", 26},
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(50, 60, 100)
	pdf.SetTextColor(255, 255, 255)
	for _, h := range headers {
		pdf.CellFormat(h.width, 8, tr(h.label), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// Rows
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	fill := false
	for _, r := range rentas {
		pdf.SetFillColor(245, 245, 245)

		fechaDev := "-"
		if r.FechaDevolucion != nil {
			fechaDev = r.FechaDevolucion.Format("2006-01-02")
		}
		cliente := "-"
		if r.Cliente != nil {
			cliente = r.Cliente.Nombre
		}
		vehiculo := "-"
		if r.Vehiculo != nil {
			vehiculo = r.Vehiculo.Descripcion
			if r.Vehiculo.NoPlaca != "" {
				vehiculo += " (" + r.Vehiculo.NoPlaca + ")"
			}
		}

		cells := []struct {
			value string
			width float64
			align string
		}{
			{r.FechaRenta.Format("2006-01-02"), 28, "C"},
			{fechaDev, 28, "C"},
			{cliente, 50, "L"},
			{vehiculo, 60, "L"},
			{string(r.Estado), 24, "C"},
			{fmt.Sprintf("%d", r.CantidadDias), 14, "R"},
			{"$" + r.MontoPorDia.StringFixed(2), 26, "R"},
			{"$" + r.Total().StringFixed(2), 26, "R"},
		}
		for _, cell := range cells {
			pdf.CellFormat(cell.width, 7, tr(cell.value), "1", 0, cell.align, fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	if len(rentas) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(256, 8, tr("Sin rentas para los filtros seleccionados"), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
