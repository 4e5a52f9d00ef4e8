// Package export renders quote and material listings as CSV, PDF or XLSX.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"project_materials/internal/domain/entities"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

const sheet = "Sheet1"

var ErrUnsupportedFormat = errors.New("unsupported export format")

// ParseFormat resolves the format query value. An empty value means CSV.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, raw)
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv"
	}
}

// FileName returns the attachment name for a listing, e.g. quotes.pdf.
func (f Format) FileName(base string) string {
	return base + "." + string(f)
}

// listing is the format-neutral shape of an export: a header plus rows for
// the tabular formats and one summary line per record for PDF.
type listing struct {
	title  string
	header []string
	rows   [][]any
	lines  []string
}

func Quotes(w io.Writer, f Format, quotes []entities.Quote) error {
	l := listing{
		title:  "Project Quotes",
		header: []string{"id", "project_id", "supplier_id", "material_id", "service_id", "quantity", "price"},
	}
	for _, q := range quotes {
		l.rows = append(l.rows, []any{q.ID, q.ProjectID, q.SupplierID, optionalInt(q.MaterialID), optionalInt(q.ServiceID), q.Quantity, q.Price})
		l.lines = append(l.lines, fmt.Sprintf("%d %d %d %s @ %s", q.ID, q.ProjectID, q.SupplierID, formatFloat(q.Quantity), formatFloat(q.Price)))
	}
	return l.write(w, f)
}

func Materials(w io.Writer, f Format, materials []entities.Material) error {
	l := listing{
		title:  "Materials",
		header: []string{"id", "name", "unit", "notes"},
	}
	for _, m := range materials {
		var notes any
		if m.Notes != nil {
			notes = *m.Notes
		}
		l.rows = append(l.rows, []any{m.ID, m.Name, m.Unit, notes})
		l.lines = append(l.lines, fmt.Sprintf("%d %s (%s)", m.ID, m.Name, m.Unit))
	}
	return l.write(w, f)
}

func (l listing) write(w io.Writer, f Format) error {
	switch f {
	case FormatCSV:
		return l.writeCSV(w)
	case FormatPDF:
		return l.writePDF(w)
	case FormatXLSX:
		return l.writeXLSX(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}

func (l listing) writeCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(l.header); err != nil {
		return err
	}
	for _, row := range l.rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = cellText(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (l listing) writePDF(w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, l.title)
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 11)
	for _, line := range l.lines {
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}
	return pdf.Output(w)
}

func (l listing) writeXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	for col, name := range l.header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}
	for r, row := range l.rows {
		for col, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return f.Write(w)
}

func optionalInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func cellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case int:
		return strconv.Itoa(t)
	case float64:
		return formatFloat(t)
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
