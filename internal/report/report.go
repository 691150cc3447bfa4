// Package report writes pipeline results to an Excel workbook for
// handover to the estimator and the site team.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/civildesignlab/gorcplan/internal/column"
	"github.com/civildesignlab/gorcplan/internal/pipeline"
)

const (
	summarySheet     = "Summary"
	columnsSheet     = "Columns"
	foundationsSheet = "Foundations"
	beamsSheet       = "Beams"
	boqSheet         = "BOQ"
	failuresSheet    = "Failures"
)

// WriteWorkbook writes res as an .xlsx workbook at path.
func WriteWorkbook(res *pipeline.Result, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(summarySheet)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := writeSummary(f, res); err != nil {
		return err
	}
	if err := writeColumns(f, res); err != nil {
		return err
	}
	if err := writeFoundations(f, res); err != nil {
		return err
	}
	if err := writeBeams(f, res); err != nil {
		return err
	}
	if err := writeBOQ(f, res); err != nil {
		return err
	}
	if len(res.Failed) > 0 {
		if err := writeFailures(f, res); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, res *pipeline.Result) error {
	p := res.Project
	toM := p.Units.ToMetres()

	rows := [][2]any{
		{"Project", p.Name},
		{"Run ID", res.RunID},
		{"Building Type", p.BuildingType},
		{"Floors", p.Floors},
		{"Buildable Area (m²)", res.BuildableArea() * toM * toM},
		{"Columns", len(res.Columns)},
		{"Foundations", len(res.Foundations)},
		{"Failed Elements", len(res.Failed)},
		{"Concrete (m³)", res.Totals.ConcreteVolume},
		{"Steel (kg)", res.Totals.SteelMass},
		{"Estimated Cost", res.Totals.Cost},
	}
	for i, r := range rows {
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+1), r[0])
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+1), r[1])
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	f.SetCellStyle(summarySheet, "A1", fmt.Sprintf("A%d", len(rows)), style)
	f.SetColWidth(summarySheet, "A", "A", 24)
	f.SetColWidth(summarySheet, "B", "B", 40)
	return nil
}

func setHeader(f *excelize.File, sheet string, header []string) error {
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	f.SetCellStyle(sheet, "A1", last, style)
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, v)
	}
}

func writeColumns(f *excelize.File, res *pipeline.Result) error {
	if _, err := f.NewSheet(columnsSheet); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	header := []string{"Node", "Section (mm)", "Status", "Slenderness",
		"Asc Required (mm²)", "Asc Provided (mm²)", "Steel %", "Bars"}
	if err := setHeader(f, columnsSheet, header); err != nil {
		return err
	}
	for i, c := range res.Columns {
		bars := "-"
		if c.Design.Status == column.AxiallyLoadedShort {
			bars = fmt.Sprintf("%d-%.0fmm dia", c.Design.BarCount, c.Design.BarDia)
		}
		setRow(f, columnsSheet, i+2, []any{
			c.NodeID,
			fmt.Sprintf("%.0f x %.0f", c.Design.Section.Width, c.Design.Section.Depth),
			c.Design.Status.String(),
			c.Design.Slenderness,
			c.Design.AscRequired,
			c.Design.AscProvided,
			c.Design.SteelPercent,
			bars,
		})
	}
	return nil
}

func writeFoundations(f *excelize.File, res *pipeline.Result) error {
	if _, err := f.NewSheet(foundationsSheet); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	header := []string{"Node", "Type", "Size", "Depth", "Detail"}
	if err := setHeader(f, foundationsSheet, header); err != nil {
		return err
	}
	for i, rec := range res.Foundations {
		var row []any
		switch {
		case rec.Footing != nil:
			ft := rec.Footing
			row = []any{
				rec.NodeID, "pad footing",
				fmt.Sprintf("%.1f x %.1f m", ft.Side, ft.Side),
				fmt.Sprintf("%.0f mm", ft.GrossDepth),
				fmt.Sprintf("%d-12mm dia at %.0f c/c each way", ft.BarCount, ft.BarSpacing),
			}
		case rec.Piles != nil:
			pg := rec.Piles
			row = []any{
				rec.NodeID, "pile group",
				fmt.Sprintf("%d piles, cap %.2f m", pg.Count, pg.CapSide),
				fmt.Sprintf("%.2f m", pg.CapDepth),
				fmt.Sprintf("spacing %.2f m, boring %.1f m", pg.Spacing, pg.BoringLength),
			}
		}
		setRow(f, foundationsSheet, i+2, row)
	}
	return nil
}

func writeBeams(f *excelize.File, res *pipeline.Result) error {
	if _, err := f.NewSheet(beamsSheet); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	header := []string{"Beam", "Direction", "Segments", "Span (m)",
		"Section (mm)", "Mu (kNm)", "Vu (kN)", "Ast (mm²)", "Bars"}
	if err := setHeader(f, beamsSheet, header); err != nil {
		return err
	}
	for i, b := range res.Beams {
		setRow(f, beamsSheet, i+2, []any{
			b.ID, b.Direction, b.Count, b.Design.Span,
			fmt.Sprintf("%.0f x %.0f", b.Design.Width, b.Design.GrossDepth),
			b.Design.Moment, b.Design.Shear, b.Design.AstRequired,
			fmt.Sprintf("%d-%.0fmm dia", b.Design.BarCount, b.Design.BarDia),
		})
	}
	return nil
}

func writeBOQ(f *excelize.File, res *pipeline.Result) error {
	if _, err := f.NewSheet(boqSheet); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	header := []string{"Element", "Kind", "Concrete (m³)", "Steel (kg)", "Cost"}
	if err := setHeader(f, boqSheet, header); err != nil {
		return err
	}
	row := 2
	for _, item := range res.Items {
		setRow(f, boqSheet, row, []any{
			item.Element, item.Kind, item.ConcreteVolume, item.SteelMass, item.Cost,
		})
		row++
	}
	setRow(f, boqSheet, row+1, []any{
		"TOTAL", "", res.Totals.ConcreteVolume, res.Totals.SteelMass, res.Totals.Cost,
	})
	return nil
}

func writeFailures(f *excelize.File, res *pipeline.Result) error {
	if _, err := f.NewSheet(failuresSheet); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	header := []string{"Element", "Stage", "Reason"}
	if err := setHeader(f, failuresSheet, header); err != nil {
		return err
	}
	for i, fe := range res.Failed {
		setRow(f, failuresSheet, i+2, []any{fe.Element, fe.Stage, fe.Err.Error()})
	}
	return nil
}
