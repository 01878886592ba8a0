package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/brunobiangulo/tgschema/schema"
)

// Sheet names of the workbook written by XLSX.
const (
	SheetTypes   = "Types"
	SheetMethods = "Methods"
	SheetChanges = "Changes"
)

var (
	typesHeader   = []any{"Type", "Field", "Field type", "Description"}
	methodsHeader = []any{"Method", "Returns", "Parameter", "Parameter type", "Required", "Description"}
	changesHeader = []any{"Date", "Version", "Change"}
)

// XLSX writes s as a workbook with one sheet each for types, methods and
// recent changes. Every field, parameter or change item gets its own row;
// an entity without any still gets one row carrying its name.
func XLSX(w io.Writer, s *schema.Schema) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetTypes); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	for _, name := range []string{SheetMethods, SheetChanges} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	sheets := []struct {
		name   string
		header []any
		rows   [][]any
	}{
		{SheetTypes, typesHeader, typeRows(s.Types)},
		{SheetMethods, methodsHeader, methodRows(s.Methods)},
		{SheetChanges, changesHeader, changeRows(s.RecentChanges)},
	}
	for _, sh := range sheets {
		if err := writeSheet(f, sh.name, sh.header, sh.rows, bold); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("sheet %s header: %w", sheet, err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("sheet %s header style: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

func typeRows(types []schema.Type) [][]any {
	var rows [][]any
	for _, t := range types {
		if len(t.Fields) == 0 {
			rows = append(rows, []any{t.Name, "", "", t.Description})
			continue
		}
		for _, fld := range t.Fields {
			rows = append(rows, []any{t.Name, fld.Name, fld.Type.String(), fld.Description})
		}
	}
	return rows
}

func methodRows(methods []schema.Method) [][]any {
	var rows [][]any
	for _, m := range methods {
		ret := m.ReturnType.String()
		if len(m.Params) == 0 {
			rows = append(rows, []any{m.Name, ret, "", "", "", m.Description})
			continue
		}
		for _, p := range m.Params {
			rows = append(rows, []any{m.Name, ret, p.Name, p.Type.String(), p.Required.String(), p.Description})
		}
	}
	return rows
}

func changeRows(changes []schema.Change) [][]any {
	var rows [][]any
	for _, c := range changes {
		if len(c.Changes) == 0 {
			rows = append(rows, []any{c.Date, c.Version, ""})
			continue
		}
		for _, item := range c.Changes {
			rows = append(rows, []any{c.Date, c.Version, item})
		}
	}
	return rows
}
