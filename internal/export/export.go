// Package export 把 store 快照輸出成 json、yaml 或 xlsx
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

var Formats = []Format{FormatJSON, FormatYAML, FormatXLSX}

func ParseFormat(v string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(v)))
	if f == "yml" {
		f = FormatYAML
	}
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("unsupported export format %q, want one of %v", v, Formats)
	}
	return f, nil
}

func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json"
	}
}

// Sheet 一個工作表；第一列為標題
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteYAML model 只有 json tag，先轉成 map/slice 讓 yaml 欄位名與 API 一致
func WriteYAML(w io.Writer, v any) error {
	plain, err := toPlain(v)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(plain); err != nil {
		return err
	}
	return enc.Close()
}

func WriteXLSX(w io.Writer, sheets ...Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, sheet := range sheets {
		name := sheetName(sheet.Name)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}

		for col, header := range sheet.Headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			if err := f.SetCellValue(name, cell, header); err != nil {
				return err
			}
			if err := f.SetCellStyle(name, cell, cell, headerStyle); err != nil {
				return err
			}
		}
		for r, row := range sheet.Rows {
			for col, value := range row {
				cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
				if err := f.SetCellValue(name, cell, value); err != nil {
					return err
				}
			}
		}
		if len(sheet.Headers) > 0 {
			last, _ := excelize.ColumnNumberToName(len(sheet.Headers))
			_ = f.SetColWidth(name, "A", last, 18)
		}
	}
	f.SetActiveSheet(0)
	_, err = f.WriteTo(w)
	return err
}

// SheetFromRecords 把任意 struct slice 轉成工作表，欄位依 json key 排序；巢狀值以 JSON 字串呈現
func SheetFromRecords(name string, records any) (Sheet, error) {
	plain, err := toPlain(records)
	if err != nil {
		return Sheet{}, err
	}
	sheet := Sheet{Name: name}

	switch v := plain.(type) {
	case []any:
		var keys []string
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				for k := range m {
					if !slices.Contains(keys, k) {
						keys = append(keys, k)
					}
				}
			}
		}
		slices.Sort(keys)
		sheet.Headers = keys
		for _, item := range v {
			m, _ := item.(map[string]any)
			row := make([]any, len(keys))
			for i, k := range keys {
				row[i] = cellValue(m[k])
			}
			sheet.Rows = append(sheet.Rows, row)
		}
	default:
		sheet.Headers = []string{"value"}
		sheet.Rows = [][]any{{cellValue(v)}}
	}
	return sheet, nil
}

func cellValue(v any) any {
	switch v.(type) {
	case nil:
		return ""
	case map[string]any, []any:
		b, _ := json.Marshal(v)
		return string(b)
	default:
		return v
	}
}

func toPlain(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// sheetName excel 工作表名稱最長 31 字且不可含 []:*?/\
func sheetName(name string) string {
	name = strings.NewReplacer("[", "", "]", "", ":", "-", "*", "", "?", "", "/", "-", "\\", "-").Replace(name)
	if name == "" {
		name = "Sheet"
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
