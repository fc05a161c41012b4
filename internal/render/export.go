package render

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"kanban/internal/domain"
	apperrors "kanban/internal/errors"
)

// Format is an export format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat checks s names a supported export format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", apperrors.NewBadFormatError(s)
	}
}

type exportedBoard struct {
	Columns []domain.Column `json:"columns"`
}

// Export writes b to w in the given format.
func Export(w io.Writer, b domain.Board, format string) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}
	if f == FormatCSV {
		return exportCSV(w, b)
	}
	return exportJSON(w, b)
}

func exportJSON(w io.Writer, b domain.Board) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exportedBoard{Columns: b.OrderedColumns()})
}

func exportCSV(w io.Writer, b domain.Board) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"column", "position", "id", "content"}); err != nil {
		return err
	}
	for _, col := range b.OrderedColumns() {
		for i, task := range col.Tasks {
			record := []string{string(col.ID), strconv.Itoa(i), task.ID, task.Content}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
