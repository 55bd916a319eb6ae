package expense

import (
	"encoding/csv"
	"io"
	"strconv"
)

// csvHeader matches the Expense field names; an empty export is exactly this
// one line.
var csvHeader = []string{"id", "date", "category", "amount", "description"}

// WriteCSV streams the expenses as comma-separated values, one row per
// expense after the header.
func WriteCSV(w io.Writer, expenses []*Expense) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, exp := range expenses {
		record := []string{
			strconv.FormatInt(exp.ID, 10),
			exp.ExpenseDate,
			exp.Category,
			exp.Amount.StringFixed(2),
			exp.Description,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
