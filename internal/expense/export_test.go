package expense_test

import (
	"bytes"
	"strings"

	"github.com/frahmantamala/finance-tracker/internal/expense"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("CSV Export", func() {
	It("should write only the header for an empty set", func() {
		var buf bytes.Buffer
		Expect(expense.WriteCSV(&buf, nil)).To(Succeed())

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		Expect(lines).To(HaveLen(1))
		Expect(lines[0]).To(Equal("id,date,category,amount,description"))
	})

	It("should write one row per expense after the header", func() {
		expenses := []*expense.Expense{
			{ID: 1, ExpenseDate: "2026-08-01", Category: "Food", Amount: decimal.NewFromFloat(125.50), Description: "lunch"},
			{ID: 2, ExpenseDate: "2026-08-02", Category: "Transport", Amount: decimal.NewFromInt(40), Description: "bus"},
		}

		var buf bytes.Buffer
		Expect(expense.WriteCSV(&buf, expenses)).To(Succeed())

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		Expect(lines).To(HaveLen(3))
		Expect(lines[1]).To(Equal("1,2026-08-01,Food,125.50,lunch"))
		Expect(lines[2]).To(Equal("2,2026-08-02,Transport,40.00,bus"))
	})

	It("should quote fields containing commas", func() {
		expenses := []*expense.Expense{
			{ID: 1, ExpenseDate: "2026-08-01", Category: "Food", Amount: decimal.NewFromInt(10), Description: "bread, milk"},
		}

		var buf bytes.Buffer
		Expect(expense.WriteCSV(&buf, expenses)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring(`"bread, milk"`))
	})
})
