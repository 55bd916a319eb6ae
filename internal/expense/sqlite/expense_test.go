package sqlite_test

import (
	"testing"

	"github.com/frahmantamala/finance-tracker/internal/expense"
	expensesqlite "github.com/frahmantamala/finance-tracker/internal/expense/sqlite"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestExpenseRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Expense Repository Suite")
}

var _ = Describe("Expense SQLite Repository", func() {
	var (
		db   *gorm.DB
		repo expense.Repository
	)

	add := func(username, date, category string, amount int64) *expense.Expense {
		exp := &expense.Expense{
			Username:    username,
			ExpenseDate: date,
			Category:    category,
			Amount:      decimal.NewFromInt(amount),
		}
		Expect(repo.Create(exp)).To(Succeed())
		return exp
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&expense.Expense{})
		Expect(err).NotTo(HaveOccurred())

		repo = expensesqlite.NewExpenseRepository(db)
	})

	Describe("Create", func() {
		It("should assign ascending ids", func() {
			first := add("alice", "2026-08-01", "Food", 100)
			second := add("alice", "2026-08-02", "Food", 200)
			Expect(second.ID).To(BeNumerically(">", first.ID))
		})
	})

	Describe("ListByUsername", func() {
		It("should order newest date first", func() {
			add("alice", "2026-08-01", "Food", 100)
			add("alice", "2026-08-15", "Transport", 50)
			add("alice", "2026-07-20", "Health", 300)

			expenses, err := repo.ListByUsername("alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(expenses).To(HaveLen(3))
			Expect(expenses[0].ExpenseDate).To(Equal("2026-08-15"))
			Expect(expenses[1].ExpenseDate).To(Equal("2026-08-01"))
			Expect(expenses[2].ExpenseDate).To(Equal("2026-07-20"))
		})

		It("should break same-date ties by newest id first", func() {
			first := add("alice", "2026-08-01", "Food", 100)
			second := add("alice", "2026-08-01", "Food", 200)

			expenses, err := repo.ListByUsername("alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(expenses[0].ID).To(Equal(second.ID))
			Expect(expenses[1].ID).To(Equal(first.ID))
		})

		It("should scope to the owner", func() {
			add("alice", "2026-08-01", "Food", 100)
			add("bob", "2026-08-01", "Food", 999)

			expenses, err := repo.ListByUsername("alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(expenses).To(HaveLen(1))
			Expect(expenses[0].Amount.Equal(decimal.NewFromInt(100))).To(BeTrue())
		})
	})

	Describe("DeleteByIDAndUsername", func() {
		It("should delete when both keys match", func() {
			exp := add("alice", "2026-08-01", "Food", 100)

			rows, err := repo.DeleteByIDAndUsername(exp.ID, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(Equal(int64(1)))
		})

		It("should not delete another user's row", func() {
			exp := add("alice", "2026-08-01", "Food", 100)

			rows, err := repo.DeleteByIDAndUsername(exp.ID, "mallory")
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(BeZero())

			remaining, err := repo.ListByUsername("alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(remaining).To(HaveLen(1))
		})
	})
})
