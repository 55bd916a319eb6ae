package sqlite_test

import (
	"testing"

	"github.com/frahmantamala/finance-tracker/internal/auth"
	authsqlite "github.com/frahmantamala/finance-tracker/internal/auth/sqlite"
	"github.com/frahmantamala/finance-tracker/internal/user"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestAuthRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Repository Suite")
}

var _ = Describe("Auth SQLite Repository", func() {
	var (
		db   *gorm.DB
		repo auth.UserRepository
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&user.User{})
		Expect(err).NotTo(HaveOccurred())

		repo = authsqlite.NewRepository(db)
	})

	Describe("CreateUser", func() {
		It("should persist the username and hash", func() {
			err := repo.CreateUser("alice", "hashed-password")
			Expect(err).NotTo(HaveOccurred())

			hash, err := repo.GetPasswordHash("alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).To(Equal("hashed-password"))
		})

		It("should surface a duplicate username as ErrUsernameTaken", func() {
			Expect(repo.CreateUser("alice", "hash-one")).To(Succeed())

			err := repo.CreateUser("alice", "hash-two")
			Expect(err).To(Equal(auth.ErrUsernameTaken))
		})
	})

	Describe("GetPasswordHash", func() {
		It("should report unknown users as invalid credentials", func() {
			_, err := repo.GetPasswordHash("nobody")
			Expect(err).To(Equal(auth.ErrInvalidCredentials))
		})
	})

	Describe("UserExists", func() {
		It("should distinguish existing from missing accounts", func() {
			Expect(repo.CreateUser("alice", "hash")).To(Succeed())

			exists, err := repo.UserExists("alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())

			exists, err = repo.UserExists("bob")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})
	})
})
