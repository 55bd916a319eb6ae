package internal_test

import (
	"testing"
	"time"

	"github.com/frahmantamala/finance-tracker/internal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

func validConfig() *internal.Config {
	return &internal.Config{
		Server: internal.ServerConfig{
			Port:         8080,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  time.Minute,
		},
		Database: internal.DatabaseConfig{
			Driver:       "sqlite",
			Source:       ":memory:",
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		},
		Security: internal.SecurityConfig{
			AccessTokenSecret:    "access-secret-0123456789abcdef0123",
			RefreshTokenSecret:   "refresh-secret-0123456789abcdef012",
			AccessTokenDuration:  15 * time.Minute,
			RefreshTokenDuration: 7 * 24 * time.Hour,
			BCryptCost:           12,
		},
	}
}

var _ = Describe("Config validation", func() {
	It("should accept a complete configuration", func() {
		Expect(validConfig().Validate()).To(Succeed())
	})

	It("should reject an out-of-range port", func() {
		cfg := validConfig()
		cfg.Server.Port = 0
		Expect(cfg.Validate()).NotTo(Succeed())
	})

	It("should reject an unknown database driver", func() {
		cfg := validConfig()
		cfg.Database.Driver = "oracle"
		Expect(cfg.Validate()).NotTo(Succeed())
	})

	It("should reject more idle than open connections", func() {
		cfg := validConfig()
		cfg.Database.MaxIdleConns = 20
		Expect(cfg.Validate()).NotTo(Succeed())
	})

	It("should reject short token secrets", func() {
		cfg := validConfig()
		cfg.Security.AccessTokenSecret = "short"
		Expect(cfg.Validate()).NotTo(Succeed())
	})

	It("should reject a bcrypt cost outside the working range", func() {
		cfg := validConfig()
		cfg.Security.BCryptCost = 4
		Expect(cfg.Validate()).NotTo(Succeed())

		cfg.Security.BCryptCost = 20
		Expect(cfg.Validate()).NotTo(Succeed())
	})
})

var _ = Describe("LoadConfigFromEnv", func() {
	It("should apply defaults when the environment is empty", func() {
		cfg := internal.LoadConfigFromEnv()
		Expect(cfg.Server.Port).To(Equal(8080))
		Expect(cfg.Database.Driver).To(Equal("sqlite"))
		Expect(cfg.Security.BCryptCost).To(Equal(12))
	})
})
