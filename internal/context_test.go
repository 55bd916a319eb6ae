package internal_test

import (
	"context"
	"time"

	"github.com/frahmantamala/finance-tracker/internal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Request identity context", func() {
	It("should round-trip the username", func() {
		ctx := internal.ContextWithUsername(context.Background(), "alice")
		Expect(internal.UsernameFromContext(ctx)).To(Equal("alice"))
	})

	It("should report no identity for a bare context", func() {
		Expect(internal.UsernameFromContext(context.Background())).To(BeEmpty())
	})
})

var _ = Describe("WithTimeout", func() {
	It("should honor the requested duration", func() {
		ctx, cancel := internal.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		deadline, ok := ctx.Deadline()
		Expect(ok).To(BeTrue())
		Expect(time.Until(deadline)).To(BeNumerically(">", 50*time.Second))
	})

	It("should fall back to five seconds for a non-positive duration", func() {
		ctx, cancel := internal.WithTimeout(context.Background(), 0)
		defer cancel()

		deadline, ok := ctx.Deadline()
		Expect(ok).To(BeTrue())
		Expect(time.Until(deadline)).To(BeNumerically("<=", 5*time.Second))
		Expect(time.Until(deadline)).To(BeNumerically(">", 4*time.Second))
	})
})
