package rest_test

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRest(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "REST Transport Suite")
}

var _ = Describe("OpenAPI document", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("../../../api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should be a valid OpenAPI 3 document", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("should describe every registered route", func() {
		for _, path := range []string{
			"/auth/signup",
			"/auth/login",
			"/auth/refresh",
			"/auth/logout",
			"/users/me",
			"/categories",
			"/categories/{name}",
			"/expenses",
			"/expenses/export",
			"/expenses/{id}",
			"/budgets",
			"/dashboard",
			"/reports/categories",
			"/health",
			"/ping",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "missing path %s", path)
		}
	})

	It("should require bearer auth on protected operations", func() {
		item := doc.Paths.Find("/expenses")
		Expect(item).NotTo(BeNil())
		Expect(item.Get.Security).NotTo(BeNil())
	})
})
