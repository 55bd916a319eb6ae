package swagger

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func Handler() http.Handler {
	// Serve the swagger UI backed by the OpenAPI spec served at root
	return httpSwagger.Handler(
		httpSwagger.URL("/openapi.yml"),
	)
}
