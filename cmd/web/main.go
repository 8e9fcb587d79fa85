// @title           folio API
// @version         1.0
// @description     Portfolio profile backend: owners manage their profile content, visitors read the aggregated public page.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization

package main

import (
	"folio_backend/internal/app"

	_ "folio_backend/docs"
)

func main() {
	app.Run()
}
