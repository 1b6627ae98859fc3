package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mindanaodata/edu-portal/services"
	"github.com/mindanaodata/edu-portal/utils/response"
)

// HandleCheckHealth returns the /ping handler. It touches the generated
// collection so a broken constant table surfaces here too.
func HandleCheckHealth(datasets *services.DatasetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		coll, err := datasets.Collection()
		if err != nil {
			return response.ServiceUnavailable(c, "Dataset generation failed: "+err.Error())
		}
		return response.Success(c, fiber.Map{
			"status": "ok",
			"seed":   coll.Seed,
			"tables": len(coll.Tables()),
		})
	}
}
