package comic

import (
	"github.com/gofiber/fiber/v3"
)

// RegisterRoutes registers comic routes on the provided router.
func RegisterRoutes(r fiber.Router, svc Illustrator) {
	r.Post("/comic", HandleComic(svc))
}
