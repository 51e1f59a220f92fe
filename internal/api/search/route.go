package search

import (
	"github.com/gofiber/fiber/v3"
)

// RegisterRoutes registers search routes on the provided router.
func RegisterRoutes(r fiber.Router, svc Searcher) {
	r.Post("/search", HandleSearch(svc))
}
