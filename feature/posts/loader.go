package posts

import (
	"jsonplaceholder/core/api"
	"jsonplaceholder/core/app"
	"jsonplaceholder/core/repository"

	"github.com/gofiber/fiber/v2"
)

// Path is the remote collection and the local route prefix.
const Path = "posts"

// Repository reconciles cached posts with the remote collection.
type Repository = repository.Repository[int64, *Post]

// NewRepository creates the posts repository over a.
func NewRepository(a *app.App) (*Repository, error) {
	return repository.FromApp[int64, Post](a, Path)
}

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *api.CRUD[int64, *Post]
}

// NewFeature creates the posts feature.
func NewFeature(a *app.App, repo *Repository) *Feature {
	h := api.NewCRUD[int64, *Post](repo, func() *Post { return &Post{} }, a.Logger.Named(Path))
	return &Feature{handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return Path
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(router fiber.Router) error {
	f.handler.RegisterRoutes(router.Group("/" + Path))
	return nil
}
