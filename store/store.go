package store

import (
	"context"
	"errors"

	"github.com/aromabeans/coffee-feedback/models"
)

var (
	ErrNotFound = errors.New("not found")
	ErrExists   = errors.New("already exists")
)

// Store is the persistence surface the API handlers depend on. The Mongo
// implementation backs the server; the memory implementation backs tests.
type Store interface {
	Categories(ctx context.Context) ([]string, error)
	AddCategory(ctx context.Context, name string) error
	DeleteCategory(ctx context.Context, name string) error

	Products(ctx context.Context) ([]models.Product, error)
	AddProduct(ctx context.Context, p models.Product) error
	DeleteProduct(ctx context.Context, name string) error

	InsertFeedback(ctx context.Context, f *models.Feedback) error
	ListFeedbacks(ctx context.Context) ([]models.Feedback, error)

	InsertShopkeeper(ctx context.Context, s *models.Shopkeeper) error
	UpdateShopkeeper(ctx context.Context, s *models.Shopkeeper) error
	ShopkeeperByEmail(ctx context.Context, email string) (*models.Shopkeeper, error)
	// LatestShopkeeper returns the most recently registered shopkeeper, the
	// notification recipient.
	LatestShopkeeper(ctx context.Context) (*models.Shopkeeper, error)
}
