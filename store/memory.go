package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/aromabeans/coffee-feedback/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory Store used by tests and local demos.
type MemoryStore struct {
	mu          sync.RWMutex
	categories  []string
	products    []models.Product
	feedbacks   []models.Feedback
	shopkeepers []models.Shopkeeper
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Categories(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.categories))
	copy(out, m.categories)
	return out, nil
}

func (m *MemoryStore) AddCategory(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.categories {
		if c == name {
			return ErrExists
		}
	}
	m.categories = append(m.categories, name)
	return nil
}

func (m *MemoryStore) DeleteCategory(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.categories {
		if c == name {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) Products(ctx context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *MemoryStore) AddProduct(ctx context.Context, p models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.products {
		if existing.Name == p.Name {
			return ErrExists
		}
	}
	m.products = append(m.products, p)
	return nil
}

func (m *MemoryStore) DeleteProduct(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.products {
		if p.Name == name {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) InsertFeedback(ctx context.Context, f *models.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	if f.Timestamp.IsZero() {
		f.Timestamp = time.Now().UTC()
	}
	m.feedbacks = append(m.feedbacks, *f)
	return nil
}

func (m *MemoryStore) ListFeedbacks(ctx context.Context) ([]models.Feedback, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Feedback, len(m.feedbacks))
	copy(out, m.feedbacks)
	return out, nil
}

func (m *MemoryStore) InsertShopkeeper(ctx context.Context, s *models.Shopkeeper) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.shopkeepers {
		if strings.EqualFold(existing.Email, s.Email) {
			return ErrExists
		}
	}
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	m.shopkeepers = append(m.shopkeepers, *s)
	return nil
}

func (m *MemoryStore) UpdateShopkeeper(ctx context.Context, s *models.Shopkeeper) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.shopkeepers {
		if existing.ID == s.ID {
			m.shopkeepers[i] = *s
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) ShopkeeperByEmail(ctx context.Context, email string) (*models.Shopkeeper, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.shopkeepers {
		if strings.EqualFold(m.shopkeepers[i].Email, email) {
			copy := m.shopkeepers[i]
			return &copy, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) LatestShopkeeper(ctx context.Context) (*models.Shopkeeper, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.shopkeepers) == 0 {
		return nil, ErrNotFound
	}
	copy := m.shopkeepers[len(m.shopkeepers)-1]
	return &copy, nil
}
