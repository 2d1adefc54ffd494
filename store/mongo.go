package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aromabeans/coffee-feedback/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection layout carried over from the original deployment: feedback data
// lives in FeedbackDB, shopkeeper accounts in ShopkeepersDB.
const (
	feedbackDB     = "FeedbackDB"
	shopkeeperDB   = "ShopkeepersDB"
	colFeedbacks   = "feedbacks"
	colCategories  = "feedback_categories"
	colProducts    = "Products"
	colShopkeepers = "shopkeepers"
)

// MongoStore implements Store on top of MongoDB.
type MongoStore struct {
	client *mongo.Client
}

// ConnectMongo dials MongoDB and verifies the connection with a ping.
func ConnectMongo(uri string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return &MongoStore{client: client}, nil
}

// Close disconnects the underlying client.
func (m *MongoStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoStore) categories() *mongo.Collection {
	return m.client.Database(feedbackDB).Collection(colCategories)
}

func (m *MongoStore) products() *mongo.Collection {
	return m.client.Database(feedbackDB).Collection(colProducts)
}

func (m *MongoStore) feedbacks() *mongo.Collection {
	return m.client.Database(feedbackDB).Collection(colFeedbacks)
}

func (m *MongoStore) shopkeepers() *mongo.Collection {
	return m.client.Database(shopkeeperDB).Collection(colShopkeepers)
}

func (m *MongoStore) Categories(ctx context.Context) ([]string, error) {
	cur, err := m.categories().Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"_id": 0, "name": 1}))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cur.Close(ctx)

	var names []string
	for cur.Next(ctx) {
		var c models.Category
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		names = append(names, c.Name)
	}
	return names, cur.Err()
}

func (m *MongoStore) AddCategory(ctx context.Context, name string) error {
	err := m.categories().FindOne(ctx, bson.M{"name": name}).Err()
	if err == nil {
		return ErrExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	_, err = m.categories().InsertOne(ctx, bson.M{"name": name})
	return err
}

func (m *MongoStore) DeleteCategory(ctx context.Context, name string) error {
	res, err := m.categories().DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoStore) Products(ctx context.Context) ([]models.Product, error) {
	cur, err := m.products().Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"_id": 0, "name": 1, "price": 1}))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (m *MongoStore) AddProduct(ctx context.Context, p models.Product) error {
	err := m.products().FindOne(ctx, bson.M{"name": p.Name}).Err()
	if err == nil {
		return ErrExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	_, err = m.products().InsertOne(ctx, p)
	return err
}

func (m *MongoStore) DeleteProduct(ctx context.Context, name string) error {
	res, err := m.products().DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoStore) InsertFeedback(ctx context.Context, f *models.Feedback) error {
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	if f.Timestamp.IsZero() {
		f.Timestamp = time.Now().UTC()
	}
	_, err := m.feedbacks().InsertOne(ctx, f)
	return err
}

func (m *MongoStore) ListFeedbacks(ctx context.Context) ([]models.Feedback, error) {
	cur, err := m.feedbacks().Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"timestamp": -1}))
	if err != nil {
		return nil, fmt.Errorf("list feedbacks: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Feedback
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MongoStore) InsertShopkeeper(ctx context.Context, s *models.Shopkeeper) error {
	err := m.shopkeepers().FindOne(ctx, bson.M{"email": s.Email}).Err()
	if err == nil {
		return ErrExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	_, err = m.shopkeepers().InsertOne(ctx, s)
	return err
}

func (m *MongoStore) UpdateShopkeeper(ctx context.Context, s *models.Shopkeeper) error {
	s.UpdatedAt = time.Now().UTC()
	res, err := m.shopkeepers().ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoStore) ShopkeeperByEmail(ctx context.Context, email string) (*models.Shopkeeper, error) {
	var s models.Shopkeeper
	err := m.shopkeepers().FindOne(ctx, bson.M{"email": email}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (m *MongoStore) LatestShopkeeper(ctx context.Context) (*models.Shopkeeper, error) {
	var s models.Shopkeeper
	err := m.shopkeepers().FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.M{"_id": -1})).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
