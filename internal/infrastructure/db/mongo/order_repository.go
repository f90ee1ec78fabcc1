package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trashgo/delivery-api/internal/core/domain"
)

const ordersCollection = "orders"

// OrderRepository persists orders in the orders collection. Status mutations
// are single atomic updates that set the new state and push a history entry.
type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

// EnsureIndexes creates the lookup indexes on user_id and courier_id.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "courier_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return &order, nil
}

func (r *OrderRepository) List(ctx context.Context, skip, limit int) ([]*domain.Order, error) {
	return r.find(ctx, bson.M{}, skip, limit)
}

// ListByUser returns orders owned by userID or assigned to it as courier.
func (r *OrderRepository) ListByUser(ctx context.Context, userID string, skip, limit int) ([]*domain.Order, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"user_id": userID},
		bson.M{"courier_id": userID},
	}}
	return r.find(ctx, filter, skip, limit)
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M, skip, limit int) ([]*domain.Order, error) {
	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	orders := make([]*domain.Order, 0)
	for cur.Next(ctx) {
		var order domain.Order
		if err := cur.Decode(&order); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, &order)
	}
	return orders, cur.Err()
}

// UpdateStatus atomically sets the new status and appends a history entry,
// returning the updated order.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, change domain.StatusChange) (*domain.Order, error) {
	update := bson.M{
		"$set":  bson.M{"status": change.Status},
		"$push": bson.M{"status_history": change},
	}
	return r.findOneAndUpdate(ctx, id, update)
}

// AssignCourier atomically sets the courier, moves the order to assigned, and
// appends a history entry.
func (r *OrderRepository) AssignCourier(ctx context.Context, id, courierID string, change domain.StatusChange) (*domain.Order, error) {
	update := bson.M{
		"$set":  bson.M{"courier_id": courierID, "status": change.Status},
		"$push": bson.M{"status_history": change},
	}
	return r.findOneAndUpdate(ctx, id, update)
}

func (r *OrderRepository) findOneAndUpdate(ctx context.Context, id string, update bson.M) (*domain.Order, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order domain.Order
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("update order: %w", err)
	}
	return &order, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
