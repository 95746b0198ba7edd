// internal/app/store/orders/orderstore.go
package orderstore

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/oniumlabs/oniumadmin/internal/app/system/paging"
	"github.com/oniumlabs/oniumadmin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	orders *mongo.Collection
	items  *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		orders: db.Collection("orders"),
		items:  db.Collection("order_items"),
	}
}

// Create inserts a new Order with its line items, deriving CustomerNameCI
// and setting timestamps.
func (s *Store) Create(ctx context.Context, o models.Order, items []models.OrderItem) (models.Order, error) {
	now := time.Now().UTC()

	o.ID = primitive.NewObjectID()
	o.CustomerNameCI = text.Fold(o.CustomerName)
	o.CreatedAt = now
	o.UpdatedAt = &now

	if strings.TrimSpace(o.CustomerName) == "" {
		return models.Order{}, mongo.CommandError{Message: "customer_name is required"}
	}
	if !o.Status.IsValid() {
		return models.Order{}, mongo.CommandError{Message: "unknown order status"}
	}
	if o.TotalPrice < 0 {
		return models.Order{}, mongo.CommandError{Message: "total_price cannot be negative"}
	}

	if _, err := s.orders.InsertOne(ctx, o); err != nil {
		return models.Order{}, err
	}

	if len(items) > 0 {
		docs := make([]any, 0, len(items))
		for i := range items {
			items[i].ID = primitive.NewObjectID()
			items[i].OrderID = o.ID
			items[i].CreatedAt = now
			docs = append(docs, items[i])
		}
		if _, err := s.items.InsertMany(ctx, docs); err != nil {
			return models.Order{}, err
		}
	}
	return o, nil
}

// buildFilter combines the status filter with a search term. A search term
// that parses as an ObjectID also matches the order ID exactly; every term
// matches a case-insensitive substring of the customer name. An order
// matching either condition qualifies.
func buildFilter(status models.OrderStatus, search string) bson.M {
	f := bson.M{}
	if status != "" {
		f["status"] = status
	}

	search = strings.TrimSpace(search)
	if search == "" {
		return f
	}

	nameMatch := bson.M{"customer_name_ci": primitive.Regex{Pattern: regexp.QuoteMeta(text.Fold(search))}}
	if id, err := primitive.ObjectIDFromHex(search); err == nil {
		f["$or"] = []bson.M{{"_id": id}, nameMatch}
	} else {
		f["customer_name_ci"] = nameMatch["customer_name_ci"]
	}
	return f
}

// FindPage returns one page of orders, newest first, matching the status
// filter and search term. The returned Page carries totals for numbered
// pagination.
func (s *Store) FindPage(ctx context.Context, status models.OrderStatus, search string, pageNum int) ([]models.Order, paging.Page, error) {
	filter := buildFilter(status, search)

	total, err := s.orders.CountDocuments(ctx, filter)
	if err != nil {
		return nil, paging.Page{}, err
	}
	page := paging.Compute(pageNum, total)

	cur, err := s.orders.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Skip).
		SetLimit(page.Limit))
	if err != nil {
		return nil, paging.Page{}, err
	}
	defer cur.Close(ctx)

	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, paging.Page{}, err
	}
	return orders, page, nil
}

// GetByID returns an order by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Order, error) {
	var o models.Order
	err := s.orders.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if err != nil {
		return models.Order{}, err
	}
	return o, nil
}

// ItemsForOrder returns the line items of a single order.
func (s *Store) ItemsForOrder(ctx context.Context, orderID primitive.ObjectID) ([]models.OrderItem, error) {
	cur, err := s.items.Find(ctx, bson.M{"order_id": orderID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.OrderItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ItemsForOrders fetches the line items of all given orders in one query
// and groups them by order ID.
func (s *Store) ItemsForOrders(ctx context.Context, orderIDs []primitive.ObjectID) (map[primitive.ObjectID][]models.OrderItem, error) {
	out := make(map[primitive.ObjectID][]models.OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return out, nil
	}

	cur, err := s.items.Find(ctx, bson.M{"order_id": bson.M{"$in": orderIDs}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.OrderItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	for _, it := range items {
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, nil
}

// UpdateStatus sets the status of one order and returns the order as it now
// stands in the database, so callers render confirmed state rather than what
// they hoped was written.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (models.Order, error) {
	if !status.IsValid() {
		return models.Order{}, mongo.CommandError{Message: "unknown order status"}
	}

	var o models.Order
	err := s.orders.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&o)
	if err != nil {
		return models.Order{}, err
	}
	return o, nil
}

// BulkUpdateStatus sets the status on every order in ids with a single
// UpdateMany. Returns the number of orders modified.
func (s *Store) BulkUpdateStatus(ctx context.Context, ids []primitive.ObjectID, status models.OrderStatus) (int64, error) {
	if !status.IsValid() {
		return 0, mongo.CommandError{Message: "unknown order status"}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	res, err := s.orders.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// AllAscending returns every order sorted oldest first. The dashboard and
// customer aggregation both consume the full set.
func (s *Store) AllAscending(ctx context.Context) ([]models.Order, error) {
	cur, err := s.orders.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// AllItems returns every order line item. Used for best-seller aggregation.
func (s *Store) AllItems(ctx context.Context) ([]models.OrderItem, error) {
	cur, err := s.items.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.OrderItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Count returns the number of orders matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.orders.CountDocuments(ctx, filter)
}
