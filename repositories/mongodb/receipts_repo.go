package mongodb

import (
	// Go Internal Packages
	"context"

	// Local Packages
	models "tap-terminal/models"

	// External Packages
	"go.mongodb.org/mongo-driver/mongo"
)

// ReceiptsRepository logs every receipt the worker delivered.
type ReceiptsRepository struct {
	client     *mongo.Client
	database   string
	collection string
}

func NewReceiptsRepository(client *mongo.Client, database string) *ReceiptsRepository {
	return &ReceiptsRepository{client: client, database: database, collection: "receipt_deliveries"}
}

// InsertDeliveries inserts a batch of delivered receipts into database
func (r *ReceiptsRepository) InsertDeliveries(ctx context.Context, shares []models.ReceiptShare) error {
	if len(shares) == 0 {
		return nil
	}
	docs := make([]interface{}, len(shares))
	for i, s := range shares {
		docs[i] = s
	}

	collection := r.client.Database(r.database).Collection(r.collection)
	_, err := collection.InsertMany(ctx, docs, optionsUnordered())
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return err
	}
	return nil
}
