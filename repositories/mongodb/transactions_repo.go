package mongodb

import (
	// Go Internal Packages
	"context"
	"time"

	// Local Packages
	errors "tap-terminal/errors"
	models "tap-terminal/models"

	// External Packages
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TransactionsRepository struct {
	client     *mongo.Client
	database   string
	collection string
}

func NewTransactionsRepository(client *mongo.Client, database string) *TransactionsRepository {
	return &TransactionsRepository{client: client, database: database, collection: "transactions"}
}

func (r *TransactionsRepository) coll() *mongo.Collection {
	return r.client.Database(r.database).Collection(r.collection)
}

// Save inserts tx or replaces the stored copy with the same id.
func (r *TransactionsRepository) Save(ctx context.Context, tx models.Transaction) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll().ReplaceOne(ctx, bson.M{"_id": tx.ID}, tx, opts)
	return err
}

func (r *TransactionsRepository) Get(ctx context.Context, id string) (models.Transaction, error) {
	var tx models.Transaction
	err := r.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&tx)
	if err == mongo.ErrNoDocuments {
		return models.Transaction{}, errors.NotFoundErr("transaction", id)
	}
	return tx, err
}

// Between lists the transactions created in [from, to), newest first.
func (r *TransactionsRepository) Between(ctx context.Context, from, to time.Time) ([]models.Transaction, error) {
	filter := bson.M{"created_at": bson.M{"$gte": from, "$lt": to}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var txs []models.Transaction
	if err := cursor.All(ctx, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}
