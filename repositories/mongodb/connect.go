// Package mongodb stores settled transactions and receipt deliveries.
package mongodb

import (
	// Go Internal Packages
	"context"
	"time"

	// External Packages
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect connects to the mongodb server and returns the client.
func Connect(ctx context.Context, uri, appName string) (*mongo.Client, error) {
	// Fail fast when no server is reachable.
	timeout := time.Second * 5
	opts := options.Client().
		ApplyURI(uri).
		SetAppName(appName).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// optionsUnordered keeps inserting the rest of a batch after a duplicate.
func optionsUnordered() *options.InsertManyOptions {
	return options.InsertMany().SetOrdered(false)
}
