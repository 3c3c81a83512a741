package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"artify-server/internal/apperr"
	"artify-server/internal/logging"
)

const (
	ArtworksCollection  = "artworks"
	FavoritesCollection = "favorites"

	favoritePairIndex = "artworkId_1_userEmail_1"
)

// Store owns the client for the lifetime of the process. It is built once in main
// and handed to the route layer.
type Store struct {
	client    *mongo.Client
	Artworks  *mongo.Collection
	Favorites *mongo.Collection
}

// Connect dials the deployment and pings it. Unreachable servers and rejected
// credentials come back as apperr.ErrConnection.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	// artworks and favorites are schemaless maps, so nested documents decode as maps too
	bsonOpts := &options.BSONOptions{DefaultDocumentM: true}

	client, err := mongo.Connect(options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPI).
		SetBSONOptions(bsonOpts))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrConnection, err)
	}

	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: ping: %w", apperr.ErrConnection, err)
	}
	logging.Logger.Info().Str("db", dbName).Msg("Pinged your deployment. Connected to MongoDB")

	db := client.Database(dbName)
	return &Store{
		client:    client,
		Artworks:  db.Collection(ArtworksCollection),
		Favorites: db.Collection(FavoritesCollection),
	}, nil
}

// EnsureIndexes creates the unique (artworkId, userEmail) index on favorites.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.Favorites.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "artworkId", Value: 1}, {Key: "userEmail", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(favoritePairIndex),
	})
	if err != nil {
		return fmt.Errorf("create %s index: %w", favoritePairIndex, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %w", apperr.ErrConnection, err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
