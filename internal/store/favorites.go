package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"artify-server/internal/apperr"
	"artify-server/internal/domain/works"
	"artify-server/internal/metrics"
)

const favoritesLabel = "favorites"

type FavoriteStore struct {
	coll *mongo.Collection
}

func NewFavoriteStore(coll *mongo.Collection) *FavoriteStore {
	return &FavoriteStore{coll: coll}
}

// Exists reports whether the (artworkId, userEmail) pair is already saved. The
// values are matched as sent, so a missing field matches documents without it.
func (s *FavoriteStore) Exists(ctx context.Context, artworkID, email any) (ok bool, err error) {
	defer metrics.ObserveStore("findOne", favoritesLabel)(&err)

	err = s.coll.FindOne(ctx, favoritePairFilter(artworkID, email)).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return false, nil
	default:
		return false, apperr.Internal("find favorite", err)
	}
}

// Insert stores f. A unique-index violation is reported as ErrDuplicateResource,
// which is how a request that lost the race after Exists ends up.
func (s *FavoriteStore) Insert(ctx context.Context, f works.Favorite) (id bson.ObjectID, err error) {
	defer metrics.ObserveStore("insertOne", favoritesLabel)(&err)

	id = f.ID()
	if id.IsZero() {
		id = bson.NewObjectID()
		f[works.FieldID] = id
	}
	if _, err := s.coll.InsertOne(ctx, f); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return bson.NilObjectID, fmt.Errorf("insert favorite: %w", apperr.ErrDuplicateResource)
		}
		return bson.NilObjectID, apperr.Internal("insert favorite", err)
	}
	return id, nil
}

func (s *FavoriteStore) ListByOwner(ctx context.Context, email string) (out []works.Favorite, err error) {
	defer metrics.ObserveStore("findByOwner", favoritesLabel)(&err)

	cur, err := s.coll.Find(ctx, ownerFilter(email))
	if err != nil {
		return nil, apperr.Internal("find favorites", err)
	}
	out = []works.Favorite{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperr.Internal("find favorites", err)
	}
	return out, nil
}

func (s *FavoriteStore) Delete(ctx context.Context, id bson.ObjectID) (res DeleteResult, err error) {
	defer metrics.ObserveStore("deleteOne", favoritesLabel)(&err)

	r, err := s.coll.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return DeleteResult{}, apperr.Internal("delete favorite", err)
	}
	return deleteResult(r), nil
}
