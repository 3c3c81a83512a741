package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"artify-server/internal/apperr"
	"artify-server/internal/domain/works"
	"artify-server/internal/metrics"
)

const artworksLabel = "artworks"

type ArtworkStore struct {
	coll *mongo.Collection
}

func NewArtworkStore(coll *mongo.Collection) *ArtworkStore {
	return &ArtworkStore{coll: coll}
}

// Insert writes a as it is, assigning _id when a has none.
func (s *ArtworkStore) Insert(ctx context.Context, a works.Artwork) (res InsertResult, err error) {
	defer metrics.ObserveStore("insertOne", artworksLabel)(&err)

	id := a.ID()
	if id.IsZero() {
		id = bson.NewObjectID()
		a[works.FieldID] = id
	}
	r, err := s.coll.InsertOne(ctx, a)
	if err != nil {
		return InsertResult{}, apperr.Internal("insert artwork", err)
	}
	return InsertResult{Acknowledged: r.Acknowledged, InsertedID: id}, nil
}

func (s *ArtworkStore) ListPublic(ctx context.Context, search string) ([]works.Artwork, error) {
	return s.find(ctx, "find", publicArtworksFilter(search))
}

// Recent returns up to limit public artworks, newest id first.
func (s *ArtworkStore) Recent(ctx context.Context, limit int64) ([]works.Artwork, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(limit)
	return s.find(ctx, "findRecent", publicArtworksFilter(""), opts)
}

func (s *ArtworkStore) ListByOwner(ctx context.Context, email string) ([]works.Artwork, error) {
	return s.find(ctx, "findByOwner", ownerFilter(email))
}

// FindByID returns nil without error when no artwork has the id.
func (s *ArtworkStore) FindByID(ctx context.Context, id bson.ObjectID) (a works.Artwork, err error) {
	defer metrics.ObserveStore("findOne", artworksLabel)(&err)

	if err := s.coll.FindOne(ctx, idFilter(id)).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, apperr.Internal("find artwork", err)
	}
	return a, nil
}

// Update writes the whitelist and inserts a new document under id when none matches.
func (s *ArtworkStore) Update(ctx context.Context, id bson.ObjectID, u works.ArtworkUpdate) (res UpdateResult, err error) {
	defer metrics.ObserveStore("updateOne", artworksLabel)(&err)

	r, err := s.coll.UpdateOne(ctx, idFilter(id), setWhitelist(u), options.UpdateOne().SetUpsert(true))
	if err != nil {
		return UpdateResult{}, apperr.Internal("update artwork", err)
	}
	return updateResult(r), nil
}

func (s *ArtworkStore) Delete(ctx context.Context, id bson.ObjectID) (res DeleteResult, err error) {
	defer metrics.ObserveStore("deleteOne", artworksLabel)(&err)

	r, err := s.coll.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return DeleteResult{}, apperr.Internal("delete artwork", err)
	}
	return deleteResult(r), nil
}

func (s *ArtworkStore) CountByOwner(ctx context.Context, email string) (n int64, err error) {
	defer metrics.ObserveStore("countDocuments", artworksLabel)(&err)

	n, err = s.coll.CountDocuments(ctx, ownerFilter(email))
	if err != nil {
		return 0, apperr.Internal("count artworks", err)
	}
	return n, nil
}

// Like adds +1 or -1 to the like counter. The counter has no floor.
func (s *ArtworkStore) Like(ctx context.Context, id bson.ObjectID, liked bool) (res UpdateResult, err error) {
	defer metrics.ObserveStore("incLikes", artworksLabel)(&err)

	r, err := s.coll.UpdateOne(ctx, idFilter(id), incLikes(likeDelta(liked)))
	if err != nil {
		return UpdateResult{}, apperr.Internal("like artwork", err)
	}
	return updateResult(r), nil
}

func (s *ArtworkStore) find(ctx context.Context, op string, filter bson.D, opts ...options.Lister[options.FindOptions]) (out []works.Artwork, err error) {
	defer metrics.ObserveStore(op, artworksLabel)(&err)

	cur, err := s.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, apperr.Internal(op+" artworks", err)
	}
	out = []works.Artwork{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperr.Internal(op+" artworks", err)
	}
	return out, nil
}
