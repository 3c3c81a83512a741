package store

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// The result types mirror the acknowledgement documents the driver reports, in the
// camelCase shape the web client reads.

type InsertResult struct {
	Acknowledged bool          `json:"acknowledged"`
	InsertedID   bson.ObjectID `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool           `json:"acknowledged"`
	MatchedCount  int64          `json:"matchedCount"`
	ModifiedCount int64          `json:"modifiedCount"`
	UpsertedCount int64          `json:"upsertedCount"`
	UpsertedID    *bson.ObjectID `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func updateResult(r *mongo.UpdateResult) UpdateResult {
	out := UpdateResult{
		Acknowledged:  r.Acknowledged,
		MatchedCount:  r.MatchedCount,
		ModifiedCount: r.ModifiedCount,
		UpsertedCount: r.UpsertedCount,
	}
	if id, ok := r.UpsertedID.(bson.ObjectID); ok {
		out.UpsertedID = &id
	}
	return out
}

func deleteResult(r *mongo.DeleteResult) DeleteResult {
	return DeleteResult{Acknowledged: r.Acknowledged, DeletedCount: r.DeletedCount}
}
