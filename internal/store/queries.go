package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"

	"artify-server/internal/apperr"
	"artify-server/internal/domain/works"
)

// ParseID turns a hex path parameter into an ObjectID.
func ParseID(hex string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, apperr.InvalidArgument("malformed id %q", hex)
	}
	return id, nil
}

func idFilter(id bson.ObjectID) bson.D {
	return bson.D{{Key: works.FieldID, Value: id}}
}

func ownerFilter(email string) bson.D {
	return bson.D{{Key: works.FieldUserEmail, Value: email}}
}

// publicArtworksFilter matches public artworks and, when search is set, those whose
// title, userName or category contain it case-insensitively. The term is matched
// literally.
func publicArtworksFilter(search string) bson.D {
	filter := bson.D{{Key: works.FieldVisibility, Value: works.VisibilityPublic}}
	if search == "" {
		return filter
	}

	pattern := bson.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	return append(filter, bson.E{Key: "$or", Value: bson.A{
		bson.D{{Key: works.FieldTitle, Value: pattern}},
		bson.D{{Key: works.FieldUserName, Value: pattern}},
		bson.D{{Key: works.FieldCategory, Value: pattern}},
	}})
}

func favoritePairFilter(artworkID, email any) bson.D {
	return bson.D{
		{Key: works.FieldArtworkID, Value: artworkID},
		{Key: works.FieldUserEmail, Value: email},
	}
}

func setWhitelist(u works.ArtworkUpdate) bson.D {
	return bson.D{{Key: "$set", Value: u}}
}

func likeDelta(liked bool) int64 {
	if liked {
		return 1
	}
	return -1
}

func incLikes(delta int64) bson.D {
	return bson.D{{Key: "$inc", Value: bson.D{{Key: works.FieldLikes, Value: delta}}}}
}
