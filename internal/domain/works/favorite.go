package works

import "go.mongodb.org/mongo-driver/v2/bson"

const FieldArtworkID = "artworkId"

// Favorite links an artwork to a user. Like Artwork it is kept as sent: the
// client usually adds a snapshot of the artwork card next to artworkId and
// userEmail. artworkId is raw client data and nothing checks that the artwork
// exists.
type Favorite bson.M

func (f Favorite) ID() bson.ObjectID {
	id, _ := f[FieldID].(bson.ObjectID)
	return id
}

// Pair returns the (artworkId, userEmail) values exactly as sent, nil when absent.
func (f Favorite) Pair() (artworkID, email any) {
	return f[FieldArtworkID], f[FieldUserEmail]
}
