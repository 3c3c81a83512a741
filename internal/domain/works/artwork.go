package works

import "go.mongodb.org/mongo-driver/v2/bson"

const VisibilityPublic = "Public"

// Document keys the server reads or writes. Everything else in an artwork is
// whatever the client sent.
const (
	FieldID          = "_id"
	FieldTitle       = "title"
	FieldImage       = "image"
	FieldCategory    = "category"
	FieldMedium      = "medium"
	FieldDimensions  = "dimensions"
	FieldPrice       = "price"
	FieldVisibility  = "visibility"
	FieldDescription = "description"
	FieldUserEmail   = "userEmail"
	FieldUserName    = "userName"
	FieldUserImage   = "userImage"
	FieldLikes       = "likes"
)

// Artwork is stored as sent by the client. Only _id is assigned by the store,
// and field types are never checked.
type Artwork bson.M

func (a Artwork) ID() bson.ObjectID {
	id, _ := a[FieldID].(bson.ObjectID)
	return id
}

// Text returns the field when it holds a string, "" otherwise.
func (a Artwork) Text(field string) string {
	s, _ := a[field].(string)
	return s
}

func (a Artwork) IsPublic() bool {
	return a.Text(FieldVisibility) == VisibilityPublic
}

// Likes reads the counter whatever numeric type it was stored with. A missing
// counter is 0, as $inc treats it.
func (a Artwork) Likes() int64 {
	switch n := a[FieldLikes].(type) {
	case int32:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

// ArtworkUpdate is the whitelist written by an update. Values pass through with
// whatever JSON type the caller used; absent fields are stored as null.
type ArtworkUpdate struct {
	Title       any `bson:"title" json:"title"`
	Image       any `bson:"image" json:"image"`
	Category    any `bson:"category" json:"category"`
	Medium      any `bson:"medium" json:"medium"`
	Dimensions  any `bson:"dimensions" json:"dimensions"`
	Price       any `bson:"price" json:"price"`
	Visibility  any `bson:"visibility" json:"visibility"`
	Description any `bson:"description" json:"description"`
}

// Apply overwrites the whitelisted fields of a in place.
func (u ArtworkUpdate) Apply(a Artwork) {
	a[FieldTitle] = u.Title
	a[FieldImage] = u.Image
	a[FieldCategory] = u.Category
	a[FieldMedium] = u.Medium
	a[FieldDimensions] = u.Dimensions
	a[FieldPrice] = u.Price
	a[FieldVisibility] = u.Visibility
	a[FieldDescription] = u.Description
}
