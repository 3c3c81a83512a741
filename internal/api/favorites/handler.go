package favorites

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"artify-server/internal/api/httperr"
	"artify-server/internal/apperr"
	"artify-server/internal/domain/works"
	"artify-server/internal/logging"
	"artify-server/internal/metrics"
	"artify-server/internal/store"
)

const alreadyInFavorites = "Already in favorites"

type Repository interface {
	Exists(ctx context.Context, artworkID, email any) (bool, error)
	Insert(ctx context.Context, f works.Favorite) (bson.ObjectID, error)
	ListByOwner(ctx context.Context, email string) ([]works.Favorite, error)
	Delete(ctx context.Context, id bson.ObjectID) (store.DeleteResult, error)
}

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type CreatedResponse struct {
	Success    bool          `json:"success"`
	InsertedID bson.ObjectID `json:"insertedId"`
}

type RejectedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ------------------------------
// POST /favorites  (stored as sent)
// ------------------------------
// The existence check answers the common case; the unique index on the pair
// rejects a concurrent request that slipped past it.
func (h *Handler) AddFavorite(c *gin.Context) {
	f := works.Favorite{}
	if err := c.ShouldBindJSON(&f); err != nil && !errors.Is(err, io.EOF) {
		httperr.Abort(c, httperr.BadBody(err), "Invalid favorite")
		return
	}
	if f == nil {
		f = works.Favorite{}
	}
	delete(f, works.FieldID)
	ctx := c.Request.Context()

	artworkID, email := f.Pair()
	exists, err := h.repo.Exists(ctx, artworkID, email)
	if err != nil {
		httperr.Abort(c, err, "Failed to add favorite")
		return
	}
	if exists {
		h.rejectDuplicate(c, f)
		return
	}

	id, err := h.repo.Insert(ctx, f)
	if errors.Is(err, apperr.ErrDuplicateResource) {
		h.rejectDuplicate(c, f)
		return
	}
	if err != nil {
		httperr.Abort(c, err, "Failed to add favorite")
		return
	}

	c.JSON(http.StatusOK, CreatedResponse{Success: true, InsertedID: id})
}

func (h *Handler) rejectDuplicate(c *gin.Context, f works.Favorite) {
	metrics.FavoriteDuplicates.Inc()
	artworkID, email := f.Pair()
	logging.FromGin(c).Info().
		Interface("artwork_id", artworkID).
		Interface("user_email", email).
		Msg("favorite already exists")
	c.JSON(http.StatusBadRequest, RejectedResponse{Success: false, Message: alreadyInFavorites})
}

// ------------------------------
// GET /favorites/:email
// ------------------------------
func (h *Handler) ListFavorites(c *gin.Context) {
	out, err := h.repo.ListByOwner(c.Request.Context(), c.Param("email"))
	if err != nil {
		httperr.Abort(c, err, "Failed to fetch favorites")
		return
	}
	c.JSON(http.StatusOK, out)
}

// ------------------------------
// DELETE /favorites/:id  (by the favorite's own id, not the pair)
// ------------------------------
func (h *Handler) RemoveFavorite(c *gin.Context) {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		httperr.Abort(c, err, "Invalid favorite id")
		return
	}

	res, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to remove favorite")
		return
	}
	c.JSON(http.StatusOK, res)
}
