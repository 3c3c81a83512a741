package works

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"artify-server/internal/api/httperr"
	"artify-server/internal/domain/works"
	"artify-server/internal/logging"
	"artify-server/internal/store"
)

const RecentLimit = 6

type Repository interface {
	Insert(ctx context.Context, a works.Artwork) (store.InsertResult, error)
	ListPublic(ctx context.Context, search string) ([]works.Artwork, error)
	Recent(ctx context.Context, limit int64) ([]works.Artwork, error)
	FindByID(ctx context.Context, id bson.ObjectID) (works.Artwork, error)
	Update(ctx context.Context, id bson.ObjectID, u works.ArtworkUpdate) (store.UpdateResult, error)
	Delete(ctx context.Context, id bson.ObjectID) (store.DeleteResult, error)
	ListByOwner(ctx context.Context, email string) ([]works.Artwork, error)
	CountByOwner(ctx context.Context, email string) (int64, error)
	Like(ctx context.Context, id bson.ObjectID, liked bool) (store.UpdateResult, error)
}

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// ------------------------------
// POST /add-artwork  (stored as sent)
// ------------------------------
func (h *Handler) AddArtwork(c *gin.Context) {
	a := works.Artwork{}
	if err := c.ShouldBindJSON(&a); err != nil && !errors.Is(err, io.EOF) {
		httperr.Abort(c, httperr.BadBody(err), "Invalid artwork")
		return
	}
	if a == nil { // body was JSON null
		a = works.Artwork{}
	}
	// the store assigns identifiers
	delete(a, works.FieldID)

	res, err := h.repo.Insert(c.Request.Context(), a)
	if err != nil {
		httperr.Abort(c, err, "Failed to add artwork")
		return
	}

	logging.FromGin(c).Debug().Str("artwork_id", res.InsertedID.Hex()).Msg("artwork created")
	c.JSON(http.StatusOK, res)
}

// ------------------------------
// GET /all-artworks?search=
// ------------------------------
func (h *Handler) ListArtworks(c *gin.Context) {
	out, err := h.repo.ListPublic(c.Request.Context(), c.Query("search"))
	if err != nil {
		httperr.Abort(c, err, "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, out)
}

// ------------------------------
// GET /recent-artworks
// ------------------------------
func (h *Handler) RecentArtworks(c *gin.Context) {
	out, err := h.repo.Recent(c.Request.Context(), RecentLimit)
	if err != nil {
		httperr.Abort(c, err, "Failed to fetch recent artworks")
		return
	}
	c.JSON(http.StatusOK, out)
}

// ------------------------------
// GET /artwork/:id  (null when unknown, any visibility)
// ------------------------------
func (h *Handler) GetArtwork(c *gin.Context) {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		httperr.Abort(c, err, "Invalid artwork id")
		return
	}

	a, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to fetch artwork")
		return
	}
	if a == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, a)
}

// ------------------------------
// PUT /update-artwork/:id  (upsert)
// ------------------------------
func (h *Handler) UpdateArtwork(c *gin.Context) {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		httperr.Abort(c, err, "Invalid artwork id")
		return
	}

	var req works.ArtworkUpdate
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.Abort(c, httperr.BadBody(err), "Invalid artwork")
		return
	}

	res, err := h.repo.Update(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err, "Failed to update artwork")
		return
	}
	c.JSON(http.StatusOK, res)
}

// ------------------------------
// DELETE /artwork/:id
// ------------------------------
func (h *Handler) DeleteArtwork(c *gin.Context) {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		httperr.Abort(c, err, "Invalid artwork id")
		return
	}

	res, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to delete artwork")
		return
	}
	c.JSON(http.StatusOK, res)
}

// ------------------------------
// GET /my-gallery/:email  (every visibility)
// ------------------------------
func (h *Handler) MyGallery(c *gin.Context) {
	out, err := h.repo.ListByOwner(c.Request.Context(), c.Param("email"))
	if err != nil {
		httperr.Abort(c, err, "Failed to fetch gallery")
		return
	}
	c.JSON(http.StatusOK, out)
}

// ------------------------------
// GET /user-total-art/:email
// ------------------------------
func (h *Handler) UserTotalArt(c *gin.Context) {
	n, err := h.repo.CountByOwner(c.Request.Context(), c.Param("email"))
	if err != nil {
		httperr.Abort(c, err, "Failed to count artworks")
		return
	}
	c.JSON(http.StatusOK, TotalPostsResponse{TotalPosts: n})
}

// ------------------------------
// PATCH /artwork/like/:id  (missing isLiked = unlike)
// ------------------------------
func (h *Handler) LikeArtwork(c *gin.Context) {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		httperr.Abort(c, err, "Invalid artwork id")
		return
	}

	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.Abort(c, httperr.BadBody(err), "Invalid like request")
		return
	}

	res, err := h.repo.Like(c.Request.Context(), id, req.IsLiked)
	if err != nil {
		httperr.Abort(c, err, "Failed to update likes")
		return
	}
	c.JSON(http.StatusOK, res)
}
