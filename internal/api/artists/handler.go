package artists

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"artify-server/internal/api/httperr"
	"artify-server/internal/domain/works"
)

type ArtworkLister interface {
	ListByOwner(ctx context.Context, email string) ([]works.Artwork, error)
}

type Handler struct {
	artworks ArtworkLister
}

func NewHandler(artworks ArtworkLister) *Handler {
	return &Handler{artworks: artworks}
}

type DetailsResponse struct {
	Artist   works.Artist    `json:"artist"`
	Artworks []works.Artwork `json:"artworks"`
}

// ------------------------------
// GET /artist-details/:email
// ------------------------------
func (h *Handler) ArtistDetails(c *gin.Context) {
	list, err := h.artworks.ListByOwner(c.Request.Context(), c.Param("email"))
	if err != nil {
		httperr.Abort(c, err, "Failed to fetch artist details")
		return
	}
	if list == nil {
		list = []works.Artwork{}
	}

	c.JSON(http.StatusOK, DetailsResponse{
		Artist:   works.ArtistFromArtworks(list),
		Artworks: list,
	})
}
