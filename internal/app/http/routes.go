package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	artistsapi "artify-server/internal/api/artists"
	favoritesapi "artify-server/internal/api/favorites"
	worksapi "artify-server/internal/api/works"
	"artify-server/internal/logging"
)

const rootMessage = "Artify Premium Server is running..."

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	Works     *worksapi.Handler
	Favorites *favoritesapi.Handler
	Artists   *artistsapi.Handler
	Store     Pinger
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, rootMessage)
	})
	r.GET("/health", health(h.Store))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// artworks
	r.POST("/add-artwork", h.Works.AddArtwork)
	r.GET("/all-artworks", h.Works.ListArtworks)
	r.GET("/recent-artworks", h.Works.RecentArtworks)
	r.GET("/artwork/:id", h.Works.GetArtwork)
	r.PUT("/update-artwork/:id", h.Works.UpdateArtwork)
	r.DELETE("/artwork/:id", h.Works.DeleteArtwork)
	r.PATCH("/artwork/like/:id", h.Works.LikeArtwork)

	// user profile & stats
	r.GET("/my-gallery/:email", h.Works.MyGallery)
	r.GET("/user-total-art/:email", h.Works.UserTotalArt)
	r.GET("/artist-details/:email", h.Artists.ArtistDetails)

	// favorites
	r.POST("/favorites", h.Favorites.AddFavorite)
	r.GET("/favorites/:email", h.Favorites.ListFavorites)
	r.DELETE("/favorites/:id", h.Favorites.RemoveFavorite)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
	})
}

func health(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			logging.FromGin(c).Error().Err(err).Msg("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
