package works

const (
	UnknownArtistName  = "Unknown Artist"
	DefaultArtistImage = "https://i.ibb.co/Vj1qCmh/image-2.png"
	DefaultArtistBio   = "Passionate about guitars and fine arts. Creating music through visuals."
	DefaultFollowers   = 120
)

// Artist is derived from an owner's artworks on every request; it is never stored.
type Artist struct {
	Name          string `json:"name"`
	Image         string `json:"image"`
	Bio           string `json:"bio"`
	TotalArtworks int    `json:"totalArtworks"`
	Followers     int    `json:"followers"`
}

// ArtistFromArtworks takes name and avatar from the first artwork in the slice.
func ArtistFromArtworks(artworks []Artwork) Artist {
	artist := Artist{
		Name:          UnknownArtistName,
		Image:         DefaultArtistImage,
		Bio:           DefaultArtistBio,
		TotalArtworks: len(artworks),
		Followers:     DefaultFollowers,
	}
	if len(artworks) == 0 {
		return artist
	}

	first := artworks[0]
	if name := first.Text(FieldUserName); name != "" {
		artist.Name = name
	}
	if image := first.Text(FieldUserImage); image != "" {
		artist.Image = image
	}
	return artist
}
