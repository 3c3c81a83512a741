package works

// ---------- requests

type LikeRequest struct {
	IsLiked bool `json:"isLiked"`
}

// ---------- responses

type TotalPostsResponse struct {
	TotalPosts int64 `json:"totalPosts"`
}
