package models

import "encoding/json"

// LikeResult is the reply of the like toggle endpoint.
type LikeResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

func (r *LikeResult) UnmarshalJSON(data []byte) error {
	if err := requireFields("LikeResult", data, "liked", "likes_count"); err != nil {
		return err
	}
	type alias LikeResult
	return json.Unmarshal(data, (*alias)(r))
}
