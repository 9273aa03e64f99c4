package models

import "encoding/json"

// Video is an entry of /api/videos/. Video is an optional CDN-relative asset
// path; when it is absent the Description usually carries an embeddable player.
type Video struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Video       *string  `json:"video"`
	Description string   `json:"description"`
	Language    Language `json:"language"`
	Status      int      `json:"status"`
	CreatedAt   string   `json:"created_at"`
}

func (v *Video) UnmarshalJSON(data []byte) error {
	if err := requireFields("Video", data,
		"id", "title", "description", "language", "status", "created_at"); err != nil {
		return err
	}
	type alias Video
	return json.Unmarshal(data, (*alias)(v))
}

// AssetURL returns the CDN URL of the video file, or false when the record has none.
func (v Video) AssetURL(cdnBase string) (string, bool) {
	if v.Video == nil || *v.Video == "" {
		return "", false
	}
	return MediaURL(cdnBase, *v.Video), true
}
