package models

import "encoding/json"

// Account is the signed-in user's profile from /api/profile/.
type Account struct {
	ID             int     `json:"id"`
	Username       string  `json:"username"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profile_picture"`
}

func (a *Account) UnmarshalJSON(data []byte) error {
	if err := requireFields("Account", data, "id", "username"); err != nil {
		return err
	}
	type alias Account
	return json.Unmarshal(data, (*alias)(a))
}

func (a Account) ProfilePictureURL(cdnBase string) string {
	if a.ProfilePicture == nil {
		return ""
	}
	return MediaURL(cdnBase, *a.ProfilePicture)
}
