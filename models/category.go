package models

import "encoding/json"

// Category is comparable with == and is used as a selector key.
type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language"`
	Slug     string `json:"slug"`
}

func (c *Category) UnmarshalJSON(data []byte) error {
	if err := requireFields("Category", data, "id", "name", "language", "slug"); err != nil {
		return err
	}
	type alias Category
	return json.Unmarshal(data, (*alias)(c))
}
