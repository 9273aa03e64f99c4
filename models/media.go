package models

import "strings"

// MediaURL joins a relative asset path returned by the API onto the CDN base.
// Absolute URLs pass through unchanged; an empty path yields "".
func MediaURL(cdnBase, assetPath string) string {
	assetPath = strings.TrimSpace(assetPath)
	if assetPath == "" {
		return ""
	}
	if strings.HasPrefix(assetPath, "http://") || strings.HasPrefix(assetPath, "https://") {
		return assetPath
	}
	return strings.TrimRight(cdnBase, "/") + "/" + strings.TrimLeft(assetPath, "/")
}
