// Package storage resolves browser-facing URLs for resource files. The files
// themselves live in an external managed bucket; this service only links to
// them.
package storage

import "strings"

// PublicURL joins the bucket's public base URL with the resource's storage
// path. When either is missing it falls back to the row's stored file URL.
func PublicURL(baseURL, storagePath, fileURL string) string {
	if baseURL == "" || storagePath == "" {
		return fileURL
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(storagePath, "/")
}
