package domain

import "io"

// DefaultFolder is where product images land when no folder is given.
const DefaultFolder = "pc-parts-shop/products"

// File is an image file submitted for upload.
type File struct {
	// Name is the original file name.
	Name string
	// Content is the file content.
	Content io.Reader
}

// Image is a hosted image as returned by the upload endpoints.
type Image struct {
	// URL is the public image URL.
	URL string `json:"url"`
	// PublicID is the hosting provider identifier, used for deletion.
	PublicID string `json:"public_id"`
}
