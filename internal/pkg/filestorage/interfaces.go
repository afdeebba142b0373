package filestorage

import "mime/multipart"

// FileStorage defines the interface for blob storage operations. Stored
// names are server-generated and opaque; the user-supplied filename is
// only kept for display.
type FileStorage interface {
	// SaveFile stores an uploaded file under a generated unique name and
	// returns that name plus the size of the blob as written to disk.
	SaveFile(fileHeader *multipart.FileHeader) (storedName string, size int64, err error)

	// DeleteFile removes a stored blob. Deleting a missing blob is not an error.
	DeleteFile(storedName string) error

	// FullPath returns the filesystem path for a stored name.
	FullPath(storedName string) string

	// Exists reports whether a stored blob is present.
	Exists(storedName string) bool
}
