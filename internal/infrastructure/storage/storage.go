package storage

import (
	"fmt"
	"os"
)

// Driver stores uploaded attachment bytes and hands back a dereferenceable
// URL. The rest of the system treats that URL as an opaque string placed
// into a person's photos/documents lists.
type Driver interface {
	UploadFile(data []byte, filename string) (string, error)
}

// NewDriverFromEnv selects the backend by STORAGE_DRIVER: "s3" or "local"
// (default).
func NewDriverFromEnv() (Driver, error) {
	switch driver := os.Getenv("STORAGE_DRIVER"); driver {
	case "s3":
		return NewS3Storage()
	case "", "local":
		return NewLocalStorage(os.Getenv("UPLOADS_PATH"))
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", driver)
	}
}
