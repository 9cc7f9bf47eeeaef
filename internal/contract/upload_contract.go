package contract

const MaxUploadSizeBytes = 15 * 1024 * 1024

// ValidUploadFileTypes covers person photos and scanned documents.
var ValidUploadFileTypes = []string{"png", "jpg", "jpeg", "webp", "gif", "pdf"}

type UploadResponse struct {
	FileURL string `json:"file_url"`
}
