package service

import (
	"io"
	"mime/multipart"
	"strings"

	"bud35/internal/contract"
	"bud35/internal/infrastructure/storage"
	"bud35/internal/utils/apierror"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type UploadService struct {
	Storage storage.Driver
}

func NewUploadService(driver storage.Driver) *UploadService {
	return &UploadService{Storage: driver}
}

// UploadAttachment stores one uploaded file and returns its URL. The
// caller places the URL into a person's photos or documents list; nothing
// here knows which.
func (u *UploadService) UploadAttachment(fileHeader *multipart.FileHeader) (*contract.UploadResponse, apierror.ErrorResponse) {
	if fileHeader.Size == 0 {
		return nil, apierror.EmptyUploadError
	}
	if fileHeader.Size > contract.MaxUploadSizeBytes {
		return nil, apierror.NewSimple(400, "File exceeds the %d byte limit", contract.MaxUploadSizeBytes)
	}

	ext, ok := checkUploadExt(fileHeader.Filename)
	if !ok {
		return nil, apierror.InvalidFileTypeError
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Errorf("failed to open uploaded file: %v", err)
		return nil, apierror.InternalServerError
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Errorf("failed to read uploaded file: %v", err)
		return nil, apierror.InternalServerError
	}

	filename := uuid.NewString() + ext
	url, err := u.Storage.UploadFile(data, filename)
	if err != nil {
		log.Errorf("failed to store uploaded file: %v", err)
		return nil, apierror.InternalServerError
	}
	return &contract.UploadResponse{FileURL: url}, nil
}

func checkUploadExt(filename string) (string, bool) {
	dot := strings.LastIndex(filename, ".")
	if dot < 0 || dot == len(filename)-1 {
		return "", false
	}

	ext := strings.ToLower(filename[dot:])
	for _, valid := range contract.ValidUploadFileTypes {
		if ext == "."+valid {
			return ext, true
		}
	}
	return "", false
}
