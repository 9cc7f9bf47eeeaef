package handler

import (
	"mime/multipart"
	"net/http"

	"bud35/internal/contract"
	"bud35/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UploadService interface {
	UploadAttachment(fileHeader *multipart.FileHeader) (*contract.UploadResponse, apierror.ErrorResponse)
}

type DefaultUploadRoute struct {
	UploadService UploadService
}

func NewUploadDefault(uploadService UploadService) *DefaultUploadRoute {
	return &DefaultUploadRoute{UploadService: uploadService}
}

func (u *DefaultUploadRoute) UploadFile(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("file"))
	}

	resp, apierr := u.UploadService.UploadAttachment(fileHeader)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
