package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const thumbnailField = "thumbnail"

// parseID parses an id from a path, form or query value. Blank input yields uuid.Nil.
func parseID(field, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError("Invalid " + field)
	}

	return id, nil
}

// parsePrice parses a form price. Blank input yields zero, which counts as missing.
func parsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, domainerrors.NewValidationError("Invalid price")
	}

	return price, nil
}

// openThumbnail returns the uploaded thumbnail, or nil when the request carries none.
// The caller must close the returned closer when it is not nil.
func openThumbnail(c echo.Context) (*service.ImageFile, io.Closer, error) {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return nil, nil, nil
	}

	fileHeader, err := c.FormFile(thumbnailField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}

		return nil, nil, domainerrors.NewValidationError("Invalid thumbnail upload")
	}

	return openFileHeader(fileHeader)
}

func openFileHeader(fileHeader *multipart.FileHeader) (*service.ImageFile, io.Closer, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, domainerrors.NewInternalError(errors.Wrap(err, "failed to open thumbnail"))
	}

	return &service.ImageFile{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Reader:      file,
	}, file, nil
}
