package user

import (
	"errors"
	"mime/multipart"
	"net/http"

	"Dealio/internal/core/images"
)

// maxMemory is the multipart size kept in memory; larger parts spill to disk
const maxMemory = 8 << 20

// readUpload extracts the "image" part of a multipart request.
// The returned closer must be called once the upload has been consumed.
func readUpload(r *http.Request) (images.Upload, func(), error) {
	noop := func() {}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return images.Upload{}, noop, images.ErrNoFile
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return images.Upload{}, noop, images.ErrNoFile
		}
		return images.Upload{}, noop, err
	}

	return images.Upload{
		Body:     file,
		Filename: header.Filename,
		Size:     header.Size,
	}, closer(file, r.MultipartForm), nil
}

func closer(file multipart.File, form *multipart.Form) func() {
	return func() {
		_ = file.Close()
		if form != nil {
			_ = form.RemoveAll()
		}
	}
}
