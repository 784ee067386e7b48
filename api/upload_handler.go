package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/francislub/busines-consultant-sub001/errs"
	"github.com/francislub/busines-consultant-sub001/services"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type uploadHandler struct {
	responder  Responder
	logger     zerolog.Logger
	imageStore *services.ImageStore
}

func newUploadHandler(imageStore *services.ImageStore) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		imageStore: imageStore,
	}
}

// UploadResponse carries the public URL of a stored image
type UploadResponse struct {
	URL string `json:"url"`
}

// uploadImage accepts a multipart form with an "image" field and stores it
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("could not parse multipart form"))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			h.responder.WriteError(w, errs.NewValidationError(errs.RequiredField("image")))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		url, err := h.imageStore.Upload(r.Context(), header.Filename, contentType, file)
		if err != nil {
			if errors.Is(err, services.ErrUploadsDisabled) {
				h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable, err.Error()))
				return
			}
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("image upload failed", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, UploadResponse{URL: url})
	}
}
