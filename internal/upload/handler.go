package upload

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/filedrop/service/internal/response"
)

// multipartMemoryLimit caps how much of a multipart body is held in memory
// before spilling to temporary files.
const multipartMemoryLimit = 32 << 20

// Handler holds HTTP handlers for the upload endpoints. It is the only layer
// that translates errors into transport status codes.
type Handler struct {
	svc           *Service
	maxUploadSize int64
}

// NewHandler creates a new upload Handler. maxUploadSize is the per-file
// ceiling in bytes applied to both upload strategies.
func NewHandler(svc *Service, maxUploadSize int64) *Handler {
	return &Handler{svc: svc, maxUploadSize: maxUploadSize}
}

// ServerUpload godoc
//
//	@Summary		Upload a file through the server
//	@Description	Streams the uploaded file into object storage and returns its access URL.
//	@Tags			upload
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file				formData	file	true	"file to upload"
//	@Param			folder				formData	string	false	"folder (may be nested, e.g. docs/2026)"
//	@Param			customFileName		formData	string	false	"store under this name instead of the original"
//	@Param			preserveFilename	formData	bool	false	"keep the original filename (default true); false generates a unique name"
//	@Success		200	{object}	UploadResponse
//	@Failure		400	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/server-upload [post]
func (h *Handler) ServerUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		response.BadRequest(w, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "no file provided")
		return
	}
	defer file.Close()

	result, err := h.svc.Upload(r.Context(), UploadInput{
		Body:             file,
		FileName:         header.Filename,
		ContentType:      header.Header.Get("Content-Type"),
		Size:             header.Size,
		Folder:           r.FormValue("folder"),
		CustomFileName:   r.FormValue("customFileName"),
		PreserveFilename: formBool(r.FormValue("preserveFilename"), true),
		MaxFileSize:      h.maxUploadSize,
	})
	if err != nil {
		writeUploadError(w, "upload failed", err)
		return
	}

	response.OK(w, UploadResponse{URL: result.URL, Message: "file uploaded successfully"})
}

// PresignedURL godoc
//
//	@Summary		Prepare a direct-to-storage upload
//	@Description	Issues a time-limited signed upload URL for the client to transfer the file itself, plus the object key and its eventual access URL.
//	@Tags			upload
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PresignRequest	true	"upload description"
//	@Success		200		{object}	PresignResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/presigned-url [post]
func (h *Handler) PresignedURL(w http.ResponseWriter, r *http.Request) {
	var req PresignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if req.FileName == "" {
		response.BadRequest(w, "fileName is required")
		return
	}

	signed, err := h.svc.PrepareSignedUpload(r.Context(), SignedUploadInput{
		FileName:         req.FileName,
		ContentType:      req.ContentType,
		Size:             req.FileSize,
		Folder:           req.Folder,
		CustomFileName:   req.CustomFileName,
		PreserveFilename: jsonBool(req.PreserveFilename, true),
		MaxFileSize:      h.maxUploadSize,
	})
	if err != nil {
		writeUploadError(w, "failed to generate presigned url", err)
		return
	}

	response.OK(w, PresignResponse{
		PresignedURL: signed.UploadURL,
		Key:          signed.Key,
		PublicURL:    signed.PublicURL,
		Message:      "presigned url generated successfully",
	})
}

// DownloadURL godoc
//
//	@Summary		Resolve a signed download URL
//	@Description	Returns a time-limited signed read URL for the given object key.
//	@Tags			url
//	@Accept			json
//	@Produce		json
//	@Param			request	body		DownloadURLRequest	true	"object key and optional expiration in minutes (default 10080 = 7 days)"
//	@Success		200		{object}	DownloadURLResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/download-url [post]
func (h *Handler) DownloadURL(w http.ResponseWriter, r *http.Request) {
	var req DownloadURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if req.Key == "" {
		response.BadRequest(w, "key is required")
		return
	}

	url, err := h.svc.DownloadURL(r.Context(), req.Key, time.Duration(req.ExpirationMinutes)*time.Minute)
	if err != nil {
		response.ServerError(w, "failed to generate download url", err.Error())
		return
	}

	response.OK(w, DownloadURLResponse{DownloadURL: url, Message: "download url generated successfully"})
}

// PublicURL godoc
//
//	@Summary		Resolve the public URL of an object
//	@Description	Constructs the permanent public URL for the given object key. Valid only when the bucket allows public reads.
//	@Tags			url
//	@Accept			json
//	@Produce		json
//	@Param			request	body		KeyRequest	true	"object key"
//	@Success		200		{object}	PublicURLResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/public-url [post]
func (h *Handler) PublicURL(w http.ResponseWriter, r *http.Request) {
	var req KeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if req.Key == "" {
		response.BadRequest(w, "key is required")
		return
	}

	url, err := h.svc.PublicURL(r.Context(), req.Key)
	if err != nil {
		response.ServerError(w, "failed to resolve public url", err.Error())
		return
	}

	response.OK(w, PublicURLResponse{PublicURL: url, Message: "public url resolved successfully"})
}

// DeleteObject godoc
//
//	@Summary		Delete an object
//	@Description	Best-effort deletion of the object at the given key. Failures are reported as deleted=false, never as a server error.
//	@Tags			object
//	@Accept			json
//	@Produce		json
//	@Param			request	body		KeyRequest	true	"object key"
//	@Success		200		{object}	DeleteResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Router			/delete-object [post]
func (h *Handler) DeleteObject(w http.ResponseWriter, r *http.Request) {
	var req KeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if req.Key == "" {
		response.BadRequest(w, "key is required")
		return
	}

	if h.svc.Delete(r.Context(), req.Key) {
		response.OK(w, DeleteResponse{Deleted: true, Message: "object deleted successfully"})
		return
	}
	response.OK(w, DeleteResponse{Deleted: false, Message: "object could not be deleted"})
}

// CopyObject godoc
//
//	@Summary		Copy an object
//	@Description	Copies an object within the bucket and returns the access URL of the destination.
//	@Tags			object
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CopyRequest	true	"source and destination keys"
//	@Success		200		{object}	CopyResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/copy-object [post]
func (h *Handler) CopyObject(w http.ResponseWriter, r *http.Request) {
	var req CopyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if req.SourceKey == "" || req.DestinationKey == "" {
		response.BadRequest(w, "sourceKey and destinationKey are required")
		return
	}

	ok, url := h.svc.Copy(r.Context(), req.SourceKey, req.DestinationKey)
	if !ok {
		response.ServerError(w, "copy failed", "object could not be copied")
		return
	}

	response.OK(w, CopyResponse{URL: url, Message: "object copied successfully"})
}

// writeUploadError maps a delegate failure to a status code: size-ceiling
// violations are client errors, everything else is a server error carrying the
// underlying text.
func writeUploadError(w http.ResponseWriter, message string, err error) {
	var sizeErr *SizeLimitError
	if errors.As(err, &sizeErr) {
		response.BadRequest(w, sizeErr.Error())
		return
	}
	response.ServerError(w, message, err.Error())
}

// formBool parses a form value as a bool, returning def when absent or malformed.
func formBool(v string, def bool) bool {
	switch v {
	case "true", "1":
		return true
	case "false", "0":
		return false
	default:
		return def
	}
}

func jsonBool(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
