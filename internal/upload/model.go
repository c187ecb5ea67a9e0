package upload

// PresignRequest is the body of POST /presigned-url. FileSize is the declared
// size of the file the caller intends to transfer; it is checked against the
// configured ceiling before a URL is signed.
type PresignRequest struct {
	FileName         string `json:"fileName"`
	ContentType      string `json:"contentType"`
	FileSize         int64  `json:"fileSize"`
	Folder           string `json:"folder"`
	CustomFileName   string `json:"customFileName"`
	PreserveFilename *bool  `json:"preserveFilename"` // defaults to true when omitted
}

// DownloadURLRequest is the body of POST /download-url.
type DownloadURLRequest struct {
	Key               string `json:"key"`
	ExpirationMinutes int    `json:"expirationMinutes"` // defaults to 10080 (7 days) when omitted
}

// KeyRequest is the body of endpoints addressing a single object by key.
type KeyRequest struct {
	Key string `json:"key"`
}

// CopyRequest is the body of POST /copy-object.
type CopyRequest struct {
	SourceKey      string `json:"sourceKey"`
	DestinationKey string `json:"destinationKey"`
}

// UploadResponse is the success body of POST /server-upload.
type UploadResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// PresignResponse is the success body of POST /presigned-url. PublicURL points
// at the eventual object and is valid once the client completes the transfer
// through PresignedURL.
type PresignResponse struct {
	PresignedURL string `json:"presignedUrl"`
	Key          string `json:"key"`
	PublicURL    string `json:"publicUrl"`
	Message      string `json:"message"`
}

// DownloadURLResponse is the success body of POST /download-url.
type DownloadURLResponse struct {
	DownloadURL string `json:"downloadUrl"`
	Message     string `json:"message"`
}

// PublicURLResponse is the success body of POST /public-url.
type PublicURLResponse struct {
	PublicURL string `json:"publicUrl"`
	Message   string `json:"message"`
}

// DeleteResponse is the success body of POST /delete-object. Deleted is false
// when the store refused the deletion; deletion is best-effort and never a 500.
type DeleteResponse struct {
	Deleted bool   `json:"deleted"`
	Message string `json:"message"`
}

// CopyResponse is the success body of POST /copy-object.
type CopyResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}
