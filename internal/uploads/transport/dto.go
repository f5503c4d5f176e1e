package transport

// UploadResponse describes a stored file. FileKey is what callers reference
// when attaching the file to a comment.
type UploadResponse struct {
	FileKey     string `json:"fileKey"`
	FileName    string `json:"fileName"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`
}
