package dto

type UploadResponse struct {
	Message  string `json:"message"`
	FileURL  string `json:"file_url"`
	Filename string `json:"filename"`
}
