package dto

import (
	"fmt"
	"mime/multipart"
)

type ImportRequest struct {
	File *multipart.FileHeader `validate:"required,maxfilesize=10"`
}

type PermissionResponse struct {
	Allowed bool `json:"allowed"`
}

type ImportResponse struct {
	Accepted int    `json:"accepted"`
	Message  string `json:"message"`
	FileURL  string `json:"file_url,omitempty"`
}

func NewImportResponse(accepted int, fileURL string) ImportResponse {
	return ImportResponse{
		Accepted: accepted,
		Message:  fmt.Sprintf("업로드 완료! 총 %d건이 처리되었습니다.", accepted),
		FileURL:  fileURL,
	}
}
