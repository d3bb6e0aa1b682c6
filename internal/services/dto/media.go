package dto

// UploadResponse - результат загрузки изображения
type UploadResponse struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// DeleteImageRequest - удаление изображения по его public_id
type DeleteImageRequest struct {
	PublicID string `json:"public_id"`
}

// MessageResponse - простой ответ-подтверждение
type MessageResponse struct {
	Message string `json:"message"`
}
