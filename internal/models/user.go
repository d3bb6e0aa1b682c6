package models

// User - учетная запись. Создается при регистрации, в рамках
// сервиса не обновляется и не удаляется.
type User struct {
	BaseModel
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	UserName     string `gorm:"uniqueIndex;not null" json:"userName"`
	PasswordHash string `gorm:"not null" json:"-"`
}
