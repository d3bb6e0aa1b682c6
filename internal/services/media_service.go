package services

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio_backend/internal/imageprocessor"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/storage"
	"portfolio_backend/pkg/apperrors"
)

type MediaService interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResponse, error)
	DeleteImage(ctx context.Context, publicID string) (*dto.MessageResponse, error)

	// EditProfileImage либо удаляет текущую картинку профиля (imageID задан),
	// либо загружает новую из file. Возвращает актуальное значение image.
	EditProfileImage(ctx context.Context, db *gorm.DB, userName, imageID string, file *multipart.FileHeader) (string, error)
}

type MediaServiceImpl struct {
	store       storage.Storage
	processor   *imageprocessor.Processor
	profileRepo repositories.ProfileRepository
	folder      string
}

func NewMediaService(store storage.Storage, processor *imageprocessor.Processor, profileRepo repositories.ProfileRepository, folder string) MediaService {
	if folder == "" {
		folder = "portal"
	}
	return &MediaServiceImpl{
		store:       store,
		processor:   processor,
		profileRepo: profileRepo,
		folder:      folder,
	}
}

// UploadImage кладет изображение в хранилище и возвращает его public_id
// вместе с публичным URL. public_id - это ключ объекта, по нему клиент
// потом запрашивает удаление.
func (s *MediaServiceImpl) UploadImage(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResponse, error) {
	if file == nil {
		return nil, apperrors.ErrNoFileUploaded
	}

	key, err := s.saveImage(ctx, file, imageprocessor.MaxDimension)
	if err != nil {
		return nil, err
	}

	url, err := s.store.GetURL(ctx, key)
	if err != nil {
		return nil, apperrors.ErrImageUploadFail.WithError(err)
	}

	return &dto.UploadResponse{PublicID: key, URL: url}, nil
}

// DeleteImage удаляет изображение по его public_id
func (s *MediaServiceImpl) DeleteImage(ctx context.Context, publicID string) (*dto.MessageResponse, error) {
	if publicID == "" {
		return nil, apperrors.ErrPublicIDRequired
	}

	ok, err := s.store.Exists(ctx, publicID)
	if err != nil || !ok {
		return nil, apperrors.ErrImageDeleteFail
	}
	if err := s.store.Delete(ctx, publicID); err != nil {
		return nil, apperrors.ErrImageDeleteFail.WithError(err)
	}

	return &dto.MessageResponse{Message: "Image deleted successfully"}, nil
}

func (s *MediaServiceImpl) EditProfileImage(ctx context.Context, db *gorm.DB, userName, imageID string, file *multipart.FileHeader) (string, error) {
	// Задан imageID - это запрос на удаление текущей картинки
	if imageID != "" {
		ok, err := s.store.Exists(ctx, imageID)
		if err != nil || !ok {
			return "", apperrors.ErrImageDeleteFail
		}
		if err := s.store.Delete(ctx, imageID); err != nil {
			return "", apperrors.ErrImageDeleteFail.WithError(err)
		}

		image, err := s.profileRepo.UpdateImage(db, userName, "")
		if err != nil {
			return "", mapProfileErr(err)
		}
		return image, nil
	}

	if file == nil {
		return "", apperrors.ErrNoFileUploaded
	}

	key, err := s.saveImage(ctx, file, imageprocessor.ProfileImageDimension)
	if err != nil {
		return "", err
	}

	url, err := s.store.GetURL(ctx, key)
	if err != nil {
		return "", apperrors.ErrImageUploadFail.WithError(err)
	}

	image, err := s.profileRepo.UpdateImage(db, userName, url)
	if err != nil {
		return "", mapProfileErr(err)
	}
	return image, nil
}

// saveImage читает multipart-файл, при необходимости уменьшает его и
// сохраняет под случайным ключом вида <folder>/<uuid><ext>.
func (s *MediaServiceImpl) saveImage(ctx context.Context, file *multipart.FileHeader, maxDim int) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", apperrors.ErrImageUploadFail.WithError(err)
	}
	defer src.Close()

	var (
		body        io.Reader
		contentType string
		ext         string
	)

	if result, err := s.processor.Downscale(src, maxDim); err == nil {
		body = result.Body
		contentType = result.ContentType
		ext = result.Ext
	} else {
		// Не декодируется как известный формат - сохраняем как есть
		logger.Warn("image downscale skipped", "filename", file.Filename, "error", err)
		if _, err := src.Seek(0, io.SeekStart); err != nil {
			return "", apperrors.ErrImageUploadFail.WithError(err)
		}
		data, err := io.ReadAll(src)
		if err != nil {
			return "", apperrors.ErrImageUploadFail.WithError(err)
		}
		body = bytes.NewReader(data)
		contentType = file.Header.Get("Content-Type")
		ext = strings.ToLower(filepath.Ext(file.Filename))
	}

	key := path.Join(s.folder, uuid.NewString()+ext)
	if err := s.store.Save(ctx, key, body, contentType); err != nil {
		return "", apperrors.ErrImageUploadFail.WithError(err)
	}
	return key, nil
}
