package upload

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"trip-event-page/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader upload(file, category) -> URL 형태의 외부 저장 capability.
type Uploader interface {
	Upload(ctx context.Context, file multipart.File, category string) (string, error)
}

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cfg *config.CloudinaryConfig) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config error: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

// Upload category를 폴더명으로 써서 업로드하고 공개 URL을 돌려준다.
func (u *CloudinaryUploader) Upload(ctx context.Context, file multipart.File, category string) (string, error) {
	if category == "" {
		category = "events"
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: category,
	})
	if err != nil {
		return "", fmt.Errorf("upload error: %w", err)
	}
	return resp.SecureURL, nil
}
