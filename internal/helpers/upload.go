package helpers

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const ServiceFolder = "services"

// UploadImage pushes a single image (file path, URL or base64 data URI) to
// Cloudinary and returns its hosted URL. With no client configured the
// image reference is stored as given.
func UploadImage(ctx context.Context, cld *cloudinary.Cloudinary, image, folder string) (string, error) {
	if strings.TrimSpace(image) == "" {
		return "", nil
	}
	if cld == nil {
		return image, nil
	}

	uploadResult, err := cld.Upload.Upload(ctx, image, uploader.UploadParams{
		Folder: folder,
		Tags:   []string{"iconnect"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %v", err)
	}

	return uploadResult.SecureURL, nil
}
