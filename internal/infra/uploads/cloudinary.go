package uploads

import (
	"context"
	"fmt"
	"io"

	"link2pay-backend/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type Uploader struct {
	cld *cloudinary.Cloudinary
}

// New builds the Cloudinary uploader from CLOUDINARY_URL. Returns nil when
// unconfigured; callers must treat that as "uploads disabled".
func New() (*Uploader, error) {
	if config.CLOUDINARY_URL == "" {
		return nil, nil
	}
	cld, err := cloudinary.NewFromURL(config.CLOUDINARY_URL)
	if err != nil {
		return nil, err
	}
	return &Uploader{cld: cld}, nil
}

func boolPtr(b bool) *bool {
	return &b
}

// UploadLogo pushes a store logo to Cloudinary and returns the hosted URL
// and public ID.
func (u *Uploader) UploadLogo(ctx context.Context, file io.Reader, userID uint) (url string, publicID string, err error) {
	if u == nil || u.cld == nil {
		return "", "", fmt.Errorf("uploads not configured")
	}

	up, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         fmt.Sprintf("link2pay/logos/%d", userID),
		ResourceType:   "image",
		UseFilename:    boolPtr(true),
		UniqueFilename: boolPtr(true),
		Overwrite:      boolPtr(false),
	})
	if err != nil {
		return "", "", err
	}
	return up.SecureURL, up.PublicID, nil
}
