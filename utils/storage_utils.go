package utils

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

var (
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrImageTooLarge    = errors.New("image exceeds size limit")
)

// MaxImageSize caps uploads at 5 MB.
const MaxImageSize = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Uploader pushes user media to S3-compatible object storage and
// returns public URLs the platform can store as-is.
type Uploader struct {
	client  *s3.S3
	bucket  string
	baseURL string
}

// NewUploader connects to the object storage endpoint with static
// credentials.
func NewUploader(accessKey, secretKey, region, endpoint, bucket, baseURL string) *Uploader {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
		Credentials: credentials.NewStaticCredentials(
			accessKey, secretKey, "",
		),
	}))
	return &Uploader{
		client:  s3.New(sess),
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// UploadImage stores an image under the given folder with a random
// name. Only jpeg, png and webp pass; anything larger than
// MaxImageSize is rejected before touching the network.
func (u *Uploader) UploadImage(data []byte, contentType, folder string) (string, error) {
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, contentType)
	}
	if len(data) > MaxImageSize {
		return "", fmt.Errorf("%w: %d bytes", ErrImageTooLarge, len(data))
	}

	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	_, err := u.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload %s: %w", key, err)
	}

	return u.baseURL + "/" + key, nil
}
