package helper

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	// Banner images are embedded in the batch document, so keep them small.
	maxUploadBytes = 5 * 1024 * 1024
	maxBannerWidth = 1280
	webpQuality    = 85
)

// ImageToWebpDataURI reads an uploaded image, bounds its width, re-encodes it
// as webp and returns a data URI ready to store on the entity.
func ImageToWebpDataURI(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxUploadBytes {
		return "", fmt.Errorf("image exceeds 5MB (%dKB)", fileHeader.Size/1024)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded image: %w", err)
	}
	defer src.Close()

	img, err := decodeByExt(src, fileHeader.Filename)
	if err != nil {
		return "", err
	}

	// IMAGE (bound width & convert to webp; webp stays webp)
	if img.Bounds().Dx() > maxBannerWidth {
		img = imaging.Resize(img, maxBannerWidth, 0, imaging.Lanczos)
	}

	webpBuf := new(bytes.Buffer)
	if err := webp.Encode(webpBuf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("webp encode failed: %w", err)
	}

	return EmbeddedDataURI("image/webp", base64.StdEncoding.EncodeToString(webpBuf.Bytes())), nil
}

// FileToDataURI embeds a non-image upload (e.g. a PDF note) as-is.
func FileToDataURI(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxUploadBytes {
		return "", fmt.Errorf("file exceeds 5MB (%dKB)", fileHeader.Size/1024)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return EmbeddedDataURI(contentType, base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}

func decodeByExt(src io.Reader, filename string) (image.Image, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		img, err := jpeg.Decode(src)
		if err != nil {
			return nil, fmt.Errorf("invalid JPEG file: %w", err)
		}
		return img, nil
	case ".png":
		img, err := png.Decode(src)
		if err != nil {
			return nil, fmt.Errorf("invalid PNG file: %w", err)
		}
		return img, nil
	case ".webp":
		img, err := webp.Decode(src)
		if err != nil {
			return nil, fmt.Errorf("invalid WebP file: %w", err)
		}
		return img, nil
	default:
		return nil, fmt.Errorf("unsupported image type %q", ext)
	}
}
