package entity

import (
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Allowed profile image content types
const (
	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// ImageUpload is an uploaded profile image as received from the client
type ImageUpload struct {
	OriginalName string    // File name supplied by the client
	DeclaredType string    // Content type declared in the multipart header
	DetectedType string    // Content type sniffed from the bytes, empty when unknown
	Content      io.Reader // File body
}

// IsAllowedImageType reports whether a content type is on the profile image allow-list
func IsAllowedImageType(contentType string) bool {
	return ImageExtension(contentType) != ""
}

// Acceptable checks the declared type and, when present, the sniffed type
func (u *ImageUpload) Acceptable() bool {
	if u == nil || u.Content == nil || !IsAllowedImageType(u.DeclaredType) {
		return false
	}
	return u.DetectedType == "" || IsAllowedImageType(u.DetectedType)
}

// Extension returns the file extension for the accepted content type,
// preferring the sniffed type over the declared one
func (u *ImageUpload) Extension() string {
	contentType := u.DetectedType
	if contentType == "" {
		contentType = u.DeclaredType
	}
	return ImageExtension(contentType)
}

// ImageExtension maps an allowed image content type to its file extension.
// Anything off the allow-list yields an empty string.
func ImageExtension(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case ContentTypeJPEG:
		return ".jpg"
	case ContentTypePNG:
		return ".png"
	default:
		return ""
	}
}

// ProfileImageFilename derives the stored file name for a user's upload:
// the email with non-alphanumerics replaced by '_', the upload time in unix millis, then ext.
// ext comes from the checked content type, never from the client's file name.
func ProfileImageFilename(email string, uploadedAt time.Time, ext string) string {
	return nonAlphanumeric.ReplaceAllString(email, "_") + "_" + strconv.FormatInt(uploadedAt.UnixMilli(), 10) + ext
}
