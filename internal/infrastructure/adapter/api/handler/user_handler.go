package handler

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sims-ppob/internal/domain/port/core"
	"github.com/amirhossein-jamali/sims-ppob/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/response"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

// UploadsRoute is the path stored profile images are served under
const UploadsRoute = "/uploads"

// imageField is the multipart field carrying the profile image
const imageField = "file"

// UploadSettings controls profile image uploads
type UploadSettings struct {
	MaxSize       int64  // Largest accepted request body in bytes
	PublicBaseURL string // Replaces the request's scheme and host in image URLs when set
}

// UserHandler handles registration, login and profile requests
type UserHandler struct {
	accounts usecase.AccountUseCase
	uploads  UploadSettings
	logger   coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	accounts usecase.AccountUseCase,
	uploads UploadSettings,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		accounts: accounts,
		uploads:  uploads,
		logger:   logger,
	}
}

// Register handles the POST /registration endpoint
func (h *UserHandler) Register(c *gin.Context) {
	req := middleware.Payload[dto.RegisterRequest](c)

	err := h.accounts.Register(c.Request.Context(), usecase.RegisterInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Registrasi berhasil silahkan login", nil)
}

// Login handles the POST /login endpoint
func (h *UserHandler) Login(c *gin.Context) {
	req := middleware.Payload[dto.LoginRequest](c)

	token, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Login Sukses", dto.TokenResponse{Token: token})
}

// GetProfile handles the GET /profile endpoint
func (h *UserHandler) GetProfile(c *gin.Context) {
	email, _ := middleware.Email(c)

	profile, err := h.accounts.GetProfile(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Sukses", dto.NewProfileResponse(profile))
}

// UpdateProfile handles the PUT /profile/update endpoint
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	email, _ := middleware.Email(c)
	req := middleware.Payload[dto.UpdateProfileRequest](c)

	profile, err := h.accounts.UpdateProfile(c.Request.Context(), email, req.FirstName, req.LastName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Update Pofile berhasil", dto.NewProfileResponse(profile))
}

// UpdateProfileImage handles the PUT /profile/image endpoint.
// The image arrives as the multipart field "file"; its bytes are sniffed
// in addition to the declared content type.
func (h *UserHandler) UpdateProfileImage(c *gin.Context) {
	email, _ := middleware.Email(c)

	if h.uploads.MaxSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.uploads.MaxSize)
	}
	file, header, err := c.Request.FormFile(imageField)
	if err != nil {
		h.logger.Debug("Profile image missing or unreadable", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		response.Error(c, errs.ErrInvalidImageFormat)
		return
	}
	defer file.Close()

	upload := &entity.ImageUpload{
		OriginalName: header.Filename,
		DeclaredType: header.Header.Get("Content-Type"),
		Content:      file,
	}
	if detected, err := mimetype.DetectReader(file); err == nil {
		upload.DetectedType = detected.String()
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		response.Error(c, fmt.Errorf("%w: rewind upload: %v", errs.ErrInternalServer, err))
		return
	}

	profile, err := h.accounts.UpdateProfileImage(c.Request.Context(), email, upload, h.imageBaseURL(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Update Profile Image berhasil", dto.NewProfileResponse(profile))
}

// imageBaseURL is the public prefix of stored images for this request
func (h *UserHandler) imageBaseURL(c *gin.Context) string {
	if h.uploads.PublicBaseURL != "" {
		return strings.TrimRight(h.uploads.PublicBaseURL, "/") + UploadsRoute
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	} else if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host + UploadsRoute
}
