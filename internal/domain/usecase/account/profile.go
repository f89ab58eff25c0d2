package account

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
)

// UpdateProfile overwrites both name fields unconditionally
func (a *AccountUseCase) UpdateProfile(ctx context.Context, email, firstName, lastName string) (*entity.Profile, error) {
	user, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	user.Rename(firstName, lastName, a.timeProvider)
	if err := a.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	profile := user.Profile()
	return &profile, nil
}

// UpdateProfileImage stores the upload and points the profile at it.
// baseURL is the public prefix stored images are served under.
func (a *AccountUseCase) UpdateProfileImage(
	ctx context.Context,
	email string,
	upload *entity.ImageUpload,
	baseURL string,
) (*entity.Profile, error) {
	if !upload.Acceptable() {
		return nil, errs.ErrInvalidImageFormat
	}

	user, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	name := entity.ProfileImageFilename(user.Email, a.timeProvider.Now(), upload.Extension())
	if err := a.images.Save(ctx, name, upload.Content); err != nil {
		a.logger.Error("Failed to store profile image", map[string]any{
			"userId": user.ID,
			"file":   name,
			"error":  err.Error(),
		})
		return nil, err
	}

	user.SetProfileImage(strings.TrimRight(baseURL, "/")+"/"+name, a.timeProvider)
	if err := a.userRepo.Update(ctx, user); err != nil {
		if rmErr := a.images.Remove(ctx, name); rmErr != nil {
			a.logger.Warn("Failed to remove orphaned profile image", map[string]any{
				"file":  name,
				"error": rmErr.Error(),
			})
		}
		return nil, err
	}

	a.logger.Info("Profile image updated", map[string]any{
		"userId": user.ID,
		"file":   name,
	})

	profile := user.Profile()
	return &profile, nil
}
