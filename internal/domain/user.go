package domain

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/internal/model"
	"github.com/chirp-lab/backend/internal/repository"
	"github.com/chirp-lab/backend/pkg/crypto"
	"github.com/chirp-lab/backend/pkg/errorx"
	"github.com/chirp-lab/backend/pkg/storage"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type UserDomain interface {
	GetUser(context.Context, *model.GetUserRequest) (*model.GetUserResponse, error)
	UpdateUser(context.Context, *model.UpdateUserRequest) (*model.UpdateUserResponse, error)
}

type userDomain struct {
	userRepo    repository.UserRepository
	fileStorage storage.Storage
}

func NewUserDomain(userRepo repository.UserRepository, fileStorage storage.Storage) *userDomain {
	return &userDomain{userRepo: userRepo, fileStorage: fileStorage}
}

func (d *userDomain) GetUser(
	ctx context.Context, req *model.GetUserRequest,
) (*model.GetUserResponse, error) {
	userID := req.UserID
	if userID == "" {
		userID = xcontext.RequestUserID(ctx)
	}

	profile, err := d.userRepo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user profile: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetUserResponse{Profile: model.Profile{
		User:           model.ConvertUser(&profile.User, true),
		FollowerCount:  profile.FollowerCount,
		FollowingCount: profile.FollowingCount,
	}}, nil
}

func (d *userDomain) UpdateUser(
	ctx context.Context, req *model.UpdateUserRequest,
) (*model.UpdateUserResponse, error) {
	requestUserID := xcontext.RequestUserID(ctx)
	if req.UserID != "" && req.UserID != requestUserID {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	// Parse the form once up front, FormFile is then safe from the upload
	// goroutine. A non-multipart edit simply carries no files.
	httpReq := xcontext.HTTPRequest(ctx)
	if httpReq.MultipartForm == nil {
		err := httpReq.ParseMultipartForm(xcontext.Configs(ctx).File.MaxSize)
		if err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return nil, errorx.New(errorx.BadRequest, "Cannot parse the multipart form")
		}
	}

	// The user lookup and the media uploads run concurrently and must all
	// finish before anything is persisted.
	var user *entity.User
	var uploads map[string]string
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		record, err := d.userRepo.GetByID(egCtx, requestUserID)
		if err != nil {
			return err
		}

		user = record
		return nil
	})
	eg.Go(func() error {
		urls, err := d.uploadImages(egCtx, "avatar", "cover")
		if err != nil {
			return err
		}

		uploads = urls
		return nil
	})

	if err := eg.Wait(); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		if errx := (errorx.Error{}); errors.As(err, &errx) {
			return nil, errx
		}

		xcontext.Logger(ctx).Errorf("Cannot prepare user update: %v", err)
		return nil, errorx.Unknown
	}

	if req.Account != "" && req.Account != user.Account {
		if _, err := d.userRepo.GetByAccount(ctx, req.Account); err == nil {
			return nil, errorx.New(errorx.AlreadyExists, "Account already exists!")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot check account uniqueness: %v", err)
			return nil, errorx.Unknown
		}
	}

	if req.Email != "" && req.Email != user.Email {
		if _, err := d.userRepo.GetByEmail(ctx, req.Email); err == nil {
			return nil, errorx.New(errorx.AlreadyExists, "Email already exists!")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot check email uniqueness: %v", err)
			return nil, errorx.Unknown
		}
	}

	update := &entity.User{
		Account: req.Account,
		Name:    req.Name,
		Email:   req.Email,
		Avatar:  uploads["avatar"],
		Cover:   uploads["cover"],
	}

	if req.Introduction != "" {
		update.Introduction = sql.NullString{String: req.Introduction, Valid: true}
	}

	if req.Password != "" {
		hashed, err := crypto.HashPassword(req.Password)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot hash the password: %v", err)
			return nil, errorx.Unknown
		}

		update.Password = hashed
	}

	if err := d.userRepo.UpdateByID(ctx, requestUserID, update); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.AlreadyExists, "Account already exists!")
		}

		xcontext.Logger(ctx).Errorf("Cannot update user: %v", err)
		return nil, errorx.Unknown
	}

	updated, err := d.userRepo.GetByID(ctx, requestUserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get updated user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateUserResponse{User: model.ConvertUser(updated, true)}, nil
}

// uploadImages stores the supplied form files and returns their public URLs
// keyed by form field. An absent file just has no entry, the empty URL keeps
// the prior value.
func (d *userDomain) uploadImages(ctx context.Context, keys ...string) (map[string]string, error) {
	urls := map[string]string{}

	req := xcontext.HTTPRequest(ctx)
	if req.MultipartForm == nil {
		return urls, nil
	}

	objects := []*storage.UploadObject{}
	objectKeys := []string{}
	for _, key := range keys {
		file, header, err := req.FormFile(key)
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				continue
			}

			return nil, errorx.New(errorx.BadRequest, "Error retrieving the %s file", key)
		}

		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot read the %s file: %v", key, err)
			return nil, errorx.Unknown
		}

		objects = append(objects, &storage.UploadObject{
			Bucket:   xcontext.Configs(ctx).Storage.Bucket,
			Prefix:   key + "s",
			FileName: header.Filename,
			Mime:     header.Header.Get("Content-Type"),
			Data:     data,
		})
		objectKeys = append(objectKeys, key)
	}

	if len(objects) == 1 {
		resp, err := d.fileStorage.Upload(ctx, objects[0])
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot upload the %s file: %v", objectKeys[0], err)
			return nil, errorx.Unknown
		}

		urls[objectKeys[0]] = resp.Url
		return urls, nil
	}

	if len(objects) > 1 {
		resps, err := d.fileStorage.BulkUpload(ctx, objects)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot upload the profile files: %v", err)
			return nil, errorx.Unknown
		}

		for i, resp := range resps {
			urls[objectKeys[i]] = resp.Url
		}
	}

	return urls, nil
}
