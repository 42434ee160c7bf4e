package domain

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/chirp-lab/backend/internal/model"
	"github.com/chirp-lab/backend/internal/repository"
	"github.com/chirp-lab/backend/pkg/errorx"
	"github.com/chirp-lab/backend/pkg/storage"
	"github.com/chirp-lab/backend/pkg/testutil"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_userDomain_GetUser(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixture(ctx)

	followshipRepo := repository.NewFollowshipRepository()
	require.NoError(t, followshipRepo.Create(ctx, testutil.User2.ID, testutil.User1.ID))
	require.NoError(t, followshipRepo.Create(ctx, testutil.User3.ID, testutil.User1.ID))
	require.NoError(t, followshipRepo.Create(ctx, testutil.User1.ID, testutil.User2.ID))

	domain := NewUserDomain(repository.NewUserRepository(), &testutil.MockStorage{})

	resp, err := domain.GetUser(ctx, &model.GetUserRequest{UserID: testutil.User1.ID})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.Account, resp.User.Account)
	require.Equal(t, testutil.User1.Email, resp.User.Email)
	require.Equal(t, int64(2), resp.FollowerCount)
	require.Equal(t, int64(1), resp.FollowingCount)
}

func Test_userDomain_GetUser_DefaultToRequestUser(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixture(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User2.ID)

	domain := NewUserDomain(repository.NewUserRepository(), &testutil.MockStorage{})

	resp, err := domain.GetUser(ctx, &model.GetUserRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.User2.ID, resp.User.ID)
	require.Equal(t, int64(0), resp.FollowerCount)
	require.Equal(t, int64(0), resp.FollowingCount)
}

func Test_userDomain_GetUser_NotFound(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixture(ctx)

	domain := NewUserDomain(repository.NewUserRepository(), &testutil.MockStorage{})

	_, err := domain.GetUser(ctx, &model.GetUserRequest{UserID: "no-such-user"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
	require.Equal(t, "Not found user", err.Error())
}

func Test_userDomain_UpdateUser(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixture(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	ctx = xcontext.WithHTTPRequest(ctx, httptest.NewRequest("POST", "/updateUser", nil))

	domain := NewUserDomain(repository.NewUserRepository(), &testutil.MockStorage{})

	resp, err := domain.UpdateUser(ctx, &model.UpdateUserRequest{
		Name:         "Root Senior",
		Introduction: "hello there",
	})
	require.NoError(t, err)
	require.Equal(t, "Root Senior", resp.User.Name)
	require.Equal(t, "hello there", resp.User.Introduction)

	// Fields not included in the request keep their values.
	require.Equal(t, testutil.User1.Account, resp.User.Account)
	require.Equal(t, testutil.User1.Avatar, resp.User.Avatar)
	require.Equal(t, testutil.User1.Cover, resp.User.Cover)
}

func Test_userDomain_UpdateUser_OtherUser(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixture(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	ctx = xcontext.WithHTTPRequest(ctx, httptest.NewRequest("POST", "/updateUser", nil))

	domain := NewUserDomain(repository.NewUserRepository(), &testutil.MockStorage{})

	_, err := domain.UpdateUser(ctx, &model.UpdateUserRequest{
		UserID: testutil.User2.ID,
		Name:   "Hijacked",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)
}

func Test_userDomain_UpdateUser_DuplicatedAccount(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixture(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	ctx = xcontext.WithHTTPRequest(ctx, httptest.NewRequest("POST", "/updateUser", nil))

	domain := NewUserDomain(repository.NewUserRepository(), &testutil.MockStorage{})

	_, err := domain.UpdateUser(ctx, &model.UpdateUserRequest{
		Account: testutil.User2.Account,
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)
	require.Equal(t, "Account already exists!", err.Error())
}

func Test_userDomain_UpdateUser_UploadAvatar(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixture(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("avatar", "avatar.png")
	require.NoError(t, err)
	_, err = io.Copy(part, bytes.NewReader([]byte("not-really-a-png")))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/updateUser", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	ctx = xcontext.WithHTTPRequest(ctx, req)

	mockStorage := &testutil.MockStorage{
		UploadFunc: func(_ context.Context, obj *storage.UploadObject) (*storage.UploadResponse, error) {
			require.Equal(t, "avatars", obj.Prefix)
			require.Equal(t, "avatar.png", obj.FileName)
			return &storage.UploadResponse{Url: "https://cdn.example.com/avatars/avatar.png"}, nil
		},
	}

	domain := NewUserDomain(repository.NewUserRepository(), mockStorage)

	resp, err := domain.UpdateUser(ctx, &model.UpdateUserRequest{})
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/avatars/avatar.png", resp.User.Avatar)
	require.Equal(t, testutil.User1.Cover, resp.User.Cover)
}

func Test_userDomain_UpdateUser_UploadAvatarAndCover(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixture(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, key := range []string{"avatar", "cover"} {
		part, err := writer.CreateFormFile(key, key+".png")
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader([]byte("not-really-a-png")))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/updateUser", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	ctx = xcontext.WithHTTPRequest(ctx, req)

	// Both files go out as a single batch.
	mockStorage := &testutil.MockStorage{
		BulkUploadFunc: func(_ context.Context, objects []*storage.UploadObject) ([]*storage.UploadResponse, error) {
			require.Len(t, objects, 2)
			resps := []*storage.UploadResponse{}
			for _, obj := range objects {
				resps = append(resps, &storage.UploadResponse{
					Url: "https://cdn.example.com/" + obj.Prefix + "/" + obj.FileName,
				})
			}
			return resps, nil
		},
	}

	domain := NewUserDomain(repository.NewUserRepository(), mockStorage)

	resp, err := domain.UpdateUser(ctx, &model.UpdateUserRequest{})
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/avatars/avatar.png", resp.User.Avatar)
	require.Equal(t, "https://cdn.example.com/covers/cover.png", resp.User.Cover)
}

func Test_userDomain_UpdateUser_BadMultipart(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixture(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	req := httptest.NewRequest("POST", "/updateUser",
		bytes.NewReader([]byte("this is not a multipart body")))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	ctx = xcontext.WithHTTPRequest(ctx, req)

	domain := NewUserDomain(repository.NewUserRepository(), &testutil.MockStorage{})

	_, err := domain.UpdateUser(ctx, &model.UpdateUserRequest{Name: "Renamed"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}
