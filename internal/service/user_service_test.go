package service

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/model"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserService_CreateSearchDelete(t *testing.T) {
	env := newTestEnv(t)
	svc := env.userService()
	ctx := context.Background()

	email := "alice@example.com"
	id, err := svc.CreateUser(ctx, &dto.CreateUserDTO{Username: "alice", Password: "secret1", Email: &email})
	require.NoError(t, err)
	assert.NotZero(t, id)

	_, err = svc.CreateUser(ctx, &dto.CreateUserDTO{Username: "alice", Password: "secret2"})
	assert.ErrorIs(t, err, ErrUserUsernameExist)
	assertKind(t, KindConflict, err)

	_, err = svc.CreateUser(ctx, &dto.CreateUserDTO{Username: "alice2", Password: "secret2", Email: &email})
	assert.ErrorIs(t, err, ErrUserEmailExist)

	page, err := svc.ListUsers(ctx, dto.ListQuery{Search: "ALI"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "alice", page.Items[0].Username)
	assert.Equal(t, "alice", page.Items[0].Nickname)

	detail, err := svc.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, email, detail.Email)
	assert.True(t, detail.IsActive)

	require.NoError(t, svc.DeleteUser(ctx, id))
	_, err = svc.GetUser(ctx, id)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assertKind(t, KindNotFound, svc.DeleteUser(ctx, id))
}

func TestUserService_CreateValidation(t *testing.T) {
	svc := newTestEnv(t).userService()

	_, err := svc.CreateUser(context.Background(), &dto.CreateUserDTO{Username: "", Password: "x"})
	assertKind(t, KindValidation, err)
}

func TestUserService_UpdateAndToggle(t *testing.T) {
	env := newTestEnv(t)
	svc := env.userService()
	ctx := context.Background()

	bob := env.seedUser(t, "bob", base)
	taken := "taken@example.com"
	carol := env.seedUser(t, "carol", base)
	carol.Email = &taken
	require.NoError(t, env.db.Save(carol).Error)

	err := svc.UpdateUser(ctx, bob.ID, &dto.UpdateUserDTO{Email: &taken})
	assert.ErrorIs(t, err, ErrUserEmailExist)

	nickname, points := "小鲍", 30
	require.NoError(t, svc.UpdateUser(ctx, bob.ID, &dto.UpdateUserDTO{Nickname: &nickname, Points: &points}))
	detail, err := svc.GetUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "小鲍", detail.Nickname)
	assert.Equal(t, 30, detail.Points)

	active, err := svc.ToggleStatus(ctx, bob.ID)
	require.NoError(t, err)
	assert.False(t, active)
	active, err = svc.ToggleStatus(ctx, bob.ID)
	require.NoError(t, err)
	assert.True(t, active)

	err = svc.UpdateUser(ctx, 9999, &dto.UpdateUserDTO{Nickname: &nickname})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_RegisterLogin(t *testing.T) {
	env := newTestEnv(t)
	svc := env.userService()
	ctx := context.Background()

	id, err := svc.Register(ctx, &dto.RegisterDTO{Username: "dora", Password: "123456"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.CredentialDTO{Username: "dora", Password: "wrong"})
	assertKind(t, KindInvalidCredentials, err)

	token, err := svc.Login(ctx, &dto.CredentialDTO{Username: "dora", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, id, token.User.ID)

	claims, err := env.tokens.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)

	_, err = svc.ToggleStatus(ctx, id)
	require.NoError(t, err)
	_, err = svc.Login(ctx, &dto.CredentialDTO{Username: "dora", Password: "123456"})
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestUserService_Profile(t *testing.T) {
	env := newTestEnv(t)
	svc := env.userService()
	ctx := context.Background()
	u := env.seedUser(t, "erin", base)

	bio := "喜欢绒花"
	require.NoError(t, svc.UpdateProfile(ctx, u.ID, &dto.UpdateProfileDTO{Bio: &bio}))
	profile, err := svc.GetProfile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, bio, profile.Bio)
	assert.Equal(t, "erin", profile.Nickname)
	assert.NotEmpty(t, profile.Avatar)
}

func TestUserService_CreateInactiveIsSingleWrite(t *testing.T) {
	env := newTestEnv(t)
	svc := env.userService()
	ctx := context.Background()

	// 任何 update 都失败，新建停用用户只能靠一次 insert 完成
	err := env.db.Callback().Update().Before("gorm:update").Register("test:fail_update", func(tx *gorm.DB) {
		if tx.Statement.Table == "users" {
			_ = tx.AddError(errors.New("update failed"))
		}
	})
	require.NoError(t, err)

	inactive := false
	id, err := svc.CreateUser(ctx, &dto.CreateUserDTO{Username: "eve", Password: "secret1", IsActive: &inactive})
	require.NoError(t, err)

	var saved model.User
	require.NoError(t, env.db.First(&saved, id).Error)
	assert.False(t, saved.IsActive)

	page, err := svc.ListUsers(ctx, dto.ListQuery{Status: "inactive"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "eve", page.Items[0].Username)
}

func TestUserService_ListRejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "frank", base)

	_, err := env.userService().ListUsers(context.Background(), dto.ListQuery{Status: "foo"})
	assert.ErrorIs(t, err, ErrStatusInvalid)
	assertKind(t, KindValidation, err)
}

func TestUserService_ListHugePageIsEmpty(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "gina", base)
	env.seedUser(t, "hank", base.Add(time.Hour))

	page, err := env.userService().ListUsers(context.Background(), dto.ListQuery{Page: 1 << 62, PerPage: 20})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.EqualValues(t, 2, page.Total)
}
