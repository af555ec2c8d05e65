package service

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/model"
	"Ronghua/internal/pkg/consts"
	"Ronghua/internal/pkg/security"
	"Ronghua/internal/pkg/util"
	"Ronghua/internal/repository"
	"context"
	"strings"

	"github.com/jinzhu/copier"
)

type UserService interface {
	ListUsers(ctx context.Context, q dto.ListQuery) (*dto.PageDTO[dto.UserRowDTO], error)
	GetUser(ctx context.Context, id uint64) (*dto.UserDetailDTO, error)
	CreateUser(ctx context.Context, d *dto.CreateUserDTO) (uint64, error)
	UpdateUser(ctx context.Context, id uint64, d *dto.UpdateUserDTO) error
	// ToggleStatus 翻转启用状态，返回新状态
	ToggleStatus(ctx context.Context, id uint64) (bool, error)
	DeleteUser(ctx context.Context, id uint64) error

	Register(ctx context.Context, d *dto.RegisterDTO) (uint64, error)
	Login(ctx context.Context, d *dto.CredentialDTO) (*dto.TokenDTO, error)
	GetProfile(ctx context.Context, id uint64) (*dto.UserProfileDTO, error)
	UpdateProfile(ctx context.Context, id uint64, d *dto.UpdateProfileDTO) error
}

type UserServiceImpl struct {
	userRepo    repository.UserRepo
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
	orderRepo   repository.OrderRepo
	tokens      *security.TokenManager
}

func NewUserService(userRepo repository.UserRepo, postRepo repository.PostRepo, commentRepo repository.CommentRepo,
	orderRepo repository.OrderRepo, tokens *security.TokenManager) UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		orderRepo:   orderRepo,
		tokens:      tokens,
	}
}

func (s *UserServiceImpl) ListUsers(ctx context.Context, q dto.ListQuery) (*dto.PageDTO[dto.UserRowDTO], error) {
	if q.Status != "" && !consts.IsUserStatus(q.Status) {
		return nil, ErrStatusInvalid
	}
	items, total, err := s.userRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return toPage(items, total, q, toUserRow), nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id uint64) (*dto.UserDetailDTO, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	detail := &dto.UserDetailDTO{
		UserRowDTO: toUserRow(user),
		Avatar:     user.Avatar,
		Bio:        user.Bio,
		IsVerified: user.IsVerified,
		UpdatedAt:  util.FormatTime(user.UpdatedAt, consts.TimeLayout),
	}
	if detail.PostCount, err = s.postRepo.CountByAuthor(ctx, id); err != nil {
		return nil, err
	}
	if detail.CommentCount, err = s.commentRepo.CountByAuthor(ctx, id); err != nil {
		return nil, err
	}
	if detail.OrderCount, err = s.orderRepo.CountByUser(ctx, id); err != nil {
		return nil, err
	}
	return detail, nil
}

// ensureUnique 检查用户名、邮箱、手机号是否被其他用户占用，selfID 为 0 表示新建
func (s *UserServiceImpl) ensureUnique(ctx context.Context, selfID uint64, username string, email, phone *string) error {
	if username != "" {
		u, err := s.userRepo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if u != nil && u.ID != selfID {
			return ErrUserUsernameExist
		}
	}
	if email != nil && *email != "" {
		u, err := s.userRepo.GetByEmail(ctx, *email)
		if err != nil {
			return err
		}
		if u != nil && u.ID != selfID {
			return ErrUserEmailExist
		}
	}
	if phone != nil && *phone != "" {
		u, err := s.userRepo.GetByPhone(ctx, *phone)
		if err != nil {
			return err
		}
		if u != nil && u.ID != selfID {
			return ErrUserPhoneExist
		}
	}
	return nil
}

func (s *UserServiceImpl) newUser(ctx context.Context, username, password, nickname string, email, phone *string, active bool) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = util.PtrString(strings.TrimSpace(util.DerefString(email)))
	phone = util.PtrString(strings.TrimSpace(util.DerefString(phone)))

	if err := s.ensureUnique(ctx, 0, username, email, phone); err != nil {
		return nil, err
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		Nickname:     orDefault(nickname, username),
		IsActive:     active,
		Level:        1,
	}
	if err = writeErr(s.userRepo.Create(ctx, user)); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, d *dto.CreateUserDTO) (uint64, error) {
	if err := util.ValidateDTO(d); err != nil {
		return 0, err
	}
	nickname := d.Nickname
	if nickname == "" {
		nickname = d.FullName
	}
	active := d.IsActive == nil || *d.IsActive
	user, err := s.newUser(ctx, d.Username, d.Password, nickname, d.Email, d.Phone, active)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, id uint64, d *dto.UpdateUserDTO) error {
	if err := util.ValidateDTO(d); err != nil {
		return err
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err = s.ensureUnique(ctx, id, "", d.Email, d.Phone); err != nil {
		return err
	}

	if err = copier.CopyWithOption(user, d, copier.Option{IgnoreEmpty: true}); err != nil {
		return err
	}
	if d.Email != nil {
		user.Email = util.PtrString(strings.TrimSpace(*d.Email))
	}
	if d.Phone != nil {
		user.Phone = util.PtrString(strings.TrimSpace(*d.Phone))
	}
	if d.IsActive != nil {
		user.IsActive = *d.IsActive
	}
	if d.Password != nil && *d.Password != "" {
		if user.PasswordHash, err = security.HashPassword(*d.Password); err != nil {
			return err
		}
	}
	return writeErr(s.userRepo.Save(ctx, user))
}

func (s *UserServiceImpl) ToggleStatus(ctx context.Context, id uint64) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, ErrUserNotFound
	}
	next := !user.IsActive
	if _, err = s.userRepo.SetActive(ctx, id, next); err != nil {
		return false, err
	}
	return next, nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id uint64) error {
	affected, err := s.userRepo.DeleteCascade(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserServiceImpl) Register(ctx context.Context, d *dto.RegisterDTO) (uint64, error) {
	if err := util.ValidateDTO(d); err != nil {
		return 0, err
	}
	user, err := s.newUser(ctx, d.Username, d.Password, d.Nickname, d.Email, d.Phone, true)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, d *dto.CredentialDTO) (*dto.TokenDTO, error) {
	if err := util.ValidateDTO(d); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(d.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(d.Password, user.PasswordHash); err != nil {
		return nil, ErrPasswordIncorrect
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &dto.TokenDTO{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.tokens.ExpiresIn(),
		User:        toProfile(user),
	}, nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, id uint64) (*dto.UserProfileDTO, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	profile := toProfile(user)
	return &profile, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id uint64, d *dto.UpdateProfileDTO) error {
	if err := util.ValidateDTO(d); err != nil {
		return err
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err = copier.CopyWithOption(user, d, copier.Option{IgnoreEmpty: true}); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}
