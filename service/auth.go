package service

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"
	"time"

	"saldo/models"
	"saldo/repository"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength 密码最小长度
const MinPasswordLength = 6

// TokenIssuer 签发访问令牌
type TokenIssuer interface {
	Issue(userID uint, email string) (string, error)
}

// Notifier 注册成功后的通知
type Notifier interface {
	SendWelcomeEmail(toEmail, name string) error
}

// RegisterInput 注册参数
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email" example:"ana@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
	Name     string `json:"name" binding:"required,max=100" example:"Ana"`
}

// LoginInput 登录参数
type LoginInput struct {
	Email    string `json:"email" binding:"required" example:"ana@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// UserInfo 用户信息
type UserInfo struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResult 登录/注册结果
type AuthResult struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

func userInfo(u *models.User) UserInfo {
	return UserInfo{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

// AuthService 认证服务
type AuthService struct {
	users    *repository.UserRepository
	tokens   TokenIssuer
	notifier Notifier
}

// NewAuthService 创建认证服务，notifier 可为 nil
func NewAuthService(users *repository.UserRepository, tokens TokenIssuer, notifier Notifier) *AuthService {
	return &AuthService{users: users, tokens: tokens, notifier: notifier}
}

// Register 注册新用户并签发令牌
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email := repository.NormalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)

	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return nil, invalid("email", "邮箱格式不正确")
	}
	if len(in.Password) < MinPasswordLength {
		return nil, invalid("password", "密码长度至少 6 位")
	}
	if name == "" {
		return nil, invalid("name", "名称不能为空")
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fromRepository(err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{Email: email, Password: string(hashed), Name: name}
	if err := s.users.Create(ctx, user); err != nil {
		// 并发注册时由唯一索引兜底
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.SendWelcomeEmail(user.Email, user.Name); err != nil {
			log.Printf("发送欢迎邮件失败 (user=%d): %v", user.ID, err)
		}
	}

	return &AuthResult{Token: token, User: userInfo(user)}, nil
}

// Login 校验邮箱密码并签发令牌
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, ErrUnauthorized
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: userInfo(user)}, nil
}

// Profile 查询当前用户信息
func (s *AuthService) Profile(ctx context.Context, userID uint) (*UserInfo, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fromRepository(err)
	}
	info := userInfo(user)
	return &info, nil
}

// ChangePasswordInput 修改密码参数
type ChangePasswordInput struct {
	OldPassword string `json:"old_password" binding:"required" example:"secret123"`
	NewPassword string `json:"new_password" binding:"required,min=6" example:"newsecret456"`
}

// ChangePassword 校验原密码后更新密码
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, in ChangePasswordInput) error {
	if len(in.NewPassword) < MinPasswordLength {
		return invalid("new_password", "密码长度至少 6 位")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fromRepository(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.OldPassword)); err != nil {
		return invalid("old_password", "原密码错误")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return fromRepository(s.users.UpdatePassword(ctx, userID, string(hashed)))
}
