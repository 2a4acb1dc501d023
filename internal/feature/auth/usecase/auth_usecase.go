// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"todo_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに完全一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// TokenIssuer はベアラートークン発行のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenIssuer interface {
	// GenerateToken は指定されたユーザーの署名済みトークンと有効期間（秒）を返します。
	GenerateToken(userID string) (token string, expiresIn int64, err error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// Register は新規ユーザーを登録し、発行したトークンと有効期間（秒）を返します。
// パスワードはbcryptでハッシュ化して保存し、平文は保持しません。
// メールアドレスが既に登録済みの場合はErrEmailAlreadyExistsを返します。
func (u *authUsecase) Register(ctx context.Context, email, name, password string) (string, int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", 0, ErrNameRequired
	}
	if err := validatePassword(password); err != nil {
		return "", 0, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: email, Name: name, PasswordHash: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return "", 0, err
	}

	token, expiresIn, err := u.tokens.GenerateToken(user.ID)
	if err != nil {
		return "", 0, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, expiresIn, nil
}

// Login はユーザーを認証し、成功時にトークンと有効期間（秒）を返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, int64, error) {
	// メールアドレスでユーザーを検索
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.PasswordHash
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、同一のエラーを返す
	if err != nil || compareErr != nil {
		return "", 0, ErrInvalidCredentials
	}

	token, expiresIn, tokenErr := u.tokens.GenerateToken(user.ID)
	if tokenErr != nil {
		return "", 0, fmt.Errorf("failed to generate token: %w", tokenErr)
	}
	return token, expiresIn, nil
}

// CurrentUser は検証済みトークンから得たユーザーIDでユーザー情報を取得します。
// ユーザーが存在しない場合はErrUserNotFoundを返します。
func (u *authUsecase) CurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}
