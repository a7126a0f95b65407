package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/SarahAbdulmajeed/Stocker/internal/application/dto"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain/entity"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain/repository"
	"github.com/SarahAbdulmajeed/Stocker/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de cuentas: registro con aprobación pendiente,
// login y aprobación por un admin.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de cuentas.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// SignUp crea una cuenta en estado pending: hashea el password con bcrypt y
// persiste sin rol. El usuario no puede iniciar sesión hasta que un admin lo
// apruebe. Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UseCase) SignUp(in dto.SignUpRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Status:       entity.UserStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, rechaza cuentas pendientes con
// ErrPendingApproval, genera JWT y retorna token + usuario.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrPendingApproval
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Approve activa una cuenta pendiente asignándole rol admin o employee
// (vacío = employee). Solo lo invoca un admin (RBAC en el router).
func (uc *UseCase) Approve(userID string, in dto.ApproveUserRequest) (*dto.UserResponse, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	if role != entity.RoleAdmin && role != entity.RoleEmployee {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Status = entity.UserStatusActive
	user.Role = role
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListPending lista las cuentas pendientes de aprobación.
func (uc *UseCase) ListPending(limit, offset int) ([]*dto.UserResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	users, err := uc.userRepo.ListByStatus(entity.UserStatusPending, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
