package service

import (
	"context"
	"errors"
	"strings"

	"hrdesk/config"
	"hrdesk/internal/core"
	"hrdesk/internal/dto"
	"hrdesk/internal/model"
	cErr "hrdesk/internal/pkg/error"
	"hrdesk/internal/store"
	"hrdesk/internal/telemetry"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AdminService struct {
	trace  *telemetry.Trace
	config *config.Configuration
	logger *zap.Logger
	ws     *Workspace
}

func NewAdminService(trace *telemetry.Trace, config *config.Configuration, logger *zap.Logger, ws *Workspace) *AdminService {
	return &AdminService{trace: trace, config: config, logger: logger, ws: ws}
}

func (s *AdminService) ListUsers(ctx context.Context, query dto.UserSearchQuery) ([]dto.DashboardUserDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	users, err := s.ws.Users.Filter(ctx, func(u model.DashboardUser) bool {
		return store.MatchAny(query.Search, u.Name, u.ID, u.Email)
	})
	if err != nil {
		return nil, storeError("list users", err)
	}
	s.trace.ApplyTraceAttributes(span, core.TraceListMeta{
		Resource: string(core.SlotDashboardUsers), Search: query.Search, ResultCount: len(users),
	})
	out := make([]dto.DashboardUserDto, 0, len(users))
	for _, u := range users {
		out = append(out, toUserDto(u))
	}
	return out, nil
}

// CreateUser userId 即帳號，email 為 <userId>@網域；密碼以 bcrypt 保存
func (s *AdminService) CreateUser(ctx context.Context, req *dto.CreateDashboardUserDto) (*dto.DashboardUserDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	userID := strings.TrimSpace(req.UserID)
	name := strings.TrimSpace(req.Name)
	if userID == "" || name == "" {
		return nil, cErr.ValidateErr("name and userId must not be blank")
	}
	if strings.ContainsAny(userID, " \t@") {
		return nil, cErr.ValidateErr("userId must not contain spaces or '@'")
	}
	if req.Password != req.ConfirmPassword {
		return nil, cErr.PasswordMismatch("passwords do not match")
	}
	role := req.Role
	if role == "" {
		role = core.RoleStaff
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, cErr.InternalServer("hash password failed")
	}

	created, err := s.ws.Users.Create(ctx, model.DashboardUser{
		ID:           userID,
		Name:         name,
		Role:         role,
		Email:        userID + "@" + s.config.Admin.EmailDomain,
		PasswordHash: string(hash),
	})
	if errors.Is(err, store.ErrDuplicateKey) {
		return nil, cErr.Conflict("user id already exists")
	}
	if err != nil {
		return nil, storeError("create user", err)
	}
	s.logger.Info("dashboard user created", zap.String("id", created.ID), zap.String("role", string(created.Role)))
	out := toUserDto(created)
	return &out, nil
}

func (s *AdminService) UpdateUser(ctx context.Context, id string, req *dto.UpdateDashboardUserDto) (*dto.DashboardUserDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	updated, found, err := s.ws.Users.Update(ctx, id, func(u *model.DashboardUser) error {
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return cErr.ValidateErr("name must not be blank")
			}
			u.Name = name
		}
		if req.Role != nil {
			u.Role = *req.Role
		}
		return nil
	})
	if err != nil {
		return nil, storeError("update user", err)
	}
	if !found {
		return nil, cErr.NotFound("user not found")
	}
	out := toUserDto(updated)
	return &out, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	found, err := s.ws.Users.Delete(ctx, id)
	if err != nil {
		return storeError("delete user", err)
	}
	if !found {
		return cErr.NotFound("user not found")
	}
	return nil
}

func (s *AdminService) Details(ctx context.Context) (*dto.AdminDetailsDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	details, err := s.ws.AdminDetails.Get(ctx)
	if err != nil {
		return nil, storeError("get admin details", err)
	}
	return toAdminDto(details), nil
}

// UpdateDetails 已設定過密碼時，改密碼需要正確的目前密碼
func (s *AdminService) UpdateDetails(ctx context.Context, req *dto.UpdateAdminDetailsDto) (*dto.AdminDetailsDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if req.NewPassword != "" && req.NewPassword != req.ConfirmPassword {
		return nil, cErr.PasswordMismatch("passwords do not match")
	}

	details, err := s.ws.AdminDetails.Update(ctx, func(d *model.AdminDetails) error {
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return cErr.ValidateErr("name must not be blank")
			}
			d.Name = name
		}
		if req.Email != nil {
			d.Email = strings.TrimSpace(*req.Email)
		}
		if req.NewPassword == "" {
			return nil
		}
		if d.PasswordHash != "" {
			if bcrypt.CompareHashAndPassword([]byte(d.PasswordHash), []byte(req.CurrentPassword)) != nil {
				return cErr.WrongPassword("current password is incorrect")
			}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return cErr.InternalServer("hash password failed")
		}
		d.PasswordHash = string(hash)
		return nil
	})
	if err != nil {
		return nil, storeError("update admin details", err)
	}
	return toAdminDto(details), nil
}

func toUserDto(u model.DashboardUser) dto.DashboardUserDto {
	return dto.DashboardUserDto{ID: u.ID, Name: u.Name, Role: u.Role, Email: u.Email}
}

func toAdminDto(d model.AdminDetails) *dto.AdminDetailsDto {
	return &dto.AdminDetailsDto{Name: d.Name, Email: d.Email, HasPassword: d.PasswordHash != ""}
}
