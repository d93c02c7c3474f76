package service

import (
	"context"
	"net/http"
	"testing"

	"hrdesk/internal/core"
	"hrdesk/internal/dto"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateDashboardUser(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAdminService(env.trace, env.conf, zap.NewNop(), env.ws)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &dto.CreateDashboardUserDto{
		Name: "Hamza Ali", UserID: "hamza.ali", Password: "secret1", ConfirmPassword: "secret1",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Email != "hamza.ali@gtech.com" || user.Role != core.RoleStaff {
		t.Fatalf("unexpected user: %+v", user)
	}
	stored, _, _ := env.ws.Users.Get(ctx, "hamza.ali")
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")) != nil {
		t.Fatal("password hash does not match")
	}

	users, _ := svc.ListUsers(ctx, dto.UserSearchQuery{})
	if len(users) != 4 || users[3].ID != "hamza.ali" {
		t.Fatalf("new user should be appended: %+v", users)
	}

	_, err = svc.CreateUser(ctx, &dto.CreateDashboardUserDto{
		Name: "Dup", UserID: "hamza.ali", Password: "secret1", ConfirmPassword: "secret1",
	})
	assertStatus(t, err, http.StatusConflict)

	_, err = svc.CreateUser(ctx, &dto.CreateDashboardUserDto{
		Name: "X", UserID: "x", Password: "secret1", ConfirmPassword: "secret2",
	})
	assertStatus(t, err, http.StatusBadRequest)

	_, err = svc.CreateUser(ctx, &dto.CreateDashboardUserDto{
		Name: "X", UserID: "has space", Password: "secret1", ConfirmPassword: "secret1",
	})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestUpdateAndDeleteDashboardUser(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAdminService(env.trace, env.conf, zap.NewNop(), env.ws)
	ctx := context.Background()

	role := core.RoleAdmin
	updated, err := svc.UpdateUser(ctx, "bilal.ahmed", &dto.UpdateDashboardUserDto{Role: &role})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Role != core.RoleAdmin || updated.Name != "Bilal Ahmed" {
		t.Fatalf("unexpected update: %+v", updated)
	}
	found, _ := svc.ListUsers(ctx, dto.UserSearchQuery{Search: "BILAL"})
	if len(found) != 1 {
		t.Fatalf("search by name: %+v", found)
	}

	if err := svc.DeleteUser(ctx, "bilal.ahmed"); err != nil {
		t.Fatal(err)
	}
	assertStatus(t, svc.DeleteUser(ctx, "bilal.ahmed"), http.StatusNotFound)
}

func TestAdminPasswordChange(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAdminService(env.trace, env.conf, zap.NewNop(), env.ws)
	ctx := context.Background()

	details, err := svc.Details(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if details.HasPassword || details.Email != "admin@gtech.com" {
		t.Fatalf("unexpected defaults: %+v", details)
	}

	// 第一次設定密碼不需要目前密碼
	details, err = svc.UpdateDetails(ctx, &dto.UpdateAdminDetailsDto{NewPassword: "first-pass", ConfirmPassword: "first-pass"})
	if err != nil || !details.HasPassword {
		t.Fatalf("first password: %+v %v", details, err)
	}

	_, err = svc.UpdateDetails(ctx, &dto.UpdateAdminDetailsDto{
		CurrentPassword: "wrong", NewPassword: "second-pass", ConfirmPassword: "second-pass",
	})
	assertStatus(t, err, http.StatusUnauthorized)

	_, err = svc.UpdateDetails(ctx, &dto.UpdateAdminDetailsDto{
		CurrentPassword: "first-pass", NewPassword: "second-pass", ConfirmPassword: "mismatch",
	})
	assertStatus(t, err, http.StatusBadRequest)

	name := "Head Admin"
	details, err = svc.UpdateDetails(ctx, &dto.UpdateAdminDetailsDto{
		Name: &name, CurrentPassword: "first-pass", NewPassword: "second-pass", ConfirmPassword: "second-pass",
	})
	if err != nil || details.Name != "Head Admin" {
		t.Fatalf("update: %+v %v", details, err)
	}
	stored, _ := env.ws.AdminDetails.Get(ctx)
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("second-pass")) != nil {
		t.Fatal("new password not stored")
	}
}
