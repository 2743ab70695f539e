package app

import (
	"context"
	"testing"

	"github.com/example/monitoreo/internal/models"
)

func TestUserServiceRequiresAdmin(t *testing.T) {
	cache := newMockCacheStore()
	seedUser(t, cache, "maria")

	svc := NewUserService(cache, &mockGateway{}, &mockReachability{connected: true})
	if _, err := svc.List(context.Background()); err == nil {
		t.Error("List allowed for non-admin")
	}
	if err := svc.Add(context.Background(), &models.User{Username: "nuevo", Fullname: "Nuevo"}, "secret"); err == nil {
		t.Error("Add allowed for non-admin")
	}
	if err := svc.Update(context.Background(), "u-2", &models.User{Username: "nuevo", Fullname: "Nuevo"}); err == nil {
		t.Error("Update allowed for non-admin")
	}
}

func TestUserAddValidation(t *testing.T) {
	cache := newMockCacheStore()
	seedUser(t, cache, models.AdminUsername)
	svc := NewUserService(cache, &mockGateway{}, &mockReachability{connected: true})
	ctx := context.Background()

	if err := svc.Add(ctx, &models.User{Username: "nuevo"}, "secret"); err == nil {
		t.Error("expected validation error for a user without fullname")
	}
	if err := svc.Add(ctx, &models.User{Username: "nuevo", Fullname: "Nuevo", EmailPersonal: "not-an-email"}, "secret"); err == nil {
		t.Error("expected validation error for a malformed email")
	}
	if err := svc.Add(ctx, &models.User{Username: "nuevo", Fullname: "Nuevo"}, ""); err == nil {
		t.Error("expected error for an empty password")
	}
	if err := svc.Add(ctx, &models.User{Username: "nuevo", Fullname: "Nuevo Usuario"}, "secret"); err != nil {
		t.Errorf("Add() error = %v", err)
	}
}

func TestPeopleAddTeacher(t *testing.T) {
	cache := newMockCacheStore()
	seedUser(t, cache, "maria")
	svc := NewPeopleService(cache, &mockGateway{}, &mockReachability{connected: true})
	ctx := context.Background()

	if err := svc.AddTeacher(ctx, &models.Teacher{DNI: "45781236"}); err == nil {
		t.Error("expected validation error for a teacher without name")
	}
	if err := svc.AddTeacher(ctx, &models.Teacher{Fullname: "Juan Pérez", DNI: "45781236", SchoolCode: "0593202"}); err != nil {
		t.Errorf("AddTeacher() error = %v", err)
	}
}
