package service

import (
	"context"
	"net/http"
	"testing"

	"hrdesk/internal/dto"
	"hrdesk/internal/model"
)

func TestDepartmentMemberCountsFollowEmployees(t *testing.T) {
	env := newTestEnv(t)
	svc := NewDepartmentService(env.trace, env.ws)
	ctx := context.Background()

	list, err := svc.List(ctx, dto.DepartmentQuery{Search: "engin"})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Name != "Engineering" || list[0].MemberCount != 2 {
		t.Fatalf("list = %+v", list)
	}

	if _, err := env.ws.Employees.Create(ctx, model.Employee{Name: "Hina Shah", Department: "engineering"}); err != nil {
		t.Fatal(err)
	}
	detail, err := svc.Get(ctx, list[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(detail.Members) != 3 {
		t.Fatalf("members = %d", len(detail.Members))
	}

	_, err = svc.Get(ctx, 999)
	assertStatus(t, err, http.StatusNotFound)
}
