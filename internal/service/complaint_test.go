package service

import (
	"context"
	"net/http"
	"slices"
	"testing"

	"hrdesk/internal/core"
	"hrdesk/internal/dto"
	"hrdesk/internal/i18n"
	"hrdesk/internal/model"

	"go.uber.org/zap"
)

func newComplaintService(env *testEnv) *ComplaintService {
	return NewComplaintService(env.trace, env.conf, zap.NewNop(), env.translator, env.ws)
}

func TestComplaintReplyKeepsStatus(t *testing.T) {
	env := newTestEnv(t)
	svc := newComplaintService(env)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateComplaintDto{
		Complainant: "Ali Raza", EmployeeID: "1", Subject: "Parking", Description: "No parking slots left.",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != core.ComplaintActive || len(created.Replies) != 0 {
		t.Fatalf("unexpected new complaint: %+v", created)
	}

	replied, err := svc.Reply(ctx, created.ID, "  We are looking into it.  ")
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if len(replied.Replies) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(replied.Replies))
	}
	reply := replied.Replies[0]
	if reply.Sender != core.SenderAdmin || reply.Text != "We are looking into it." || reply.ID == "" {
		t.Fatalf("unexpected reply: %+v", reply)
	}
	if replied.Status != core.ComplaintActive {
		t.Fatalf("status changed to %q", replied.Status)
	}

	_, err = svc.Reply(ctx, created.ID, "   ")
	assertStatus(t, err, http.StatusBadRequest)
	_, err = svc.Reply(ctx, "missing", "hello")
	assertStatus(t, err, http.StatusNotFound)
}

func TestComplaintCreateRejectsBlankFields(t *testing.T) {
	env := newTestEnv(t)
	svc := newComplaintService(env)

	_, err := svc.Create(context.Background(), &dto.CreateComplaintDto{
		Complainant: "Ali", EmployeeID: "1", Subject: "   ", Description: "x",
	})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestComplaintEnforcedReference(t *testing.T) {
	env := newTestEnv(t)
	env.conf.Store.EnforceReferences = true
	svc := newComplaintService(env)

	_, err := svc.Create(context.Background(), &dto.CreateComplaintDto{
		Complainant: "Ghost", EmployeeID: "404", Subject: "s", Description: "d",
	})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestComplaintListSortAndLabels(t *testing.T) {
	env := newTestEnv(t)
	svc := newComplaintService(env)
	ctx := i18n.WithLocale(context.Background(), "zh-TW")

	// 新增一筆較舊的放在最前面，sort=newest 時應排到最後
	freezeToday(t, "2025-01-01")
	old, err := svc.Create(ctx, &dto.CreateComplaintDto{Complainant: "A", EmployeeID: "1", Subject: "s", Description: "d"})
	if err != nil {
		t.Fatal(err)
	}

	stored, _ := svc.List(ctx, dto.ComplaintQuery{})
	if stored[0].ID != old.ID {
		t.Fatal("new complaint should be stored first")
	}
	sorted, _ := svc.List(ctx, dto.ComplaintQuery{Sort: "newest"})
	if sorted[0].ID != "c-1001" || sorted[len(sorted)-1].ID != old.ID {
		t.Fatalf("unexpected newest order: %s ... %s", sorted[0].ID, sorted[len(sorted)-1].ID)
	}
	if sorted[0].StatusLabel != "處理中" {
		t.Fatalf("label = %q", sorted[0].StatusLabel)
	}
	again, _ := svc.List(ctx, dto.ComplaintQuery{})
	if again[0].ID != old.ID {
		t.Fatal("sorting must not change stored order")
	}
}

func TestComplaintNewestHandlesMixedDateFormats(t *testing.T) {
	env := newTestEnv(t)
	svc := newComplaintService(env)
	ctx := context.Background()

	err := env.ws.Complaints.Replace(ctx, []model.Complaint{
		{ID: "c-1", Date: "12/5/2025", Status: core.ComplaintActive},
		{ID: "c-2", Date: "not a date", Status: core.ComplaintActive},
		{ID: "c-3", Date: "2026-01-03", Status: core.ComplaintActive},
		{ID: "c-4", Date: "1/20/2026", Status: core.ComplaintActive},
		{ID: "c-5", Date: "2025-11-30", Status: core.ComplaintActive},
	})
	if err != nil {
		t.Fatal(err)
	}

	sorted, err := svc.List(ctx, dto.ComplaintQuery{Sort: "newest"})
	if err != nil {
		t.Fatal(err)
	}
	var ids []string
	for _, c := range sorted {
		ids = append(ids, c.ID)
	}
	want := []string{"c-4", "c-3", "c-1", "c-5", "c-2"}
	if !slices.Equal(ids, want) {
		t.Fatalf("newest order = %v, want %v", ids, want)
	}
}

func TestComplaintGetResolvesEmployee(t *testing.T) {
	env := newTestEnv(t)
	svc := newComplaintService(env)

	detail, err := svc.Get(context.Background(), "c-1001")
	if err != nil {
		t.Fatal(err)
	}
	if detail.Employee == nil || detail.Employee.Name != "Hina Javed" {
		t.Fatalf("employee not resolved: %+v", detail.Employee)
	}
	if _, err := svc.ChangeStatus(context.Background(), "c-1001", core.ComplaintCompleted); err != nil {
		t.Fatal(err)
	}
	detail, _ = svc.Get(context.Background(), "c-1001")
	if detail.Status != core.ComplaintCompleted || detail.StatusLabel != "Completed" {
		t.Fatalf("status not changed: %+v", detail)
	}
}
