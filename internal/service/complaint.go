package service

import (
	"cmp"
	"context"
	"math"
	"slices"
	"strings"
	"time"

	"hrdesk/config"
	"hrdesk/internal/core"
	"hrdesk/internal/dto"
	"hrdesk/internal/i18n"
	"hrdesk/internal/model"
	cErr "hrdesk/internal/pkg/error"
	"hrdesk/internal/store"
	"hrdesk/internal/telemetry"
	"hrdesk/utils/validate"

	"go.uber.org/zap"
)

type ComplaintService struct {
	trace      *telemetry.Trace
	config     *config.Configuration
	logger     *zap.Logger
	translator *i18n.Translator
	ws         *Workspace
}

func NewComplaintService(
	trace *telemetry.Trace,
	config *config.Configuration,
	logger *zap.Logger,
	translator *i18n.Translator,
	ws *Workspace,
) *ComplaintService {
	return &ComplaintService{trace: trace, config: config, logger: logger, translator: translator, ws: ws}
}

// List sort=newest 只影響回傳順序，儲存順序不變
func (s *ComplaintService) List(ctx context.Context, query dto.ComplaintQuery) ([]dto.ComplaintItemDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	items, err := s.ws.Complaints.Filter(ctx, func(c model.Complaint) bool {
		if query.Status != "" && string(c.Status) != query.Status {
			return false
		}
		return store.MatchAny(query.Search, c.Complainant, c.Subject, c.EmployeeID)
	})
	if err != nil {
		return nil, storeError("list complaints", err)
	}
	if query.Sort == "newest" {
		slices.SortStableFunc(items, func(a, b model.Complaint) int {
			return cmp.Compare(parseDate(b.Date), parseDate(a.Date))
		})
	}
	s.trace.ApplyTraceAttributes(span, core.TraceListMeta{
		Resource:    string(core.SlotComplaints),
		Search:      query.Search,
		Filter:      map[string]any{"status": query.Status, "sort": query.Sort},
		ResultCount: len(items),
	})

	out := make([]dto.ComplaintItemDto, 0, len(items))
	for _, c := range items {
		out = append(out, dto.ComplaintItemDto{Complaint: c, StatusLabel: s.label(ctx, c.Status)})
	}
	return out, nil
}

// Get 附上可解析到的員工資料
func (s *ComplaintService) Get(ctx context.Context, id string) (*dto.ComplaintDetailDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	complaint, found, err := s.ws.Complaints.Get(ctx, id)
	if err != nil {
		return nil, storeError("get complaint", err)
	}
	if !found {
		return nil, cErr.NotFound("complaint not found")
	}
	detail := &dto.ComplaintDetailDto{Complaint: complaint, StatusLabel: s.label(ctx, complaint.Status)}
	emp, found, err := s.ws.LookupEmployee(ctx, complaint.EmployeeID)
	if err != nil {
		return nil, storeError("lookup employee", err)
	}
	if found {
		detail.Employee = &emp
	}
	return detail, nil
}

func (s *ComplaintService) Create(ctx context.Context, req *dto.CreateComplaintDto) (*model.Complaint, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	err := validate.RequireNonBlank(
		validate.Field{Name: "complainant", Value: req.Complainant},
		validate.Field{Name: "employeeId", Value: req.EmployeeID},
		validate.Field{Name: "subject", Value: req.Subject},
		validate.Field{Name: "description", Value: req.Description},
	)
	if err != nil {
		return nil, err
	}
	if s.config.Store.EnforceReferences {
		if _, found, err := s.ws.LookupEmployee(ctx, req.EmployeeID); err != nil {
			return nil, storeError("lookup employee", err)
		} else if !found {
			return nil, cErr.InvalidReference("employee not found")
		}
	}

	created, err := s.ws.Complaints.Create(ctx, model.Complaint{
		Complainant: strings.TrimSpace(req.Complainant),
		EmployeeID:  strings.TrimSpace(req.EmployeeID),
		Subject:     strings.TrimSpace(req.Subject),
		Description: req.Description,
		Date:        today(),
		Status:      core.ComplaintActive,
		Replies:     []model.ComplaintReply{},
	})
	if err != nil {
		return nil, storeError("create complaint", err)
	}
	return &created, nil
}

func (s *ComplaintService) ChangeStatus(ctx context.Context, id string, status core.ComplaintStatus) (*model.Complaint, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	updated, found, err := s.ws.Complaints.Update(ctx, id, func(c *model.Complaint) error {
		c.Status = status
		return nil
	})
	if err != nil {
		return nil, storeError("update complaint status", err)
	}
	if !found {
		return nil, cErr.NotFound("complaint not found")
	}
	return &updated, nil
}

// Reply 管理員回覆；不改變投訴狀態
func (s *ComplaintService) Reply(ctx context.Context, id string, text string) (*model.Complaint, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, cErr.ValidateErr("reply text must not be blank")
	}
	updated, found, err := s.ws.Complaints.Update(ctx, id, func(c *model.Complaint) error {
		ids := make([]string, len(c.Replies))
		for i, r := range c.Replies {
			ids[i] = r.ID
		}
		c.Replies = append(c.Replies, model.ComplaintReply{
			ID:        store.NextUUID(ids),
			Sender:    core.SenderAdmin,
			Text:      text,
			Timestamp: nowFunc().UTC().Format(time.RFC3339),
		})
		return nil
	})
	if err != nil {
		return nil, storeError("reply complaint", err)
	}
	if !found {
		return nil, cErr.NotFound("complaint not found")
	}
	return &updated, nil
}

func (s *ComplaintService) Delete(ctx context.Context, id string) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	found, err := s.ws.Complaints.Delete(ctx, id)
	if err != nil {
		return storeError("delete complaint", err)
	}
	if !found {
		return cErr.NotFound("complaint not found")
	}
	return nil
}

func (s *ComplaintService) label(ctx context.Context, status core.ComplaintStatus) string {
	return s.translator.Status(ctx, "complaint", string(status))
}

// parseDate 接受 YYYY-MM-DD 與 M/D/YYYY，無法解析的日期排在最後
func parseDate(v string) int64 {
	for _, layout := range []string{core.DateLayout, core.SlashDateLayout} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Unix()
		}
	}
	return math.MinInt64
}
