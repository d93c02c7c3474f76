package service

import (
	"context"
	"fmt"

	"hrdesk/config"
	"hrdesk/internal/core"
	"hrdesk/internal/dto"
	"hrdesk/internal/model"
	cErr "hrdesk/internal/pkg/error"
	"hrdesk/internal/store"
	"hrdesk/internal/telemetry"

	"go.uber.org/zap"
)

type EmployeeService struct {
	trace  *telemetry.Trace
	config *config.Configuration
	logger *zap.Logger
	ws     *Workspace
}

func NewEmployeeService(trace *telemetry.Trace, config *config.Configuration, logger *zap.Logger, ws *Workspace) *EmployeeService {
	return &EmployeeService{trace: trace, config: config, logger: logger, ws: ws}
}

// List 依姓名、職稱、部門搜尋；統計永遠以全部員工計算
func (s *EmployeeService) List(ctx context.Context, query dto.EmployeeListQuery) (*dto.EmployeeListDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	all, err := s.ws.Employees.List(ctx)
	if err != nil {
		return nil, storeError("list employees", err)
	}
	items := store.Where(all, func(e model.Employee) bool {
		return store.MatchAny(query.Search, e.Name, e.Designation, e.Department)
	})
	s.trace.ApplyTraceAttributes(span, core.TraceListMeta{
		Resource:    string(core.SlotEmployees),
		Search:      query.Search,
		ResultCount: len(items),
		TotalCount:  len(all),
	})
	return &dto.EmployeeListDto{Items: items, Stats: employeeStats(all)}, nil
}

func (s *EmployeeService) Stats(ctx context.Context) (dto.EmployeeStats, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	all, err := s.ws.Employees.List(ctx)
	if err != nil {
		return dto.EmployeeStats{}, storeError("employee stats", err)
	}
	return employeeStats(all), nil
}

func (s *EmployeeService) Get(ctx context.Context, id int) (*dto.EmployeeDetailDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	emp, found, err := s.ws.Employees.Get(ctx, id)
	if err != nil {
		return nil, storeError("get employee", err)
	}
	if !found {
		return nil, cErr.NotFound("employee not found")
	}
	docs, err := s.documentsOf(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.EmployeeDetailDto{Employee: emp, Documents: docs}, nil
}

// Create 新員工放在列表最前面，id 為目前最大 id + 1
func (s *EmployeeService) Create(ctx context.Context, req *dto.CreateEmployeeDto) (*dto.EmployeeDetailDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	status := req.Status
	if status == "" {
		status = core.EmployeeActive
	}
	startedDate := req.StartedDate
	if startedDate == "" {
		startedDate = today()
	}
	created, err := s.ws.Employees.Create(ctx, model.Employee{
		Name:         req.Name,
		CNIC:         req.CNIC,
		Contact:      req.Contact,
		Designation:  req.Designation,
		Department:   req.Department,
		StartedDate:  startedDate,
		Status:       status,
		Salary:       req.Salary,
		CompanyEmail: req.CompanyEmail,
	})
	if err != nil {
		end(err)
		return nil, storeError("create employee", err)
	}
	s.trace.ApplyTraceAttributes(span, core.TraceStoreMeta{
		Slot: string(core.SlotEmployees), Op: string(store.OpCreate), Key: fmt.Sprint(created.ID), Found: true,
	})

	var docs model.EmployeeDocuments
	if req.Documents != nil {
		docs = req.Documents.Model()
		if err := s.setDocuments(ctx, created.ID, docs); err != nil {
			return nil, err
		}
	}
	s.logger.Info("employee created", zap.Int("id", created.ID), zap.String("name", created.Name))
	return &dto.EmployeeDetailDto{Employee: created, Documents: docs}, nil
}

// Update 只覆蓋有帶的欄位；documents 有帶時整份取代
func (s *EmployeeService) Update(ctx context.Context, id int, req *dto.UpdateEmployeeDto) (*dto.EmployeeDetailDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	updated, found, err := s.ws.Employees.Update(ctx, id, func(e *model.Employee) error {
		if req.Name != nil {
			e.Name = *req.Name
		}
		if req.CNIC != nil {
			e.CNIC = *req.CNIC
		}
		if req.Contact != nil {
			e.Contact = *req.Contact
		}
		if req.Designation != nil {
			e.Designation = *req.Designation
		}
		if req.Department != nil {
			e.Department = *req.Department
		}
		if req.StartedDate != nil {
			e.StartedDate = *req.StartedDate
		}
		if req.Status != nil {
			e.Status = *req.Status
		}
		if req.Salary != nil {
			e.Salary = *req.Salary
		}
		if req.CompanyEmail != nil {
			e.CompanyEmail = *req.CompanyEmail
		}
		return nil
	})
	if err != nil {
		return nil, storeError("update employee", err)
	}
	if !found {
		return nil, cErr.NotFound("employee not found")
	}

	if req.Documents != nil {
		if err := s.setDocuments(ctx, id, req.Documents.Model()); err != nil {
			return nil, err
		}
	}
	docs, err := s.documentsOf(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.EmployeeDetailDto{Employee: updated, Documents: docs}, nil
}

// Delete 員工與其文件一起移除
func (s *EmployeeService) Delete(ctx context.Context, id int) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	found, err := s.ws.Employees.Delete(ctx, id)
	if err != nil {
		return storeError("delete employee", err)
	}
	if !found {
		return cErr.NotFound("employee not found")
	}
	s.logger.Info("employee deleted", zap.Int("id", id))
	return nil
}

func (s *EmployeeService) Documents(ctx context.Context, id int) (model.EmployeeDocuments, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, found, err := s.ws.Employees.Get(ctx, id); err != nil {
		return model.EmployeeDocuments{}, storeError("get employee", err)
	} else if !found {
		return model.EmployeeDocuments{}, cErr.NotFound("employee not found")
	}
	return s.documentsOf(ctx, id)
}

func (s *EmployeeService) documentsOf(ctx context.Context, id int) (model.EmployeeDocuments, error) {
	docs, err := s.ws.Documents.Get(ctx)
	if err != nil {
		return model.EmployeeDocuments{}, storeError("get documents", err)
	}
	return docs[id], nil
}

func (s *EmployeeService) setDocuments(ctx context.Context, id int, docs model.EmployeeDocuments) error {
	_, err := s.ws.Documents.Update(ctx, func(all *model.DocumentsByEmployee) error {
		if *all == nil {
			*all = model.DocumentsByEmployee{}
		}
		(*all)[id] = docs
		return nil
	})
	return storeError("save documents", err)
}

func employeeStats(all []model.Employee) dto.EmployeeStats {
	return dto.EmployeeStats{
		Total:    len(all),
		Active:   store.CountWhere(all, func(e model.Employee) bool { return e.Status == core.EmployeeActive }),
		Inactive: store.CountWhere(all, func(e model.Employee) bool { return e.Status == core.EmployeeInactive }),
	}
}
