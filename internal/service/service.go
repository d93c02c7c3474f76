package service

import (
	"errors"
	"fmt"
	"time"

	"hrdesk/internal/core"
	cErr "hrdesk/internal/pkg/error"
	"hrdesk/internal/store"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewHealthService,
	NewStoreAudit,
	ProvideWorkspace,
	NewAuthService,
	NewEmployeeService,
	NewAttendanceService,
	NewDepartmentService,
	NewFacilityService,
	NewCalendarService,
	NewEventService,
	NewComplaintService,
	NewApplicationService,
	NewAdminService,
	NewSettingsService,
	NewDashboardService,
	NewExportService,
)

// nowFunc 測試可替換
var nowFunc = time.Now

func today() string {
	return nowFunc().Format(core.DateLayout)
}

// storeError 把 store 層錯誤轉成對外的錯誤碼
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *cErr.Error
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, store.ErrCorruptSlot):
		return cErr.CorruptSlot(fmt.Sprintf("%s: %v", op, err))
	case errors.Is(err, store.ErrDuplicateKey):
		return cErr.Conflict(fmt.Sprintf("%s: %v", op, err))
	case errors.Is(err, store.ErrEmptyKey):
		return cErr.ValidateErr(fmt.Sprintf("%s: %v", op, err))
	default:
		return cErr.DatabaseError(fmt.Sprintf("%s: %v", op, err))
	}
}
