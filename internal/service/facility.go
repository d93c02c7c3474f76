package service

import (
	"context"
	"errors"
	"strings"

	"hrdesk/internal/core"
	"hrdesk/internal/dto"
	"hrdesk/internal/model"
	cErr "hrdesk/internal/pkg/error"
	"hrdesk/internal/store"
	"hrdesk/internal/telemetry"

	"go.uber.org/zap"
)

var errOutOfStock = errors.New("item is out of stock")

type FacilityService struct {
	trace  *telemetry.Trace
	logger *zap.Logger
	ws     *Workspace
}

func NewFacilityService(trace *telemetry.Trace, logger *zap.Logger, ws *Workspace) *FacilityService {
	return &FacilityService{trace: trace, logger: logger, ws: ws}
}

func (s *FacilityService) Inventory(ctx context.Context, query dto.InventoryQuery) ([]model.InventoryItem, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	items, err := s.ws.Inventory.Filter(ctx, func(i model.InventoryItem) bool {
		return store.MatchAny(query.Search, i.Item)
	})
	if err != nil {
		return nil, storeError("list inventory", err)
	}
	s.trace.ApplyTraceAttributes(span, core.TraceListMeta{
		Resource: string(core.SlotFacilitiesInventory), Search: query.Search, ResultCount: len(items),
	})
	return items, nil
}

// AddAsset 數量為 0 時狀態一律為 Out of Stock；品名重複回 409
func (s *FacilityService) AddAsset(ctx context.Context, req *dto.CreateInventoryDto) (*model.InventoryItem, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	name := strings.TrimSpace(req.Item)
	if name == "" {
		return nil, cErr.ValidateErr("item is required")
	}
	status := req.Status
	if status == "" {
		status = core.InventoryAvailable
	}
	if req.Qty == 0 {
		status = core.InventoryOutOfStock
	}
	created, err := s.ws.Inventory.Create(ctx, model.InventoryItem{Item: name, Qty: req.Qty, Status: status})
	if errors.Is(err, store.ErrDuplicateKey) {
		return nil, cErr.Conflict("inventory item already exists")
	}
	if err != nil {
		return nil, storeError("create inventory item", err)
	}
	return &created, nil
}

// AddQuantity 數量 +1，原本缺貨的改回 Available
func (s *FacilityService) AddQuantity(ctx context.Context, item string) (*model.InventoryItem, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	return s.adjust(ctx, item, func(i *model.InventoryItem) error {
		i.Qty++
		if i.Status == core.InventoryOutOfStock {
			i.Status = core.InventoryAvailable
		}
		return nil
	})
}

// RemoveQuantity 數量 -1，最低為 0；變成 0 時標為 Out of Stock，其餘狀態不變
func (s *FacilityService) RemoveQuantity(ctx context.Context, item string) (*model.InventoryItem, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	return s.adjust(ctx, item, removeOne)
}

// Abandon 只有數量大於 0 才能報廢：扣一個庫存並新增一筆報廢紀錄；
// 報廢紀錄寫入失敗時把扣掉的庫存補回去
func (s *FacilityService) Abandon(ctx context.Context, item string) (*model.AbandonedItem, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	var before model.InventoryItem
	_, err := s.adjust(ctx, item, func(i *model.InventoryItem) error {
		if i.Qty <= 0 {
			return errOutOfStock
		}
		before = *i
		return removeOne(i)
	})
	if err != nil {
		return nil, err
	}

	abandoned, err := s.ws.Abandoned.Create(ctx, model.AbandonedItem{
		Item:   item,
		Date:   today(),
		Reason: core.AbandonedReasonMoved,
	})
	if err != nil {
		s.restoreUnit(ctx, before)
		return nil, storeError("create abandoned item", err)
	}
	return &abandoned, nil
}

// restoreUnit 補回一個庫存；補回失敗只能記 log，庫存會少一個
func (s *FacilityService) restoreUnit(ctx context.Context, before model.InventoryItem) {
	_, _, err := s.ws.Inventory.Update(ctx, before.Item, func(i *model.InventoryItem) error {
		i.Qty++
		if i.Status == core.InventoryOutOfStock && before.Status != core.InventoryOutOfStock {
			i.Status = before.Status
		}
		return nil
	})
	if err != nil {
		s.logger.Error("abandon: record not saved and inventory not restored",
			zap.String("item", before.Item), zap.Error(err))
		return
	}
	s.logger.Warn("abandon: record not saved, inventory restored", zap.String("item", before.Item))
}

func (s *FacilityService) DeleteItem(ctx context.Context, item string) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	found, err := s.ws.Inventory.Delete(ctx, item)
	if err != nil {
		return storeError("delete inventory item", err)
	}
	if !found {
		return cErr.NotFound("inventory item not found")
	}
	return nil
}

func (s *FacilityService) Abandoned(ctx context.Context) ([]model.AbandonedItem, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	items, err := s.ws.Abandoned.List(ctx)
	if err != nil {
		return nil, storeError("list abandoned", err)
	}
	return items, nil
}

// AddAbandoned 手動登記報廢，沒給原因時為 Not Specified
func (s *FacilityService) AddAbandoned(ctx context.Context, req *dto.CreateAbandonedDto) (*model.AbandonedItem, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	name := strings.TrimSpace(req.Item)
	if name == "" {
		return nil, cErr.ValidateErr("item is required")
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		reason = core.AbandonedReasonUnspecified
	}
	created, err := s.ws.Abandoned.Create(ctx, model.AbandonedItem{Item: name, Date: today(), Reason: reason})
	if err != nil {
		return nil, storeError("create abandoned item", err)
	}
	return &created, nil
}

func (s *FacilityService) adjust(ctx context.Context, item string, mutate func(*model.InventoryItem) error) (*model.InventoryItem, error) {
	updated, found, err := s.ws.Inventory.Update(ctx, item, mutate)
	if errors.Is(err, errOutOfStock) {
		return nil, cErr.InvalidQuantity("item is out of stock")
	}
	if err != nil {
		return nil, storeError("update inventory item", err)
	}
	if !found {
		return nil, cErr.NotFound("inventory item not found")
	}
	return &updated, nil
}

func removeOne(i *model.InventoryItem) error {
	i.Qty = max(0, i.Qty-1)
	if i.Qty == 0 {
		i.Status = core.InventoryOutOfStock
	}
	return nil
}
