package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"hrdesk/internal/core"
	"hrdesk/internal/export"
	"hrdesk/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// StoreHandler 維運用指令：重置 slot、匯出快照
type StoreHandler struct {
	logger        *zap.Logger
	ws            *service.Workspace
	exportService *service.ExportService
}

func NewStoreHandler(logger *zap.Logger, ws *service.Workspace, exportService *service.ExportService) *StoreHandler {
	return &StoreHandler{
		logger:        logger,
		ws:            ws,
		exportService: exportService,
	}
}

// Seed 沒指定 slot 時全部回到 fixture
func (handler *StoreHandler) Seed(cmd *cobra.Command, slots []string) error {
	ctx := cmdContext(cmd)
	names := make([]core.SlotName, 0, len(slots))
	for _, s := range slots {
		names = append(names, core.SlotName(s))
	}
	if err := handler.ws.Registry.Reset(ctx, names...); err != nil {
		return err
	}
	// 其餘不存在的 slot 也一併寫入 fixture
	if err := handler.ws.Registry.LoadAll(ctx); err != nil {
		return err
	}
	if len(names) == 0 {
		cmd.Printf("reset %d slots\n", len(handler.ws.Registry.Names()))
	} else {
		cmd.Printf("reset %v\n", slots)
	}
	return nil
}

// Export out 為空時寫到 stdout
func (handler *StoreHandler) Export(cmd *cobra.Command, format string, out string) (err error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	ctx := cmdContext(cmd)

	var w io.Writer = cmd.OutOrStdout()
	if out != "" {
		var file *os.File
		if file, err = os.Create(out); err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer func() {
			if cerr := file.Close(); err == nil {
				err = cerr
			}
		}()
		buffered := bufio.NewWriter(file)
		defer func() {
			if ferr := buffered.Flush(); err == nil {
				err = ferr
			}
		}()
		w = buffered
	}

	if err = handler.exportService.Snapshot(ctx, w, f); err != nil {
		return err
	}
	if out != "" {
		handler.logger.Info("snapshot written", zap.String("path", out), zap.String("format", string(f)))
	}
	return nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
