package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ignamartinoli/banking-ui/internal/core/services"
	"github.com/ignamartinoli/banking-ui/internal/dto"
	"github.com/ignamartinoli/banking-ui/internal/middleware"
)

// dashboardHandler serves the dashboard view model and the snapshot
// refresh endpoint.
type dashboardHandler struct {
	snapshots *services.SnapshotService
	create    *services.CreateAccountSession
	deposit   *services.DepositSession
	transfer  *services.TransferSession
}

func newDashboardHandler(
	snapshots *services.SnapshotService,
	create *services.CreateAccountSession,
	deposit *services.DepositSession,
	transfer *services.TransferSession,
) *dashboardHandler {
	return &dashboardHandler{
		snapshots: snapshots,
		create:    create,
		deposit:   deposit,
		transfer:  transfer,
	}
}

// getDashboard returns the full view model: KPIs, table rows, select
// options and the state of the three forms. It is derived from the
// cached snapshot only; it never triggers a fetch.
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	snap := h.snapshots.Current()

	resp := dto.DashboardResponse{
		TotalAccounts:   len(snap.Accounts),
		Totals:          services.TotalsByCurrency(snap),
		Accounts:        services.AccountRows(snap),
		CurrencyOptions: services.CurrencyOptions(snap),
		AccountOptions:  services.AccountOptions(snap),
		CreateAccount:   h.create.Status(),
		Deposit:         h.deposit.Status(),
		Transfer:        h.transfer.Status(),
	}
	c.JSON(http.StatusOK, resp)
}

// refreshSnapshot re-pulls accounts and currencies from the backend.
func (h *dashboardHandler) refreshSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.snapshots.Refresh(c.Request.Context()); err != nil {
		logger.Warn("Snapshot refresh failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Snapshot refreshed."})
}

// getTransferAdvisory resolves the source account's currency for the
// "destination must match" hint. The hint is advisory only; the
// backend enforces the actual currency match.
func (h *dashboardHandler) getTransferAdvisory(c *gin.Context) {
	fromID, err := strconv.ParseInt(c.Param("accountID"), 10, 64)
	if err != nil || fromID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account ID"})
		return
	}

	code, ok := services.SourceCurrencyAdvisory(h.snapshots.Current(), fromID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found in current snapshot"})
		return
	}
	c.JSON(http.StatusOK, dto.TransferAdvisoryResponse{
		SourceCurrency: code,
		Note:           "Source currency: " + code + " (destination must match)",
	})
}
