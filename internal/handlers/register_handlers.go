package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ignamartinoli/banking-ui/internal/core/services"
	"github.com/ignamartinoli/banking-ui/internal/platform/metrics"
)

// RegisterRoutes wires the dashboard API onto the router group.
func RegisterRoutes(
	rg *gin.RouterGroup,
	snapshots *services.SnapshotService,
	create *services.CreateAccountSession,
	deposit *services.DepositSession,
	transfer *services.TransferSession,
	recorder *metrics.Recorder,
) {
	dash := newDashboardHandler(snapshots, create, deposit, transfer)
	forms := newFormsHandler(create, deposit, transfer, recorder)

	rg.GET("/dashboard", dash.getDashboard)
	rg.POST("/refresh", dash.refreshSnapshot)
	rg.GET("/accounts/:accountID/advisory", dash.getTransferAdvisory)

	rg.POST("/accounts", forms.createAccount)
	rg.POST("/deposits", forms.submitDeposit)
	rg.POST("/transfers", forms.submitTransfer)
}
