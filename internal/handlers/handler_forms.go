package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ignamartinoli/banking-ui/internal/apperrors"
	"github.com/ignamartinoli/banking-ui/internal/client"
	"github.com/ignamartinoli/banking-ui/internal/core/services"
	"github.com/ignamartinoli/banking-ui/internal/dto"
	"github.com/ignamartinoli/banking-ui/internal/middleware"
	"github.com/ignamartinoli/banking-ui/internal/platform/metrics"
)

// formsHandler drives the three form sessions.
type formsHandler struct {
	create   *services.CreateAccountSession
	deposit  *services.DepositSession
	transfer *services.TransferSession
	recorder *metrics.Recorder
}

func newFormsHandler(
	create *services.CreateAccountSession,
	deposit *services.DepositSession,
	transfer *services.TransferSession,
	recorder *metrics.Recorder,
) *formsHandler {
	return &formsHandler{
		create:   create,
		deposit:  deposit,
		transfer: transfer,
		recorder: recorder,
	}
}

func (h *formsHandler) createAccount(c *gin.Context) {
	var form dto.CreateAccountForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	err := h.create.Submit(c.Request.Context(), form)
	h.writeOutcome(c, "create_account", h.create.Status(), err)
}

func (h *formsHandler) submitDeposit(c *gin.Context) {
	var form dto.DepositForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	err := h.deposit.Submit(c.Request.Context(), form)
	h.writeOutcome(c, "deposit", h.deposit.Status(), err)
}

func (h *formsHandler) submitTransfer(c *gin.Context) {
	var form dto.TransferForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	err := h.transfer.Submit(c.Request.Context(), form)
	h.writeOutcome(c, "transfer", h.transfer.Status(), err)
}

// writeOutcome maps a submission result onto the HTTP response and the
// metrics recorder. A refresh failure after a successful mutation is
// reported as a warning on a 200, never as a failed submission.
func (h *formsHandler) writeOutcome(c *gin.Context, form string, status dto.FormStatus, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case err == nil:
		h.recorder.RecordSubmission(form, metrics.OutcomeSuccess)
		c.JSON(http.StatusOK, dto.SubmitResponse{Message: status.Message})

	case errors.Is(err, apperrors.ErrRefreshFailed):
		h.recorder.RecordSubmission(form, metrics.OutcomeSuccess)
		c.JSON(http.StatusOK, dto.SubmitResponse{Message: status.Message, Warning: err.Error()})

	case errors.Is(err, apperrors.ErrSubmitInFlight):
		h.recorder.RecordSubmission(form, metrics.OutcomeRejected)
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, apperrors.ErrValidation):
		h.recorder.RecordSubmission(form, metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		h.recorder.RecordSubmission(form, metrics.OutcomeFailed)
		logger.Warn("Submission failed", slog.String("form", form), slog.String("error", err.Error()))
		var remote *client.RemoteError
		if errors.As(err, &remote) {
			// Backend rejection: surface its message verbatim with its
			// own status.
			c.JSON(remote.StatusCode, gin.H{"error": remote.Message})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}
