package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/integration/entrypoint/dto"
)

// handleError writes the response for an error returned by a use case.
// Use case errors are checked before the calendar errors they may wrap.
func handleError(ctx *gin.Context, err error) {
	var (
		dateErr        *domainerror.InvalidDateError
		sponsorshipErr *domainerror.SponsorshipError
		donationErr    *domainerror.DonationError
		fiscalYearErr  *domainerror.FiscalYearError
		renewalErr     *domainerror.RenewalError
		dashboardErr   *domainerror.DashboardError
		emailErr       *domainerror.EmailError
		settingsErr    *domainerror.SettingsError
		eventErr       *domainerror.EventError
	)

	switch {
	case errors.As(err, &sponsorshipErr):
		writeError(ctx, getStatusCodeForSponsorshipError(sponsorshipErr.Code), sponsorshipErr.Message, string(sponsorshipErr.Code))
	case errors.As(err, &donationErr):
		writeError(ctx, http.StatusBadRequest, donationErr.Message, string(donationErr.Code))
	case errors.As(err, &fiscalYearErr):
		writeError(ctx, getStatusCodeForFiscalYearError(fiscalYearErr.Code), fiscalYearErr.Message, string(fiscalYearErr.Code))
	case errors.As(err, &renewalErr):
		writeError(ctx, getStatusCodeForRenewalError(renewalErr.Code), renewalErr.Message, string(renewalErr.Code))
	case errors.As(err, &dashboardErr):
		writeError(ctx, getStatusCodeForDashboardError(dashboardErr.Code), dashboardErr.Message, string(dashboardErr.Code))
	case errors.As(err, &settingsErr):
		writeError(ctx, getStatusCodeForSettingsError(settingsErr.Code), settingsErr.Message, string(settingsErr.Code))
	case errors.As(err, &eventErr):
		writeError(ctx, http.StatusBadRequest, eventErr.Message, string(eventErr.Code))
	case errors.As(err, &dateErr):
		writeError(ctx, http.StatusBadRequest, dateErr.Error(), string(dateErr.Code))
	case errors.As(err, &emailErr):
		slog.Error("Email error", "code", emailErr.Code, "error", err)
		writeError(ctx, http.StatusBadGateway, emailErr.Message, string(emailErr.Code))
	default:
		slog.Error("Unhandled error", "path", ctx.FullPath(), "error", err)
		writeError(ctx, http.StatusInternalServerError, "An internal error occurred", "")
	}
}

func writeError(ctx *gin.Context, status int, message, code string) {
	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// badRequest answers a malformed request that never reached a use case.
func badRequest(ctx *gin.Context, message, code string) {
	writeError(ctx, http.StatusBadRequest, message, code)
}

func getStatusCodeForSponsorshipError(code domainerror.SponsorshipErrorCode) int {
	switch code {
	case domainerror.ErrCodeSponsorNotFound,
		domainerror.ErrCodeSponsorshipNotFound,
		domainerror.ErrCodeTierNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeSponsorInactive:
		return http.StatusConflict
	case domainerror.ErrCodeSponsorNameRequired,
		domainerror.ErrCodeNegativeAmount,
		domainerror.ErrCodeInvalidSponsorshipStatus,
		domainerror.ErrCodeInvalidSponsorshipType,
		domainerror.ErrCodeScotMendeWithoutFund,
		domainerror.ErrCodeTierNameRequired,
		domainerror.ErrCodeInvalidSponsorshipDate,
		domainerror.ErrCodeMissingSponsorshipFields,
		domainerror.ErrCodeInvalidContactEmail,
		domainerror.ErrCodeContactNameRequired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func getStatusCodeForFiscalYearError(code domainerror.FiscalYearErrorCode) int {
	switch code {
	case domainerror.ErrCodeFiscalYearSettingNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidGoalAmount, domainerror.ErrCodeFiscalYearInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func getStatusCodeForRenewalError(code domainerror.RenewalErrorCode) int {
	switch code {
	case domainerror.ErrCodeTooManyRecords:
		return http.StatusRequestEntityTooLarge
	case domainerror.ErrCodeInvalidRenewalParams:
		return http.StatusBadRequest
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeReminderDispatchFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDashboardFiscalYear, domainerror.ErrCodeInvalidStatusFilter:
		return http.StatusBadRequest
	case domainerror.ErrCodeDashboardInternalError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func getStatusCodeForSettingsError(code domainerror.SettingsErrorCode) int {
	switch code {
	case domainerror.ErrCodeTagAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeTagNameRequired,
		domainerror.ErrCodeInvalidTagColor,
		domainerror.ErrCodeInvalidTemplateCategory,
		domainerror.ErrCodeTemplateFieldsRequired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
