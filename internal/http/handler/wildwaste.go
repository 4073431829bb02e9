package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"wildwaste/internal/core"
	"wildwaste/internal/http/handler/middleware"
	"wildwaste/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Index          = "GET /{$}"
	Register       = "POST /register"
	Login          = "POST /login"
	SubmitReport   = "POST /reports"
	GetReports     = "GET /reports"
	GetUserReports = "GET /reports/user/{userID}"
	DeleteReport   = "DELETE /reports/{reportID}"
)

const greeting = "Welcome to the WildWaste Backend API!"

type WasteHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	waste            WasteService
}

func NewWasteHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, wasteService WasteService) *WasteHandler {
	return &WasteHandler{
		logs:             logger,
		requestValidator: requestValidator,
		waste:            wasteService,
	}
}

func (h *WasteHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, greeting)
}

func (h *WasteHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var regPayload payload.RegisterRequest
	err := h.requestValidator.DecodeJSONPayload(r, &regPayload)
	if err != nil {
		h.respond(w, Response{
			Status:  statusError,
			Message: "Missing username or password",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	user, err := h.waste.Register(r.Context(), regPayload.ToMessage())
	if err != nil {
		resp := Response{Status: statusError}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUsernameTaken) {
			httpCode = http.StatusConflict
			resp.Message = "Username already exists"
		} else {
			resp.Message = err.Error()
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.logs.Infow("user registered",
		"user_id", user.ID,
		"handler", Register,
		"request_id", requestId)

	h.respond(w, Response{
		Status:  statusSuccess,
		Message: "User registered successfully",
	}, http.StatusCreated, requestId)
}

func (h *WasteHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var authPayload payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &authPayload)
	if err != nil {
		h.respond(w, Response{
			Status:  statusError,
			Message: "Missing username or password",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	user, err := h.waste.Login(r.Context(), authPayload.ToMessage())
	if err != nil {
		resp := Response{Status: statusError}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidCredentials) {
			httpCode = http.StatusUnauthorized
			resp.Message = "Invalid username or password"
		} else {
			resp.Message = err.Error()
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.respond(w, LoginResponse{
		Status:   statusSuccess,
		Message:  "Login successful",
		UserID:   user.ID,
		Username: user.Username,
	}, http.StatusOK, requestId)
}

func (h *WasteHandler) HandleSubmitReport(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var reportPayload payload.ReportRequest
	err := h.requestValidator.DecodeJSONPayload(r, &reportPayload)
	if err != nil {
		h.respond(w, Response{
			Status:  statusError,
			Message: "Missing required report data",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SubmitReport,
			"request_id", requestId)
		return
	}

	report, err := h.waste.SubmitReport(r.Context(), reportPayload.ToMessage())
	if err != nil {
		resp := Response{Status: statusError}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrReporterNotFound) {
			httpCode = http.StatusBadRequest
			resp.Message = "Reporting user does not exist"
		} else {
			resp.Message = err.Error()
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("report submission failed",
			"error", err,
			"handler", SubmitReport,
			"request_id", requestId)
		return
	}

	h.logs.Infow("report submitted",
		"report_id", report.ID,
		"user_id", report.UserID,
		"handler", SubmitReport,
		"request_id", requestId)

	h.respond(w, Response{
		Status:  statusSuccess,
		Message: "Report submitted successfully",
	}, http.StatusCreated, requestId)
}

func (h *WasteHandler) HandleGetReports(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	reports, err := h.waste.ListReports(r.Context())
	if err != nil {
		h.respond(w, Response{
			Status:  statusError,
			Message: err.Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get reports",
			"error", err,
			"handler", GetReports,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Status: statusSuccess,
		Data:   reports,
	}, http.StatusOK, requestId)
}

func (h *WasteHandler) HandleGetUserReports(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userID, err := strconv.ParseUint(r.PathValue("userID"), 10, 64)
	if err != nil {
		h.respond(w, Response{
			Status:  statusError,
			Message: "Invalid user id",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid userID path parameter",
			"error", err,
			"handler", GetUserReports,
			"request_id", requestId)
		return
	}

	reports, err := h.waste.ListUserReports(r.Context(), uint(userID))
	if err != nil {
		h.respond(w, Response{
			Status:  statusError,
			Message: err.Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get user reports",
			"error", err,
			"handler", GetUserReports,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Status: statusSuccess,
		Data:   reports,
	}, http.StatusOK, requestId)
}

func (h *WasteHandler) HandleDeleteReport(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	reportID, err := strconv.ParseUint(r.PathValue("reportID"), 10, 64)
	if err != nil {
		h.respond(w, Response{
			Status:  statusError,
			Message: "Invalid report id",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid reportID path parameter",
			"error", err,
			"handler", DeleteReport,
			"request_id", requestId)
		return
	}

	err = h.waste.RemoveReport(r.Context(), uint(reportID))
	if err != nil {
		resp := Response{Status: statusError}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrReportNotFound) {
			httpCode = http.StatusNotFound
			resp.Message = "Report not found"
		} else if errors.Is(err, core.ErrReportGone) {
			httpCode = http.StatusNotFound
			resp.Message = "Report not found or already deleted"
		} else {
			resp.Message = err.Error()
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("report deletion failed",
			"error", err,
			"handler", DeleteReport,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Status:  statusSuccess,
		Message: "Report deleted successfully",
	}, http.StatusOK, requestId)
}

func (h *WasteHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		return reqIdCtx.(string)
	}
	return ""
}
