package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/payslip"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/handler/http/response"
)

type PayslipHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Release(w http.ResponseWriter, r *http.Request)
	Lock(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewPayslipHandler(payslipService payslip.PayslipService) PayslipHandler {
	return &payslipHandlerImpl{payslipService: payslipService}
}

// actorID identifies the acting user for audit stamping. Authentication is
// terminated upstream; the gateway forwards the subject in X-User-ID.
func actorID(r *http.Request) string {
	return r.Header.Get("X-User-ID")
}

func (h *payslipHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payslip.GeneratePayslipsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	req.GeneratedBy = actorID(r)
	if req.GeneratedBy == "" {
		response.Unauthorized(w, "Missing X-User-ID header")
		return
	}

	result, err := h.payslipService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payslipHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req payslip.UpsertPayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	req.PerformedBy = actorID(r)
	if req.PerformedBy == "" {
		response.Unauthorized(w, "Missing X-User-ID header")
		return
	}

	result, err := h.payslipService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payslipHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip ID is required", nil)
		return
	}

	var req payslip.UpdatePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.payslipService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payslipHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip ID is required", nil)
		return
	}

	result, err := h.payslipService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payslipHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "month must be a number", nil)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	result, err := h.payslipService.List(r.Context(), payslip.ListPayslipsRequest{
		Month: month,
		Year:  year,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payslipHandlerImpl) Release(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.payslipService.Release)
}

func (h *payslipHandlerImpl) Lock(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.payslipService.Lock)
}

func (h *payslipHandlerImpl) transition(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, id, actor string) (payslip.PayslipResponse, error),
) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip ID is required", nil)
		return
	}

	actor := actorID(r)
	if actor == "" {
		response.Unauthorized(w, "Missing X-User-ID header")
		return
	}

	result, err := op(r.Context(), id, actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
