package http

import (
	"net/http"

	"bloqpoint-backend/internal/service"

	"github.com/gorilla/mux"
)

type RentHandler struct {
	rents service.RentService
}

func NewRentHandler(rents service.RentService) *RentHandler {
	return &RentHandler{rents: rents}
}

type createRentRequest struct {
	LockerID string  `json:"locker_id"`
	Weight   float64 `json:"weight"`
	Size     string  `json:"size"`
}

type updateRentStatusRequest struct {
	Status string `json:"status"`
}

func (h *RentHandler) CreateRent(w http.ResponseWriter, r *http.Request) {
	var req createRentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rent, err := h.rents.CreateRent(r.Context(), req.LockerID, req.Weight, req.Size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rent)
}

func (h *RentHandler) GetRent(w http.ResponseWriter, r *http.Request) {
	rent, err := h.rents.GetRent(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rent)
}

func (h *RentHandler) ListRents(w http.ResponseWriter, r *http.Request) {
	rents, err := h.rents.ListRents(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rents)
}

func (h *RentHandler) ListActiveRents(w http.ResponseWriter, r *http.Request) {
	rents, err := h.rents.ListActiveRents(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rents)
}

func (h *RentHandler) GetRentByLocker(w http.ResponseWriter, r *http.Request) {
	rent, err := h.rents.GetRentByLocker(r.Context(), mux.Vars(r)["lockerId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rent)
}

func (h *RentHandler) UpdateRentStatus(w http.ResponseWriter, r *http.Request) {
	var req updateRentStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rent, err := h.rents.UpdateRentStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rent)
}
