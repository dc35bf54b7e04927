package http

import (
	"net/http"

	"bloqpoint-backend/internal/service"

	"github.com/gorilla/mux"
)

type LockerHandler struct {
	lockers service.LockerService
}

func NewLockerHandler(lockers service.LockerService) *LockerHandler {
	return &LockerHandler{lockers: lockers}
}

type createLockerRequest struct {
	BloqID string `json:"bloq_id"`
}

func (h *LockerHandler) CreateLocker(w http.ResponseWriter, r *http.Request) {
	var req createLockerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	locker, err := h.lockers.CreateLocker(r.Context(), req.BloqID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, locker)
}

func (h *LockerHandler) GetLocker(w http.ResponseWriter, r *http.Request) {
	locker, err := h.lockers.GetLocker(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, locker)
}

func (h *LockerHandler) ListLockers(w http.ResponseWriter, r *http.Request) {
	lockers, err := h.lockers.ListLockers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lockers)
}

func (h *LockerHandler) ListLockersByBloq(w http.ResponseWriter, r *http.Request) {
	lockers, err := h.lockers.ListLockersByBloq(r.Context(), mux.Vars(r)["bloqId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lockers)
}

func (h *LockerHandler) ListAvailableLockers(w http.ResponseWriter, r *http.Request) {
	lockers, err := h.lockers.ListAvailableLockers(r.Context(), mux.Vars(r)["bloqId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lockers)
}

func (h *LockerHandler) ToggleDoor(w http.ResponseWriter, r *http.Request) {
	locker, err := h.lockers.ToggleDoor(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, locker)
}

func (h *LockerHandler) DeleteLocker(w http.ResponseWriter, r *http.Request) {
	if err := h.lockers.DeleteLocker(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
