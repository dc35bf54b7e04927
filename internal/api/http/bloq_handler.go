package http

import (
	"net/http"

	"bloqpoint-backend/internal/service"

	"github.com/gorilla/mux"
)

type BloqHandler struct {
	bloqs service.BloqService
}

func NewBloqHandler(bloqs service.BloqService) *BloqHandler {
	return &BloqHandler{bloqs: bloqs}
}

type bloqRequest struct {
	Title   string `json:"title"`
	Address string `json:"address"`
}

func (h *BloqHandler) CreateBloq(w http.ResponseWriter, r *http.Request) {
	var req bloqRequest
	if !decodeBody(w, r, &req) {
		return
	}

	bloq, err := h.bloqs.CreateBloq(r.Context(), req.Title, req.Address)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, bloq)
}

func (h *BloqHandler) GetBloq(w http.ResponseWriter, r *http.Request) {
	bloq, err := h.bloqs.GetBloq(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bloq)
}

func (h *BloqHandler) ListBloqs(w http.ResponseWriter, r *http.Request) {
	bloqs, err := h.bloqs.ListBloqs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bloqs)
}

func (h *BloqHandler) UpdateBloq(w http.ResponseWriter, r *http.Request) {
	var req bloqRequest
	if !decodeBody(w, r, &req) {
		return
	}

	bloq, err := h.bloqs.UpdateBloq(r.Context(), mux.Vars(r)["id"], req.Title, req.Address)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bloq)
}

func (h *BloqHandler) DeleteBloq(w http.ResponseWriter, r *http.Request) {
	if err := h.bloqs.DeleteBloq(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
