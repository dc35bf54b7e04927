package http

import (
	"bloqpoint-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires every API route under /api/v1.
func NewRouter(bloqs service.BloqService, lockers service.LockerService, rents service.RentService) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	bloqHandler := NewBloqHandler(bloqs)
	api.HandleFunc("/bloqs", bloqHandler.CreateBloq).Methods("POST")
	api.HandleFunc("/bloqs", bloqHandler.ListBloqs).Methods("GET")
	api.HandleFunc("/bloqs/{id}", bloqHandler.GetBloq).Methods("GET")
	api.HandleFunc("/bloqs/{id}", bloqHandler.UpdateBloq).Methods("PATCH")
	api.HandleFunc("/bloqs/{id}", bloqHandler.DeleteBloq).Methods("DELETE")

	lockerHandler := NewLockerHandler(lockers)
	api.HandleFunc("/lockers", lockerHandler.CreateLocker).Methods("POST")
	api.HandleFunc("/lockers", lockerHandler.ListLockers).Methods("GET")
	api.HandleFunc("/lockers/bloq/{bloqId}", lockerHandler.ListLockersByBloq).Methods("GET")
	api.HandleFunc("/lockers/bloq/{bloqId}/available", lockerHandler.ListAvailableLockers).Methods("GET")
	api.HandleFunc("/lockers/{id}", lockerHandler.GetLocker).Methods("GET")
	api.HandleFunc("/lockers/{id}/toggle", lockerHandler.ToggleDoor).Methods("POST")
	api.HandleFunc("/lockers/{id}", lockerHandler.DeleteLocker).Methods("DELETE")

	rentHandler := NewRentHandler(rents)
	api.HandleFunc("/rents", rentHandler.CreateRent).Methods("POST")
	api.HandleFunc("/rents", rentHandler.ListRents).Methods("GET")
	api.HandleFunc("/rents/active", rentHandler.ListActiveRents).Methods("GET")
	api.HandleFunc("/rents/locker/{lockerId}", rentHandler.GetRentByLocker).Methods("GET")
	api.HandleFunc("/rents/{id}", rentHandler.GetRent).Methods("GET")
	api.HandleFunc("/rents/{id}/status", rentHandler.UpdateRentStatus).Methods("PATCH")

	return router
}
