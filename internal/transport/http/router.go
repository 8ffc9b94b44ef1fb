package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter configures the conversion API routes.
func NewRouter(handler *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/convert", handler.SubmitConversion).Methods("POST")
	r.HandleFunc("/api/convert/jobs", handler.ActiveJobs).Methods("GET")
	r.HandleFunc("/api/convert/history", handler.ConversionHistory).Methods("GET")
	r.HandleFunc("/api/convert/runtime", handler.RuntimeAvailability).Methods("GET")
	r.HandleFunc("/api/convert/status/{id}", handler.JobStatus).Methods("GET")
	r.HandleFunc("/api/convert/download/{filename}", handler.DownloadOutput).Methods("GET")
	r.HandleFunc("/health", handler.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	return r
}
