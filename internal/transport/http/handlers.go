package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	conversionapp "osmcad/internal/application/conversion"
	domain "osmcad/internal/domain/conversion"
)

type conversionUseCases interface {
	Submit(req conversionapp.SubmitRequest) (string, error)
	Status(id string) (domain.Job, error)
	ListActive() []domain.Job
	History() []domain.HistoryEntry
	RuntimeAvailable() (string, bool)
}

type artifactFinder interface {
	ResolveInput(raw string) (string, error)
	FindOutput(rawName string) (string, error)
}

type Handler struct {
	conversions conversionUseCases
	artifacts   artifactFinder
}

// NewHandler wires HTTP handlers with application use cases.
func NewHandler(conversionService conversionUseCases, artifacts artifactFinder) *Handler {
	return &Handler{conversions: conversionService, artifacts: artifacts}
}

type submitRequest struct {
	File       string `json:"file"`
	OutputName string `json:"outputName"`
	PlanType   string `json:"planType"`
	Projection string `json:"projection"`
	ProjectID  string `json:"projectId"`
}

// SubmitConversion handles POST /api/convert.
func (h *Handler) SubmitConversion(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	inputPath, err := h.artifacts.ResolveInput(req.File)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	jobID, err := h.conversions.Submit(conversionapp.SubmitRequest{
		InputPath:     inputPath,
		RequestedName: req.OutputName,
		PlanType:      req.PlanType,
		Projection:    req.Projection,
		ProjectRef:    req.ProjectID,
		SubmittedBy:   r.Header.Get("X-User-ID"),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"jobId":  jobID,
		"status": string(domain.StatusPending),
	})
}

// JobStatus handles GET /api/convert/status/{id}.
func (h *Handler) JobStatus(w http.ResponseWriter, r *http.Request) {
	job, err := h.conversions.Status(mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			http.Error(w, "Job not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(jobResponse(job))
}

// ActiveJobs handles GET /api/convert/jobs.
func (h *Handler) ActiveJobs(w http.ResponseWriter, r *http.Request) {
	jobs := h.conversions.ListActive()

	resp := make([]map[string]interface{}, 0, len(jobs))
	for _, job := range jobs {
		resp = append(resp, map[string]interface{}{
			"id":          job.ID,
			"status":      job.Status,
			"progress":    job.Progress,
			"message":     job.Message,
			"createdAt":   job.CreatedAt.Unix(),
			"submittedBy": job.SubmittedBy,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// ConversionHistory handles GET /api/convert/history.
func (h *Handler) ConversionHistory(w http.ResponseWriter, r *http.Request) {
	entries := h.conversions.History()

	resp := make([]map[string]interface{}, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, map[string]interface{}{
			"jobId":       entry.JobID,
			"outputFile":  entry.OutputFile,
			"planType":    entry.PlanType,
			"projection":  entry.Projection,
			"submittedBy": entry.SubmittedBy,
			"completedAt": entry.CompletedAt.Unix(),
			"stats":       entry.Stats,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// DownloadOutput handles GET /api/convert/download/{filename}.
func (h *Handler) DownloadOutput(w http.ResponseWriter, r *http.Request) {
	fullPath, err := h.artifacts.FindOutput(mux.Vars(r)["filename"])
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			http.Error(w, "Drawing not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/vnd.dxf")
	w.Header().Set("Content-Disposition", "attachment")
	http.ServeFile(w, r, fullPath)
}

// RuntimeAvailability handles GET /api/convert/runtime.
func (h *Handler) RuntimeAvailability(w http.ResponseWriter, r *http.Request) {
	interpreter, available := h.conversions.RuntimeAvailable()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"available":   available,
		"interpreter": interpreter,
	})
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
		"service":   "osmcad",
	})
}

func jobResponse(job domain.Job) map[string]interface{} {
	resp := map[string]interface{}{
		"id":          job.ID,
		"status":      job.Status,
		"progress":    job.Progress,
		"message":     job.Message,
		"planType":    job.Options.PlanType,
		"projection":  job.Options.Projection,
		"createdAt":   job.CreatedAt.Unix(),
		"submittedBy": job.SubmittedBy,
	}
	if job.CompletedAt != nil {
		resp["completedAt"] = job.CompletedAt.Unix()
	}
	if job.ErrorMessage != "" {
		resp["error"] = job.ErrorMessage
	}
	if job.OutputFile != "" {
		resp["outputFile"] = job.OutputFile
	}
	if len(job.Stats) > 0 {
		resp["stats"] = job.Stats
	}
	return resp
}
