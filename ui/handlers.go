package ui

import (
	"encoding/json"
	"net/http"

	"techindex/adapters/excel"
	"techindex/domain/index"
	"techindex/internal/analysis"
	"techindex/internal/errors"
	"techindex/internal/report"
)

const maxUploadBytes = 16 << 20

// weightsPayload is the PUT /api/weights body. Omitted sectors are
// excluded from the composite (implicit zero weight).
type weightsPayload struct {
	AI             *float64 `json:"ai" validate:"omitempty,gte=0"`
	Quantum        *float64 `json:"quantum" validate:"omitempty,gte=0"`
	Semiconductors *float64 `json:"semiconductors" validate:"omitempty,gte=0"`
	Biotech        *float64 `json:"biotech" validate:"omitempty,gte=0"`
	Space          *float64 `json:"space" validate:"omitempty,gte=0"`
	Fintech        *float64 `json:"fintech" validate:"omitempty,gte=0"`
}

func (p weightsPayload) toWeights() index.Weights {
	weights := make(index.Weights, 6)
	set := func(sector index.Sector, v *float64) {
		if v != nil {
			weights[sector] = *v
		}
	}
	set(index.SectorAI, p.AI)
	set(index.SectorQuantum, p.Quantum)
	set(index.SectorSemiconductors, p.Semiconductors)
	set(index.SectorBiotech, p.Biotech)
	set(index.SectorSpace, p.Space)
	set(index.SectorFintech, p.Fintech)
	return weights
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpload ingests a spreadsheet and runs the full pipeline. Uploads
// beyond the concurrency bound are rejected immediately; queuing them
// would only stack stale datasets.
func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	if !a.uploads.TryAcquire(1) {
		a.writeError(w, http.StatusTooManyRequests,
			errors.InvalidInput("too many concurrent uploads, retry shortly"))
		return
	}
	defer a.uploads.Release(1)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		a.writeError(w, http.StatusBadRequest, errors.InvalidInput("expected a multipart file upload"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		a.writeError(w, http.StatusBadRequest, errors.InvalidInput("missing form field \"file\""))
		return
	}
	defer file.Close()

	rows, err := excel.FromReader(file, header.Filename)
	if err != nil {
		a.log.Warn("upload %q rejected: %v", header.Filename, err)
		a.writeError(w, http.StatusBadRequest, err)
		return
	}

	rep := a.session.LoadRows(rows, header.Filename)
	status := http.StatusOK
	if !rep.IsValid {
		status = http.StatusUnprocessableEntity
	}
	a.log.Info("dataset %s loaded from %q: %d countries, %d errors, %d warnings",
		a.session.DatasetID(), header.Filename, len(a.session.Records()),
		len(rep.Errors), len(rep.Warnings))

	a.writeJSON(w, status, map[string]any{
		"datasetId": a.session.DatasetID().String(),
		"name":      header.Filename,
		"countries": len(a.session.Records()),
		"report":    rep,
	})
}

func (a *App) handleRecords(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, a.session.Records())
}

func (a *App) handleGetWeights(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, a.session.Weights())
}

// handlePutWeights installs new weights and rescores the cached dataset;
// validation never reruns on a weight edit.
func (a *App) handlePutWeights(w http.ResponseWriter, r *http.Request) {
	var payload weightsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		a.writeError(w, http.StatusBadRequest, errors.InvalidInput("malformed weights body"))
		return
	}
	if err := a.validate.Struct(payload); err != nil {
		a.writeError(w, http.StatusBadRequest, errors.InvalidInput("invalid weights: "+err.Error()))
		return
	}

	if err := a.session.SetWeights(payload.toWeights()); err != nil {
		a.writeError(w, http.StatusBadRequest, errors.InvalidInput("invalid weights: "+err.Error()))
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]any{
		"weights": a.session.Weights(),
		"records": a.session.Records(),
	})
}

func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, a.session.Report())
}

func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, analysis.Summarize(a.session.Records()))
}

func (a *App) handleSectors(w http.ResponseWriter, r *http.Request) {
	sectors := make([]map[string]string, 0, 6)
	for _, sector := range index.Sectors() {
		sectors = append(sectors, map[string]string{
			"key":    string(sector),
			"column": index.ColumnFor(sector),
		})
	}
	a.writeJSON(w, http.StatusOK, sectors)
}

func (a *App) handleReportHTML(w http.ResponseWriter, r *http.Request) {
	digest := report.Digest(a.session.Report(), a.session.Records())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(report.RenderHTML(digest))
}

func (a *App) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.log.Error("failed to encode response: %v", err)
	}
}

func (a *App) writeError(w http.ResponseWriter, status int, err error) {
	a.writeJSON(w, status, map[string]string{
		"code":  errors.GetCode(err),
		"error": err.Error(),
	})
}
