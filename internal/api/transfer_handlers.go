package api

import (
	"log/slog"
	"net/http"

	"github.com/atelierworks/maquette/internal/sheet"
	"github.com/atelierworks/maquette/internal/types"
)

// TransferSheet handles POST /api/sheets/transfer. Qualifying items from
// the source sheet are copied into the target sheet, scaffolding created
// on demand. The operation is not idempotent: re-running it duplicates
// target-sheet content.
func (h *Handler) TransferSheet(w http.ResponseWriter, r *http.Request) {
	var req types.TransferRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !req.SourceSheet.Valid() || !req.TargetSheet.Valid() {
		WriteProblem(w, r, http.StatusBadRequest, "Invalid sheet type")
		return
	}
	if req.SourceSheet == req.TargetSheet {
		WriteProblem(w, r, http.StatusBadRequest, "Source and target sheet must differ")
		return
	}

	source, err := h.store.GetProjectTree(r.Context(), req.ProjectID, req.SourceSheet)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}

	result := sheet.NewTransferrer(h.store).Run(r.Context(), *source, req.TargetSheet)

	slog.Info("sheet transfer finished",
		"project_id", req.ProjectID,
		"source_sheet", req.SourceSheet,
		"target_sheet", req.TargetSheet,
		"transferred", result.Transferred,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	writeJSON(w, http.StatusOK, result)
}
