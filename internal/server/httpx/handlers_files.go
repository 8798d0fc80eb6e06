package httpx

import "net/http"

type createFileRequest struct {
	Name         string     `json:"name" validate:"required"`
	Size         *int64     `json:"size" validate:"required,gte=0"`
	DateModified *timestamp `json:"date_modified" validate:"required"`
	ParentID     *int64     `json:"parent_id" validate:"omitempty,gt=0"`
}

func (r *Router) handleCreateFile(w http.ResponseWriter, req *http.Request) {
	var payload createFileRequest
	if !r.decode(w, req, &payload, "name, size, and date_modified are required") {
		return
	}
	file, err := r.metadata.CreateFile(req.Context(), payload.Name, *payload.Size, payload.DateModified.Time, payload.ParentID)
	if err != nil {
		r.writeServiceError(w, req, "file", err)
		return
	}
	writeJSON(w, http.StatusCreated, file)
}

func (r *Router) handleListFiles(w http.ResponseWriter, req *http.Request) {
	files, err := r.metadata.ListFiles(req.Context())
	if err != nil {
		r.writeServiceError(w, req, "file", err)
		return
	}
	writeJSON(w, http.StatusOK, files)
}

func (r *Router) handleGetFile(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID(req)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid file id")
		return
	}
	file, err := r.metadata.GetFile(req.Context(), id)
	if err != nil {
		r.writeServiceError(w, req, "file", err)
		return
	}
	writeJSON(w, http.StatusOK, file)
}

func (r *Router) handleRenameFile(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID(req)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid file id")
		return
	}
	var payload renameRequest
	if !r.decode(w, req, &payload, "new file name is required") {
		return
	}
	file, err := r.metadata.RenameFile(req.Context(), id, payload.Name)
	if err != nil {
		r.writeServiceError(w, req, "file", err)
		return
	}
	writeJSON(w, http.StatusOK, file)
}

func (r *Router) handleDeleteFile(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID(req)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid file id")
		return
	}
	if err := r.metadata.DeleteFile(req.Context(), id); err != nil {
		r.writeServiceError(w, req, "file", err)
		return
	}
	writeMessage(w, http.StatusOK, "file deleted successfully")
}
