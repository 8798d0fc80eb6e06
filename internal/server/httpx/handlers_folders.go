package httpx

import "net/http"

type createFolderRequest struct {
	Name         string     `json:"name" validate:"required"`
	DateModified *timestamp `json:"date_modified" validate:"required"`
}

type renameRequest struct {
	Name string `json:"name" validate:"required"`
}

func (r *Router) handleCreateFolder(w http.ResponseWriter, req *http.Request) {
	var payload createFolderRequest
	if !r.decode(w, req, &payload, "name and date_modified are required") {
		return
	}
	folder, err := r.metadata.CreateFolder(req.Context(), payload.Name, payload.DateModified.Time)
	if err != nil {
		r.writeServiceError(w, req, "folder", err)
		return
	}
	writeJSON(w, http.StatusCreated, folder)
}

func (r *Router) handleListFolders(w http.ResponseWriter, req *http.Request) {
	folders, err := r.metadata.ListFolders(req.Context())
	if err != nil {
		r.writeServiceError(w, req, "folder", err)
		return
	}
	writeJSON(w, http.StatusOK, folders)
}

func (r *Router) handleGetFolder(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID(req)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid folder id")
		return
	}
	folder, err := r.metadata.GetFolder(req.Context(), id)
	if err != nil {
		r.writeServiceError(w, req, "folder", err)
		return
	}
	writeJSON(w, http.StatusOK, folder)
}

func (r *Router) handleRenameFolder(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID(req)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid folder id")
		return
	}
	var payload renameRequest
	if !r.decode(w, req, &payload, "new folder name is required") {
		return
	}
	folder, err := r.metadata.RenameFolder(req.Context(), id, payload.Name)
	if err != nil {
		r.writeServiceError(w, req, "folder", err)
		return
	}
	writeJSON(w, http.StatusOK, folder)
}

func (r *Router) handleDeleteFolder(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID(req)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid folder id")
		return
	}
	if err := r.metadata.DeleteFolder(req.Context(), id); err != nil {
		r.writeServiceError(w, req, "folder", err)
		return
	}
	writeMessage(w, http.StatusOK, "folder deleted successfully")
}

// handleListFolderFiles lists files by parent id. The folder itself is not
// looked up, so an unknown id returns an empty list.
func (r *Router) handleListFolderFiles(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID(req)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid folder id")
		return
	}
	files, err := r.metadata.ListFilesByParent(req.Context(), id)
	if err != nil {
		r.writeServiceError(w, req, "folder", err)
		return
	}
	writeJSON(w, http.StatusOK, files)
}
