package handlers

import (
	"net/http"

	"notenext/apperr"
)

type createFolderRequest struct {
	Name *string `json:"name"`
}

func (h *Handler) GetFolders(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	childID, err := queryID(r, "child_id")
	if err != nil {
		WriteError(w, r, err)
		return
	}
	folders, err := h.access.ListFolders(r.Context(), p, childID)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, folders)
}

func (h *Handler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	var req createFolderRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)
		return
	}
	if req.Name == nil {
		WriteError(w, r, apperr.BadRequest("name is required"))
		return
	}
	folder, err := h.access.CreateFolder(r.Context(), p, *req.Name)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, folder)
}

func (h *Handler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, r, err)
		return
	}
	if err := h.access.DeleteFolder(r.Context(), p, id); err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Folder deleted"})
}
