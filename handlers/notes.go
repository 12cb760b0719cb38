package handlers

import (
	"net/http"

	"notenext/apperr"
	"notenext/models"
)

type createNoteRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Tags     string  `json:"tags"`
	IsTodo   bool    `json:"is_todo"`
	FolderID *int64  `json:"folder_id"`
}

func (h *Handler) GetNotes(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	folderID, err := queryID(r, "folder_id")
	if err != nil {
		WriteError(w, r, err)
		return
	}
	childID, err := queryID(r, "child_id")
	if err != nil {
		WriteError(w, r, err)
		return
	}
	notes, err := h.access.ListNotes(r.Context(), p, childID, folderID)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	var req createNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)
		return
	}
	if req.Title == nil || req.Content == nil {
		WriteError(w, r, apperr.BadRequest("title and content are required"))
		return
	}
	note, err := h.access.CreateNote(r.Context(), p, models.NoteDraft{
		Title:    *req.Title,
		Content:  *req.Content,
		Tags:     req.Tags,
		IsTodo:   req.IsTodo,
		FolderID: req.FolderID,
	})
	if err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
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
	var patch models.NotePatch
	if err := decodeJSON(r, &patch); err != nil {
		WriteError(w, r, err)
		return
	}
	note, err := h.access.UpdateNote(r.Context(), p, id, patch)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
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
	if err := h.access.DeleteNote(r.Context(), p, id); err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Note deleted"})
}
