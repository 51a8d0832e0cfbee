package handler

import "net/http"

type clientRequest struct {
	Name            string `json:"name"`
	PaternalSurname string `json:"paternal_surname"`
	MaternalSurname string `json:"maternal_surname"`
	Phone           string `json:"phone"`
}

// ListClients returns all clients with the headcount
func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListClients()
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, list)
}

// CreateClient registers a new client
func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if !h.decode(w, r, &req) {
		return
	}
	client, err := h.svc.CreateClient(req.Name, req.PaternalSurname, req.MaternalSurname, req.Phone)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, client)
}

// UpdateClient replaces a client's identity attributes
func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid client id"})
		return
	}
	var req clientRequest
	if !h.decode(w, r, &req) {
		return
	}
	client, err := h.svc.UpdateClient(id, req.Name, req.PaternalSurname, req.MaternalSurname, req.Phone)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, client)
}

// DeleteClient removes a client with its credits and payments
func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid client id"})
		return
	}
	if err := h.svc.DeleteClient(id); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}
