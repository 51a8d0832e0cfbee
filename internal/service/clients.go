package service

import (
	"strings"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/models"
)

// ClientList is the computed view of the clients page
type ClientList struct {
	Clients []models.Client `json:"clients"`
	Total   int             `json:"total"`
}

// CreateClient registers a new client
func (s *Service) CreateClient(name, paternalSurname, maternalSurname, phone string) (*models.Client, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalid("name", "must not be empty")
	}

	client := &models.Client{
		Name:            strings.TrimSpace(name),
		PaternalSurname: strings.TrimSpace(paternalSurname),
		MaternalSurname: strings.TrimSpace(maternalSurname),
		Phone:           strings.TrimSpace(phone),
	}
	if err := s.repo.CreateClient(client); err != nil {
		return nil, err
	}

	s.log.Infof("Client registered: %s", client.FullName())
	return client, nil
}

// ListClients returns all clients with the headcount
func (s *Service) ListClients() (*ClientList, error) {
	clients, err := s.repo.ListClients()
	if err != nil {
		return nil, err
	}
	return &ClientList{Clients: clients, Total: len(clients)}, nil
}

// UpdateClient replaces a client's identity attributes
func (s *Service) UpdateClient(id int64, name, paternalSurname, maternalSurname, phone string) (*models.Client, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalid("name", "must not be empty")
	}
	client, err := s.repo.FindClientByID(id)
	if err != nil {
		return nil, err
	}

	client.Name = strings.TrimSpace(name)
	client.PaternalSurname = strings.TrimSpace(paternalSurname)
	client.MaternalSurname = strings.TrimSpace(maternalSurname)
	client.Phone = strings.TrimSpace(phone)
	if err := s.repo.UpdateClient(client); err != nil {
		return nil, err
	}

	s.log.Infof("Client %d updated", client.ID)
	return client, nil
}

// DeleteClient removes a client and everything it owns
func (s *Service) DeleteClient(id int64) error {
	if err := s.repo.DeleteClient(id); err != nil {
		return err
	}
	s.log.Infof("Client %d deleted", id)
	return nil
}
