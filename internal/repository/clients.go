package repository

import (
	"database/sql"
	"fmt"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/models"
)

// CreateClient creates a new client in the database
func (r *Repository) CreateClient(client *models.Client) error {
	query := `
		INSERT INTO financiera.clients (name, paternal_surname, maternal_surname, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.db.QueryRow(query, client.Name, client.PaternalSurname, client.MaternalSurname, client.Phone).
		Scan(&client.ID)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// ListClients retrieves all clients ordered by id
func (r *Repository) ListClients() ([]models.Client, error) {
	query := `
		SELECT id, name, paternal_surname, maternal_surname, phone
		FROM financiera.clients
		ORDER BY id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.PaternalSurname, &c.MaternalSurname, &c.Phone); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read clients: %w", err)
	}
	return clients, nil
}

// FindClientByID retrieves a client by id
func (r *Repository) FindClientByID(id int64) (*models.Client, error) {
	client := &models.Client{}
	query := `
		SELECT id, name, paternal_surname, maternal_surname, phone
		FROM financiera.clients
		WHERE id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&client.ID, &client.Name, &client.PaternalSurname, &client.MaternalSurname, &client.Phone)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("client %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return client, nil
}

// UpdateClient updates a client's identity attributes
func (r *Repository) UpdateClient(client *models.Client) error {
	query := `
		UPDATE financiera.clients
		SET name = $1, paternal_surname = $2, maternal_surname = $3, phone = $4
		WHERE id = $5`
	res, err := r.db.Exec(query, client.Name, client.PaternalSurname, client.MaternalSurname, client.Phone, client.ID)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("client %d: %w", client.ID, ErrNotFound)
	}
	return nil
}

// DeleteClient removes a client together with its credits and payments in
// a single transaction.
func (r *Repository) DeleteClient(id int64) error {
	return r.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM financiera.payments WHERE client_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete client payments: %w", err)
		}
		if _, err := tx.Exec(`DELETE FROM financiera.credits WHERE client_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete client credits: %w", err)
		}
		res, err := tx.Exec(`DELETE FROM financiera.clients WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete client: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("client %d: %w", id, ErrNotFound)
		}
		return nil
	})
}
