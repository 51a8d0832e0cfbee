package models

import "strings"

// Client represents a borrower in the system
type Client struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	PaternalSurname string `json:"paternal_surname"`
	MaternalSurname string `json:"maternal_surname"`
	Phone           string `json:"phone"`
}

// FullName joins the client's name parts for display and reports
func (c *Client) FullName() string {
	parts := []string{c.Name, c.PaternalSurname, c.MaternalSurname}
	nonEmpty := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, strings.TrimSpace(p))
		}
	}
	return strings.Join(nonEmpty, " ")
}
