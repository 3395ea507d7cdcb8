package dto

import "time"

type AppointmentCardDTO struct {
	ID         int64      `json:"id"`
	OwnerName  string     `json:"ownerName"`
	PetName    string     `json:"petName"`
	Phone      string     `json:"phone"`
	Date       *time.Time `json:"date"`
	DateLabel  string     `json:"dateLabel"`
	Service    string     `json:"service"`
	Status     string     `json:"status"`
	StatusTone string     `json:"statusTone"`
	Notes      string     `json:"notes,omitempty"`
}

type AppointmentListDTO struct {
	Category     string               `json:"category"`
	Label        string               `json:"label"`
	Heading      string               `json:"heading"`
	Empty        bool                 `json:"empty"`
	EmptyMessage string               `json:"emptyMessage,omitempty"`
	Items        []AppointmentCardDTO `json:"items"`
	Total        int                  `json:"total"`
}
