package models

import "time"

// Client é uma linha de dados_cliente, alimentada pelo bot de atendimento.
type Client struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"column:nome;size:100;not null" json:"name"`
	Phone string `gorm:"column:telefone;size:20" json:"phone"`
	Email string `gorm:"column:email;size:100" json:"email"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Client) TableName() string {
	return "dados_cliente"
}
