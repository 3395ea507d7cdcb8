package dto

type TabDTO struct {
	Category     string `json:"category"`
	Label        string `json:"label"`
	Active       bool   `json:"active"`
	Appointments int    `json:"appointments"`
	DialogState  string `json:"dialogState"`
}

type RenameDTO struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

type ScheduleDTO struct {
	Active   string     `json:"active"`
	Tabs     []TabDTO   `json:"tabs"`
	Renaming *RenameDTO `json:"renaming,omitempty"`
}
