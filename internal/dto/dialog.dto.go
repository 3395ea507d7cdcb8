package dto

type OptionDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type DraftDTO struct {
	PetName   string `json:"petName"`
	OwnerName string `json:"ownerName"`
	Phone     string `json:"phone"`
	DateInput string `json:"dateInput"`
	DateLabel string `json:"dateLabel"`
	Service   string `json:"service"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

type TargetDTO struct {
	ID        int64  `json:"id"`
	OwnerName string `json:"ownerName"`
	DateLabel string `json:"dateLabel"`
	Service   string `json:"service"`
}

type DialogDTO struct {
	State          string      `json:"state"`
	Title          string      `json:"title,omitempty"`
	Description    string      `json:"description,omitempty"`
	SubmitLabel    string      `json:"submitLabel,omitempty"`
	Draft          *DraftDTO   `json:"draft,omitempty"`
	Target         *TargetDTO  `json:"target,omitempty"`
	ServiceOptions []OptionDTO `json:"serviceOptions,omitempty"`
	StatusOptions  []OptionDTO `json:"statusOptions,omitempty"`
}
