package dto

// Linha da lista do dia. Nomes resolvidos contra os cadastros; referência
// pendurada vira campo vazio.
type DayAppointmentDTO struct {
	ID     string `json:"id"`
	Time   string `json:"time"`
	Kind   string `json:"kind"`
	Status string `json:"status"`

	ClientName  string `json:"client_name"`
	ServiceName string `json:"service_name"`
	StaffName   string `json:"staff_name"`

	Price      float64 `json:"price"`
	PriceLabel string  `json:"price_label"`

	PaymentMethod string `json:"payment_method,omitempty"`
	Notes         string `json:"notes,omitempty"`

	WhatsAppLink string `json:"whatsapp_link,omitempty"`
	CanComplete  bool   `json:"can_complete"`
}

type ReminderDTO struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	ClientName  string `json:"client_name"`
	ServiceName string `json:"service_name"`
	StaffName   string `json:"staff_name"`
}
