package schedule

import "fmt"

// Janela de atendimento fixa do salão em passos de 30 minutos.
const (
	OpeningHour   = 7
	OpeningMinute = 0
	ClosingHour   = 21
	ClosingMinute = 30
	SlotMinutes   = 30
)

// SlotTimes devolve os horários agendáveis do dia, "07:00" até "21:30"
// inclusive: 44 slots, ordem crescente. É a mesma lista usada pela grade
// do dia e pelo seletor de horário do formulário de agendamento.
func SlotTimes() []string {
	open := OpeningHour*60 + OpeningMinute
	close := ClosingHour*60 + ClosingMinute

	slots := make([]string, 0, (close-open)/SlotMinutes+1)
	for m := open; m <= close; m += SlotMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}

// IsSlotTime valida se um horário "15:04" cai exatamente em um slot da
// janela. Exige zero à esquerda: é a forma armazenada e comparada em toda
// a agenda.
func IsSlotTime(hm string) bool {
	if !IsValidTime(hm) {
		return false
	}

	m, err := MinutesOfDay(hm)
	if err != nil {
		return false
	}

	open := OpeningHour*60 + OpeningMinute
	close := ClosingHour*60 + ClosingMinute

	return m >= open && m <= close && (m-open)%SlotMinutes == 0
}
