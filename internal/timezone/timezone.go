package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// zona configurada na subida do processo; válida para o processo inteiro
var current = DefaultTimezone

// Set fixa a zona usada por Now. Zona inválida mantém a anterior.
func Set(tz string) {
	if IsValid(tz) {
		current = tz
	}
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// Now devolve o relógio na zona do salão. Todas as decisões de calendário
// (data de hoje, janela de lembretes) partem deste relógio.
func Now() time.Time {
	return time.Now().In(Location(current))
}
