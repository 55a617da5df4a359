package schedule

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// FormatDate converte um instante para a data-calendário local no formato
// "2006-01-02". Usa os campos locais de ano/mês/dia, nunca truncamento de
// ISO em UTC, que desloca o dia perto da meia-noite fora de UTC. Toda
// comparação de datas no sistema (inclusive o marcador de "hoje") passa por
// esta função.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil && len(s) == len(DateLayout)
}

// MinutesOfDay converte "15:04" para minutos desde a meia-noite
func MinutesOfDay(hm string) (int, error) {
	t, err := time.Parse(TimeLayout, hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func IsValidTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil && len(s) == len(TimeLayout)
}
