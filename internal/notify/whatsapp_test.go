package notify_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glamourlabs/salon-manager/internal/notify"
)

func TestWhatsAppLink(t *testing.T) {
	t.Run("descarta tudo que não é dígito", func(t *testing.T) {
		link := notify.WhatsAppLink("(11) 98888-7777", "oi")
		assert.True(t, strings.HasPrefix(link, "https://wa.me/5511988887777?text="), link)
	})

	t.Run("mensagem vai url-encoded", func(t *testing.T) {
		link := notify.WhatsAppLink("11988887777", "Olá Ana, tudo bem?")
		assert.NotContains(t, link, " ")
		assert.Contains(t, link, "?text=Ol%C3%A1+Ana%2C+tudo+bem%3F")
	})
}

func TestConfirmationMessage(t *testing.T) {
	msg := notify.ConfirmationMessage("Ana", "Studio Glamour", "2026-09-01", "10:00", "Corte Feminino")

	assert.Equal(t,
		"Olá Ana, confirmamos seu horário no Studio Glamour em 2026-09-01 às 10:00 para Corte Feminino.",
		msg,
	)
}
