package notify

import (
	"fmt"
	"net/url"
	"strings"
)

// DDI fixo do Brasil usado nos links de confirmação
const countryCode = "55"

// WhatsAppLink monta o deep link wa.me para envio manual: o usuário clica e
// o aplicativo abre com a mensagem pronta. Não é chamada de API. Dígitos não
// numéricos do telefone são descartados.
func WhatsAppLink(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	return fmt.Sprintf(
		"https://wa.me/%s%s?text=%s",
		countryCode,
		digits.String(),
		url.QueryEscape(message),
	)
}

// ConfirmationMessage compõe o texto padrão de confirmação de horário
func ConfirmationMessage(clientName, salonName, date, hm, serviceName string) string {
	return fmt.Sprintf(
		"Olá %s, confirmamos seu horário no %s em %s às %s para %s.",
		clientName, salonName, date, hm, serviceName,
	)
}
