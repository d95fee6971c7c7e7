package service

import (
	"log"
	"strconv"

	gomail "gopkg.in/gomail.v2"

	"ambassade_backend/internals/configs"
)

// SendMail envoie un email HTML via SMTP. Bloquant ; préférer SendMailAsync
// depuis les chemins de requête.
func SendMail(to, subject, htmlBody string) error {
	if configs.SMTPHost == "" {
		log.Printf("[WARN] SMTP non configuré, email '%s' vers %s ignoré", subject, to)
		return nil
	}

	port, err := strconv.Atoi(configs.SMTPPort)
	if err != nil {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", configs.MailFrom)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(configs.SMTPHost, port, configs.SMTPUser, configs.SMTPPassword)
	return d.DialAndSend(m)
}

// SendMailAsync — la remise n'est jamais bloquante pour l'appelant.
func SendMailAsync(to, subject, htmlBody string) {
	go func() {
		if err := SendMail(to, subject, htmlBody); err != nil {
			log.Printf("[ERROR] Envoi email '%s' vers %s : %v", subject, to, err)
		}
	}()
}
