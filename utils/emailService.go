package utils

import (
	"egrow/config"
	"fmt"
	"log"
	"net/smtp"
)

func sendEmail(to, subjectLine, body string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		log.Println("[EMAIL] Sender credentials not configured, skipping email to", to)
		return nil
	}

	subject := "Subject: " + subjectLine + "\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	message := []byte(subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, smtpHost)
	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{to}, message)
}

// SendEnrollmentEmail sends an email notification when user enrolls in a course
func SendEnrollmentEmail(email, userName, courseName string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">¡Bienvenido a eGrow Academy!</h2>
					<p style="font-size: 16px; color: #555555;">Hola %s,</p>
					<p style="font-size: 16px; color: #555555;">Tu inscripción al curso <b>%s</b> fue registrada correctamente. Ya puedes comenzar a aprender.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">eGrow Academy</p>
				</div>
			</body>
		</html>
	`, userName, courseName)

	return sendEmail(email, "Confirmación de inscripción - eGrow Academy", body)
}

// SendCourseCompletionEmail congratulates a user on finishing a course
func SendCourseCompletionEmail(email, userName, courseName string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">¡Felicidades %s!</h2>
					<p style="font-size: 16px; color: #555555;">Completaste el curso <b>%s</b>. Tu certificado ya está disponible en tu panel.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">eGrow Academy</p>
				</div>
			</body>
		</html>
	`, userName, courseName)

	return sendEmail(email, "Curso completado - eGrow Academy", body)
}
