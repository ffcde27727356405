package ports

import "context"

// SMSSender puerto de salida para enviar mensajes de texto (códigos OTP).
// El adaptador de Twilio lo implementa; en desarrollo puede no existir.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// Mailer puerto de salida para correos transaccionales (recuperación de contraseña).
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
