package solicitud

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/jhoicas/practicas-api/internal/application/ports"
	"github.com/jhoicas/practicas-api/internal/domain/entity"
)

// Correos enviados a la persona de contacto de la solicitud. Devuelven nil si no hay destinatario.

func destinatario(s *entity.EmpresaSolicitud) (mail.Address, bool) {
	if s.ContactoEmail == "" {
		return mail.Address{}, false
	}
	return mail.Address{Name: s.ContactoNombre, Address: s.ContactoEmail}, true
}

func emailVerificacion(s *entity.EmpresaSolicitud, links Links) *ports.Email {
	to, ok := destinatario(s)
	if !ok || links == nil {
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Hola %s,\n\n", s.ContactoNombre)
	fmt.Fprintf(&b, "Hemos recibido la solicitud de registro de %s como empresa colaboradora.\n", s.NombreEmpresa)
	b.WriteString("Para continuar, confirma tu dirección de correo en el siguiente enlace:\n\n")
	fmt.Fprintf(&b, "  %s\n\n", links.ConfirmURL(s.Token))
	b.WriteString("Puedes consultar el estado de la solicitud y escribir al centro desde tu portal:\n\n")
	fmt.Fprintf(&b, "  %s\n\n", links.SolicitudURL(s.PortalToken))
	b.WriteString("Guarda este enlace: es tu acceso al portal.\n")
	return &ports.Email{
		To:      to,
		Subject: "Confirma tu solicitud de registro",
		Text:    b.String(),
	}
}

func emailAprobacion(s *entity.EmpresaSolicitud, links Links) *ports.Email {
	to, ok := destinatario(s)
	if !ok || links == nil {
		return nil
	}
	text := fmt.Sprintf("Hola %s,\n\nLa solicitud de %s ha sido aprobada. "+
		"A partir de ahora figura como empresa colaboradora del centro.\n\nPortal: %s\n",
		s.ContactoNombre, s.NombreEmpresa, links.SolicitudURL(s.PortalToken))
	return &ports.Email{To: to, Subject: "Solicitud de registro aprobada", Text: text}
}

func emailRechazo(s *entity.EmpresaSolicitud, links Links) *ports.Email {
	to, ok := destinatario(s)
	if !ok || links == nil {
		return nil
	}
	motivo := ""
	if s.RejectionReason != nil {
		motivo = *s.RejectionReason
	}
	text := fmt.Sprintf("Hola %s,\n\nLa solicitud de %s no ha sido aceptada.\n\nMotivo: %s\n\n"+
		"Si tienes dudas puedes responder desde el portal: %s\n",
		s.ContactoNombre, s.NombreEmpresa, motivo, links.SolicitudURL(s.PortalToken))
	return &ports.Email{To: to, Subject: "Solicitud de registro rechazada", Text: text}
}

func emailNuevoMensaje(s *entity.EmpresaSolicitud, m *entity.EmpresaMensaje, links Links) *ports.Email {
	to, ok := destinatario(s)
	if !ok || links == nil {
		return nil
	}
	text := fmt.Sprintf("Hola %s,\n\nEl centro ha escrito en la solicitud de %s:\n\n%s\n\nResponder: %s\n",
		s.ContactoNombre, s.NombreEmpresa, m.Contenido, links.SolicitudURL(s.PortalToken))
	return &ports.Email{To: to, Subject: "Nuevo mensaje sobre tu solicitud", Text: text}
}
