package service

import (
	"fmt"

	"jobi-backend/internal/domain"
)

// buildWelcomeEmail personalizes the welcome message triggered at
// registration time. When a provider template id is configured the send uses
// it with the registrant's profile as parameters; otherwise a plain message
// is built inline.
func buildWelcomeEmail(templateID string, reg *domain.Registration) domain.OutboundEmail {
	if templateID != "" {
		email := reg.Email
		if email == "" {
			email = "non renseigné"
		}
		return domain.OutboundEmail{
			ToEmail:    reg.Email,
			ToName:     reg.Name,
			TemplateID: templateID,
			Params: map[string]string{
				"NAME":     reg.Name,
				"PHONE":    reg.Phone,
				"EMAIL":    email,
				"TYPE":     reg.Type.Label(),
				"QUARTIER": reg.NeighborhoodOrDefault(),
			},
		}
	}

	body := fmt.Sprintf(
		"Salut %s !\n\nMerci de ton inscription sur la liste d'attente JOBI.\n\nTon profil :\nTéléphone : %s\nProfil : %s\nQuartier : %s\n\nOn te prévient dès que l'app est disponible.\n\nL'équipe JOBI",
		reg.Name, reg.Phone, reg.Type.Label(), reg.NeighborhoodOrDefault(),
	)
	return domain.OutboundEmail{
		ToEmail:   reg.Email,
		ToName:    reg.Name,
		Subject:   "Bienvenue sur la liste d'attente JOBI !",
		PlainBody: body,
	}
}

// LaunchMessageBuilder personalizes the launch announcement around the
// operator-supplied message text.
func LaunchMessageBuilder(message string) MessageBuilder {
	return func(reg domain.Registration) domain.OutboundEmail {
		html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background: white; border-radius: 20px; padding: 40px;">
    <h1 style="text-align: center; color: #FF6B35;">🎉 JOBI EST LÀ ! 🎉</h1>
    <h2>Salut %s !</h2>
    <div style="background: #4ECDC4; color: white; padding: 20px; border-radius: 15px; margin: 20px 0;">%s</div>
    <p>Tu étais parmi les premiers à croire en JOBI. Maintenant, il est temps de transformer ton attente en action !</p>
    <p><strong>Ton profil JOBI :</strong><br>
    📍 %s<br>
    🎯 %s<br>
    📱 %s</p>
    <p style="text-align: center; color: #666; margin-top: 30px;">JOBI - Le Job qui vient à toi 🇧🇫</p>
  </div>
</body>
</html>`,
			reg.Name, message, reg.NeighborhoodOrDefault(), reg.Type.Label(), reg.Phone)

		return domain.OutboundEmail{
			ToEmail:   reg.Email,
			ToName:    reg.Name,
			Subject:   "🚀 JOBI est enfin là ! Télécharge l'app maintenant !",
			PlainBody: fmt.Sprintf("Salut %s ! %s", reg.Name, message),
			HTMLBody:  html,
		}
	}
}

// TeaserMessageBuilder builds the pre-launch reminder sent to the whole list.
func TeaserMessageBuilder() MessageBuilder {
	return func(reg domain.Registration) domain.OutboundEmail {
		html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; border-radius: 15px; overflow: hidden;">
  <div style="padding: 40px; text-align: center;">
    <h1 style="font-size: 3em; margin: 0;">🚀 JOBI</h1>
    <p style="font-size: 1.3em; margin: 20px 0;">Salut %s ! 👋</p>
    <div style="background: rgba(0,0,0,0.05); padding: 30px; border-radius: 15px; margin: 30px 0;">
      <h2 style="margin-bottom: 20px;">🔥 L'app est presque prête ! 🔥</h2>
      <p style="font-size: 1.1em; line-height: 1.6;">
        On finalise les derniers détails de l'application. Tu seras parmi les premiers à pouvoir l'utiliser ! 💪
      </p>
      <p style="font-size: 1.2em; margin: 30px 0;">⚡ Encore quelques semaines et c'est parti ! ⚡</p>
    </div>
  </div>
</div>`, reg.Name)

		return domain.OutboundEmail{
			ToEmail:   reg.Email,
			ToName:    reg.Name,
			Subject:   "🚀 Jobi arrive bientôt !",
			PlainBody: fmt.Sprintf("Salut %s ! L'app JOBI est presque prête, encore quelques semaines et c'est parti !", reg.Name),
			HTMLBody:  html,
		}
	}
}
