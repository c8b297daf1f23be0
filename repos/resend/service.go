package resend

import (
	"context"
	"fmt"
	"log"
	"os"

	resend "github.com/resend/resend-go/v2"
)

// Service sends the club's transactional mail through Resend.
type Service struct {
	client  *resend.Client
	from    string
	hostURL string
}

// NewService creates a new empty service.
func NewService(hostURL string) *Service {
	resendKey := os.Getenv("RESEND_KEY")
	from := os.Getenv("RESEND_FROM")
	if from == "" {
		from = "onboarding@resend.dev"
	}
	return &Service{
		client:  resend.NewClient(resendKey),
		from:    from,
		hostURL: hostURL,
	}
}

// SendInvite mails an assistant-coach invite link carrying the access code.
func (s Service) SendInvite(ctx context.Context, request InviteRequest, inviteCode string) error {
	body := inviteTemplate(request.Name, fmt.Sprintf("%s/admin/v1/redeem/%s", s.hostURL, inviteCode))
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{request.Email},
		Subject: "Invitasjon som assistenttrener",
		Html:    body,
	}

	_, err := s.client.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send invite mail: %v\n", err)
		return err
	}
	return nil
}

// SendFeedback mails a weekly coach feedback text to a player.
func (s Service) SendFeedback(ctx context.Context, mail FeedbackMail) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{mail.Email},
		Subject: "Ukens tilbakemelding fra trener",
		Html:    feedbackTemplate(mail.PlayerName, mail.Text),
	}

	_, err := s.client.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send feedback mail: %v\n", err)
		return err
	}
	return nil
}

func inviteTemplate(name, url string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="background-color: #ffffff; max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2>Hei %s,</h2>
        <p>Du er invitert som assistenttrener. Klikk på knappen for å få tilgang:</p>
        <a href="%s" style="display: block; width: 200px; margin: 20px auto; background-color: #007BFF; color: #ffffff; text-align: center; line-height: 50px; text-decoration: none; border-radius: 5px;">Godta invitasjon</a>
        <p>Hilsen treneren</p>
    </div>
</body>
</html>`, name, url)
}

func feedbackTemplate(name, text string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="background-color: #ffffff; max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2>Hei %s,</h2>
        <p>%s</p>
        <p>Hilsen treneren</p>
    </div>
</body>
</html>`, name, text)
}
