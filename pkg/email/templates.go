package email

import (
	"fmt"
)

// VerificationEmailData contains the data needed for the account
// verification email.
type VerificationEmailData struct {
	Name            string
	Email           string
	VerificationURL string
	AppName         string
}

// BuildVerificationEmail creates the verification message sent after signup.
func BuildVerificationEmail(data VerificationEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "CareLink"
	}

	name := data.Name
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Verify your %s account", appName)

	textBody := fmt.Sprintf(`Hi %s,

Welcome to %s.

Please verify your email by clicking the link below:
%s

If you didn't create this account, you can ignore this message.

Thanks,
The %s Team`,
		name, appName, data.VerificationURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #16a34a;">Hi %s,</h2>
    <p>Welcome to %s.</p>
    <p>Please verify your email by clicking the button below:</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #16a34a; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Verify Email</a>
    </p>
    <p>If you didn't create this account, you can ignore this message.</p>
    <p>Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, appName, data.VerificationURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
