package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

func InitSES() {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendResetEmail mails a password-reset link carrying the token.
func SendResetEmail(to string, username string, token string) error {
	resetURL := os.Getenv("PASSWORD_RESET_URL")
	if resetURL == "" {
		resetURL = "http://localhost:3000/reset-password?token=%s"
	}
	link := fmt.Sprintf(resetURL, token)

	subject := "Réinitialisation de votre mot de passe - Plateforme de Recettes"
	body := fmt.Sprintf(`Bonjour %s,

Vous avez demandé la réinitialisation de votre mot de passe sur la Plateforme de Recettes.

Pour réinitialiser votre mot de passe, cliquez sur le lien suivant :
%s

Si vous n'avez pas demandé cette réinitialisation, ignorez cet email.

Ce lien est valide pendant 24 heures.

Cordialement,
L'équipe de la Plateforme de Recettes
`, username, link)

	return sendEmail(to, subject, body)
}
