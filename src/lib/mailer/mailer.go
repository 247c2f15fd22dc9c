package mailer

import (
	"log"
	"os"

	"sbs/src/lib"
	awslib "sbs/src/lib/aws"
)

// Send routes a notification mail through whichever transport is configured.
// Delivery is best effort; an unconfigured mailer is a silent skip.
func Send(input *lib.SendMailInput) error {
	switch os.Getenv("MAIL_TRANSPORT") {
	case "ses":
		return awslib.SESSendMessage(input.From, input.To, input.Subject, input.Body)
	case "smtp":
		return lib.SendMail(input)
	default:
		log.Println("[mailer] no mail transport configured, skipping send")
		return nil
	}
}
