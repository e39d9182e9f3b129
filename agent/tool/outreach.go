package tool

import "fmt"

// DraftOutreachEmail returns the initial outreach subject and body for a
// supplier. The placeholders are filled in by whoever approves the send.
func DraftOutreachEmail(supplierName string) (subject, body string) {
	subject = fmt.Sprintf("Exploring Distribution Opportunities in Kuwait with %s", supplierName)
	body = fmt.Sprintf(
		"Dear %s Team,\n\n"+
			"My name is [Your Name] and I am the [Your Title] at [Your Company]. We are a leading distributor of medical supplies in Kuwait, and we have been following your company's impressive work and innovative products with great interest.\n\n"+
			"We believe that your products would be an excellent addition to our portfolio, and we are confident that we can establish a strong market presence for you in Kuwait. We would be very interested in discussing the possibility of a distribution partnership.\n\n"+
			"Would you be available for a brief call next week to explore this further?\n\n"+
			"Best regards,\n"+
			"[Your Name]\n"+
			"[Your Title]\n"+
			"[Your Company]\n"+
			"[Your Contact Information]",
		supplierName,
	)
	return subject, body
}

// DraftFollowUpEmail returns the brief follow-up subject and body.
func DraftFollowUpEmail(supplierName string) (subject, body string) {
	subject = "Checking In: Distribution Opportunities in Kuwait"
	body = fmt.Sprintf(
		"Dear %s Team,\n\n"+
			"I hope this email finds you well. I'm writing to follow up on my previous message regarding a potential distribution partnership in Kuwait.\n\n"+
			"We are very enthusiastic about the possibility of working together and would be happy to answer any questions you might have.\n\n"+
			"Best regards,\n"+
			"[Your Name]",
		supplierName,
	)
	return subject, body
}
