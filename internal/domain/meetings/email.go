package meetings

import (
	"fmt"
	"strings"
)

type Email struct {
	Subject string
	Text    string
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// ComposeEmail renders the fixed plaintext notification for brand.
func ComposeEmail(brand string, r Request) Email {
	var b strings.Builder
	b.WriteString("New meeting request\n\n")
	fmt.Fprintf(&b, "Name: %s %s\n", r.FirstName, r.LastName)
	fmt.Fprintf(&b, "Email: %s\n", r.Email)
	fmt.Fprintf(&b, "Phone: %s\n", r.Phone)
	fmt.Fprintf(&b, "Business Name: %s\n\n", orNone(r.BusinessName))
	b.WriteString("Address:\n")
	fmt.Fprintf(&b, "%s\n", r.AddressLine1)
	fmt.Fprintf(&b, "%s, %s %s\n\n", r.City, r.State, r.Zip)
	b.WriteString("Preferred:\n")
	fmt.Fprintf(&b, "%s at %s\n\n", r.PreferredDate, r.PreferredTime)
	b.WriteString("Comments:\n")
	fmt.Fprintf(&b, "%s\n\n", orNone(r.Comments))
	b.WriteString("Photo:\n")
	fmt.Fprintf(&b, "%s\n", orNone(r.PhotoURL))

	return Email{
		Subject: fmt.Sprintf("%s Meeting Request: %s %s", brand, r.FirstName, r.LastName),
		Text:    b.String(),
	}
}
