package domain

import "strings"

type User struct {
	Username Username `db:"username"`
	Emails   Emails   `db:"emails"`
}

// EmailDomains returns the distinct domains of the user's addresses in first-seen order.
func (u User) EmailDomains() []string {
	seen := make(map[string]bool, len(u.Emails))
	var domains []string
	for _, email := range u.Emails {
		_, domain, ok := strings.Cut(email, "@")
		if !ok || domain == "" {
			continue
		}
		domain = strings.ToLower(domain)
		if seen[domain] {
			continue
		}
		seen[domain] = true
		domains = append(domains, domain)
	}
	return domains
}
