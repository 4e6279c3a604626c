package analyze

import (
	"regexp"
	"strings"
	"unicode"
)

// Placeholder values used when no contact details are found in the text.
const (
	UnknownName  = "Unknown"
	UnknownEmail = "unknown@example.com"
	UnknownPhone = "000-000-0000"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?1?[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)
)

// ContactInfo holds the contact details inferred from resume text.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ExtractContactInfo finds the first email and phone match in the raw
// text, falling back to placeholders. The name is taken from the first
// non-empty line when it looks like one (2-4 tokens, no digits),
// otherwise derived from the email's local part.
func ExtractContactInfo(text string) ContactInfo {
	info := ContactInfo{Name: UnknownName, Email: UnknownEmail, Phone: UnknownPhone}

	if m := emailPattern.FindString(text); m != "" {
		info.Email = m
	}
	if groups := phonePattern.FindStringSubmatch(text); groups != nil {
		// Join the captured digit groups, dropping separators.
		phone := strings.Map(keepDigit, groups[1]) + groups[2] + groups[3] + groups[4]
		info.Phone = phone
	}

	if name := nameFromFirstLine(text); name != "" {
		info.Name = name
	} else {
		info.Name = nameFromEmail(info.Email)
	}
	return info
}

// nameFromFirstLine returns the first non-empty line when it has 2-4
// whitespace-separated tokens and no digits.
func nameFromFirstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) < 2 || len(tokens) > 4 {
			return ""
		}
		for _, r := range line {
			if unicode.IsDigit(r) {
				return ""
			}
		}
		return line
	}
	return ""
}

// nameFromEmail title-cases the local part of an email, treating dots
// and underscores as word separators.
func nameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return UnknownName
	}
	local = strings.NewReplacer(".", " ", "_", " ").Replace(local)
	words := strings.Fields(local)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	if len(words) == 0 {
		return UnknownName
	}
	return strings.Join(words, " ")
}

func keepDigit(r rune) rune {
	if unicode.IsDigit(r) {
		return r
	}
	return -1
}
