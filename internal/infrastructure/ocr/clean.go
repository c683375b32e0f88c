// Package ocr распознаёт SMD-коды на фото через Tesseract.
package ocr

import "strings"

// Whitelist символы, которые встречаются в SMD-кодах и номиналах
const Whitelist = "0123456789RrMmKkFfABCDEFGHXYZabcxyz.-"

// CleanCode оставляет в распознанном тексте только буквы, цифры, точку и дефис.
func CleanCode(text string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(text) {
		switch {
		case r >= '0' && r <= '9', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
