package codegen

import (
	"strings"
	"unicode"
)

// ToPascalCase converts an identifier to PascalCase.
// Examples:
//   - "user_account" -> "UserAccount"
//   - "my_program" -> "MyProgram"
//   - "USD" -> "USD"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}
	if isAllUpper(s) {
		return s
	}

	var result strings.Builder
	for _, word := range splitWords(s) {
		if word == "" {
			continue
		}
		if isAllUpper(word) {
			result.WriteString(word)
		} else {
			result.WriteString(strings.ToUpper(word[:1]) + strings.ToLower(word[1:]))
		}
	}
	return result.String()
}

// toCamelCase converts an identifier to camelCase, used for generated
// local variable names.
// Examples:
//   - "user_account" -> "userAccount"
//   - "my_program" -> "myProgram"
func toCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// ToSnakeCase converts an identifier to snake_case, used for struct tags
// and default package names.
func ToSnakeCase(s string) string {
	words := splitWords(s)
	for i := range words {
		words[i] = strings.ToLower(words[i])
	}
	return strings.Join(words, "_")
}

// splitWords splits on underscores, dashes, spaces, and lower-to-upper
// boundaries.
func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	for i, r := range s {
		if r == '_' || r == '-' || r == ' ' {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			continue
		}

		if unicode.IsUpper(r) && i > 0 {
			prev := rune(s[i-1])
			if !unicode.IsUpper(prev) && prev != '_' && prev != '-' && prev != ' ' {
				if current.Len() > 0 {
					words = append(words, current.String())
					current.Reset()
				}
			}
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

// isAllUpper checks if a string is all uppercase.
func isAllUpper(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// FormatTypeName formats a type name to the generated-code convention.
func FormatTypeName(name string) string {
	return ToPascalCase(name)
}

// FormatFieldName formats a struct field name; always exported.
func FormatFieldName(name string) string {
	return ToPascalCase(name)
}

// FormatVariantName formats an enum variant name.
// Examples:
//   - Status + Pending -> StatusPending
//   - Action + Transfer -> ActionTransfer
func FormatVariantName(enumName, variantName string) string {
	return enumName + FormatTypeName(variantName)
}
