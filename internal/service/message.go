// internal/service/message.go
package service

import "strings"

// RenderMessage replaces every {first_name} token in the template with
// the contact's first name, or the empty string when there is none. No
// other tokens are recognized.
func RenderMessage(template string, firstName *string) string {
	name := ""
	if firstName != nil {
		name = *firstName
	}
	return strings.ReplaceAll(template, "{first_name}", name)
}
