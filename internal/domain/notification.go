package domain

import (
	"regexp"
	"strings"
)

// maxMessageLen caps spoken messages so they stay short.
const maxMessageLen = 80

// maxMessageWords caps spoken completion messages at a natural phrase.
const maxMessageWords = 8

// DefaultCompletionMessage is spoken when no completion marker is found.
const DefaultCompletionMessage = "Task completed"

// Completion marker patterns, checked in order: the voiced marker, the
// target marker fallback, then the plain text form.
var completionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)🗣️\s*CUSTOM COMPLETED[:\s]+(.+?)$`),
	regexp.MustCompile(`(?im)🎯\s*COMPLETED[:\s]+(.+?)$`),
	regexp.MustCompile(`(?im)CUSTOM COMPLETED[:\s]+(.+?)$`),
}

var markdownMarks = regexp.MustCompile("[*_`]+")

// ExtractCompletion pulls the completion message out of a response body.
// Returns DefaultCompletionMessage when no marker is present.
func ExtractCompletion(text string) string {
	for _, pattern := range completionPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return cleanMessage(m[1])
		}
	}
	return DefaultCompletionMessage
}

// cleanMessage strips markdown, collapses whitespace, and trims the
// message to a speakable length.
func cleanMessage(message string) string {
	message = markdownMarks.ReplaceAllString(message, "")
	words := strings.Fields(message)
	if len(words) > maxMessageWords {
		words = words[:maxMessageWords]
	}
	return strings.TrimSpace(capMessage(strings.Join(words, " ")))
}

// TruncateMessage collapses whitespace and caps an arbitrary notification
// message for voice delivery.
func TruncateMessage(message string) string {
	return capMessage(strings.Join(strings.Fields(message), " "))
}

// capMessage limits the message to maxMessageLen runes. Cutting on a rune
// boundary keeps transcripts with emoji valid UTF-8.
func capMessage(message string) string {
	runes := []rune(message)
	if len(runes) > maxMessageLen {
		runes = runes[:maxMessageLen]
	}
	return string(runes)
}
