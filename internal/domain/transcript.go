package domain

// Speaker identifies who wrote a transcript entry
type Speaker string

const (
	SpeakerAI   Speaker = "AI"
	SpeakerUser Speaker = "User"
)

// TranscriptEntry is one line of the interview conversation
type TranscriptEntry struct {
	Speaker Speaker `json:"speaker"`
	Message string  `json:"message"`
}

// RenderTranscript formats entries as markdown lines, "**You:** ..." for the
// candidate and "**AI:** ..." for the assistant
func RenderTranscript(entries []TranscriptEntry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Speaker == SpeakerUser {
			lines = append(lines, "**You:** "+e.Message)
		} else {
			lines = append(lines, "**AI:** "+e.Message)
		}
	}
	return lines
}
