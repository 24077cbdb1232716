package domain

import "fmt"

// Texts the assistant shows or appends to the transcript
const (
	MsgWelcome = "Welcome to TalentScout! Thank you for joining us today." +
		" This interview will help us better understand your skills, experience, and how you can contribute to our team." +
		" We’ll ask you a series of questions related to your background and the tech stack you work with." +
		" Please fill in your details to begin."

	MsgDetailsSaved     = "Candidate data saved successfully!"
	MsgDetailsSubmitted = "Personal details submitted successfully!"
	MsgChooseStack      = "Please select your tech stack and click 'Start Interview':"
	MsgInterviewDone    = "Interview Completed!"

	MsgFillAllDetails   = "Please fill in all details."
	MsgSelectTechnology = "Please select at least one technology"
	MsgFallback         = "I'm sorry, I didn't understand that. Could you rephrase?"

	MsgFarewell = "Thank you for chatting. Goodbye and good luck! 👋"

	MsgCompletion = "**Thank you for completing the interview!** We appreciate the time and effort you put into your interview today. " +
		"Our team will review your responses and qualifications, and we will notify you about the next steps in the hiring process soon. " +
		"Thank you again, and we look forward to potentially working with you!"
)

// GreetingMessage opens the interview
func GreetingMessage(name string, stack []TechID) string {
	return fmt.Sprintf("Hi %s! Welcome to TalentScout. I'll be asking a few questions based on your tech stack: %s.",
		name, JoinTechIDs(stack))
}

// AnswerPrompt labels the answer box for question n (1-based) of total
func AnswerPrompt(n, total int) string {
	return fmt.Sprintf("Your answer to Q%d/%d (type 'exit' to end):", n, total)
}
