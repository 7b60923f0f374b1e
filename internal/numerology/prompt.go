package numerology

import "fmt"

// GenerationRequest is the fully assembled parameter set for one call
// to the text-generation service. Built once, consumed once.
type GenerationRequest struct {
	LifeNumber int
	Gender     string
	Age        int
	Question   string
	Focus      string
	Prompt     string
}

// BuildPrompt resolves the focus theme for the given age and composes
// the generation instruction around it.
func BuildPrompt(lifeNumber int, gender string, age int, question string) *GenerationRequest {
	focus := Classify(age)

	prompt := fmt.Sprintf(`You are a seasoned life-number reader. Please generate a detailed life-number reading report for the user, with the following requirements:

**User information:**
- Life number: %d
- Gender: %s
- Age: %d
- Current question: %s
- Reading focus: %s

**Report requirements:**
1. At least 5000 words.
2. Clear structure, covering the following sections:
   - Life number analysis (the meaning of %d, personality traits, gifts and mission)
   - Age-stage guidance (specific advice for someone aged %d)
   - A targeted answer to the stated question
   - Action suggestions and reminders
3. Warm, professional and insightful language.
4. Flowing prose, avoiding excessive lists.

Please begin the report:`,
		lifeNumber, gender, age, question, focus, lifeNumber, age)

	return &GenerationRequest{
		LifeNumber: lifeNumber,
		Gender:     gender,
		Age:        age,
		Question:   question,
		Focus:      focus,
		Prompt:     prompt,
	}
}
