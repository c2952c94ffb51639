package assistant

import "fmt"

// Prompt templates. Each builder is a pure function of its inputs so the
// same document and parameters always produce the same prompt string.

const summaryPromptTemplate = `Based on the following document, provide a concise summary of no more than 150 words.
Use only the supplied document content.

Document:
---
%s
---
`

const questionsPromptTemplate = `Based on the following document, generate exactly %d logic-based or comprehension-focused questions.
Each question must cover a distinct aspect of the document.
Present the questions clearly, each on a new line, starting with a number (e.g., 1., 2., 3.).

Document:
---
%s
---
`

const answerPromptTemplate = `You are a helpful assistant. Your task is to answer the user's question based *only* on the provided document content.
Do not use any external knowledge or make assumptions.
If the document does not contain the answer, say so explicitly.
Your answer must include a brief justification or reference from the document that supports your response (e.g., "As stated in paragraph 3...").

Document Content:
---
%s
---

Question: %q
`

const evaluationPromptTemplate = `You are an evaluator. Your task is to determine if the user's answer is correct based *only* on the provided document content.

You must respond with a JSON object in this exact format (no markdown, no code blocks, just raw JSON):
{
    "is_correct": true,
    "evaluation": "Your detailed evaluation and justification here"
}

OR

{
    "is_correct": false,
    "evaluation": "Your detailed evaluation and justification here"
}

Rules:
- Set "is_correct" to true only if the user's answer is factually correct and complete based on the document
- Set "is_correct" to false if the answer is wrong, incomplete, or not based on the document content
- In "evaluation", provide a brief evaluation and justification for your feedback, citing the document
- Return ONLY the JSON object, no additional text, no markdown formatting, no code blocks

Document Content:
---
%s
---

Question: %q
User's Answer: %q
`

func SummaryPrompt(text string) string {
	return fmt.Sprintf(summaryPromptTemplate, text)
}

func QuestionsPrompt(text string, numQuestions int) string {
	return fmt.Sprintf(questionsPromptTemplate, numQuestions, text)
}

func AnswerPrompt(text, question string) string {
	return fmt.Sprintf(answerPromptTemplate, text, question)
}

func EvaluationPrompt(text, question, answer string) string {
	return fmt.Sprintf(evaluationPromptTemplate, text, question, answer)
}
