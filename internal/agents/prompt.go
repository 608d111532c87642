package agents

import (
	"fmt"
	"strings"
)

// ciddpStandard is the five-axis scoring standard the evaluator is
// instructed to follow, including the exact line format the scorecard
// parser expects.
const ciddpStandard = `
Evaluation Standard (Points 1-100):
1. Clarity (C): Directness and simplicity, avoiding complexity and redundancy.
2. Integrity (I): Completeness and systematic coverage of both knowledge points and exercises.
3. Depth (D): Ability to inspire deep thinking and facilitate understanding of underlying connections.
4. Practicality (P): Practical application value of examples to solve real-life problems.
5. Pertinence (Pe): Adaptability to the student's Skill-Tree levels and learning needs.
Workflow: Output your final verdict in the following exact format:
"[C]: [points]; [short analyzes]"
"[I]: [points]; [short analyzes]"
"[D]: [points]; [short analyzes]"
"[P]: [points]; [short analyzes]"
"[Pe]: [points]; [short analyzes]"
Followed by a summary of advantages and disadvantages.
`

func evaluatorSystemPrompt(profileBlock string) string {
	return fmt.Sprintf(`Role: You are an impartial evaluator, experienced in educational content analysis and instructional design evaluation. You will assess a Lesson Plan based on the student's Skill-Tree and the 5-D CIDDP standard.
%s%sAlso, provide a summary of the overall advantages ('Advantage:') and disadvantages ('Disadvantage:') of the lesson plan.`, profileBlock, ciddpStandard)
}

func buildEvaluatorUserMessage(plan string) string {
	var b strings.Builder

	b.WriteString("Lesson Plan to Evaluate:\n---\n")
	b.WriteString(plan)
	b.WriteString("\n---\n")
	b.WriteString("Perform the 5-D evaluation (C, I, D, P, Pe). Then, list key overall advantages and disadvantages of this plan for the student. ")
	b.WriteString("Output MUST start with the 5-D scores in the exact format, followed by Advantages and Disadvantages.")

	return b.String()
}

func mistakePredictionSystemPrompt(profileBlock string) string {
	return fmt.Sprintf(`Role: You are a Question Analyst agent. Your task is to analyze the provided question and predict the top 3 common error-prone points (mistakes) this student would likely make.
The student's background is: %s
Output the mistakes in order of probability from largest to smallest.
Format each mistake as: 'Common Mistake [Mistake #]: [Detailed Description of Mistake] ([Estimated Probability %%])'.`, profileBlock)
}

func buildMistakePredictionUserMessage(question string) string {
	return fmt.Sprintf("Analyze the following example question and predict the top 3 common student mistakes:\nQuestion: %s", question)
}

const misconceptionSystemPrompt = `You are an education analyst. You detect and list common student mistakes and misconceptions for the concepts covered by a lesson plan.`

func buildMisconceptionUserMessage(plan string) string {
	var b strings.Builder

	b.WriteString("Analyze the following lesson plan to identify 2-3 common beginner mistakes or misconceptions for the primary concepts mentioned in the plan.\n\n")
	b.WriteString("Format the output ONLY as a JSON object where keys are the concepts (e.g., \"Paging\") and the values are a list of the common misconceptions.\n\n")
	b.WriteString("Lesson Plan:\n---\n")
	b.WriteString(plan)
	b.WriteString("\n---")

	return b.String()
}

func draftSystemPrompt(topic, profileBlock string) string {
	return fmt.Sprintf(`Role: You are a professional instructional design expert. Your task is to create a high-quality, concise Lesson Plan for the topic '%s', tailored to the student: %s.
The Lesson Plan must contain EXACTLY two parts: 1. Part1: Explanation of knowledge points. 2. Part2: Exercise explanation. Limited to about 300 words.`, topic, profileBlock)
}

func buildDraftUserMessage(focus string) string {
	return fmt.Sprintf("Generate the initial instructional design based on the topic and student profile. Focus: %s", focus)
}

func optimizeSystemPrompt(profileBlock, insertion string) string {
	return fmt.Sprintf(`Role: You are a Lesson Plan Optimizer agent. Your goal is to maximize the evaluation score. The plan must be tailored to the student: %s.
Optimization task: Improve the previous Lesson Plan based on the feedback. %s
Crucially, only output the full, revised lesson plan text, without any introductory or concluding remarks.`, profileBlock, insertion)
}

func buildOptimizeUserMessage(plan, feedback string) string {
	var b strings.Builder

	b.WriteString("Previous Lesson Plan:\n---\n")
	b.WriteString(plan)
	b.WriteString("\n---\nEvaluator Feedback (F):\n---\n")
	b.WriteString(feedback)
	b.WriteString("\n---\n")
	b.WriteString("Generate a NEW, optimized Lesson Plan (lp_new). It MUST address the specific disadvantages and integrate the common student mistakes from the Analyst Insertion.")

	return b.String()
}

// BuildInsertion renders the analyst's mistake prediction as the block
// the optimizer is asked to weave into the next revision.
func BuildInsertion(question, mistakes string) string {
	var b strings.Builder

	b.WriteString("\n--- ANALYST AGENT INSERTION ---\n")
	fmt.Fprintf(&b, "The core example question to be explained in Part2 is: '%s'\n", question)
	b.WriteString("Common Student Mistakes for this question (to be integrated into explanation):\n")
	b.WriteString(mistakes)
	b.WriteString("\n-----------------------------------\n")

	return b.String()
}

const quizSystemPrompt = `You are a subject examiner writing short concept-check questions with concise reference answers.`

func buildQuizUserMessage(topics []string, n int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d concept-check questions about the following topics: %s.\n", n, strings.Join(topics, ", "))
	b.WriteString("For each question, also provide the correct, concise answer.\n")
	b.WriteString("Format the output ONLY as a JSON object with a \"questions\" key holding a list of objects, each with \"question\" and \"answer\" keys.")

	return b.String()
}

const gradingSystemPrompt = `You are an auto-grader. Compare the User Answer against the Correct Answer. Determine if the user's answer is conceptually correct (even if worded differently). Output ONLY 'CORRECT' or 'INCORRECT'.`

func buildGradingUserMessage(userAnswer, referenceAnswer string) string {
	return fmt.Sprintf("Correct Answer: %s\nUser Answer: %s", referenceAnswer, userAnswer)
}
