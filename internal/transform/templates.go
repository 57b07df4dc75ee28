package transform

import "errors"

// Built-in template names.
const (
	TemplatePlain     = "plain"
	TemplateContext   = "context"
	TemplateQuestions = "questions"
)

var ErrUnknownTemplate = errors.New("unknown prompt template")

const systemRole = `<system_role>
You are a professional editor who turns raw speech transcripts into clean, readable records of a conversation.
Rewrite the transcript below as an organized dialogue, taking the background information into account.

Example of the expected shape:
**Speaker A** : what they said

**Speaker B** : what they said
</system_role>

<background_info>
{{.background}}
</background_info>
`

const formattingRules = `- Keep the content of the transcript as accurate as possible
- Turn spoken language into natural written language
- Tidy up redundant phrasing and repetition
- Keep the context and build logical, readable paragraphs
- Use the background information to understand context and technical terms
- Clarify ambiguous expressions using the background information
- Do not change the intent or claims of the original
- Do not add content; use only the information given
- Write in the language of the transcript
- Do not create headings such as "# ..."; render the flow of the conversation as it is
- Output only the dialogue record, with no preamble such as "Here is the rewritten transcript:"`

const plainTemplate = systemRole + `
<input_transcript>
{{.chunk}}
</input_transcript>

<processing_instructions>
` + formattingRules + `
</processing_instructions>
`

const contextTemplate = systemRole + `
<previous_content>
{{.previous_result}}
</previous_content>

<input_transcript>
{{.chunk}}
</input_transcript>

<processing_instructions>
- Format the new chunk so that it stays consistent with the previous content
- Avoid repeating anything the previous content already covers
- Spell speaker names and titles exactly as the previous content does
- Make the new text read as a natural continuation of the previous content
- Speaker separation may be inaccurate; when the context shows a different speaker, correct it
` + formattingRules + `
</processing_instructions>
`

const questionsTemplate = `<system_role>
You are an expert at analysing transcripts and spotting what is needed to understand them.
Read the transcript below and list the questions whose answers would make the conversation easier to understand.
</system_role>

<input_transcript>
{{.transcript}}
</input_transcript>

<processing_instructions>
- Pick out unclear terms, abbreviations and jargon
- Find proper nouns whose relationships or roles are unclear
- Find points where the background of the conversation is missing
- Note where the identity or role of a speaker is unclear
- Note where the intent or purpose of a remark is unclear
- Write 5 to 10 questions as a markdown bullet list, most important first
- Write in the language of the transcript
- Output only the list, with no preamble
</processing_instructions>
`
