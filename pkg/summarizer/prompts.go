package summarizer

const summarySchema = `{
  "executive_summary": ["short bullet", ...],
  "key_insights": ["short bullet", ...],
  "risks": ["short bullet", ...],
  "action_items": ["short bullet", ...]
}`

const singleShotPrompt = `You are a document analyst. Summarize the document into JSON with exactly these fields:
` + summarySchema + `

Each entry is one short plain-prose bullet. Be specific: keep names, numbers and dates.
Use only information from the document.
Return ONLY valid JSON.`

const chunkPrompt = `You are a document analyst. You are given one excerpt of a longer document. Summarize ONLY this excerpt into JSON with exactly these fields:
` + summarySchema + `

Each entry is one short plain-prose bullet. Be specific: keep names, numbers and dates.
Do not invent information that is not in the excerpt. Any field may be an empty array if the excerpt contains nothing for it.
Return ONLY valid JSON.`
