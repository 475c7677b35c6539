package llm

// extractionPrompt instructs a vision-capable model to pull per-employee
// payroll records out of a timesheet document.
const extractionPrompt = `Extract every employee's payroll data from this timesheet document.

Return a JSON object in exactly this shape:
{"employees": [{"name": "Full Name", "regular_hours": 0, "overtime_hours": 0, "pay_rate": 0}]}

Rules:
- "name" is required for every record; copy it exactly as written.
- "regular_hours" and "overtime_hours" are the hours worked this period.
- "pay_rate" is the hourly rate in dollars. If the document does not show a
  rate for an employee, use 0.
- Use 0 for any value that is missing or illegible. Do not invent data.
- Return {"employees": []} if the document contains no employee data.`
