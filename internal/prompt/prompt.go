// Package prompt builds the instructions sent to the completion service.
package prompt

import "fmt"

// DiagramKeyword is the literal every generated diagram must start with.
const DiagramKeyword = "erDiagram"

// Mermaid relationship cardinality tokens.
const (
	OneToOne         = "||--||"
	OneToMany        = "||--o{"
	IdentifyingMany  = "}|--o{"
	ManyToMany       = "}o--o{"
	ZeroOrOneToOne   = "|o--||"
	ZeroOrOneToMany  = "|o--o{"
	primaryKeyMarker = `"PK"`
	foreignKeyMarker = `"FK"`
)

var systemPrompt = fmt.Sprintf(`
You are an expert database designer AI. Your task is to analyze a natural language description of a database schema provided by the user and generate a corresponding Entity-Relationship (ER) diagram using Mermaid.js syntax.

Please generate the ER diagram using Mermaid.js syntax with the following structure:
- Use `+"`%[1]s`"+` as the starting keyword.
- Define entities with their attributes inside curly braces.
- Use `+"`%[2]s`"+` and `+"`%[3]s`"+` in quotes to mark primary and foreign keys.
- Define relationships between entities with proper cardinality and labels.

Follow these steps precisely:
1. **Identify Entities:** Determine the main entities (tables) mentioned in the description.
2. **Identify Attributes:** For each entity, list its attributes (columns). If possible, infer data types (like int, string, datetime) and identify potential primary keys (PK) and foreign keys (FK). Mark them clearly using the format `+"`%[2]s`"+` or `+"`%[3]s`"+` in quotes.
3. **Identify Relationships:** Determine the relationships between entities. Specify the cardinality (one-to-one, one-to-many, many-to-many) using Mermaid syntax:
    * One-to-One: `+"`%[4]s`"+`
    * One-to-Many: `+"`%[5]s`"+` (or `+"`%[6]s`"+` if identifying)
    * Many-to-Many: `+"`%[7]s`"+`
    * Zero/One-to-One: `+"`%[8]s`"+`
    * Zero/One-to-Many: `+"`%[9]s`"+`
    * Use relationship labels to describe the connection (e.g., `+"`places`, `contains`"+`).
4. **Format Output:** Generate *only* the Mermaid.js code block for the ER diagram.
    * Start the output *exactly* with `+"`%[1]s`"+`.
    * Define entities using the `+"`ENTITY { ... }`"+` syntax.
    * Define attributes within the curly braces, one per line, including type and PK/FK markers in quotes.
    * Define relationships *after* the entity definitions using the format `+"`ENTITY1 <relationship> ENTITY2 : label`"+`.
    * Do NOT include any introductory text, explanations, apologies, markdown formatting (like `+"```mermaid ... ```"+`), or closing remarks in your response. Only the raw Mermaid code is allowed.

Example Output Format:
%[1]s
    ENTITY1 %[5]s ENTITY2 : relationship_label
    ENTITY2 %[4]s ENTITY3 : another_relationship_label

    ENTITY1 {
        int attribute1 %[2]s
        string attribute2
        datetime attribute3 %[3]s
    }
    ENTITY2 {
        int attribute1 %[2]s
        string attribute2
    }
    ENTITY3 {
        int attribute1 %[2]s
        string attribute2
    }
`,
	DiagramKeyword,
	primaryKeyMarker,
	foreignKeyMarker,
	OneToOne,
	OneToMany,
	IdentifyingMany,
	ManyToMany,
	ZeroOrOneToOne,
	ZeroOrOneToMany,
)

// System returns the fixed instruction block.
func System() string {
	return systemPrompt
}

// User embeds the caller's description as is. It is not escaped, so a crafted
// description can try to override the system instruction.
func User(description string) string {
	return "\nPlease generate the Mermaid ER diagram code based on the following database description:\n\n\"" + description + "\"\n"
}
