package analysis

import "regexp"

// The detectors are data-driven: each vocabulary is a flat table of
// (label, pattern) pairs evaluated uniformly, so extending a table never
// touches the matching logic.

type clausePattern struct {
	clauseType string
	re         *regexp.Regexp
}

// defaultClausePatterns anchors the 13 drafting keywords common in
// Indian legal documents. The spans are greedy to the next clause
// boundary (; or .); a clause with no terminating punctuation may
// over-match, which is an accepted recall-over-precision tradeoff.
var defaultClausePatterns = []struct {
	clauseType string
	pattern    string
}{
	{"WHEREAS", `WHEREAS\s+[^;]+;?`},
	{"PROVIDED", `PROVIDED\s+(?:THAT|that)\s+[^;.]+[;.]?`},
	{"NOTWITHSTANDING", `NOTWITHSTANDING\s+[^;.]+[;.]?`},
	{"SUBJECT TO", `SUBJECT\s+TO\s+[^;.]+[;.]?`},
	{"IN WITNESS WHEREOF", `IN\s+WITNESS\s+WHEREOF[^.]+\.`},
	{"THEREFORE", `THEREFORE[^;.]+[;.]?`},
	{"AGREEMENT", `(?:THIS\s+)?AGREEMENT\s+[^;.]+[;.]?`},
	{"PARTIES", `(?:THE\s+)?PARTIES?\s+(?:HERETO|TO\s+THIS)[^;.]+[;.]?`},
	{"CONSIDERATION", `CONSIDERATION\s+[^;.]+[;.]?`},
	{"INDEMNITY", `INDEMNIT(?:Y|IES)\s+[^;.]+[;.]?`},
	{"TERMINATION", `TERMINATION\s+[^;.]+[;.]?`},
	{"JURISDICTION", `JURISDICTION\s+[^;.]+[;.]?`},
	{"FORCE MAJEURE", `FORCE\s+MAJEURE\s+[^;.]+[;.]?`},
}

// defaultActPatterns names the Acts most commonly cited in Indian legal
// documents, each optionally suffixed with a year. The final entry is a
// generic capitalized-phrase fallback that deliberately over-matches.
var defaultActPatterns = []string{
	`(?i)Indian\s+Penal\s+Code(?:\s*,?\s*\d{4})?`,
	`(?i)Code\s+of\s+Criminal\s+Procedure(?:\s*,?\s*\d{4})?`,
	`(?i)Code\s+of\s+Civil\s+Procedure(?:\s*,?\s*\d{4})?`,
	`(?i)Indian\s+Contract\s+Act(?:\s*,?\s*\d{4})?`,
	`(?i)Transfer\s+of\s+Property\s+Act(?:\s*,?\s*\d{4})?`,
	`(?i)Companies\s+Act(?:\s*,?\s*\d{4})?`,
	`(?i)Income\s+Tax\s+Act(?:\s*,?\s*\d{4})?`,
	`(?i)Goods\s+and\s+Services\s+Tax\s+Act(?:\s*,?\s*\d{4})?`,
	`(?i)Consumer\s+Protection\s+Act(?:\s*,?\s*\d{4})?`,
	`(?i)Information\s+Technology\s+Act(?:\s*,?\s*\d{4})?`,
	`(?i)Negotiable\s+Instruments\s+Act(?:\s*,?\s*\d{4})?`,
	`(?i)Arbitration\s+and\s+Conciliation\s+Act(?:\s*,?\s*\d{4})?`,
	`(?i)Constitution\s+of\s+India`,
	`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+Act(?:\s*,?\s*\d{4})?`,
}

// sectionCitationPattern matches "Section 10", "Sec. 299(a)", "s. 4 of
// the ..." and the section sign.
const sectionCitationPattern = `(?i)(?:Section|Sec\.|s\.|§)\s*\d+(?:\s*\([a-z0-9]+\))?(?:\s+(?:of|to)\s+[^.;]+)?`

// defaultDatePatterns covers numeric slash/dash dates in both orders and
// month-name dates in both orders.
var defaultDatePatterns = []string{
	`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`,
	`\d{1,2}\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}`,
	`(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}`,
	`\d{4}[/-]\d{1,2}[/-]\d{1,2}`,
}
