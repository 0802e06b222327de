package sanitize

import (
	"regexp"
	"strings"

	"github.com/xivix/landing/backend/internal/model/persona"
)

// Rule rewrites model output. Rules run in order; each one assumes the
// previous rules already ran.
type Rule func(string) string

// Pipeline applies an ordered list of rules to raw model output. The model
// freely invents placeholders, links and phone numbers; the pipeline
// guarantees only the verified contact data survives.
type Pipeline struct {
	rules []Rule
}

// Apply folds the input through every rule. Safe on empty input.
func (p Pipeline) Apply(text string) string {
	for _, rule := range p.rules {
		text = rule(text)
	}
	return text
}

// NewLoose builds the pipeline without the footer and line-level rules.
// Applying it twice yields the same output as applying it once.
func NewLoose(contact persona.Contact) Pipeline {
	return Pipeline{rules: []Rule{
		unwrapMarkdownLinks,
		stripBracketSpans,
		stripURLs,
		normalizeWhitespace,
		normalizePhones(contact),
		collapseDuplicateContact(contact),
	}}
}

// NewStrict builds the full pipeline served to users: it additionally drops
// pointer-emoji lines, rewrites vague link referents to the real button, and
// always closes with the verified contact block. The footer makes it
// non-idempotent, so it runs exactly once per reply.
func NewStrict(contact persona.Contact) Pipeline {
	return Pipeline{rules: []Rule{
		stripBracketSpans,
		stripURLs,
		normalizeWhitespace,
		normalizePhones(contact),
		collapseDuplicateContact(contact),
		dropPointerLines,
		rewriteReferents(contact),
		normalizeWhitespace,
		appendContactFooter(contact),
	}}
}

var (
	reMarkdownLink = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)
	reBracketSpan  = regexp.MustCompile(`\[[^\]]*\]`)
	reURL          = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+.-]*://[^\s]+`)
	rePhone        = regexp.MustCompile(`\d{2,3}[-. ]\d{3,4}[-. ]\d{4}`)
	reDigitRun     = regexp.MustCompile(`\d+(?:[-. ]\d+)+`)
	reSpaceRun     = regexp.MustCompile(`[ \t]{2,}`)
	reBlankLines   = regexp.MustCompile(`\n{3,}`)
)

// unwrapMarkdownLinks keeps the visible label and discards the URL. It must
// run before the generic bracket strip, which would eat the label whole.
func unwrapMarkdownLinks(s string) string {
	return reMarkdownLink.ReplaceAllString(s, "$1")
}

// stripBracketSpans removes template placeholders like "[전화번호]" that the
// model echoes verbatim.
func stripBracketSpans(s string) string {
	return reBracketSpan.ReplaceAllString(s, "")
}

func stripURLs(s string) string {
	return reURL.ReplaceAllString(s, "")
}

// normalizePhones rewrites every phone-shaped token to the one verified
// number. Deliberately broad: an order-ID-looking sequence gets rewritten
// too, but no invented number ever survives. Each match is widened to the
// whole surrounding run of separator-joined digit groups, so the inserted
// number never sits next to digit residue from a partial match. It must run
// after whitespace collapsing, which can itself mint a phone-shaped token
// out of a multi-space run.
func normalizePhones(contact persona.Contact) Rule {
	return func(s string) string {
		return reDigitRun.ReplaceAllStringFunc(s, func(run string) string {
			if !rePhone.MatchString(run) {
				return run
			}
			return contact.Phone
		})
	}
}

// collapseDuplicateContact folds runs of the canonical number left behind by
// normalization into a single occurrence.
func collapseDuplicateContact(contact persona.Contact) Rule {
	quoted := regexp.QuoteMeta(contact.Phone)
	re := regexp.MustCompile(`(` + quoted + `)(?:[\s,]*` + quoted + `)+`)
	return func(s string) string {
		return re.ReplaceAllString(s, "$1")
	}
}

// pointerEmojis mark lines the model fabricates around links ("👇 여기로").
var pointerEmojis = []string{"👇", "👉", "👆", "👈", "☝", "⬇"}

func dropPointerLines(s string) string {
	lines := strings.Split(s, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if hasPointerEmoji(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func hasPointerEmoji(line string) bool {
	for _, emoji := range pointerEmojis {
		if strings.Contains(line, emoji) {
			return true
		}
	}
	return false
}

// rewriteReferents replaces "click the link below"-style phrases, which point
// at nothing after link stripping, with the concrete button instruction.
func rewriteReferents(contact persona.Contact) Rule {
	instruction := contact.CTAInstruction()
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`(아래|밑)(의|에\s*있는)?\s*링크[^\n.!?]*[.!?]?`),
		regexp.MustCompile(`링크(를|을)?\s*(클릭|눌러|확인|통해)[^\n.!?]*[.!?]?`),
		regexp.MustCompile(`여기(를|에서)?\s*(클릭|눌러|터치)[^\n.!?]*[.!?]?`),
	}
	return func(s string) string {
		for _, re := range patterns {
			s = re.ReplaceAllString(s, instruction)
		}
		return s
	}
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = reSpaceRun.ReplaceAllString(s, " ")
	s = reBlankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// appendContactFooter closes every reply with the verified contact block so
// real contact information surfaces at least once.
func appendContactFooter(contact persona.Contact) Rule {
	return func(s string) string {
		footer := contact.CTAInstruction() + "\n전화 문의: " + contact.Phone
		if s == "" {
			return footer
		}
		return s + "\n\n" + footer
	}
}
