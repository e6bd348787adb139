// File path: internal/formfill/resolver.go
package formfill

import (
	"strings"
)

// Role is the semantic meaning assigned to a form field. A field resolves to
// at most one role; unmatched fields resolve to RoleNone and are left
// untouched.
type Role string

const (
	RoleNone       Role = ""
	RoleGivenName  Role = "given_name"
	RoleSurname    Role = "surname"
	RoleBirthplace Role = "birthplace"
	RoleLegalRep   Role = "legal_representative"
)

// rule is one entry of the resolution table. A name matches when it contains
// every token of all and at least one token of any (when any is non-empty),
// or, when exact is set, equals it after normalization.
type rule struct {
	role  Role
	all   []string
	any   []string
	exact string
}

// rules are evaluated in order and the first match wins, so specificity is
// fixed here, not arbitrary: "prenom" contains "nom" and must be tested
// before every surname rule. The surname rules are deliberately narrow on the
// bare token because the form's authors reused "nom" for unrelated fields
// ("Nom du professeur", "Nom de l'établissement"): a bare "nom" only matches
// when it is the entire field name, while compound names stay permissive.
var rules = []rule{
	{role: RoleGivenName, all: []string{"prenom"}},
	{role: RoleBirthplace, all: []string{"lieu", "naissance"}},
	{role: RoleLegalRep, all: []string{"representant"}},
	{role: RoleLegalRep, all: []string{"responsable", "legal"}},
	{role: RoleSurname, all: []string{"nom"}, any: []string{"naissance", "usage", "famille", "page2", "page 2", "p2"}},
	{role: RoleSurname, exact: "nom"},
}

// Resolve classifies a raw field name into its semantic role.
func Resolve(name string) Role {
	normalized := Normalize(name)
	if normalized == "" {
		return RoleNone
	}
	for _, r := range rules {
		if r.matches(normalized) {
			return r.role
		}
	}
	return RoleNone
}

func (r rule) matches(normalized string) bool {
	if r.exact != "" {
		return normalized == r.exact
	}
	for _, token := range r.all {
		if !strings.Contains(normalized, token) {
			return false
		}
	}
	if len(r.any) == 0 {
		return true
	}
	for _, token := range r.any {
		if strings.Contains(normalized, token) {
			return true
		}
	}
	return false
}

// mojibake repairs the common corrupted renderings of French accented
// characters before folding: UTF-8 bytes read as Latin-1 ("Ã©" for é) and
// UTF-8 bytes read as a DOS codepage ("├®" for é). The form arrives with
// either depending on the tool that produced it.
var mojibake = strings.NewReplacer(
	"Ã©", "e", "Ã¨", "e", "Ãª", "e", "Ã«", "e",
	"Ã ", "a", "Ã¢", "a", "Ã¤", "a",
	"Ã®", "i", "Ã¯", "i",
	"Ã´", "o", "Ã¶", "o",
	"Ã¹", "u", "Ã»", "u", "Ã¼", "u",
	"Ã§", "c",
	"Ã‰", "e", "Ã€", "a", "Ã‡", "c",
	"├®", "e", "├¿", "e", "├¬", "e",
	"├а", "a", "├в", "a",
	"├´", "o", "├╗", "u", "├з", "c",
)

// accentFold maps accented runes to their ASCII base; any other non-ASCII
// rune (leftover mojibake glyphs included) is dropped.
func accentFold(r rune) rune {
	switch r {
	case 'à', 'â', 'ä', 'á':
		return 'a'
	case 'é', 'è', 'ê', 'ë':
		return 'e'
	case 'î', 'ï', 'í':
		return 'i'
	case 'ô', 'ö', 'ó':
		return 'o'
	case 'ù', 'û', 'ü', 'ú':
		return 'u'
	case 'ç':
		return 'c'
	}
	if r > 127 {
		return -1
	}
	return r
}

// Normalize lowers, de-accents and de-garbles a raw field name, then
// collapses separators so that token tests see a canonical form.
func Normalize(name string) string {
	s := mojibake.Replace(name)
	s = strings.ToLower(s)
	s = strings.Map(accentFold, s)
	for _, sep := range []string{"_", "-", ".", "/", "[", "]", "(", ")"} {
		s = strings.ReplaceAll(s, sep, " ")
	}
	s = strings.Join(strings.Fields(s), " ")
	return s
}
