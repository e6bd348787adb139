// File path: internal/formfill/resolver_test.go
package formfill

import "testing"

func TestResolve(t *testing.T) {
	cases := []struct {
		name string
		want Role
	}{
		// Given name wins over the embedded "nom".
		{"Prenom", RoleGivenName},
		{"prenom_enfant", RoleGivenName},
		{"Prénom de l'enfant", RoleGivenName},

		// Compound surname fields.
		{"NomFamille", RoleSurname},
		{"nom_de_naissance", RoleSurname},
		{"Nom d'usage", RoleSurname},
		{"nom_page2", RoleSurname},
		{"nom p2", RoleSurname},

		// Bare "nom" only as the whole field name.
		{"nom", RoleSurname},
		{"NOM", RoleSurname},
		{"Nom du professeur", RoleNone},
		{"Nom de l'établissement", RoleNone},

		// Birthplace needs both tokens.
		{"lieu_de_naissance", RoleBirthplace},
		{"Lieu de naissance", RoleBirthplace},
		{"lieu", RoleNone},

		// Legal representative, both phrasings.
		{"representant_legal", RoleLegalRep},
		{"Représentant légal", RoleLegalRep},
		{"responsable_legal_1", RoleLegalRep},
		{"responsable", RoleNone},

		{"", RoleNone},
		{"champ_libre_3", RoleNone},
	}
	for _, tc := range cases {
		if got := Resolve(tc.name); got != tc.want {
			t.Errorf("Resolve(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

// Field names arrive with two distinct corruptions of the same accented
// characters depending on the tool that produced the form.
func TestResolveMojibake(t *testing.T) {
	cases := []struct {
		name string
		want Role
	}{
		{"PrÃ©nom", RoleGivenName}, // UTF-8 read as Latin-1
		{"Pr├®nom", RoleGivenName}, // UTF-8 read as a DOS codepage
		{"reprÃ©sentant lÃ©gal", RoleLegalRep},
	}
	for _, tc := range cases {
		if got := Resolve(tc.name); got != tc.want {
			t.Errorf("Resolve(%q) = %q, want %q (normalized %q)", tc.name, got, tc.want, Normalize(tc.name))
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"NomFamille", "nomfamille"},
		{"Nom_de-naissance", "nom de naissance"},
		{"  Lieu   de Naissance ", "lieu de naissance"},
		{"Prénom[1]", "prenom 1"},
		{"PrÃ©nom", "prenom"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
