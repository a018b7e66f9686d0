// Copyright © 2024 The ELPS authors

package lang_test

import (
	"testing"

	"github.com/luthersystems/lists/seqtest"
)

func TestDatatypes(t *testing.T) {
	tests := seqtest.TestSuite{
		{"complex", seqtest.TestSequence{
			{`(define z (complex 1.5 2.5))`, `z`, ""},
			{`z`, `#<complex 1.5 + 2.5i>`, ""},
			{`(complex-add z (complex 1 -1))`, `#<complex 2.5 + 1.5i>`, ""},
			{`(complex-sub (complex 1 1) (complex 0 3))`, `#<complex 1 - 2i>`, ""},
			{`(complex-re z)`, `1.5`, ""},
			{`(complex-im z)`, `2.5`, ""},
			{`(= (complex 1 2) (complex 1 2))`, `true`, ""},
			{`(complex-add z 1)`, `complex-add: type-error: argument 2: expected complex, got int`, ""},
		}},
		{"color", seqtest.TestSequence{
			{`(color "Red")`, `#<color Red>`, ""},
			{`(translate (color "Green"))`, `"Grun"`, ""},
			{`(map translate (map color ["Red" "Blue"]))`, `["Rot" "Blau"]`, ""},
			{`(color "Pink")`, `color: invalid-argument: name "Pink"`, ""},
		}},
		{"person", seqtest.TestSequence{
			{`(define julia (person "Julia" "Smith" 25 "Female"))`, `julia`, ""},
			{`julia`, `#<person Julia Smith (25, Female)>`, ""},
			{`(fit-for-service? julia)`, `false`, ""},
			{`(minor? julia)`, `false`, ""},
			{`(fit-for-service? (person "Tom" "Jones" 18 (sex "Male")))`, `true`, ""},
			{`(minor? (person "Tim" "Jones" 17 "Male"))`, `true`, ""},
			{`(person "" "Smith" 25 "Female")`, `person: invalid-argument: name ""`, ""},
			{`(person "Ann" "Smith" -1 "Female")`, `person: invalid-argument: age -1`, ""},
			{`(person "Ann" "Smith" 30 "Other")`, `sex: invalid-argument: name "Other"`, ""},
			{`(minor? (color "Red"))`, `minor?: type-error: argument 1: expected person, got native`, ""},
		}},
		{"filter records", seqtest.TestSequence{
			{`(define people [(person "A" "X" 30 "Male") (person "B" "Y" 12 "Female") (person "C" "Z" 40 "Female")])`, `people`, ""},
			{`(length (filter minor? people))`, `1`, ""},
			{`(length (filter fit-for-service? people))`, `1`, ""},
		}},
	}
	seqtest.RunTestSuite(t, tests)
}
