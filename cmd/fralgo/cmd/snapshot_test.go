package cmd

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestRunFileSnapshots exercises a handful of representative programs end to
// end and pins their stdout with go-snaps, rather than hand-writing the
// expected string for every case as run_test.go does for the narrower
// exit-code and argument-passing assertions.
func TestRunFileSnapshots(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{
			name: "arithmetic",
			src: "Début\n" +
				"Variable a, b en Entier\n" +
				"a ← 7\n" +
				"b ← 3\n" +
				"Ecrire a + b\n" +
				"Ecrire a - b\n" +
				"Ecrire a * b\n" +
				"Ecrire a / b\n" +
				"Ecrire a % b\n" +
				"Fin\n",
		},
		{
			name: "forLoop",
			src: "Début\n" +
				"Variable i en Entier\n" +
				"Pour i ← 1 à 5\n" +
				"  Ecrire i\n" +
				"i Suivant\n" +
				"Fin\n",
		},
		{
			name: "stringConcat",
			src: "Début\n" +
				"Variable nom en Chaîne\n" +
				"nom ← \"monde\"\n" +
				"Ecrire \"bonjour \" & nom\n" +
				"Fin\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeAlgoFile(t, dir, tc.name+".algo", tc.src)

			out, err := captureStdout(t, func() error {
				return runFile(path, nil)
			})
			if err != nil {
				t.Fatalf("runFile: %v", err)
			}
			snaps.MatchSnapshot(t, out)
		})
	}
}
