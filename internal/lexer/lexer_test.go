package lexer

import "testing"

func TestNextToken(t *testing.T) {
	input := `Variable x en Entier
x ← x + 10`

	tests := []struct {
		expectedLiteral string
		expectedType    TokenType
	}{
		{"Variable", VARIABLE},
		{"x", IDENT},
		{"en", EN},
		{"Entier", ENTIER},
		{"\n", NEWLINE},
		{"x", IDENT},
		{"←", ASSIGN},
		{"x", IDENT},
		{"+", PLUS},
		{"10", INT},
		{"", EOF},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestArrowAssignAlias(t *testing.T) {
	l := New("<-")
	tok := l.NextToken()
	if tok.Type != ASSIGN || tok.Literal != "←" {
		t.Fatalf("got %v %q, want ASSIGN ←", tok.Type, tok.Literal)
	}
}

func TestKeywords(t *testing.T) {
	input := `TantQue FinTantQue Pour Suivant Si Alors Sinon SinonSi FinSi
Fonction FinFonction Procédure FinProcédure Retourne Début Fin`

	tests := []TokenType{
		TANTQUE, FINTANTQUE, POUR, SUIVANT, SI, ALORS, SINON, SINONSI, FINSI, NEWLINE,
		FONCTION, FINFONCTION, PROCEDURE, FINPROCEDURE, RETOURNE, DEBUT, FIN,
	}

	l := New(input)
	for i, want := range tests {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q (literal=%q)", i, want, tok.Type, tok.Literal)
		}
	}
}

func TestAllKeywordsRecognized(t *testing.T) {
	for lit := range keywords {
		t.Run(lit, func(t *testing.T) {
			l := New(lit)
			tok := l.NextToken()
			if tok.Type == IDENT {
				t.Fatalf("keyword %q was tokenized as IDENT", lit)
			}
			if !tok.Type.IsKeyword() && !tok.Type.IsLiteral() {
				t.Fatalf("keyword %q not recognized as keyword or literal, got %q", lit, tok.Type)
			}
		})
	}
}

func TestOperators(t *testing.T) {
	input := `+ - * / % ^ & = <> > < >= <= ( ) [ ] , . : \`
	tests := []TokenType{
		PLUS, MINUS, STAR, SLASH, PERCENT, CARET, AMP, EQ, NEQ, GT, LT, GE, LE,
		LPAREN, RPAREN, LBRACK, RBRACK, COMMA, DOT, COLON, BACKSLASH, EOF,
	}
	l := New(input)
	for i, want := range tests {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q (literal=%q)", i, want, tok.Type, tok.Literal)
		}
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input       string
		expType     TokenType
		expLiteral  string
	}{
		{"42", INT, "42"},
		{"3.14", FLOAT, "3.14"},
		{"0", INT, "0"},
		{"10.", INT, "10"}, // trailing dot with no digit after is not part of the number
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != tt.expType || tok.Literal != tt.expLiteral {
			t.Fatalf("input %q: got %q %q, want %q %q", tt.input, tok.Type, tok.Literal, tt.expType, tt.expLiteral)
		}
	}
}

func TestStringLiteralsAndEscapes(t *testing.T) {
	l := New(`"Bonjour\nle monde" 'simple'`)
	tok := l.NextToken()
	if tok.Type != STRING || tok.Literal != "Bonjour\nle monde" {
		t.Fatalf("got %q %q", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != STRING || tok.Literal != "simple" {
		t.Fatalf("got %q %q", tok.Type, tok.Literal)
	}
}

func TestUnterminatedStringIsIllegalInFileMode(t *testing.T) {
	l := New(`"no closing quote`)
	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("got %q, want ILLEGAL", tok.Type)
	}
}

func TestUnterminatedStringRecordedInInteractiveMode(t *testing.T) {
	l := New(`"no closing quote`)
	l.Interactive = true
	tok := l.NextToken()
	if tok.Type != EOF {
		t.Fatalf("got %q, want EOF after skipping the bad string", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1", len(l.Errors()))
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	input := `x ← 1 # ceci est un commentaire
y ← 2`
	l := New(input)
	var lits []string
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
		lits = append(lits, tok.Literal)
	}
	want := []string{"x", "←", "1", "\n", "y", "←", "2"}
	if len(lits) != len(want) {
		t.Fatalf("got %v, want %v", lits, want)
	}
	for i := range want {
		if lits[i] != want[i] {
			t.Fatalf("got %v, want %v", lits, want)
		}
	}
}

func TestAccentedIdentifiersNormalizeToNFC(t *testing.T) {
	// "e" + U+0301 (combining acute) must lex identically to the precomposed
	// U+00E9, since New() normalizes input to NFC.
	decomposed := "e\u0301l\u00e8ve"
	precomposed := "\u00e9l\u00e8ve"

	t1 := New(decomposed).NextToken()
	t2 := New(precomposed).NextToken()
	if t1.Literal != t2.Literal {
		t.Fatalf("NFC normalization failed: %q != %q", t1.Literal, t2.Literal)
	}
}

func TestPositionTracking(t *testing.T) {
	input := "x\ny"
	l := New(input)
	tok := l.NextToken()
	if tok.Pos.Line != 1 {
		t.Fatalf("got line %d, want 1", tok.Pos.Line)
	}
	l.NextToken() // newline
	tok = l.NextToken()
	if tok.Pos.Line != 2 {
		t.Fatalf("got line %d, want 2", tok.Pos.Line)
	}
}
