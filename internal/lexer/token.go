// Package lexer turns Algo source text into a stream of tokens.
package lexer

import "fmt"

// TokenType identifies the lexical class of a Token.
type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF
	NEWLINE

	literalBeg
	IDENT
	INT
	FLOAT
	STRING
	TRUE
	FALSE
	literalEnd

	keywordBeg
	VARIABLE
	VARIABLES
	TABLEAU
	TABLEAUX
	TABLE
	FINTABLE
	STRUCTURE
	FINSTRUCTURE
	FONCTION
	FINFONCTION
	PROCEDURE
	FINPROCEDURE
	RETOURNE
	DEBUT
	FIN
	SI
	ALORS
	SINON
	SINONSI
	FINSI
	TANTQUE
	FINTANTQUE
	POUR
	A
	PAS
	SUIVANT
	ECRIRE
	ECRIREERR
	LIRE
	LONGUEUR
	TAILLE
	EXTRAIRE
	GAUCHE
	DROITE
	TROUVE
	CAR
	CODECAR
	ALEA
	DORMIR
	TEMPSUNIX
	OUVRIR
	FERMER
	LIREFICHIER
	ECRIREFICHIER
	FDF
	SUR
	LECTURE
	ECRITURE
	AJOUT
	IMPORTER
	ALIAS
	LIBRAIRIE
	INITIALISE
	EN
	BOOLEEN
	CARACTERE
	CHAINE
	ENTIER
	NUMERIQUE
	QUELCONQUE
	CLEF
	CLEFS
	VALEUR
	VALEURS
	EXISTE
	TYPE
	CONSTANTE
	PANIQUE
	CONTINUER
	SORTIR
	REDIM
	ET
	OU
	OUX
	NON
	DP
	keywordEnd

	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	CARET
	AMP
	ASSIGN // ←  (alias <-)
	EQ
	NEQ
	GT
	LT
	GE
	LE
	LPAREN
	RPAREN
	LBRACK
	RBRACK
	COMMA
	DOT
	COLON
	BACKSLASH
)

var keywords = map[string]TokenType{
	"Variable":     VARIABLE,
	"Variables":    VARIABLES,
	"Tableau":      TABLEAU,
	"Tableaux":     TABLEAUX,
	"Table":        TABLE,
	"FinTable":     FINTABLE,
	"Structure":    STRUCTURE,
	"FinStructure": FINSTRUCTURE,
	"Fonction":     FONCTION,
	"FinFonction":  FINFONCTION,
	"Procédure":    PROCEDURE,
	"FinProcédure": FINPROCEDURE,
	"Retourne":     RETOURNE,
	"Début":        DEBUT,
	"Fin":          FIN,
	"Si":           SI,
	"Alors":        ALORS,
	"Sinon":        SINON,
	"SinonSi":      SINONSI,
	"FinSi":        FINSI,
	"TantQue":      TANTQUE,
	"FinTantQue":   FINTANTQUE,
	"Pour":         POUR,
	"à":            A,
	"Pas":          PAS,
	"Suivant":      SUIVANT,
	"Ecrire":       ECRIRE,
	"EcrireErr":    ECRIREERR,
	"Lire":         LIRE,
	"Longueur":     LONGUEUR,
	"Taille":       TAILLE,
	"Extraire":     EXTRAIRE,
	"Gauche":       GAUCHE,
	"Droite":       DROITE,
	"Trouve":       TROUVE,
	"Car":          CAR,
	"CodeCar":      CODECAR,
	"Aléa":         ALEA,
	"Dormir":       DORMIR,
	"TempsUnix":    TEMPSUNIX,
	"Ouvrir":       OUVRIR,
	"Fermer":       FERMER,
	"LireFichier":  LIREFICHIER,
	"EcrireFichier": ECRIREFICHIER,
	"FDF":          FDF,
	"sur":          SUR,
	"Lecture":      LECTURE,
	"Ecriture":     ECRITURE,
	"Ajout":        AJOUT,
	"Importer":     IMPORTER,
	"Alias":        ALIAS,
	"Librairie":    LIBRAIRIE,
	"Initialise":   INITIALISE,
	"en":           EN,
	"Booléen":      BOOLEEN,
	"Caractère":    CARACTERE,
	"Chaîne":       CHAINE,
	"Entier":       ENTIER,
	"Numérique":    NUMERIQUE,
	"Quelconque":   QUELCONQUE,
	"Clef":         CLEF,
	"Clefs":        CLEFS,
	"Valeur":       VALEUR,
	"Valeurs":      VALEURS,
	"Existe":       EXISTE,
	"Type":         TYPE,
	"Constante":    CONSTANTE,
	"Panique":      PANIQUE,
	"Continuer":    CONTINUER,
	"Sortir":       SORTIR,
	"Redim":        REDIM,
	"ET":           ET,
	"OU":           OU,
	"OUX":          OUX,
	"NON":          NON,
	"DP":           DP,
	"VRAI":         TRUE,
	"FAUX":         FALSE,
}

// LookupIdent classifies ident either as a keyword token or as a plain
// identifier.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword reports whether tt is one of the reserved Algo keywords.
func (tt TokenType) IsKeyword() bool {
	return tt > keywordBeg && tt < keywordEnd
}

// IsLiteral reports whether tt is a literal token class.
func (tt TokenType) IsLiteral() bool {
	return tt > literalBeg && tt < literalEnd
}

// Position locates a token within the source text.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Display renders a token value the way parser error messages expect,
// substituting the visible down-arrow glyph for a literal newline.
func (t Token) Display() string {
	if t.Type == NEWLINE {
		return "↵"
	}
	return t.Literal
}

var tokenNames = map[TokenType]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF", NEWLINE: "NEWLINE",
	IDENT: "IDENT", INT: "INT", FLOAT: "FLOAT", STRING: "STRING",
	TRUE: "VRAI", FALSE: "FAUX",
	PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", PERCENT: "%", CARET: "^",
	AMP: "&", ASSIGN: "←", EQ: "=", NEQ: "<>", GT: ">", LT: "<", GE: ">=", LE: "<=",
	LPAREN: "(", RPAREN: ")", LBRACK: "[", RBRACK: "]", COMMA: ",", DOT: ".",
	COLON: ":", BACKSLASH: "\\",
}

// String renders a TokenType for diagnostics.
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	for lit, t := range keywords {
		if t == tt {
			return lit
		}
	}
	return "UNKNOWN"
}
