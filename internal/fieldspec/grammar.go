package fieldspec

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// fieldList is the root of a field definition string.
// Empty entries between commas are allowed so trailing commas do no harm.
type fieldList struct {
	Entries []*fieldEntry `parser:"@@? ( ',' @@? )*"`
}

// Type names below show up in parse errors, e.g. `expected ":" javaType`,
// so they are named for what the user typed.

// fieldEntry is one name:Type[:annotations] entry
type fieldEntry struct {
	Pos         lexer.Position
	Name        string        `parser:"@Ident ':'"`
	Type        *javaType     `parser:"@@"`
	Annotations []*annotation `parser:"( ':' @@? ( ';' @@? )* )?"`
}

// javaType is a Java type reference such as BigDecimal, java.util.UUID,
// Map<String, List<Long>> or byte[]
type javaType struct {
	Name []string    `parser:"@Ident ( '.' @Ident )*"`
	Args []*javaType `parser:"( '<' @@ ( ',' @@ )* '>' )?"`
	Dims []string    `parser:"( '[' @']' )*"`
}

// annotation is a Java annotation; the leading @ may be omitted
type annotation struct {
	Pos  lexer.Position
	Name []string   `parser:"'@'? @Ident ( '.' @Ident )*"`
	Args *arguments `parser:"@@?"`
}

// arguments is a balanced parenthesised argument list, kept verbatim
type arguments struct {
	Pos    lexer.Position
	Tokens []*argToken `parser:"'(' @@* ')'"`
	EndPos lexer.Position
}

type argToken struct {
	Group *arguments `parser:"  @@"`
	Text  string     `parser:"| @( String | Char | Ident | Number | Punct )"`
}

var specLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Char", Pattern: `'(\\.|[^'\\])*'`},
	{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},
	{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?[lLfFdD]?`},
	{Name: "Paren", Pattern: `[()]`},
	{Name: "Punct", Pattern: `[@:;,.<>\[\]=?{}+\-*/|&!%^~#]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var specParser = participle.MustBuild[fieldList](
	participle.Lexer(specLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)
