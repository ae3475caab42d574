package fieldspec

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/crudgen/internal/errors"
)

func TestParse_Basic(t *testing.T) {
	fields, err := Parse("name:String:@NotBlank,price:BigDecimal:@NotNull,description:String")
	require.NoError(t, err)
	require.Len(t, fields, 3)

	assert.Equal(t, "name", fields[0].Name)
	assert.Equal(t, "String", fields[0].JavaType())
	assert.Equal(t, []string{"@NotBlank"}, fields[0].Annotations)
	assert.Equal(t, "name", fields[0].Column)

	assert.Equal(t, "price", fields[1].Name)
	assert.Equal(t, "BigDecimal", fields[1].JavaType())
	assert.Equal(t, []string{"@NotNull"}, fields[1].Annotations)

	assert.Equal(t, "description", fields[2].Name)
	assert.Empty(t, fields[2].Annotations)
}

func TestParse_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		fields, err := Parse(input)
		require.NoError(t, err)
		assert.Empty(t, fields)
	}
}

func TestParse_Whitespace(t *testing.T) {
	fields, err := Parse("  firstName : String : @NotBlank ; @Size(max = 50) ,  age:Integer ")
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "firstName", fields[0].Name)
	assert.Equal(t, "first_name", fields[0].Column)
	assert.Equal(t, []string{"@NotBlank", "@Size(max = 50)"}, fields[0].Annotations)
	assert.Equal(t, "age", fields[1].Name)
	assert.Equal(t, "Integer", fields[1].JavaType())
}

func TestParse_CommasInsideArgumentsAndGenerics(t *testing.T) {
	fields, err := Parse(`tags:List<String>:@Size(min = 1, max = 5),scores:Map<String, List<Long>>,code:String:@Pattern(regexp = "^[A-Z]{3}(,[A-Z]{3})*$", message = "bad (code)")`)
	require.NoError(t, err)
	require.Len(t, fields, 3)

	assert.Equal(t, "List<String>", fields[0].JavaType())
	assert.Equal(t, []string{"@Size(min = 1, max = 5)"}, fields[0].Annotations)

	assert.Equal(t, "Map<String, List<Long>>", fields[1].JavaType())

	assert.Equal(t, []string{`@Pattern(regexp = "^[A-Z]{3}(,[A-Z]{3})*$", message = "bad (code)")`}, fields[2].Annotations)
}

func TestParse_AnnotationWithoutAt(t *testing.T) {
	fields, err := Parse("email:String:Email;NotBlank")
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, []string{"@Email", "@NotBlank"}, fields[0].Annotations)
}

func TestParse_QualifiedAndArrayTypes(t *testing.T) {
	fields, err := Parse("ref:java.util.UUID,data:byte[],matrix:Integer[][]")
	require.NoError(t, err)
	require.Len(t, fields, 3)

	assert.Equal(t, "java.util.UUID", fields[0].JavaType())
	assert.True(t, fields[0].Type.Qualified())
	assert.Equal(t, "UUID", fields[0].Type.Simple())

	assert.Equal(t, "byte[]", fields[1].JavaType())
	assert.Equal(t, 1, fields[1].Type.Dims)
	assert.Equal(t, "Integer[][]", fields[2].JavaType())
}

func TestParse_TrailingAndEmptyEntries(t *testing.T) {
	fields, err := Parse("name:String,,price:BigDecimal,")
	require.NoError(t, err)
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	if diff := cmp.Diff([]string{"name", "price"}, names); diff != "" {
		t.Errorf("field names mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing type", "name"},
		{"missing type after colon", "name:"},
		{"missing comma", "name:String price:BigDecimal"},
		{"unclosed annotation", "name:String:@Size(max = 10"},
		{"unclosed generic", "tags:List<String"},
		{"bad field name", "9name:String"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var syntaxErr *errors.SyntaxError
			require.True(t, stderrors.As(err, &syntaxErr), "expected a syntax error, got %T", err)
			assert.Equal(t, errors.SyntaxErrorCode, syntaxErr.ErrorCode())
			assert.Equal(t, SourceName, syntaxErr.Location().File)
			assert.Equal(t, 1, syntaxErr.Location().Line)
			assert.Greater(t, syntaxErr.Location().Column, 0)
			assert.NotEmpty(t, syntaxErr.Suggestions())
		})
	}
}

func TestParse_SemanticErrors(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		_, err := Parse("name:String,name:Integer")
		require.Error(t, err)

		var validationErr *errors.ValidationError
		require.True(t, stderrors.As(err, &validationErr))
		assert.Equal(t, "name", validationErr.Actual)
		assert.Equal(t, 13, validationErr.Location().Column)
	})

	t.Run("reserved fields are all reported", func(t *testing.T) {
		_, err := Parse("id:Long,createdAt:LocalDateTime,name:String")
		require.Error(t, err)

		var multi *errors.MultipleErrors
		require.True(t, stderrors.As(err, &multi))
		assert.Len(t, multi.Errors, 2)
	})
}

func TestParse_RejectedNames(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		actual   string
		column   int
	}{
		{"upper-case id column", "ID:Long", "a name not provided by BaseModel", "ID", 1},
		{"snake audit column", "name:String,created_at:String", "a name not provided by BaseModel", "created_at", 13},
		{"soft delete column", "is_deleted:Boolean", "a name not provided by BaseModel", "is_deleted", 1},
		{"column collision", "fooBar:String,foo_bar:String", "a unique column", "foo_bar", 15},
		{"keyword", "class:String", "a name that is not a Java keyword", "class", 1},
		{"contextual keyword", "title:String,default:Integer", "a name that is not a Java keyword", "default", 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var validationErr *errors.ValidationError
			require.True(t, stderrors.As(err, &validationErr), "expected a validation error, got %T", err)
			assert.Equal(t, tt.expected, validationErr.Expected)
			assert.Equal(t, tt.actual, validationErr.Actual)
			assert.Equal(t, SourceName, validationErr.Location().File)
			assert.Equal(t, tt.column, validationErr.Location().Column)
		})
	}
}

func TestParse_ColumnCollisionsAreAllReported(t *testing.T) {
	_, err := Parse("ID:Long,created_at:String,fooBar:String,foo_bar:String")
	require.Error(t, err)

	var multi *errors.MultipleErrors
	require.True(t, stderrors.As(err, &multi))
	assert.Len(t, multi.Errors, 3)
	assert.Contains(t, multi.Suggestions(), "'fooBar' and 'foo_bar' both map to column foo_bar")
}

func TestParse_SyntaxErrorNamesGrammarElements(t *testing.T) {
	_, err := Parse("name String")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "AST")
}

func TestAnnotationName(t *testing.T) {
	assert.Equal(t, "Size", AnnotationName("@Size(max = 10)"))
	assert.Equal(t, "NotNull", AnnotationName("@jakarta.validation.constraints.NotNull"))
	assert.Equal(t, "Email", AnnotationName(" @Email "))
	assert.Equal(t, "Min", AnnotationName("@Min (0)"))
}
