package templates

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/crudgen/internal/errors"
	"github.com/toyz/crudgen/internal/fieldspec"
	"github.com/toyz/crudgen/internal/naming"
)

func productData(t *testing.T, pkg string) Data {
	t.Helper()
	names, err := naming.NewEntityNames("Product")
	require.NoError(t, err)
	return Data{
		BasePackage: "com.example.shop",
		Package:     pkg,
		Imports:     []string{"java.math.BigDecimal", "lombok.Data"},
		Entity:      names,
		Fields: []FieldData{
			{Name: "name", Type: "String", Column: "name", Annotations: []string{"@NotBlank"}},
			{Name: "unitPrice", Type: "BigDecimal", Column: "unit_price", Annotations: []string{"@NotNull", "@DecimalMin(\"0.0\")"}},
		},
		Columns: []Column{
			{Name: "id", Filter: fieldspec.FilterNumber},
			{Name: "created_at", Filter: fieldspec.FilterDate},
			{Name: "name", Filter: fieldspec.FilterString},
			{Name: "unit_price", Filter: fieldspec.FilterNumber},
		},
		SearchColumns:  []string{"id", "name"},
		IgnoredTargets: []string{"id", "createdAt"},
		APIDocPrefix:   "/api/v2",
	}
}

func TestRegistry_AllComponentsRegistered(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"controller", "create-request", "jdbc-repository", "mapper", "model",
		"repository", "response", "service", "service-impl", "update-request",
	}, registry.Names())

	_, ok := registry.Get("model")
	assert.True(t, ok)
	_, ok = registry.Get("widget")
	assert.False(t, ok)
}

func TestRegistry_RenderUnknown(t *testing.T) {
	registry := MustNewRegistry()

	_, err := registry.Render("widget", Data{})
	require.Error(t, err)

	var genErr errors.GenError
	require.True(t, stderrors.As(err, &genErr))
	assert.Equal(t, errors.TemplateErrorCode, genErr.ErrorCode())
	assert.Contains(t, err.Error(), "widget")
}

func TestRegistry_RenderExecutionFailure(t *testing.T) {
	registry := MustNewRegistry()

	// a struct without the Entity field cannot satisfy the model template
	_, err := registry.Render("model", struct{ Package string }{"x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute template 'model'")
}

func TestRender_Model(t *testing.T) {
	out, err := MustNewRegistry().Render("model", productData(t, "com.example.shop.model"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "package com.example.shop.model;\n\nimport java.math.BigDecimal;\nimport lombok.Data;\n"))
	assert.Contains(t, out, `@Table(name = "products")`)
	assert.Contains(t, out, "public class Product extends BaseModel {")
	assert.Contains(t, out, "    @Column(name = \"unit_price\")\n    private BigDecimal unitPrice;\n")
	assert.NotContains(t, out, "@NotNull")
}

func TestRender_CreateRequest(t *testing.T) {
	out, err := MustNewRegistry().Render("create-request", productData(t, "com.example.shop.dto.product"))
	require.NoError(t, err)

	assert.Contains(t, out, "public class ProductCreateRequest extends BaseRequest {")
	assert.Contains(t, out, "    @NotNull\n    @DecimalMin(\"0.0\")\n    private BigDecimal unitPrice;\n")
}

func TestRender_Repository(t *testing.T) {
	out, err := MustNewRegistry().Render("repository", productData(t, "com.example.shop.repository.jpa"))
	require.NoError(t, err)

	assert.Contains(t, out, "import com.example.shop.model.Product;")
	assert.Contains(t, out, "LOWER(CAST(e.id AS string)) LIKE LOWER(CONCAT('%', :searchTerm, '%')) OR LOWER(CAST(e.name AS string))")
	assert.Contains(t, out, "Page<Product> searchProducts(")
}

func TestRender_JdbcRepositoryColumns(t *testing.T) {
	data := productData(t, "com.example.shop.repository.jdbc")

	out, err := MustNewRegistry().Render("jdbc-repository", data)
	require.NoError(t, err)
	assert.Contains(t, out, "Map.of(\n            \"id\", FilterType.NUMBER,\n            \"created_at\", FilterType.DATE,")
	assert.Contains(t, out, "\"unit_price\", FilterType.NUMBER\n    );")
	assert.Contains(t, out, "FROM products WHERE deleted_at IS NULL")
	assert.Contains(t, out, "import com.example.shop.enums.FilterType;")

	for i := 0; i < 10; i++ {
		data.Columns = append(data.Columns, Column{Name: "extra", Filter: fieldspec.FilterString})
	}
	out, err = MustNewRegistry().Render("jdbc-repository", data)
	require.NoError(t, err)
	assert.Contains(t, out, "Map.ofEntries(\n            Map.entry(\"id\", FilterType.NUMBER),")
}

func TestRender_Mapper(t *testing.T) {
	out, err := MustNewRegistry().Render("mapper", productData(t, "com.example.shop.mapper"))
	require.NoError(t, err)

	assert.Contains(t, out, "     */\n    @Mapping(target = \"id\", ignore = true)\n    @Mapping(target = \"createdAt\", ignore = true)\n    Product toEntity(ProductCreateRequest request);")
	assert.Contains(t, out, "List<ProductResponse> toResponseList(List<Product> products);")
}

func TestRender_Controller(t *testing.T) {
	names, err := naming.NewEntityNames("Category")
	require.NoError(t, err)
	data := productData(t, "com.example.shop.controller")
	data.Entity = names

	out, err := MustNewRegistry().Render("controller", data)
	require.NoError(t, err)

	assert.Contains(t, out, `@RequestMapping("/categories")`)
	assert.Contains(t, out, "Base URL: /api/v2/categories")
	assert.Contains(t, out, `@GetMapping("/{id}")`)
	assert.Contains(t, out, "getAllCategories(")
	assert.Contains(t, out, `response.put("categoryId", id.toString());`)
}

func TestRender_ControllerRestoreKeyUsesLowerName(t *testing.T) {
	names, err := naming.NewEntityNames("OrderItem")
	require.NoError(t, err)
	data := productData(t, "com.example.shop.controller")
	data.Entity = names

	out, err := MustNewRegistry().Render("controller", data)
	require.NoError(t, err)

	assert.Contains(t, out, `response.put("orderitemId", id.toString());`)
	assert.Contains(t, out, "orderItemService.restoreOrderItem(id);")
}

func TestRender_EmptyBasePackage(t *testing.T) {
	data := productData(t, "service.impl")
	data.BasePackage = ""

	out, err := MustNewRegistry().Render("service-impl", data)
	require.NoError(t, err)
	assert.Contains(t, out, "import dto.product.ProductCreateRequest;")
	assert.Contains(t, out, "import exception.ResourceNotFoundException;")
	assert.NotContains(t, out, "import .")
}

func TestData_Pkg(t *testing.T) {
	tests := []struct {
		base, sub, want string
	}{
		{"com.example", "model", "com.example.model"},
		{"com.example", "", "com.example"},
		{"", "model", "model"},
		{"com.example", "util.FilterRequest", "com.example.util.FilterRequest"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Data{BasePackage: tt.base}.Pkg(tt.sub))
	}
}

func TestFuncMap(t *testing.T) {
	assert.Equal(t, "order_item", FuncMap["snake"].(func(string) string)("OrderItem"))
	assert.Equal(t, "order-item", FuncMap["kebab"].(func(string) string)("OrderItem"))
	assert.Equal(t, "Boxes", FuncMap["plural"].(func(string) string)("Box"))
	assert.Equal(t, "a, b", FuncMap["join"].(func(string, []string) string)(", ", []string{"a", "b"}))
}
