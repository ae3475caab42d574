package naming

import (
	"strings"

	"github.com/toyz/crudgen/internal/errors"
)

// EntityNames holds every spelling of an entity name the templates need
type EntityNames struct {
	Name        string // Product, MessageTemplate
	Lower       string // product, messagetemplate (DTO subpackage)
	Camel       string // product, messageTemplate
	Plural      string // Products, MessageTemplates
	CamelPlural string // products, messageTemplates
	Snake       string // message_template
	Table       string // message_templates
	Route       string // message-templates
	Human       string // message template
	HumanPlural string // message templates
}

// NewEntityNames validates name and derives the naming set from it.
// A lowercase first letter is capitalized; anything that is not a Java
// class name is rejected.
func NewEntityNames(name string) (EntityNames, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return EntityNames{}, errors.NewValidationError("entity name", "a non-empty name", name).
			WithSuggestions("Pass the entity as the first argument, e.g. 'crudgen generate Product'")
	}
	if strings.Contains(name, "_") {
		name = ToPascal(name)
	}
	if !IsClassName(name) {
		return EntityNames{}, errors.NewValidationError("entity name", "a Java class name like Product or OrderItem", name)
	}
	name = strings.ToUpper(name[:1]) + name[1:]

	plural := Pluralize(name)
	snake := ToSnake(name)
	return EntityNames{
		Name:        name,
		Lower:       strings.ToLower(name),
		Camel:       ToLowerCamel(name),
		Plural:      plural,
		CamelPlural: ToLowerCamel(plural),
		Snake:       snake,
		Table:       Pluralize(snake),
		Route:       Pluralize(ToKebab(name)),
		Human:       strings.ReplaceAll(snake, "_", " "),
		HumanPlural: strings.ReplaceAll(Pluralize(snake), "_", " "),
	}, nil
}
