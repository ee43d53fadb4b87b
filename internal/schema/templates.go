package schema

import (
	"fmt"
	"sort"

	"github.com/Jirwin42/attendence/pkg/types"
)

// templates holds the built-in table specs offered by the bootstrap command.
var templates = map[string]types.TableSpec{
	"customer": {
		Name: "Customer",
		Columns: []types.ColumnSpec{
			{Name: "id", Type: types.TypeInteger, PrimaryKey: true, AutoIncrement: true, Nullable: true},
			{Name: "Name", Type: types.TypeText},
			{Name: "Birthday", Type: types.TypeText},
			{Name: "Email", Type: types.TypeText},
			{Name: "PhoneNumber", Type: types.TypeText, Nullable: true},
			{Name: "Address", Type: types.TypeText, Nullable: true},
			{Name: "PreferredContact", Type: types.TypeText},
		},
	},
}

// Template returns a copy of the named built-in table spec.
func Template(name string) (types.TableSpec, error) {
	t, ok := templates[name]
	if !ok {
		return types.TableSpec{}, fmt.Errorf("unknown template %q (available: %v)", name, TemplateNames())
	}
	t.Columns = append([]types.ColumnSpec(nil), t.Columns...)
	return t, nil
}

// TemplateNames lists the built-in template names in sorted order.
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for n := range templates {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
