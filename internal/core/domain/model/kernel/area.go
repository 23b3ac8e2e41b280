package kernel

import (
	"fmt"

	"tracker/internal/pkg/errs"
)

// Area is a value object identifying a production stage on the factory
// floor. A unit's pieces always live in one or more areas, and every
// transfer moves pieces between two of them.
//
// The zero value is invalid; construct areas with NewArea or validate
// values arriving from persistence or HTTP input with Validate.
type Area string

const (
	AreaCorte       Area = "corte"
	AreaBordado     Area = "bordado"
	AreaEnsamble    Area = "ensamble"
	AreaPlancha     Area = "plancha"
	AreaCalidad     Area = "calidad"
	AreaEnvios      Area = "envios"
	AreaAlmacen     Area = "almacen"
	AreaPatronaje   Area = "patronaje"
	AreaDiseno      Area = "diseno"
	AreaOperaciones Area = "operaciones"
	AreaAdmin       Area = "admin"
)

// getValidAreas returns the closed set of production areas.
// Only values in this set pass validation.
func getValidAreas() map[Area]struct{} {
	return map[Area]struct{}{
		AreaCorte:       {},
		AreaBordado:     {},
		AreaEnsamble:    {},
		AreaPlancha:     {},
		AreaCalidad:     {},
		AreaEnvios:      {},
		AreaAlmacen:     {},
		AreaPatronaje:   {},
		AreaDiseno:      {},
		AreaOperaciones: {},
		AreaAdmin:       {},
	}
}

// getAreaDisplayNames returns the human-readable name of each area,
// used in history descriptions and notifications.
func getAreaDisplayNames() map[Area]string {
	return map[Area]string{
		AreaCorte:       "Corte",
		AreaBordado:     "Bordado",
		AreaEnsamble:    "Ensamble",
		AreaPlancha:     "Plancha/Empaque",
		AreaCalidad:     "Calidad",
		AreaEnvios:      "Envios",
		AreaAlmacen:     "Almacen",
		AreaPatronaje:   "Patronaje",
		AreaDiseno:      "Diseno",
		AreaOperaciones: "Operaciones",
		AreaAdmin:       "Admin",
	}
}

// NewArea creates an Area from its string form.
//
// Returns an error if the string does not name one of the production areas.
// This is the entry point for areas arriving from HTTP requests or database
// rows.
func NewArea(s string) (Area, error) {
	area := Area(s)
	if err := area.Validate(); err != nil {
		return "", err
	}
	return area, nil
}

// Validate checks that the area is one of the closed set of production areas.
// The zero value (empty string) is invalid.
func (a Area) Validate() error {
	if _, ok := getValidAreas()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("area", fmt.Errorf("%q is not a production area", string(a)))
	}
	return nil
}

// String returns the canonical lowercase name of the area.
func (a Area) String() string {
	return string(a)
}

// DisplayName returns the human-readable name of the area for use in
// history descriptions and notification messages. Unknown areas fall
// back to their raw string form.
func (a Area) DisplayName() string {
	if name, ok := getAreaDisplayNames()[a]; ok {
		return name
	}
	return string(a)
}

// IsEqual compares two areas by value.
func (a Area) IsEqual(other Area) bool {
	return a == other
}
