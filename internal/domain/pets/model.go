package pets

// Species es el conjunto cerrado de especies aceptadas.
// @Enum Dog, Cat, Rabbit, Bird
type Species string

const (
	SpeciesDog    Species = "Dog"
	SpeciesCat    Species = "Cat"
	SpeciesRabbit Species = "Rabbit"
	SpeciesBird   Species = "Bird"
)

var allSpecies = []Species{SpeciesDog, SpeciesCat, SpeciesRabbit, SpeciesBird}

// ParseSpecies es estricto: distingue mayúsculas.
func ParseSpecies(s string) (Species, bool) {
	for _, sp := range allSpecies {
		if string(sp) == s {
			return sp, true
		}
	}
	return "", false
}

// Pet es una mascota. Available (estado) solo pasa de true a false:
// por adopción o por baja lógica.
type Pet struct {
	ID        int64
	Name      string
	Species   Species
	Breed     *string
	Age       int
	Sex       string
	Available bool
	PhotoURL  *string
	ShelterID int64
}
