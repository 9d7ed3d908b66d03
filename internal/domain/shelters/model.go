package shelters

// Shelter es un refugio. Nunca se borra: la baja es Active=false.
type Shelter struct {
	ID       int64
	Name     string
	Location string
	Active   bool
	PhotoURL *string
}
