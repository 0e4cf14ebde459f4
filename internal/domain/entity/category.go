package entity

// Categories es el conjunto fijo de categorías de componentes del laboratorio.
var Categories = []string{
	"Resistors", "Capacitors", "Inductors", "Diodes", "Transistors",
	"Integrated Circuits", "Microcontrollers", "Sensors", "Connectors",
	"Switches/Buttons", "LEDs/Displays", "Cables/Wires", "Mechanical Parts",
	"Misc Supplies",
}

// IsValidCategory verifica que la categoría pertenezca al conjunto fijo.
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
