package label

// Symbol is a short ISO-4217 style currency code
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

// Currency describes a single currency known to keisan
type Currency struct {
	Symbol  Symbol
	Name    string
	Country string
}
