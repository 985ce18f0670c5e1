package entity

// Cliente representa un cliente al que se le factura.
type Cliente struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}
